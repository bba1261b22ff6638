package tcpostgres

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	DefaultImage = "postgres:17"
	// ImageEnv overrides DefaultImage, e.g. to test against another major version
	ImageEnv = "TESTDB_IMAGE"
	dbPort   = "5432/tcp"
)

// PostgresContainer is a started postgres container with known credentials
type PostgresContainer struct {
	testcontainers.Container
	user     string
	password string
	dbName   string
}

type PostgresContainerOption func(req *testcontainers.ContainerRequest)

func WithWaitStrategy(strategies ...wait.Strategy) PostgresContainerOption {
	return func(req *testcontainers.ContainerRequest) {
		req.WaitingFor = wait.ForAll(strategies...).WithDeadline(1 * time.Minute)
	}
}

func WithImage(image string) PostgresContainerOption {
	return func(req *testcontainers.ContainerRequest) {
		if image != "" {
			req.Image = image
		}
	}
}

func WithName(containerName string) PostgresContainerOption {
	return func(req *testcontainers.ContainerRequest) {
		req.Name = containerName
	}
}

// ImageFromEnv returns the image configured by ImageEnv or DefaultImage
func ImageFromEnv() string {
	if image := os.Getenv(ImageEnv); image != "" {
		return image
	}
	return DefaultImage
}

// SetupPostgres starts (or reuses) a postgres container with the given database.
// Containers are reused by name across test packages.
func SetupPostgres(ctx context.Context, user, password, dbName string,
	opts ...PostgresContainerOption,
) (*PostgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image: DefaultImage,
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": password,
			"POSTGRES_DB":       dbName,
		},
		ExposedPorts: []string{dbPort},
		Cmd:          []string{"postgres", "-c", "fsync=off"},
	}
	for _, opt := range opts {
		opt(&req)
	}

	container, err := testcontainers.GenericContainer(ctx,
		testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
			Reuse:            req.Name != "",
		})
	if err != nil {
		return nil, err
	}
	return &PostgresContainer{
		Container: container,
		user:      user,
		password:  password,
		dbName:    dbName,
	}, nil
}

// ConnectionURL returns the url of the database on the mapped port
func (c *PostgresContainer) ConnectionURL(ctx context.Context) (string, error) {
	port, err := c.MappedPort(ctx, nat.Port(dbPort))
	if err != nil {
		return "", err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		c.user, c.password, host, port.Port(), c.dbName), nil
}
