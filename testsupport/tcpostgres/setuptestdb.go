//nolint:errcheck // testsetup
package tcpostgres

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mpapenbr/f1-telemetry-producer/pkg/db/migrate"
	database "github.com/mpapenbr/f1-telemetry-producer/pkg/db/postgres"
)

// SetupTestDB starts a postgres container and returns the migrated database url
func SetupTestDB() string {
	ctx := context.Background()
	container, err := SetupPostgres(ctx, "postgres", "password", "postgres",
		WithImage(ImageFromEnv()),
		WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(10*time.Second)),
		WithName("f1-telemetry-producer-test"),
	)
	if err != nil {
		log.Fatal(err)
	}
	dbURL, err := container.ConnectionURL(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if err = migrate.MigrateDB(dbURL); err != nil {
		log.Fatal(err)
	}
	return dbURL
}

// SetupExternalTestDB migrates the database referenced by TESTDB_URL
func SetupExternalTestDB() string {
	dbURL := os.Getenv("TESTDB_URL")
	if err := migrate.MigrateDB(dbURL); err != nil {
		log.Fatal(err)
	}
	return dbURL
}

func OpenPool(dbURL string) *pgxpool.Pool {
	pool, err := database.InitWithURL(context.Background(), dbURL)
	if err != nil {
		log.Fatal(err)
	}
	return pool
}

func ClearTelemetryTables(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from telemetry_sample")
	pool.Exec(context.Background(), "delete from telemetry_lap")
}
