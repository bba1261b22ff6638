package migrate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1-telemetry-producer/log"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/config"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/db/migrate"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/utils"
)

var (
	waitForDB string
	down      bool
)

func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "creates the tables of the postgres data source",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return startMigration(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&waitForDB,
		"wait-for-db",
		"15s",
		"Duration to wait for the database to be ready")
	cmd.Flags().BoolVar(&down,
		"down",
		false,
		"removes all tables instead")
	return cmd
}

func startMigration(ctx context.Context) error {
	timeout, err := time.ParseDuration(waitForDB)
	if err != nil {
		log.Warn("Invalid duration value. Setting default 60s", log.ErrorField(err))
		timeout = 60 * time.Second
	}
	postgresAddr := utils.ExtractFromDBURL(config.DB)
	if err = utils.WaitForTCP(ctx, postgresAddr, timeout); err != nil {
		log.Error("database not ready", log.ErrorField(err))
		return err
	}
	dbURL := prepareURLForDB(config.DB)
	if down {
		log.Info("Removing tables")
		return migrate.DropDB(dbURL)
	}
	if err := migrate.MigrateDB(dbURL); err != nil {
		return err
	}
	log.Info("Database is up to date")
	return nil
}

func prepareURLForDB(url string) string {
	options := "sslmode=disable"
	if strings.Contains(url, "sslmode=") {
		return url
	}
	if strings.Contains(url, "?") {
		return fmt.Sprintf("%s&%s", url, options)
	}
	return fmt.Sprintf("%s?%s", url, options)
}
