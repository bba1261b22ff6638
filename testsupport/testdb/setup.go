package testdb

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	tcpg "github.com/mpapenbr/f1-telemetry-producer/testsupport/tcpostgres"
)

// InitTestDB returns a pool to an empty, migrated database.
// TESTDB_URL selects an external database instead of a container.
func InitTestDB() *pgxpool.Pool {
	var dbURL string
	if os.Getenv("TESTDB_URL") != "" {
		dbURL = tcpg.SetupExternalTestDB()
	} else {
		dbURL = tcpg.SetupTestDB()
	}
	pool := tcpg.OpenPool(dbURL)
	if err := pgx.BeginFunc(context.Background(), pool, func(tx pgx.Tx) error {
		tcpg.ClearTelemetryTables(pool)
		return nil
	}); err != nil {
		log.Fatalf("initTestDB: %v\n", err)
	}
	return pool
}
