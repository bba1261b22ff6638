package util

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgx-contrib/pgxtrace"

	"github.com/mpapenbr/f1-telemetry-producer/log"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/config"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/db/postgres"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/source"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/source/csvfile"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/source/dbsource"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/source/jsonfile"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/utils"
)

const (
	SourceCSV      = "csv"
	SourceJSON     = "json"
	SourcePostgres = "postgres"
)

// NewSource creates the data source selected by the source flags.
// The returned func releases resources held by the source.
func NewSource(ctx context.Context) (source.Source, func(), error) {
	var src source.Source
	closer := func() {}
	switch config.Source {
	case SourceCSV:
		if config.File == "" {
			return nil, nil, fmt.Errorf("--file is required for source %s", config.Source)
		}
		src = csvfile.New(config.File)
	case SourceJSON:
		if config.File == "" {
			return nil, nil, fmt.Errorf("--file is required for source %s", config.Source)
		}
		src = jsonfile.New(config.File)
	case SourcePostgres:
		pool, err := OpenDB(ctx)
		if err != nil {
			return nil, nil, err
		}
		src = dbsource.New(pool)
		closer = pool.Close
	default:
		return nil, nil, fmt.Errorf("unknown source %q", config.Source)
	}

	ttl, err := ParseDuration("cache-ttl", config.CacheTTL)
	if err != nil {
		closer()
		return nil, nil, err
	}
	if ttl > 0 {
		src = source.NewCached(src, ttl)
	}
	return src, closer, nil
}

// OpenDB waits for the database and creates a pool with sql logging.
// The otel tracer is added if telemetry is enabled.
func OpenDB(ctx context.Context) (*pgxpool.Pool, error) {
	addr := utils.ExtractFromDBURL(config.DB)
	if addr == "" {
		return nil, fmt.Errorf("invalid database url")
	}
	if err := utils.WaitForTCP(ctx, addr, 10*time.Second); err != nil {
		return nil, err
	}
	tracer := pgxtrace.CompositeQueryTracer{
		postgres.NewMyTracer(log.Default().Named("sql"),
			ParseLogLevel(config.SQLLogLevel, log.DebugLevel)),
	}
	if config.EnableTelemetry {
		tracer = append(tracer, postgres.NewOtlpTracer())
	}
	return postgres.InitWithURL(ctx, config.DB, postgres.WithTracer(tracer))
}
