// Package dbsource loads telemetry from the postgres database.
// The schema is managed by pkg/db/migrate.
package dbsource

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mpapenbr/f1-telemetry-producer/log"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/source"
)

// Querier is implemented by *pgxpool.Pool, *pgx.Conn and pgx.Tx
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(
		ctx context.Context,
		tableName pgx.Identifier,
		columnNames []string,
		rowSrc pgx.CopyFromSource,
	) (int64, error)
}

type Source struct {
	conn Querier
	l    *log.Logger
}

func New(conn Querier) *Source {
	return &Source{conn: conn, l: log.Default().Named("source.db")}
}

// Load returns the samples of the fastest lap of the selected driver
func (s *Source) Load(ctx context.Context, sel model.Selector) ([]model.TelemetrySample, error) {
	lapID, lapTime, err := FastestLap(ctx, s.conn, sel)
	if err != nil {
		return nil, err
	}
	samples, err := LoadSamples(ctx, s.conn, lapID)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w for lap %d of %s", source.ErrNoData, lapID, sel)
	}
	s.l.Info("telemetry loaded",
		log.String("selector", sel.String()),
		log.Int("lapId", lapID),
		log.Int64("lapTimeMs", lapTime),
		log.Int("samples", len(samples)))
	return samples, nil
}
