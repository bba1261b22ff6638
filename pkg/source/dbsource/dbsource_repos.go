//nolint:whitespace //can't make both the linter and editor happy :(
package dbsource

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/source"
)

// Lap describes a stored lap of a driver
type Lap struct {
	Selector  model.Selector
	LapNumber int
	LapTimeMs int64
}

// CreateLap stores lap and its samples, returns the id of the new lap.
// Use it inside a transaction.
func CreateLap(
	ctx context.Context,
	conn Querier,
	lap *Lap,
	samples []model.TelemetrySample,
) (int, error) {
	var id int
	err := conn.QueryRow(ctx, `
insert into telemetry_lap (season, event, session, driver, lap_number, lap_time_ms)
values ($1,$2,$3,$4,$5,$6) returning id`,
		lap.Selector.Season, lap.Selector.Event, lap.Selector.Session, lap.Selector.Driver,
		lap.LapNumber, lap.LapTimeMs,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	_, err = conn.CopyFrom(ctx,
		pgx.Identifier{"telemetry_sample"},
		[]string{
			"lap_id", "ts", "speed", "rpm", "gear",
			"throttle", "brake", "drs", "x", "y", "z",
		},
		pgx.CopyFromSlice(len(samples), func(i int) ([]any, error) {
			s := samples[i]
			return []any{
				id, s.Timestamp, s.Speed, s.RPM, s.Gear,
				s.Throttle, s.Brake, s.DRS, s.X, s.Y, s.Z,
			}, nil
		}))
	if err != nil {
		return 0, err
	}
	return id, nil
}

// FastestLap returns id and lap time of the fastest lap matching sel
func FastestLap(
	ctx context.Context,
	conn Querier,
	sel model.Selector,
) (id int, lapTimeMs int64, err error) {
	err = conn.QueryRow(ctx, `
select id, lap_time_ms from telemetry_lap
where season=$1 and event=$2 and session=$3 and driver=$4
order by lap_time_ms asc, lap_number asc limit 1`,
		sel.Season, sel.Event, sel.Session, sel.Driver,
	).Scan(&id, &lapTimeMs)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, fmt.Errorf("%w for %s", source.ErrNoData, sel)
	}
	return id, lapTimeMs, err
}

func LoadSamples(
	ctx context.Context,
	conn Querier,
	lapID int,
) ([]model.TelemetrySample, error) {
	rows, err := conn.Query(ctx, fmt.Sprintf("%s where lap_id=$1 order by ts asc, id asc",
		sampleSelector), lapID)
	if err != nil {
		return nil, err
	}
	samples, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.TelemetrySample])
	if err != nil {
		return nil, err
	}
	for i := range samples {
		normalize(&samples[i])
	}
	return samples, nil
}

// deletes all laps of sel, returns number of laps deleted.
func DeleteLaps(ctx context.Context, conn Querier, sel model.Selector) (int, error) {
	cmdTag, err := conn.Exec(ctx,
		"delete from telemetry_lap where season=$1 and event=$2 and session=$3 and driver=$4",
		sel.Season, sel.Event, sel.Session, sel.Driver)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

// little helper
const sampleSelector = `select ts,
coalesce(speed,0), coalesce(rpm,0), coalesce(gear,0), coalesce(throttle,0),
coalesce(brake,0), coalesce(drs,0), coalesce(x,0), coalesce(y,0), coalesce(z,0)
from telemetry_sample`

// double precision columns may hold NaN
func normalize(s *model.TelemetrySample) {
	s.Speed = model.Normalize(s.Speed)
	s.RPM = model.Normalize(s.RPM)
	s.Throttle = model.Normalize(s.Throttle)
	s.Brake = model.Normalize(s.Brake)
	s.DRS = model.Normalize(s.DRS)
	s.X = model.Normalize(s.X)
	s.Y = model.Normalize(s.Y)
	s.Z = model.Normalize(s.Z)
}
