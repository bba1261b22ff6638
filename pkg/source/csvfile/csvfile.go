// Package csvfile reads FastF1 telemetry exports written by DataFrame.to_csv.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"

	"github.com/mpapenbr/f1-telemetry-producer/log"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/source"
)

var ErrMissingColumn = errors.New("missing column")

type Option func(*Source)

// WithSort sorts the samples by timestamp after reading
func WithSort(arg bool) Option {
	return func(s *Source) {
		s.sort = arg
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Source) {
		s.l = l
	}
}

type Source struct {
	path string
	sort bool
	l    *log.Logger
}

func New(path string, opts ...Option) *Source {
	ret := &Source{path: path, l: log.Default().Named("source.csv")}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (s *Source) Load(ctx context.Context, sel model.Selector) ([]model.TelemetrySample, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples, err := Read(ctx, f, sel.Driver)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%s: %w for %s", s.path, source.ErrNoData, sel)
	}
	if s.sort {
		source.SortByTimestamp(samples)
	}
	s.l.Info("telemetry loaded",
		log.String("file", s.path),
		log.String("selector", sel.String()),
		log.Int("samples", len(samples)))
	return samples, nil
}

// Read parses the csv data. If the data contains a Driver column,
// only rows of driver are returned.
func Read(ctx context.Context, r io.Reader, driver string) ([]model.TelemetrySample, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	// only the timestamp is mandatory, absent value columns read as 0
	idx := lo.Map(source.Columns, func(col string, _ int) int { return lo.IndexOf(header, col) })
	if idx[0] < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, source.Columns[0])
	}
	driverIdx := lo.IndexOf(header, source.DriverColumn)

	ret := []model.TelemetrySample{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if driverIdx >= 0 && driver != "" && record[driverIdx] != driver {
			continue
		}
		line, _ := cr.FieldPos(0)
		sample, err := toSample(lo.Map(idx, func(i, _ int) string {
			if i < 0 {
				return ""
			}
			return record[i]
		}))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ret = append(ret, sample)
	}
	return ret, nil
}

// toSample converts the cells in the order of source.Columns
func toSample(cells []string) (model.TelemetrySample, error) {
	ts, err := source.ParseTimestamp(cells[0])
	if err != nil {
		return model.TelemetrySample{}, err
	}
	values := make([]float64, len(cells)-1)
	for i, cell := range cells[1:] {
		if values[i], err = source.ParseValue(cell); err != nil {
			return model.TelemetrySample{}, fmt.Errorf("%s: %w", source.Columns[i+1], err)
		}
	}
	return model.TelemetrySample{
		Timestamp: ts,
		Speed:     values[0],
		RPM:       values[1],
		Gear:      source.Gear(values[2]),
		Throttle:  values[3],
		Brake:     values[4],
		DRS:       values[5],
		X:         values[6],
		Y:         values[7],
		Z:         values[8],
	}, nil
}
