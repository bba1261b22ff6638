// Package jsonfile reads FastF1 telemetry exported with DataFrame.to_json.
//
// Two layouts are supported:
//
//	[{"Date": 1725115802123, "Speed": 290.0, ...}, ...]     orient="records"
//	{"VER": [{"Date": ..., ...}], "LEC": [...]}             records keyed by driver
//
// Records of the first layout may carry a "Driver" field which is used to filter.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/mpapenbr/f1-telemetry-producer/log"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/source"
)

var (
	ErrLayout        = errors.New("unsupported json layout")
	ErrMissingColumn = errors.New("missing column")
)

type Option func(*Source)

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
	ret := &Source{path: path, l: log.Default().Named("source.json")}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (s *Source) Load(ctx context.Context, sel model.Selector) ([]model.TelemetrySample, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	samples, err := Parse(ctx, string(data), sel.Driver)
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

// Parse extracts the records of driver from jsonData
func Parse(ctx context.Context, jsonData, driver string) ([]model.TelemetrySample, error) {
	obj, err := oj.ParseString(jsonData)
	if err != nil {
		return nil, err
	}
	path, err := recordPath(obj, driver)
	if err != nil {
		return nil, err
	}
	records := path.Get(obj)
	ret := make([]model.TelemetrySample, 0, len(records))
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m, ok := rec.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d: %w", i, ErrLayout)
		}
		sample, err := toSample(m)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		ret = append(ret, sample)
	}
	return ret, nil
}

func recordPath(obj any, driver string) (jp.Expr, error) {
	switch obj.(type) {
	case []any:
		if driver == "" || !hasDriverField(obj) {
			return jp.ParseString("$[*]")
		}
		return jp.ParseString(fmt.Sprintf(`$[?(@.%s == %q)]`, source.DriverColumn, driver))
	case map[string]any:
		return jp.R().C(driver).W(), nil
	default:
		return nil, ErrLayout
	}
}

func hasDriverField(obj any) bool {
	return len(jp.MustParseString("$[*]." + source.DriverColumn).Get(obj)) > 0
}

func toSample(m map[string]any) (model.TelemetrySample, error) {
	raw, ok := m[source.Columns[0]]
	if !ok {
		return model.TelemetrySample{}, fmt.Errorf("%w: %s", ErrMissingColumn, source.Columns[0])
	}
	ts, err := source.ParseTimestamp(fmt.Sprint(raw))
	if err != nil {
		return model.TelemetrySample{}, err
	}
	values := make([]float64, len(source.Columns)-1)
	for i, col := range source.Columns[1:] {
		// an absent key is treated like null
		if values[i], err = toFloat(m[col]); err != nil {
			return model.TelemetrySample{}, fmt.Errorf("%s: %w", col, err)
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

// toFloat converts a parsed json value. null (NaN in pandas) yields 0.
func toFloat(v any) (float64, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case int64:
		return float64(val), nil
	case float64:
		return model.Normalize(val), nil
	case bool:
		if val {
			return 1, nil
		}
		return 0, nil
	case string:
		return source.ParseValue(val)
	default:
		return 0, fmt.Errorf("unsupported value %v", v)
	}
}
