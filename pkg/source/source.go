// Package source loads the telemetry samples of one driver's lap.
package source

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
)

var ErrNoData = errors.New("no telemetry found")

// Source provides the samples for a selector in timestamp order.
type Source interface {
	Load(ctx context.Context, sel model.Selector) ([]model.TelemetrySample, error)
}

// Func adapts a function to the Source interface
type Func func(ctx context.Context, sel model.Selector) ([]model.TelemetrySample, error)

func (f Func) Load(ctx context.Context, sel model.Selector) ([]model.TelemetrySample, error) {
	return f(ctx, sel)
}

// Columns of a FastF1 telemetry export in the order they are mapped
var Columns = []string{"Date", "Speed", "RPM", "nGear", "Throttle", "Brake", "DRS", "X", "Y", "Z"}

// DriverColumn is optional. If present, rows are filtered by the selector driver.
const DriverColumn = "Driver"

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp accepts ISO timestamps (UTC if no zone is given) or epoch milliseconds
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// ParseValue parses a numeric cell. Empty, NaN and infinite values yield 0,
// boolean cells (FastF1 exports Brake as bool) yield 0 or 1.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return model.Normalize(v), nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		if b {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("invalid value %q", s)
}

// Gear truncates a (possibly fractional) gear value
func Gear(v float64) int {
	return int(math.Trunc(model.Normalize(v)))
}

// SortByTimestamp sorts samples stably by timestamp
func SortByTimestamp(samples []model.TelemetrySample) {
	slices.SortStableFunc(samples, func(a, b model.TelemetrySample) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
}
