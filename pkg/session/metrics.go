package session

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/mpapenbr/f1-telemetry-producer/log"
)

type driverMetrics struct {
	sent metric.Int64Counter
	runs metric.Int64Counter
}

// newDriverMetrics uses the global meter provider, which is a noop until
// telemetry is configured.
func newDriverMetrics(l *log.Logger) *driverMetrics {
	meter := otel.GetMeterProvider().Meter("f1t.session")
	ret := &driverMetrics{}
	var err error
	if ret.sent, err = meter.Int64Counter("f1t.session.messages",
		metric.WithDescription("Number of telemetry messages sent"),
		metric.WithUnit("{count}")); err != nil {
		l.Warn("failed to register metric", log.ErrorField(err))
	}
	if ret.runs, err = meter.Int64Counter("f1t.session.runs",
		metric.WithDescription("Number of finished runs by result"),
		metric.WithUnit("{count}")); err != nil {
		l.Warn("failed to register metric", log.ErrorField(err))
	}
	return ret
}

func (m *driverMetrics) messageSent(ctx context.Context) {
	if m.sent != nil {
		m.sent.Add(ctx, 1)
	}
}

func (m *driverMetrics) runFinished(ctx context.Context, result string) {
	if m.runs != nil {
		m.runs.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
	}
}
