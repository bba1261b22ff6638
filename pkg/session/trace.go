package session

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mpapenbr/f1-telemetry-producer/log"
)

const tracerName = "f1t.session"

// WithTracerProvider sets the provider for the run span.
// Default is the global provider, which is a noop until telemetry is configured.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(d *Driver) {
		d.tracer = tp.Tracer(tracerName)
	}
}

func (d *Driver) startRunSpan(ctx context.Context, runID string) (context.Context, trace.Span) {
	tracer := d.tracer
	if tracer == nil {
		tracer = otel.GetTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, "f1t.run",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("runId", runID),
			attribute.String("target", d.target)))
}

func endRunSpan(span trace.Span, sent int64, totalPackets int64, err error) {
	span.SetAttributes(attribute.Int64("sent", sent))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int64("totalPackets", totalPackets))
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// traceField adds the trace id to log entries of sampled runs
func traceField(span trace.Span) []log.Field {
	if sc := span.SpanContext(); sc.IsValid() {
		return []log.Field{log.String("traceId", sc.TraceID().String())}
	}
	return nil
}
