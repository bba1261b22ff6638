// Package stream produces the wire messages for a dataset.
// A Sequence is pulled one message at a time; nothing is produced ahead of the consumer.
package stream

import (
	"context"
	"errors"
	"io"
	"iter"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mpapenbr/f1-telemetry-producer/gen/f1"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/convert"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
)

type MapperFunc func(driverID string, s *model.TelemetrySample) *f1.TelemetryData

type Option func(*Sequence)

func WithPacing(p Pacing) Option {
	return func(s *Sequence) {
		s.pacing = p
	}
}

func WithClock(c clockwork.Clock) Option {
	return func(s *Sequence) {
		s.clock = c
	}
}

func WithMapper(m MapperFunc) Option {
	return func(s *Sequence) {
		s.mapper = m
	}
}

// Sequence is a single-pass producer of wire messages.
// To start over create a new Sequence with the same samples.
type Sequence struct {
	samples  []model.TelemetrySample
	driverID string
	pacing   Pacing
	clock    clockwork.Clock
	mapper   MapperFunc
	idx      int
}

// New creates a sequence over samples. The samples must not be modified while
// the sequence is in use.
func New(samples []model.TelemetrySample, driverID string, opts ...Option) *Sequence {
	ret := &Sequence{
		samples:  samples,
		driverID: driverID,
		clock:    clockwork.NewRealClock(),
		mapper:   convert.SampleToProto,
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Next returns the next message or io.EOF when all samples are consumed.
// With pacing configured Next waits before returning a message (except the first).
// A cancelled ctx aborts the wait and returns ctx.Err().
func (s *Sequence) Next(ctx context.Context) (*f1.TelemetryData, error) {
	if s.idx >= len(s.samples) {
		return nil, io.EOF
	}
	if s.idx > 0 && s.pacing.Enabled() {
		wait := s.pacing.delay(&s.samples[s.idx-1], &s.samples[s.idx])
		if err := s.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
	msg := s.mapper(s.driverID, &s.samples[s.idx])
	s.idx++
	return msg, nil
}

// All adapts the sequence for range-over-func.
// Iteration stops after the first error, which is yielded with a nil message.
// io.EOF is not yielded.
func (s *Sequence) All(ctx context.Context) iter.Seq2[*f1.TelemetryData, error] {
	return func(yield func(*f1.TelemetryData, error) bool) {
		for {
			msg, err := s.Next(ctx)
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(msg, err) || err != nil {
				return
			}
		}
	}
}

// Emitted returns the number of messages produced so far
func (s *Sequence) Emitted() int {
	return s.idx
}

// Len returns the total number of messages this sequence produces
func (s *Sequence) Len() int {
	return len(s.samples)
}

func (s *Sequence) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := s.clock.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.Chan():
		return nil
	}
}
