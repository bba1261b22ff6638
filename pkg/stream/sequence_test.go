package stream

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1-telemetry-producer/gen/f1"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/convert"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
)

func sampleData() []model.TelemetrySample {
	base := time.UnixMilli(1000)
	return []model.TelemetrySample{
		{Timestamp: base, Speed: 250.0},
		{Timestamp: base.Add(50 * time.Millisecond), Speed: 251.5},
		{Timestamp: base.Add(100 * time.Millisecond), Speed: 253.0},
	}
}

func TestNextKeepsOrder(t *testing.T) {
	seq := New(sampleData(), "VER")
	ctx := context.Background()

	var ts []int64
	var speed []float64
	for {
		msg, err := seq.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		assert.Equal(t, "VER", msg.GetDriverId())
		ts = append(ts, msg.GetTimestampMs())
		speed = append(speed, msg.GetSpeed())
	}
	assert.Equal(t, []int64{1000, 1050, 1100}, ts)
	assert.Equal(t, []float64{250.0, 251.5, 253.0}, speed)
	assert.Equal(t, 3, seq.Emitted())

	// single pass
	_, err := seq.Next(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestEmptySequence(t *testing.T) {
	seq := New(nil, "VER")
	_, err := seq.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 0, seq.Len())
}

func TestNextIsLazy(t *testing.T) {
	mapped := 0
	counting := func(driverID string, s *model.TelemetrySample) *f1.TelemetryData {
		mapped++
		return convert.SampleToProto(driverID, s)
	}
	seq := New(sampleData(), "VER", WithMapper(counting))
	assert.Equal(t, 0, mapped, "nothing is produced before the first pull")

	for i := 1; i <= 3; i++ {
		_, err := seq.Next(context.Background())
		require.NoError(t, err)
		assert.Equal(t, i, mapped)
	}
}

func TestAll(t *testing.T) {
	seq := New(sampleData(), "HAM")
	count := 0
	for msg, err := range seq.All(context.Background()) {
		require.NoError(t, err)
		assert.Equal(t, "HAM", msg.GetDriverId())
		count++
	}
	assert.Equal(t, 3, count)
}

func TestAllStopsEarly(t *testing.T) {
	seq := New(sampleData(), "HAM")
	for range seq.All(context.Background()) {
		break
	}
	assert.Equal(t, 1, seq.Emitted())
}

func TestFixedPacing(t *testing.T) {
	clock := clockwork.NewFakeClock()
	seq := New(sampleData(), "VER",
		WithClock(clock),
		WithPacing(Pacing{Delay: 50 * time.Millisecond}))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// first message is not delayed
	_, err := seq.Next(ctx)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := seq.Next(ctx)
		done <- err
	}()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	select {
	case <-done:
		t.Fatal("message delivered before the pacing delay elapsed")
	default:
	}
	clock.Advance(50 * time.Millisecond)
	require.NoError(t, <-done)
	assert.Equal(t, 2, seq.Emitted())
}

func TestPacingIsCancelable(t *testing.T) {
	clock := clockwork.NewFakeClock()
	seq := New(sampleData(), "VER",
		WithClock(clock),
		WithPacing(Pacing{Delay: time.Hour}))
	ctx, cancel := context.WithCancel(context.Background())

	_, err := seq.Next(ctx)
	require.NoError(t, err)
	cancel()
	_, err = seq.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, seq.Emitted())
}

func TestPacingDelay(t *testing.T) {
	samples := sampleData()
	tests := []struct {
		name   string
		pacing Pacing
		prev   model.TelemetrySample
		cur    model.TelemetrySample
		want   time.Duration
	}{
		{name: "none", pacing: Pacing{}, prev: samples[0], cur: samples[1], want: 0},
		{
			name: "fixed", pacing: Pacing{Delay: 20 * time.Millisecond},
			prev: samples[0], cur: samples[1], want: 20 * time.Millisecond,
		},
		{
			name: "realtime", pacing: Pacing{Speed: 1},
			prev: samples[0], cur: samples[1], want: 50 * time.Millisecond,
		},
		{
			name: "double speed", pacing: Pacing{Speed: 2, Delay: time.Second},
			prev: samples[0], cur: samples[2], want: 50 * time.Millisecond,
		},
		{
			name: "equal timestamps", pacing: Pacing{Speed: 1},
			prev: samples[1], cur: samples[1], want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pacing.delay(&tt.prev, &tt.cur))
		})
	}
}

func TestPacingEnabled(t *testing.T) {
	tests := []struct {
		name string
		p    Pacing
		want bool
	}{
		{"zero value", Pacing{}, false},
		{"fixed delay", Pacing{Delay: time.Millisecond}, true},
		{"replay speed", Pacing{Speed: 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Enabled())
		})
	}
}

func TestUnpacedNeverWaitsOnClock(t *testing.T) {
	clock := clockwork.NewFakeClock()
	seq := New(sampleData(), "VER", WithClock(clock))
	for range 3 {
		_, err := seq.Next(context.Background())
		require.NoError(t, err)
	}
	_, err := seq.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}
