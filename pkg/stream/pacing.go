package stream

import (
	"time"

	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
)

// Pacing controls the delay between two messages.
// The zero value sends as fast as possible.
type Pacing struct {
	// Delay is a fixed wait before each message except the first.
	Delay time.Duration
	// Speed replays the recorded timestamp deltas divided by Speed
	// (1 = real time, 2 = twice as fast). 0 disables replay pacing.
	// If both are set, Speed takes precedence.
	Speed int
}

func (p Pacing) Enabled() bool {
	return p.Delay > 0 || p.Speed > 0
}

func (p Pacing) delay(prev, cur *model.TelemetrySample) time.Duration {
	if p.Speed > 0 {
		delta := cur.Timestamp.Sub(prev.Timestamp)
		if delta <= 0 {
			return 0
		}
		return delta / time.Duration(p.Speed)
	}
	return p.Delay
}
