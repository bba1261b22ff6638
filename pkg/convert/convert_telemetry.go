package convert

import (
	"time"

	"github.com/mpapenbr/f1-telemetry-producer/gen/f1"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
)

// SampleToProto maps one sample to exactly one wire message.
// Gear is truncated to int32, timestamps are sent as epoch milliseconds.
func SampleToProto(driverID string, s *model.TelemetrySample) *f1.TelemetryData {
	return &f1.TelemetryData{
		DriverId:    driverID,
		TimestampMs: s.Timestamp.UnixMilli(),
		Speed:       s.Speed,
		Rpm:         s.RPM,
		Gear:        int32(s.Gear), //nolint:gosec // gears are small
		Throttle:    s.Throttle,
		Brake:       s.Brake,
		Drs:         s.DRS,
		X:           s.X,
		Y:           s.Y,
		Z:           s.Z,
	}
}

func ProtoToSample(m *f1.TelemetryData) model.TelemetrySample {
	return model.TelemetrySample{
		Timestamp: time.UnixMilli(m.GetTimestampMs()).UTC(),
		Speed:     m.GetSpeed(),
		RPM:       m.GetRpm(),
		Gear:      int(m.GetGear()),
		Throttle:  m.GetThrottle(),
		Brake:     m.GetBrake(),
		DRS:       m.GetDrs(),
		X:         m.GetX(),
		Y:         m.GetY(),
		Z:         m.GetZ(),
	}
}
