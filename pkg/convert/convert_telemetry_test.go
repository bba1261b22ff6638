package convert

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/mpapenbr/f1-telemetry-producer/gen/f1"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
)

var monzaStart = time.Date(2024, 8, 31, 14, 32, 10, 123_000_000, time.UTC)

func TestSampleToProto(t *testing.T) {
	tests := []struct {
		name   string
		sample model.TelemetrySample
		want   *f1.TelemetryData
	}{
		{
			name: "full sample",
			sample: model.TelemetrySample{
				Timestamp: monzaStart,
				Speed:     331.5, RPM: 11800, Gear: 8, Throttle: 100, Brake: 0, DRS: 12,
				X: -1520.25, Y: 980.5, Z: 12.75,
			},
			want: &f1.TelemetryData{
				DriverId: "VER", TimestampMs: monzaStart.UnixMilli(),
				Speed: 331.5, Rpm: 11800, Gear: 8, Throttle: 100, Brake: 0, Drs: 12,
				X: -1520.25, Y: 980.5, Z: 12.75,
			},
		},
		{
			name:   "zero sample",
			sample: model.TelemetrySample{Timestamp: time.UnixMilli(0)},
			want:   &f1.TelemetryData{DriverId: "VER"},
		},
		{
			name:   "sub millisecond timestamp is truncated",
			sample: model.TelemetrySample{Timestamp: time.UnixMilli(1000).Add(999 * time.Microsecond)},
			want:   &f1.TelemetryData{DriverId: "VER", TimestampMs: 1000},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleToProto("VER", &tt.sample)
			if diff := cmp.Diff(tt.want, got, protocmp.Transform()); diff != "" {
				t.Errorf("SampleToProto() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	samples := []model.TelemetrySample{
		{Timestamp: monzaStart, Speed: 250, RPM: 10500.5, Gear: 7, Throttle: 99.5, DRS: 8},
		{Timestamp: monzaStart.Add(50 * time.Millisecond), Speed: 251.5, Brake: 1, X: 1, Y: 2, Z: 3},
	}
	for i := range samples {
		msg := SampleToProto("LEC", &samples[i])
		// decode what would travel over the wire
		data, err := proto.Marshal(msg)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		decoded := &f1.TelemetryData{}
		if err := proto.Unmarshal(data, decoded); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if decoded.GetDriverId() != "LEC" {
			t.Errorf("driver id = %q", decoded.GetDriverId())
		}
		if diff := cmp.Diff(samples[i], ProtoToSample(decoded)); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}
