package dump

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/mpapenbr/f1-telemetry-producer/gen/f1"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/config"
)

func TestRunDump(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ver.json")
	data := `[{"Date":1000,"RPM":10800,"Speed":290.5,"nGear":7,"Throttle":100,
 "Brake":false,"DRS":12,"X":1,"Y":2,"Z":3},
 {"Date":1220,"RPM":null,"Speed":291,"nGear":8,"Throttle":99,
 "Brake":true,"DRS":12,"X":1,"Y":2,"Z":3}]`
	if err := os.WriteFile(file, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	config.Selector = "2024/Monza/Q/VER"
	config.Source = "json"
	config.File = file
	config.DriverID = "1"

	var out bytes.Buffer
	if err := runDump(context.Background(), &out); err != nil {
		t.Fatal(err)
	}
	want := []*f1.TelemetryData{
		{
			DriverId: "1", TimestampMs: 1000, Speed: 290.5, Rpm: 10800, Gear: 7,
			Throttle: 100, Drs: 12, X: 1, Y: 2, Z: 3,
		},
		{
			DriverId: "1", TimestampMs: 1220, Speed: 291, Gear: 8,
			Throttle: 99, Brake: 1, Drs: 12, X: 1, Y: 2, Z: 3,
		},
	}
	got := []*f1.TelemetryData{}
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		msg := &f1.TelemetryData{}
		if err := protojson.Unmarshal(scanner.Bytes(), msg); err != nil {
			t.Fatal(err)
		}
		got = append(got, msg)
	}
	if diff := cmp.Diff(want, got, protocmp.Transform()); diff != "" {
		t.Errorf("runDump() mismatch (-want +got):\n%s", diff)
	}
}

func TestRunDumpInvalidSelector(t *testing.T) {
	config.Selector = "VER"
	if err := runDump(context.Background(), &bytes.Buffer{}); err == nil {
		t.Error("expected error")
	}
}
