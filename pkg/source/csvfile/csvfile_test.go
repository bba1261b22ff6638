package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/source"
)

const fastf1Export = `,Date,SessionTime,DriverAhead,DistanceToDriverAhead,Time,RPM,Speed,nGear,Throttle,Brake,DRS,Source,Distance,RelativeDistance,Status,X,Y,Z
2,2024-08-31 14:50:02.123,0 days 00:10:00,,,0 days,10800.0,290.0,7,100.0,False,12,pos,0.0,0.0,OnTrack,-1.0,2.5,3.0
3,2024-08-31 14:50:02.343,0 days 00:10:00,,,0 days,,291.0,7.0,99.0,True,12,car,1.0,0.1,OnTrack,nan,2.6,3.1
`

func TestRead(t *testing.T) {
	got, err := Read(context.Background(), strings.NewReader(fastf1Export), "VER")
	if err != nil {
		t.Fatal(err)
	}
	base := time.Date(2024, 8, 31, 14, 50, 2, 123000000, time.UTC)
	want := []model.TelemetrySample{
		{
			Timestamp: base, Speed: 290, RPM: 10800, Gear: 7, Throttle: 100,
			Brake: 0, DRS: 12, X: -1, Y: 2.5, Z: 3,
		},
		{
			Timestamp: base.Add(220 * time.Millisecond), Speed: 291, RPM: 0, Gear: 7,
			Throttle: 99, Brake: 1, DRS: 12, X: 0, Y: 2.6, Z: 3.1,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadAbsentColumnsReadAsZero(t *testing.T) {
	data := "Date,Speed,RPM\n1000,290,10800\n"
	got, err := Read(context.Background(), strings.NewReader(data), "")
	if err != nil {
		t.Fatal(err)
	}
	want := []model.TelemetrySample{{Timestamp: time.UnixMilli(1000).UTC(), Speed: 290, RPM: 10800}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFiltersDriver(t *testing.T) {
	data := `Driver,Date,Speed,RPM,nGear,Throttle,Brake,DRS,X,Y,Z
VER,1000,1,1,1,1,0,0,0,0,0
LEC,1001,2,2,2,2,0,0,0,0,0
VER,1002,3,3,3,3,0,0,0,0,0
`
	got, err := Read(context.Background(), strings.NewReader(data), "VER")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1].Speed != 3 {
		t.Errorf("unexpected samples %+v", got)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"missing date column", "Speed,RPM\n1,1\n"},
		{"bad timestamp", "Date,Speed,RPM,nGear,Throttle,Brake,DRS,X,Y,Z\nnow,1,1,1,1,0,0,0,0,0\n"},
		{"bad value", "Date,Speed,RPM,nGear,Throttle,Brake,DRS,X,Y,Z\n1000,fast,1,1,1,0,0,0,0,0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(context.Background(), strings.NewReader(tt.data), ""); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ver.csv")
	data := "Date,Speed,RPM,nGear,Throttle,Brake,DRS,X,Y,Z\n" +
		"2000,2,1,1,1,0,0,0,0,0\n" +
		"1000,1,1,1,1,0,0,0,0,0\n"
	if err := os.WriteFile(file, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := New(file, WithSort(true)).Load(context.Background(), model.DefaultSelector)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Speed != 1 || got[1].Speed != 2 {
		t.Errorf("samples not sorted: %+v", got)
	}

	got, err = New(file).Load(context.Background(), model.DefaultSelector)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Speed != 2 {
		t.Errorf("file order not kept: %+v", got)
	}

	empty := filepath.Join(dir, "empty.csv")
	_ = os.WriteFile(empty, []byte("Date,Speed,RPM,nGear,Throttle,Brake,DRS,X,Y,Z\n"), 0o600)
	_, err = New(empty).Load(context.Background(), model.DefaultSelector)
	if !errors.Is(err, source.ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}

	_, err = New(filepath.Join(dir, "missing.csv")).Load(context.Background(), model.DefaultSelector)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}
