package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/source"
)

const records = `[
 {"Date":1725115802123,"RPM":10800.0,"Speed":290.0,"nGear":7,"Throttle":100.0,
  "Brake":false,"DRS":12,"X":-1.0,"Y":2.5,"Z":3.0},
 {"Date":1725115802343,"RPM":null,"Speed":291.0,"nGear":7,"Throttle":99.0,
  "Brake":true,"DRS":12,"X":null,"Y":2.6,"Z":3.1}
]`

const byDriver = `{
 "VER": [{"Date":"2024-08-31T14:50:02.123Z","RPM":1,"Speed":1,"nGear":1,"Throttle":1,
          "Brake":0,"DRS":0,"X":0,"Y":0,"Z":0}],
 "LEC": [{"Date":1,"RPM":2,"Speed":2,"nGear":2,"Throttle":2,"Brake":0,"DRS":0,"X":0,"Y":0,"Z":0},
         {"Date":2,"RPM":2,"Speed":2,"nGear":2,"Throttle":2,"Brake":0,"DRS":0,"X":0,"Y":0,"Z":0}]
}`

const withDriverField = `[
 {"Driver":"VER","Date":1,"RPM":1,"Speed":1,"nGear":1,"Throttle":1,"Brake":0,"DRS":0,"X":0,"Y":0,"Z":0},
 {"Driver":"LEC","Date":2,"RPM":2,"Speed":2,"nGear":2,"Throttle":2,"Brake":0,"DRS":0,"X":0,"Y":0,"Z":0},
 {"Driver":"VER","Date":3,"RPM":3,"Speed":3,"nGear":3,"Throttle":3,"Brake":0,"DRS":0,"X":0,"Y":0,"Z":0}
]`

func TestParseRecords(t *testing.T) {
	got, err := Parse(context.Background(), records, "VER")
	if !assert.NoError(t, err) {
		return
	}
	assert.Len(t, got, 2)
	assert.Equal(t, time.Date(2024, 8, 31, 14, 50, 2, 123000000, time.UTC), got[0].Timestamp)
	assert.Equal(t, 290.0, got[0].Speed)
	assert.Equal(t, 7, got[0].Gear)
	assert.Equal(t, 0.0, got[0].Brake)
	assert.Equal(t, 1.0, got[1].Brake)
	assert.Equal(t, 0.0, got[1].RPM)
	assert.Equal(t, 0.0, got[1].X)
}

func TestParseAbsentKeysReadAsZero(t *testing.T) {
	data := `[{"Date":1725115802123,"Speed":290.0,"RPM":10800,"nGear":7,"Throttle":100}]`
	got, err := Parse(context.Background(), data, "")
	if !assert.NoError(t, err) || !assert.Len(t, got, 1) {
		return
	}
	assert.Equal(t, 290.0, got[0].Speed)
	assert.Equal(t, 0.0, got[0].Brake)
	assert.Equal(t, 0.0, got[0].DRS)
	assert.Equal(t, 0.0, got[0].Z)
}

func TestParseRequiresDate(t *testing.T) {
	_, err := Parse(context.Background(), `[{"Speed":1}]`, "")
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestParseSelectsDriver(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		driver string
		want   []float64
	}{
		{"keyed VER", byDriver, "VER", []float64{1}},
		{"keyed LEC", byDriver, "LEC", []float64{2, 2}},
		{"keyed unknown", byDriver, "HAM", []float64{}},
		{"field VER", withDriverField, "VER", []float64{1, 3}},
		{"field any", withDriverField, "", []float64{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(context.Background(), tt.data, tt.driver)
			if !assert.NoError(t, err) {
				return
			}
			speeds := make([]float64, 0, len(got))
			for _, s := range got {
				speeds = append(speeds, s.Speed)
			}
			assert.Equal(t, tt.want, speeds)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `[{"Date":`},
		{"scalar", `42`},
		{"missing date", `[{"Speed":1,"RPM":1}]`},
		{"bad date", `[{"Date":"soon","RPM":1,"Speed":1,"nGear":1,"Throttle":1,"Brake":0,"DRS":0,"X":0,"Y":0,"Z":0}]`},
		{"no record", `[1,2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(context.Background(), tt.data, "")
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "monza.json")
	if err := os.WriteFile(file, []byte(byDriver), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := New(file).Load(context.Background(), model.DefaultSelector)
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = New(file).Load(context.Background(),
		model.Selector{Season: 2024, Event: "Monza", Session: "Q", Driver: "HAM"})
	assert.True(t, errors.Is(err, source.ErrNoData))
}
