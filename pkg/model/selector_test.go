package model

import (
	"errors"
	"math"
	"testing"
)

func TestParseSelector(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    Selector
		wantErr bool
	}{
		{name: "default", arg: "2024/Monza/Q/VER", want: DefaultSelector},
		{
			name: "lower case driver",
			arg:  "2023/Spa/R/ham",
			want: Selector{Season: 2023, Event: "Spa", Session: "R", Driver: "HAM"},
		},
		{name: "missing part", arg: "2024/Monza/Q", wantErr: true},
		{name: "bad season", arg: "x/Monza/Q/VER", wantErr: true},
		{name: "empty driver", arg: "2024/Monza/Q/ ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelector(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSelector() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSelector) {
					t.Errorf("ParseSelector() error = %v, want ErrInvalidSelector", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseSelector() = %v, want %v", got, tt.want)
			}
			if got.String() != tt.arg && tt.name == "default" {
				t.Errorf("String() = %v, want %v", got.String(), tt.arg)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Normalize(v); got != 0 {
			t.Errorf("Normalize(%v) = %v, want 0", v, got)
		}
	}
	if got := Normalize(12.5); got != 12.5 {
		t.Errorf("Normalize(12.5) = %v", got)
	}
}
