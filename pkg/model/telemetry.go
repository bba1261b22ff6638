package model

import (
	"math"
	"time"
)

// TelemetrySample is one timestamped vehicle state reading.
// All fields are populated, missing source values are stored as 0.
type TelemetrySample struct {
	Timestamp time.Time `json:"timestamp"` // millisecond resolution
	Speed     float64   `json:"speed"`     // km/h
	RPM       float64   `json:"rpm"`
	Gear      int       `json:"gear"`
	Throttle  float64   `json:"throttle"` // 0-100
	Brake     float64   `json:"brake"`    // 0-100 or 0/1
	DRS       float64   `json:"drs"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Z         float64   `json:"z"`
}

// Normalize maps values a data source could not provide (NaN, Inf) to 0
func Normalize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// StreamOutcome is the result of one completed streaming run.
// Status and TotalPackets are reported by the server.
type StreamOutcome struct {
	Status       string        `json:"status"`
	TotalPackets int64         `json:"totalPackets"`
	Sent         int64         `json:"sent"` // number of messages sent by the client
	RunID        string        `json:"runId"`
	Duration     time.Duration `json:"duration"`
}
