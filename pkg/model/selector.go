package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidSelector = errors.New("invalid selector")

// Selector identifies the dataset to load: one driver in one session of an event.
type Selector struct {
	Season  int    `json:"season"`
	Event   string `json:"event"`
	Session string `json:"session"` // FP1, Q, R, ...
	Driver  string `json:"driver"`  // three letter abbreviation, e.g. VER
}

var DefaultSelector = Selector{Season: 2024, Event: "Monza", Session: "Q", Driver: "VER"}

// ParseSelector parses the format season/event/session/driver, e.g. 2024/Monza/Q/VER
func ParseSelector(arg string) (Selector, error) {
	parts := strings.Split(arg, "/")
	if len(parts) != 4 {
		return Selector{}, fmt.Errorf("%w: %q (want season/event/session/driver)",
			ErrInvalidSelector, arg)
	}
	season, err := strconv.Atoi(parts[0])
	if err != nil {
		return Selector{}, fmt.Errorf("%w: season %q: %w", ErrInvalidSelector, parts[0], err)
	}
	ret := Selector{
		Season:  season,
		Event:   strings.TrimSpace(parts[1]),
		Session: strings.TrimSpace(parts[2]),
		Driver:  strings.ToUpper(strings.TrimSpace(parts[3])),
	}
	return ret, ret.Validate()
}

func (s Selector) Validate() error {
	switch {
	case s.Season <= 0:
		return fmt.Errorf("%w: season must be positive", ErrInvalidSelector)
	case s.Event == "":
		return fmt.Errorf("%w: event is empty", ErrInvalidSelector)
	case s.Session == "":
		return fmt.Errorf("%w: session is empty", ErrInvalidSelector)
	case s.Driver == "":
		return fmt.Errorf("%w: driver is empty", ErrInvalidSelector)
	}
	return nil
}

func (s Selector) String() string {
	return fmt.Sprintf("%d/%s/%s/%s", s.Season, s.Event, s.Session, s.Driver)
}
