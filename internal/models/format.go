package models

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

var (
	ErrInvalidDate    = errors.New("invalid date, want YYYY-MM-DD")
	ErrInvalidClock   = errors.New("invalid time, want HH:MM")
	ErrInvalidMinutes = errors.New("minutes must be a positive integer")
	ErrInvalidKind    = errors.New("unknown entry kind")
	ErrEntryNotFound  = errors.New("entry not found")
)

// ParseDate parses a YYYY-MM-DD key. The result is midnight UTC so that
// day differences are exact regardless of the local zone's DST rules.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrInvalidDate)
	}
	return t, nil
}

// DateOf formats t's local calendar date.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// Today is the local wall-clock date.
func Today(now time.Time) string {
	return DateOf(now.Local())
}

// ParseClock splits an HH:MM value into hour and minute.
func ParseClock(s string) (hour, minute int, err error) {
	if len(s) != len(ClockLayout) {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrInvalidClock)
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrInvalidClock)
	}
	return t.Hour(), t.Minute(), nil
}
