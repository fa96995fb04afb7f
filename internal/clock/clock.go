// Package clock abstracts the wall clock so callers can be tested against
// fixed, deterministic times.
package clock

import "time"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// System reads the host wall clock in the local time zone.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always returns the same instant.
type Fixed time.Time

// NewFixed returns a clock frozen at t.
func NewFixed(t time.Time) Fixed {
	return Fixed(t)
}

func (f Fixed) Now() time.Time { return time.Time(f) }
