// Package clock provides time utilities for the application
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed is a Clock pinned to a settable instant, for tests that need
// deterministic timestamps.
type Fixed struct {
	now time.Time
}

// NewFixed returns a clock pinned to t
func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

// Now returns the pinned instant
func (c *Fixed) Now() time.Time {
	return c.now
}

// Advance moves the pinned instant forward by d
func (c *Fixed) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set pins the clock to a new instant
func (c *Fixed) Set(t time.Time) {
	c.now = t
}
