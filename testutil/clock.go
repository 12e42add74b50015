// Package testutil carries small helpers for deterministic tests.
package testutil

import "time"

// NewClock returns a clock frozen at a fixed, arbitrary instant. Tests move
// it forward explicitly instead of sleeping.
func NewClock() *Clock {
	return &Clock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

type Clock struct {
	t time.Time
}

// Now is a drop-in for time.Now.
func (c *Clock) Now() time.Time {
	return c.t
}

func (c *Clock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}
