// Package clock abstracts wall-clock time and delayed callbacks so the
// dispatcher and walk timers can be driven deterministically in tests.
package clock

import "time"

// Timer is an armed delayed callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer before it fired.
	Stop() bool
}

// Clock provides the current local time and one-shot delayed callbacks.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct {
	loc *time.Location
}

// New returns a Clock reporting time in the given location and scheduling
// callbacks on real timers.
func New(loc *time.Location) Clock {
	return &realClock{loc: loc}
}

func (c *realClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
