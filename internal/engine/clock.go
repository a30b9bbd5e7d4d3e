package engine

import "time"

// Timer is a scheduled one-shot callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock abstracts time.Now() and one-shot timers to allow deterministic testing.
// It is used by the TimeSampler to sample wall-clock time and arm wake-ups.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// AfterFunc runs f on its own goroutine once d has elapsed.
func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
