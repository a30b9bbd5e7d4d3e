package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/tartampluch/go-clock/internal/config"
)

// ErrClockArithmetic reports a time-of-day that falls outside a single day.
// It indicates a broken clock source or a logic defect and is never retried.
var ErrClockArithmetic = errors.New(config.ErrClockArithmetic)

// Timelike is the narrow view of a time-of-day the renderer draws from.
type Timelike interface {
	Hour() int
	Minute() int
	Second() int
	SecondsSinceMidnight() int
}

// TimeValue is an immutable time-of-day snapshot.
// Two values are Equal when hour, minute and second match; nanoseconds are
// carried for completeness but ignored by comparison.
type TimeValue struct {
	hour, minute, second, nanos int
}

// NewTimeValue validates each field and builds a TimeValue.
func NewTimeValue(hour, minute, second, nanos int) (TimeValue, error) {
	switch {
	case hour < 0 || hour >= config.HoursPerDay:
		return TimeValue{}, fmt.Errorf("%w: %s: %d", ErrClockArithmetic, config.ErrHourRange, hour)
	case minute < 0 || minute >= config.MinutesPerHour:
		return TimeValue{}, fmt.Errorf("%w: %s: %d", ErrClockArithmetic, config.ErrMinuteRange, minute)
	case second < 0 || second >= config.SecondsPerMinute:
		return TimeValue{}, fmt.Errorf("%w: %s: %d", ErrClockArithmetic, config.ErrSecondRange, second)
	case nanos < 0 || nanos >= config.NanosPerSecond:
		return TimeValue{}, fmt.Errorf("%w: %s: %d", ErrClockArithmetic, config.ErrNanosRange, nanos)
	}
	return TimeValue{hour: hour, minute: minute, second: second, nanos: nanos}, nil
}

// FromTime adapts the wall-clock fields of t, in t's own location.
func FromTime(t time.Time) (TimeValue, error) {
	return NewTimeValue(t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

// RoundToSecond rounds t to the nearest second, halves rounding up, and
// adapts the result. 23:59:59.5 becomes 00:00:00 of the following day.
func RoundToSecond(t time.Time) (TimeValue, error) {
	return FromTime(t.Round(config.SampleResolution))
}

func (v TimeValue) Hour() int       { return v.hour }
func (v TimeValue) Minute() int     { return v.minute }
func (v TimeValue) Second() int     { return v.second }
func (v TimeValue) Nanosecond() int { return v.nanos }

// SecondsSinceMidnight is always in [0, 86400).
func (v TimeValue) SecondsSinceMidnight() int {
	return v.hour*config.SecondsPerHour + v.minute*config.SecondsPerMinute + v.second
}

// Equal compares at one-second granularity.
func (v TimeValue) Equal(o TimeValue) bool {
	return v.hour == o.hour && v.minute == o.minute && v.second == o.second
}

// String formats the value as HH:MM:SS for logs.
func (v TimeValue) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", v.hour, v.minute, v.second)
}
