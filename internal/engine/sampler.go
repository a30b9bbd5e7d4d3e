package engine

import (
	"log/slog"
	"time"

	"github.com/tartampluch/go-clock/internal/config"
)

// WakeToken identifies one scheduled wake-up. Zero never identifies a wake.
type WakeToken uint64

// NextWakeDelay returns the time left until the next whole second.
// The result is always in (0, 1s]; a zero fraction yields the full second.
func NextWakeDelay(now time.Time) time.Duration {
	d := config.SampleResolution - time.Duration(now.Nanosecond())
	if d <= 0 {
		return time.Nanosecond
	}
	if d > config.SampleResolution {
		return config.SampleResolution
	}
	return d
}

// TimeSampler keeps a single TimeValue fresh with one wake-up per second.
//
// Wake-ups are one-shot and each one re-arms the next from the actual
// current time; there is no fixed-period ticker. All methods must run on
// the same goroutine; timer callbacks are routed there through Dispatch.
type TimeSampler struct {
	Clock Clock

	// Dispatch runs fn on the UI goroutine. Timer callbacks never touch
	// sampler state directly.
	Dispatch func(fn func())

	// OnChange receives every newly published value.
	OnChange func(TimeValue)

	current TimeValue
	pending WakeToken
	issued  WakeToken
	timer   Timer
	log     *slog.Logger
}

// NewTimeSampler samples the clock immediately, without rounding, so the
// first paint has something to show before the first wake.
func NewTimeSampler(clock Clock, dispatch func(fn func())) *TimeSampler {
	s := &TimeSampler{
		Clock:    clock,
		Dispatch: dispatch,
		log:      slog.With(config.LogKeyComponent, config.CompSampler),
	}
	s.current = s.must(FromTime(clock.Now()))
	return s
}

// Current returns the last published value.
func (s *TimeSampler) Current() TimeValue {
	return s.current
}

// Pending returns the token of the outstanding wake, or zero when stopped.
func (s *TimeSampler) Pending() WakeToken {
	return s.pending
}

// Start arms the first wake-up.
func (s *TimeSampler) Start() {
	s.schedule()
	s.log.Info(config.MsgSamplerStart, config.LogKeyToken, s.pending)
}

// Stop cancels the outstanding wake. Late deliveries are ignored.
func (s *TimeSampler) Stop() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = 0
	s.log.Info(config.MsgSamplerStop)
}

// Wake handles a delivered wake-up. Only the most recently issued token is
// acted on; anything else is a stale or cancelled timer.
func (s *TimeSampler) Wake(token WakeToken) {
	if token == 0 || token != s.pending {
		s.log.Debug(config.MsgWakeStale,
			config.LogKeyToken, token,
			config.LogKeyPending, s.pending)
		return
	}

	next := s.must(RoundToSecond(s.Clock.Now()))
	prev := s.current
	s.current = next

	s.schedule()

	if next.Equal(prev) {
		return
	}
	s.log.Debug(config.MsgTimePublished, config.LogKeyTime, next.String())
	if s.OnChange != nil {
		s.OnChange(next)
	}
}

// schedule issues a fresh token and arms exactly one timer for it.
func (s *TimeSampler) schedule() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.issued++
	token := s.issued
	s.pending = token

	delay := NextWakeDelay(s.Clock.Now())
	s.timer = s.Clock.AfterFunc(delay, func() {
		s.Dispatch(func() { s.Wake(token) })
	})

	s.log.Debug(config.MsgWakeScheduled,
		config.LogKeyToken, token,
		config.LogKeyDelay, delay)
}

// must aborts on clock arithmetic failures. They only occur with a broken
// clock source, and guessing a corrected value would show a wrong time.
func (s *TimeSampler) must(v TimeValue, err error) TimeValue {
	if err != nil {
		s.log.Error(config.MsgSamplerFatal, config.LogKeyError, err)
		panic(err)
	}
	return v
}
