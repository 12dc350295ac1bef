package timeline

import (
	"time"
)

// Timer is a pending single-shot callback
type Timer interface {
	// Stop cancels the callback; it reports false if it already fired or was stopped
	Stop() bool
}

// Clock supplies time and single-shot timers
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// FrameScheduler runs a callback on the next display frame.
// The returned cancel func drops the callback if it has not run yet.
type FrameScheduler interface {
	RequestFrame(fn func(now time.Time)) (cancel func())
}

type systemClock struct{}

// SystemClock returns a Clock backed by the time package.
// Timer callbacks run on their own goroutine.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Debouncer coalesces repeated triggers into one call after the delay
type Debouncer struct {
	clock Clock
	delay time.Duration
	fn    func()
	timer Timer
}

// NewDebouncer creates a debouncer that calls fn once delay has passed since the last Trigger
func NewDebouncer(clock Clock, delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{clock: clock, delay: delay, fn: fn}
}

// Trigger starts or resets the debounce timer
func (d *Debouncer) Trigger() {
	if d.timer != nil {
		d.timer.Stop()
	}

	var self Timer
	self = d.clock.AfterFunc(d.delay, func() {
		// A rescheduled timer may still fire if Stop lost the race
		if d.timer != self {
			return
		}
		d.timer = nil
		d.fn()
	})
	d.timer = self
}

// Cancel drops the pending call, if any
func (d *Debouncer) Cancel() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a call is scheduled
func (d *Debouncer) Pending() bool {
	return d.timer != nil
}

type timerScheduler struct {
	clock    Clock
	interval time.Duration
}

// TimerScheduler approximates display frames with a fixed-interval timer on clock.
// It is the fallback when no vsync-driven scheduler is available.
func TimerScheduler(clock Clock, interval time.Duration) FrameScheduler {
	return timerScheduler{clock: clock, interval: interval}
}

func (s timerScheduler) RequestFrame(fn func(now time.Time)) (cancel func()) {
	t := s.clock.AfterFunc(s.interval, func() {
		fn(s.clock.Now())
	})
	return func() { t.Stop() }
}
