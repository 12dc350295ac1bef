// Package timelinetest provides a manual clock and frame scheduler so timeline
// behaviour can be stepped deterministically in tests.
package timelinetest

import (
	"sort"
	"time"

	"github.com/ytget/gantt-planner/internal/timeline"
)

// Epoch is the default start time of a ManualClock
var Epoch = time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)

// ManualClock is a timeline.Clock whose time only moves on Advance
type ManualClock struct {
	now    time.Time
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Time
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewManualClock creates a clock set to start, or Epoch when start is zero
func NewManualClock(start time.Time) *ManualClock {
	if start.IsZero() {
		start = Epoch
	}
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	return c.now
}

func (c *ManualClock) AfterFunc(d time.Duration, f func()) timeline.Timer {
	c.seq++
	t := &manualTimer{at: c.now.Add(d), seq: c.seq, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward by d, firing due timers in deadline order.
// Timers scheduled by callbacks fire too if they fall due within d.
func (c *ManualClock) Advance(d time.Duration) {
	target := c.now.Add(d)
	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		if next.at.After(c.now) {
			c.now = next.at
		}
		next.fired = true
		next.fn()
	}
	c.now = target
}

// Pending returns the number of timers that have neither fired nor been stopped
func (c *ManualClock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (c *ManualClock) nextDue(limit time.Time) *manualTimer {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	c.timers = live
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].at.Equal(c.timers[j].at) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].at.Before(c.timers[j].at)
	})
	if len(c.timers) == 0 || c.timers[0].at.After(limit) {
		return nil
	}
	return c.timers[0]
}

// ManualScheduler is a timeline.FrameScheduler that runs frames on demand
type ManualScheduler struct {
	pending []*frameRequest
}

type frameRequest struct {
	fn        func(time.Time)
	cancelled bool
}

func (s *ManualScheduler) RequestFrame(fn func(now time.Time)) (cancel func()) {
	req := &frameRequest{fn: fn}
	s.pending = append(s.pending, req)
	return func() { req.cancelled = true }
}

// Pending returns the number of frame callbacks waiting to run
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, r := range s.pending {
		if !r.cancelled {
			n++
		}
	}
	return n
}

// Frame runs every callback requested before this call with the given time.
// Callbacks requested while running wait for the next Frame.
func (s *ManualScheduler) Frame(now time.Time) int {
	batch := s.pending
	s.pending = nil
	ran := 0
	for _, r := range batch {
		if r.cancelled {
			continue
		}
		r.fn(now)
		ran++
	}
	return ran
}

// Run advances clock by step and runs a frame until nothing is pending or
// maxFrames is reached. It returns the number of frames run.
func (s *ManualScheduler) Run(clock *ManualClock, step time.Duration, maxFrames int) int {
	frames := 0
	for frames < maxFrames && s.Pending() > 0 {
		clock.Advance(step)
		s.Frame(clock.Now())
		frames++
	}
	return frames
}
