package ui

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/gantt-planner/internal/timeline"
)

// frameDuration is short enough that an animation finishes on its first tick
const frameDuration = time.Millisecond

type fyneClock struct{}

// NewFyneClock returns a clock whose timer callbacks run on the Fyne UI goroutine
func NewFyneClock() timeline.Clock {
	return fyneClock{}
}

func (fyneClock) Now() time.Time {
	return time.Now()
}

func (fyneClock) AfterFunc(d time.Duration, f func()) timeline.Timer {
	return time.AfterFunc(d, func() {
		fyne.Do(f)
	})
}

// AnimationScheduler delivers frame callbacks from the Fyne animation runner,
// so they are aligned with the driver's redraws.
type AnimationScheduler struct{}

// NewAnimationScheduler creates a scheduler backed by fyne.Animation
func NewAnimationScheduler() *AnimationScheduler {
	return &AnimationScheduler{}
}

// RequestFrame runs fn on the next animation tick
func (s *AnimationScheduler) RequestFrame(fn func(now time.Time)) (cancel func()) {
	cancelled := false
	fired := false
	anim := fyne.NewAnimation(frameDuration, func(float32) {
		if cancelled || fired {
			return
		}
		fired = true
		fn(time.Now())
	})
	anim.Curve = fyne.AnimationLinear
	anim.Start()

	return func() {
		cancelled = true
		anim.Stop()
	}
}

var _ timeline.FrameScheduler = (*AnimationScheduler)(nil)
