package timeline

import (
	"time"
)

// AnimationType tells what an animation is moving
type AnimationType string

const (
	AnimationScroll AnimationType = "scroll"
	AnimationScale  AnimationType = "scale"
	AnimationSnap   AnimationType = "snap"
)

// AnimationState is the in-flight tween. It is zero while idle.
type AnimationState struct {
	IsAnimating bool
	Type        AnimationType
	StartTime   time.Time
	FromOffset  float64
	ToOffset    float64
	FromScale   float64
	ToScale     float64
	Duration    time.Duration
	Easing      Easing
}

// Frame is one interpolated step of an animation
type Frame struct {
	Type   AnimationType
	Offset float64
	Scale  float64
	Done   bool // last frame; Offset and Scale are the exact targets
}

// AnimationRequest describes a tween to start
type AnimationRequest struct {
	Type       AnimationType
	FromOffset float64
	ToOffset   float64
	FromScale  float64
	ToScale    float64
	Duration   time.Duration
	Easing     Easing
}

// Animator runs one tween at a time, one step per display frame
type Animator struct {
	clock     Clock
	scheduler FrameScheduler
	onFrame   func(Frame)

	state  AnimationState
	cancel func()
}

// NewAnimator creates an idle animator that reports every frame to onFrame
func NewAnimator(clock Clock, scheduler FrameScheduler, onFrame func(Frame)) *Animator {
	return &Animator{clock: clock, scheduler: scheduler, onFrame: onFrame}
}

// State returns a copy of the current animation state
func (a *Animator) State() AnimationState {
	return a.state
}

// Animating reports whether a tween is in flight
func (a *Animator) Animating() bool {
	return a.state.IsAnimating
}

// Start begins a tween. It returns false, leaving the running one untouched,
// when another animation is already in flight.
func (a *Animator) Start(req AnimationRequest) bool {
	if a.state.IsAnimating {
		return false
	}

	a.state = AnimationState{
		IsAnimating: true,
		Type:        req.Type,
		StartTime:   a.clock.Now(),
		FromOffset:  req.FromOffset,
		ToOffset:    req.ToOffset,
		FromScale:   req.FromScale,
		ToScale:     req.ToScale,
		Duration:    req.Duration,
		Easing:      req.Easing,
	}
	a.schedule()
	return true
}

// Cancel stops the tween where it is without emitting a final frame
func (a *Animator) Cancel() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.state = AnimationState{}
}

// Tick advances the tween to now and emits the frame
func (a *Animator) Tick(now time.Time) {
	a.cancel = nil
	if !a.state.IsAnimating {
		return
	}

	s := a.state
	progress := 1.0
	if s.Duration > 0 {
		progress = float64(now.Sub(s.StartTime)) / float64(s.Duration)
	}
	if progress < 0 {
		progress = 0
	}

	if progress >= 1 {
		a.state = AnimationState{}
		a.emit(Frame{Type: s.Type, Offset: s.ToOffset, Scale: s.ToScale, Done: true})
		return
	}

	eased := s.Easing.Apply(progress)
	a.emit(Frame{
		Type:   s.Type,
		Offset: lerp(s.FromOffset, s.ToOffset, eased),
		Scale:  lerp(s.FromScale, s.ToScale, eased),
	})
	if a.state.IsAnimating {
		a.schedule()
	}
}

func (a *Animator) schedule() {
	a.cancel = a.scheduler.RequestFrame(a.Tick)
}

func (a *Animator) emit(f Frame) {
	if a.onFrame != nil {
		a.onFrame(f)
	}
}
