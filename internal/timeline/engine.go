package timeline

import (
	"image"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ytget/gantt-planner/internal/model"
)

// Options configures an Engine
type Options struct {
	CenterDate     time.Time
	Today          time.Time
	Scale          float64
	ContainerWidth float64

	Holidays []model.Holiday
	Events   []model.Event

	// Clock and Scheduler default to the system clock and a 16ms timer
	Clock     Clock
	Scheduler FrameScheduler

	Labeler MonthLabeler
	Palette *Palette
	Tuning  *Tuning
	Logger  *log.Logger

	OnDateClick   func(date time.Time)
	OnScaleChange func(scale float64)
	OnRender      func() // state changed, redraw the strips
}

// Engine owns the viewport of one timeline header.
// All methods must be called from the same goroutine as the Clock and
// FrameScheduler callbacks.
type Engine struct {
	tuning  Tuning
	palette Palette
	labeler MonthLabeler
	logger  *log.Logger
	clock   Clock

	vp          ViewportState
	today       time.Time
	annotations *Annotations

	buffer   *RangeBuffer
	animator *Animator
	snap     *Debouncer
	surface  *Surface

	live   LiveView
	months []MonthCell
	days   []DayCell

	onDateClick   func(time.Time)
	onScaleChange func(float64)
	onRender      func()

	destroyed bool
}

// NewEngine creates an engine centred on opts.CenterDate
func NewEngine(opts Options) *Engine {
	tuning := DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	palette := DefaultPalette()
	if opts.Palette != nil {
		palette = *opts.Palette
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock()
	}
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = TimerScheduler(clock, 16*time.Millisecond)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	center := opts.CenterDate
	if center.IsZero() {
		center = clock.Now()
	}
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}

	e := &Engine{
		tuning:        tuning,
		palette:       palette,
		labeler:       opts.Labeler,
		logger:        logger,
		clock:         clock,
		today:         DateOf(opts.Today),
		annotations:   NewAnnotations(opts.Holidays, opts.Events),
		surface:       NewSurface(palette, tuning),
		onDateClick:   opts.OnDateClick,
		onScaleChange: opts.OnScaleChange,
		onRender:      opts.OnRender,
	}
	if opts.Today.IsZero() {
		e.today = DateOf(clock.Now())
	}
	e.vp = ViewportState{
		CenterDate: tuning.ClampDate(center),
		Scale:      tuning.ClampScale(scale),
	}
	e.buffer = NewRangeBuffer(e.vp.CenterDate, tuning, clock)
	e.animator = NewAnimator(clock, scheduler, e.applyFrame)
	e.snap = NewDebouncer(clock, tuning.SnapDebounce, e.snapToMonth)

	e.regenerate()
	e.SetContainerWidth(opts.ContainerWidth)
	e.syncLive()
	return e
}

// Viewport returns the committed viewport state
func (e *Engine) Viewport() ViewportState {
	return e.vp
}

// Live returns the geometry currently drawn, which differs from Viewport mid-animation
func (e *Engine) Live() LiveView {
	return e.live
}

// Buffer returns the materialised date window
func (e *Engine) Buffer() (start, end time.Time) {
	return e.buffer.Start, e.buffer.End
}

// MonthCells returns the generated month cells
func (e *Engine) MonthCells() []MonthCell {
	return e.months
}

// DayCells returns the generated day cells
func (e *Engine) DayCells() []DayCell {
	return e.days
}

// Animating reports whether a scroll, scale or snap animation is running
func (e *Engine) Animating() bool {
	return e.animator.Animating()
}

// AnimationState returns the in-flight animation
func (e *Engine) AnimationState() AnimationState {
	return e.animator.State()
}

// DayWidth returns the committed width of one day
func (e *Engine) DayWidth() float64 {
	return e.tuning.DayWidth(e.vp.Scale)
}

// SetContainerWidth updates the visible width. The first positive width
// centres the view on the center date.
func (e *Engine) SetContainerWidth(width float64) {
	if e.destroyed || width == e.vp.ContainerWidth {
		return
	}
	if width <= 0 {
		e.vp.ContainerWidth = 0
		return
	}

	first := e.vp.ContainerWidth <= 0
	e.vp.ContainerWidth = width
	if first {
		e.vp.ScrollOffset = e.DayWidth()/2 - width/2
	}
	e.afterScroll()
	e.syncLive()
	e.render()
}

// SetScrollOffset applies a user scroll. A running animation is interrupted
// and snapping is rescheduled.
func (e *Engine) SetScrollOffset(offset float64) {
	if e.destroyed || math.IsNaN(offset) {
		return
	}
	e.interrupt()
	e.vp.ScrollOffset = offset
	e.afterScroll()
	e.syncLive()
	if e.tuning.SnapEnabled {
		e.snap.Trigger()
	}
	e.render()
}

// ScrollBy applies a relative user scroll
func (e *Engine) ScrollBy(dx float64) {
	e.SetScrollOffset(e.live.Offset + dx)
}

// AnimateScrollTo animates the offset. It returns false if another animation is running.
func (e *Engine) AnimateScrollTo(offset float64) bool {
	if e.destroyed {
		return false
	}
	ok := e.animator.Start(AnimationRequest{
		Type:       AnimationScroll,
		FromOffset: e.vp.ScrollOffset,
		ToOffset:   offset,
		FromScale:  e.vp.Scale,
		ToScale:    e.vp.Scale,
		Duration:   e.tuning.TransitionDuration,
		Easing:     EaseOutCubic,
	})
	if !ok {
		e.logger.Debug("scroll animation rejected", "target", offset)
	}
	return ok
}

// ScrollToDate brings date to the middle of the view, growing the buffer if needed
func (e *Engine) ScrollToDate(date time.Time, animate bool) bool {
	if e.destroyed {
		return false
	}
	date = e.tuning.ClampDate(date)
	if !e.buffer.Contains(date) {
		e.buffer.Recenter(date)
		e.regenerate()
	}
	dw := e.DayWidth()
	target := PixelFromDate(date, e.vp.CenterDate, dw) + dw/2 - e.vp.ContainerWidth/2
	if animate {
		return e.AnimateScrollTo(target)
	}
	e.interrupt()
	e.vp.ScrollOffset = target
	e.afterScroll()
	e.syncLive()
	e.render()
	return true
}

// AnimateScale animates to a new scale keeping the date at the middle of the view fixed.
// It returns false if the scale does not change or another animation is running.
func (e *Engine) AnimateScale(scale float64) bool {
	if e.destroyed {
		return false
	}
	from, to := e.vp.Scale, e.tuning.ClampScale(scale)
	if to == from {
		return false
	}
	ok := e.animator.Start(AnimationRequest{
		Type:       AnimationScale,
		FromOffset: e.vp.ScrollOffset,
		ToOffset:   e.anchoredOffset(to),
		FromScale:  from,
		ToScale:    to,
		Duration:   e.tuning.TransitionDuration,
		Easing:     EaseOutCubic,
	})
	if !ok {
		e.logger.Debug("scale animation rejected", "from", from, "to", to)
	}
	return ok
}

// SetScale changes the scale immediately, keeping the middle of the view fixed
func (e *Engine) SetScale(scale float64) {
	if e.destroyed {
		return
	}
	to := e.tuning.ClampScale(scale)
	if to == e.vp.Scale {
		return
	}
	e.interrupt()
	e.vp.ScrollOffset = e.anchoredOffset(to)
	e.commitScale(to)
	e.afterScroll()
	e.syncLive()
	e.render()
}

// SetToday moves the today highlight
func (e *Engine) SetToday(today time.Time) {
	e.today = DateOf(today)
	e.regenerate()
	e.render()
}

// SetAnnotations replaces the holidays and events used for day colors
func (e *Engine) SetAnnotations(holidays []model.Holiday, events []model.Event) {
	e.annotations = NewAnnotations(holidays, events)
	e.regenerate()
	e.render()
}

// SetLabeler changes how month headers are labelled, e.g. after a language switch
func (e *Engine) SetLabeler(l MonthLabeler) {
	e.labeler = l
	e.regenerate()
	e.render()
}

// ClickDay resolves a click at x (local to the day strip) and fires OnDateClick.
// It reports false when no generated day is under x.
func (e *Engine) ClickDay(localX float64) (time.Time, bool) {
	if e.destroyed || e.live.DayWidth <= 0 {
		return time.Time{}, false
	}
	index := int(math.Floor((localX+e.live.Offset)/e.live.DayWidth + pixelEpsilon))
	pos := index + DaysBetween(e.vp.CenterDate, e.buffer.Start)
	if pos < 0 || pos >= len(e.days) || e.days[pos].DayIndex != index {
		return time.Time{}, false
	}
	date := e.days[pos].Date
	if e.onDateClick != nil {
		e.onDateClick(date)
	}
	return date, true
}

// RenderMonths draws the month strip at the live geometry.
// Nothing is drawn while the container has no width.
func (e *Engine) RenderMonths(w, h int, pixelScale float64) image.Image {
	if e.vp.ContainerWidth <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	img, _ := e.surface.DrawMonths(e.months, e.live, w, h, pixelScale)
	return img
}

// RenderDays draws the day strip at the live geometry
func (e *Engine) RenderDays(w, h int, pixelScale float64) image.Image {
	if e.vp.ContainerWidth <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	img, _ := e.surface.DrawDays(e.days, e.live, w, h, pixelScale)
	return img
}

// Destroy cancels the pending frame and every timer. The engine is inert afterwards.
func (e *Engine) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	e.animator.Cancel()
	e.snap.Cancel()
	e.buffer.Stop()
}

func (e *Engine) applyFrame(f Frame) {
	if e.destroyed {
		return
	}
	e.live = LiveView{
		Offset:   f.Offset,
		Scale:    f.Scale,
		DayWidth: e.tuning.DayWidth(f.Scale),
	}
	if f.Done {
		e.vp.ScrollOffset = f.Offset
		e.commitScale(f.Scale)
		e.afterScroll()
		e.syncLive()
		e.logger.Debug("animation settled", "type", f.Type, "offset", f.Offset, "scale", e.vp.Scale)
	}
	e.render()
}

func (e *Engine) snapToMonth() {
	if e.destroyed || !e.tuning.SnapEnabled || e.animator.Animating() {
		return
	}
	target, ok := NearestSnapOffset(e.months, e.vp.ScrollOffset, e.vp.ContainerWidth)
	if !ok || !ShouldSnap(e.vp.ScrollOffset, target, e.tuning.SnapThreshold) {
		return
	}
	e.logger.Debug("snapping to month", "from", e.vp.ScrollOffset, "to", target)
	e.animator.Start(AnimationRequest{
		Type:       AnimationSnap,
		FromOffset: e.vp.ScrollOffset,
		ToOffset:   target,
		FromScale:  e.vp.Scale,
		ToScale:    e.vp.Scale,
		Duration:   e.tuning.SnapDuration(),
		Easing:     Bounce,
	})
}

// interrupt stops a running animation and keeps whatever is currently drawn
func (e *Engine) interrupt() {
	if !e.animator.Animating() {
		return
	}
	e.animator.Cancel()
	e.vp.ScrollOffset = e.live.Offset
	e.commitScale(e.live.Scale)
}

func (e *Engine) commitScale(scale float64) {
	scale = e.tuning.ClampScale(scale)
	if scale == e.vp.Scale {
		return
	}
	e.vp.Scale = scale
	e.regenerate()
	if e.onScaleChange != nil {
		e.onScaleChange(scale)
	}
}

// anchoredOffset is the offset at scale that keeps the current middle of the view in place
func (e *Engine) anchoredOffset(scale float64) float64 {
	half := e.vp.ContainerWidth / 2
	days := (e.vp.ScrollOffset + half) / e.DayWidth()
	return days*e.tuning.DayWidth(scale) - half
}

func (e *Engine) afterScroll() {
	if e.buffer.CheckAndExpand(e.vp, e.DayWidth()) {
		e.logger.Debug("buffer expanded",
			"start", e.buffer.Start.Format(model.DateKeyLayout),
			"end", e.buffer.End.Format(model.DateKeyLayout))
		e.regenerate()
		return
	}
	ApplyMonthOpacity(e.months, e.vp.ScrollOffset, e.vp.ContainerWidth)
}

func (e *Engine) regenerate() {
	ctx := CellContext{
		Center:          e.vp.CenterDate,
		Today:           e.today,
		DayWidth:        e.DayWidth(),
		Annotations:     e.annotations,
		Palette:         e.palette,
		Labeler:         e.labeler,
		MinDayTextWidth: e.tuning.MinDayTextWidth,
	}
	e.months = GenerateMonthCells(e.buffer.Start, e.buffer.End, ctx)
	ApplyMonthOpacity(e.months, e.vp.ScrollOffset, e.vp.ContainerWidth)
	e.days = GenerateDayCells(e.buffer.Start, e.buffer.End, ctx)
}

func (e *Engine) syncLive() {
	e.live = LiveView{
		Offset:   e.vp.ScrollOffset,
		Scale:    e.vp.Scale,
		DayWidth: e.DayWidth(),
	}
}

func (e *Engine) render() {
	if e.onRender != nil {
		e.onRender()
	}
}
