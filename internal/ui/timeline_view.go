package ui

import (
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gantt-planner/internal/timeline"
)

// TimelineView hosts a timeline engine: a month strip above a day strip.
// Wheel and drag scroll the engine, ctrl+wheel animates the scale and a tap
// on the day strip resolves to a date.
type TimelineView struct {
	widget.BaseWidget

	engine   *timeline.Engine
	months   *canvas.Raster
	days     *canvas.Raster
	gestures *GestureHandler

	monthHeight float32
	dayHeight   float32

	// paging replaces drag scrolling with one page per swipe
	paging bool
}

// NewTimelineView creates the view and its engine. Clock and Scheduler default
// to the Fyne UI goroutine and animation runner.
func NewTimelineView(opts timeline.Options) *TimelineView {
	tv := &TimelineView{
		monthHeight: MonthStripHeight,
		dayHeight:   DayStripHeight,
	}
	if opts.Clock == nil {
		opts.Clock = NewFyneClock()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = NewAnimationScheduler()
	}
	onRender := opts.OnRender
	opts.OnRender = func() {
		tv.refreshStrips()
		if onRender != nil {
			onRender()
		}
	}

	tv.months = canvas.NewRaster(tv.drawMonths)
	tv.days = canvas.NewRaster(tv.drawDays)
	tv.gestures = NewGestureHandler(tv.onGesture)
	tv.engine = timeline.NewEngine(opts)

	tv.ExtendBaseWidget(tv)
	return tv
}

// Engine returns the engine behind the view
func (tv *TimelineView) Engine() *timeline.Engine {
	return tv.engine
}

// SetStripHeights changes the height of both strips
func (tv *TimelineView) SetStripHeights(month, day float32) {
	tv.monthHeight = month
	tv.dayHeight = day
	tv.Refresh()
}

// SetPaging switches drag scrolling to swipe paging, for touch devices
func (tv *TimelineView) SetPaging(paging bool) {
	tv.paging = paging
}

// ScrollToToday animates today into the middle of the view
func (tv *TimelineView) ScrollToToday() bool {
	return tv.engine.ScrollToDate(time.Now(), true)
}

// ScaleBy animates the scale by factor
func (tv *TimelineView) ScaleBy(factor float64) bool {
	return tv.engine.AnimateScale(tv.engine.Viewport().Scale * factor)
}

// Resize keeps the engine's container width in step with the widget
func (tv *TimelineView) Resize(size fyne.Size) {
	tv.BaseWidget.Resize(size)
	tv.engine.SetContainerWidth(float64(size.Width))
}

// Scrolled implements fyne.Scrollable
func (tv *TimelineView) Scrolled(ev *fyne.ScrollEvent) {
	if zoomModifierPressed() {
		switch {
		case ev.Scrolled.DY > 0:
			tv.ScaleBy(ScaleStepFactor)
		case ev.Scrolled.DY < 0:
			tv.ScaleBy(1 / ScaleStepFactor)
		}
		return
	}
	tv.engine.ScrollBy(-float64(wheelDelta(ev)))
}

// Dragged implements fyne.Draggable
func (tv *TimelineView) Dragged(ev *fyne.DragEvent) {
	if tv.paging {
		return
	}
	tv.engine.ScrollBy(-float64(ev.Dragged.DX))
}

// DragEnd implements fyne.Draggable. Snapping is already scheduled by the scroll.
func (tv *TimelineView) DragEnd() {}

// Tapped implements fyne.Tappable
func (tv *TimelineView) Tapped(ev *fyne.PointEvent) {
	if ev.Position.Y < tv.monthHeight {
		return
	}
	tv.engine.ClickDay(float64(ev.Position.X))
}

// TouchDown implements mobile.Touchable
func (tv *TimelineView) TouchDown(ev *mobile.TouchEvent) {
	tv.gestures.TouchDown(ev)
}

// TouchUp implements mobile.Touchable
func (tv *TimelineView) TouchUp(ev *mobile.TouchEvent) {
	tv.gestures.TouchUp(ev)
}

// TouchCancel implements mobile.Touchable
func (tv *TimelineView) TouchCancel(ev *mobile.TouchEvent) {
	tv.gestures.TouchCancel(ev)
}

func (tv *TimelineView) onGesture(g GestureType) {
	if !tv.paging {
		return
	}
	vp := tv.engine.Viewport()
	if delta := PageDelta(g, vp.ContainerWidth); delta != 0 {
		tv.engine.AnimateScrollTo(vp.ScrollOffset + delta)
	}
}

func (tv *TimelineView) refreshStrips() {
	tv.months.Refresh()
	tv.days.Refresh()
}

func (tv *TimelineView) drawMonths(w, h int) image.Image {
	ps := pixelScale(w, tv.months.Size().Width)
	if ps == 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	return tv.engine.RenderMonths(w, h, ps)
}

func (tv *TimelineView) drawDays(w, h int) image.Image {
	ps := pixelScale(w, tv.days.Size().Width)
	if ps == 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	return tv.engine.RenderDays(w, h, ps)
}

// CreateRenderer implements fyne.Widget
func (tv *TimelineView) CreateRenderer() fyne.WidgetRenderer {
	return &timelineViewRenderer{view: tv}
}

type timelineViewRenderer struct {
	view *TimelineView
}

func (r *timelineViewRenderer) Layout(size fyne.Size) {
	v := r.view
	v.months.Move(fyne.NewPos(0, 0))
	v.months.Resize(fyne.NewSize(size.Width, v.monthHeight))
	v.days.Move(fyne.NewPos(0, v.monthHeight))
	v.days.Resize(fyne.NewSize(size.Width, size.Height-v.monthHeight))
}

func (r *timelineViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(TimelineMinWidth, r.view.monthHeight+r.view.dayHeight)
}

func (r *timelineViewRenderer) Refresh() {
	r.Layout(r.view.Size())
	r.view.refreshStrips()
}

func (r *timelineViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.months, r.view.days}
}

// Destroy stops the engine's timers and pending frame
func (r *timelineViewRenderer) Destroy() {
	r.view.engine.Destroy()
}

var (
	_ fyne.Scrollable  = (*TimelineView)(nil)
	_ fyne.Draggable   = (*TimelineView)(nil)
	_ fyne.Tappable    = (*TimelineView)(nil)
	_ mobile.Touchable = (*TimelineView)(nil)
)
