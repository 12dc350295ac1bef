package gantt

import (
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ytget/gantt-planner/internal/model"
	"github.com/ytget/gantt-planner/internal/timeline"
)

// Options configures a Controller
type Options struct {
	Start        time.Time
	End          time.Time
	Today        time.Time
	BaseDayWidth float64 // day width at zoom 1
	RowHeight    float64
	Zoom         ZoomConfig
	Logger       *log.Logger

	OnTaskClick  func(task *model.Task)
	OnZoomChange func(level float64)
}

// Controller holds the chart state behind the Gantt view: tasks, zoom,
// scroll position and the current layout.
type Controller struct {
	opts   Options
	logger *log.Logger
	zoom   *Zoom

	tasks     []*model.Task
	collapsed map[model.TaskID]bool
	chart     Chart
	overlays  Overlays
	renderer  *Renderer

	scrollX float64
	scrollY float64
	viewW   float64
	viewH   float64
}

// NewController creates a controller for the given chart range
func NewController(opts Options) *Controller {
	if opts.BaseDayWidth <= 0 {
		opts.BaseDayWidth = timeline.DefaultTuning().BaseDayWidth
	}
	if opts.RowHeight <= 0 {
		opts.RowHeight = 32
	}
	if opts.Zoom == (ZoomConfig{}) {
		opts.Zoom = DefaultZoomConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{
		opts:      opts,
		logger:    logger,
		zoom:      NewZoom(opts.Zoom),
		collapsed: make(map[model.TaskID]bool),
		renderer:  NewRenderer(),
	}
	c.relayout()
	return c
}

// Chart returns the current layout
func (c *Controller) Chart() Chart {
	return c.chart
}

// Overlays returns the current overlays
func (c *Controller) Overlays() Overlays {
	return c.overlays
}

// Renderer returns the renderer used by Render
func (c *Controller) Renderer() *Renderer {
	return c.renderer
}

// ZoomLevel returns the current zoom factor
func (c *Controller) ZoomLevel() float64 {
	return c.zoom.Level()
}

// Scroll returns the scroll position in content pixels
func (c *Controller) Scroll() (x, y float64) {
	return c.scrollX, c.scrollY
}

// SetTasks replaces the tasks and lays the chart out again
func (c *Controller) SetTasks(tasks []*model.Task) {
	c.tasks = tasks
	c.relayout()
}

// SetRange changes the chart date range
func (c *Controller) SetRange(start, end time.Time) {
	c.opts.Start, c.opts.End = start, end
	c.relayout()
}

// SetToday moves the today overlay
func (c *Controller) SetToday(today time.Time) {
	c.opts.Today = today
	c.relayout()
}

// SetViewport sets the visible size in logical pixels
func (c *Controller) SetViewport(width, height float64) {
	c.viewW, c.viewH = width, height
	c.clampScroll()
}

// ScrollBy moves the view by a logical pixel delta
func (c *Controller) ScrollBy(dx, dy float64) {
	c.scrollX += dx
	c.scrollY += dy
	c.clampScroll()
}

// ScrollToDate brings date to the left third of the view
func (c *Controller) ScrollToDate(date time.Time) {
	c.scrollX = timeline.PixelFromDate(date, c.chart.Start, c.chart.DayWidth) - c.viewW/3
	c.clampScroll()
}

// ApplyZoom runs a zoom action keeping the content under cursorX in place.
// It reports whether the zoom level changed.
func (c *Controller) ApplyZoom(action ZoomAction, cursorX float64) bool {
	before := c.chart.TotalWidth()
	if !c.zoom.Apply(action) {
		return false
	}
	c.afterZoom(before, cursorX)
	c.logger.Debug("chart zoom", "action", action, "level", c.zoom.Level())
	return true
}

// SetZoom sets the zoom level anchored at the middle of the view
func (c *Controller) SetZoom(level float64) bool {
	before := c.chart.TotalWidth()
	if !c.zoom.Set(level) {
		return false
	}
	c.afterZoom(before, c.viewW/2)
	return true
}

// Wheel handles a mouse wheel step. With ctrl held it zooms at cursorX and
// reports true so the host suppresses its own handling; otherwise it scrolls.
func (c *Controller) Wheel(dx, dy, cursorX float64, ctrl bool) bool {
	if ctrl {
		switch {
		case dy > 0:
			c.ApplyZoom(ZoomIn, cursorX)
		case dy < 0:
			c.ApplyZoom(ZoomOut, cursorX)
		}
		return true
	}
	c.ScrollBy(-dx, -dy)
	return false
}

// Click resolves a click at viewport coordinates and fires OnTaskClick
func (c *Controller) Click(x, y float64) *model.Task {
	task := c.chart.HitTest(x+c.scrollX, y+c.scrollY)
	if task != nil && c.opts.OnTaskClick != nil {
		c.opts.OnTaskClick(task)
	}
	return task
}

// ToggleCollapse hides or shows the descendants of a group
func (c *Controller) ToggleCollapse(id model.TaskID) {
	if c.collapsed[id] {
		delete(c.collapsed, id)
	} else {
		c.collapsed[id] = true
	}
	c.relayout()
}

// Render draws the visible part of the chart. w and h are device pixels.
func (c *Controller) Render(w, h int, pixelScale float64) image.Image {
	img, _ := c.renderer.Draw(c.chart, c.overlays, c.scrollX, c.scrollY, w, h, pixelScale)
	return img
}

func (c *Controller) afterZoom(totalBefore, cursorX float64) {
	c.relayout()
	c.scrollX = ZoomToCursor(c.scrollX, cursorX, totalBefore, c.chart.TotalWidth(), c.viewW)
	c.clampScroll()
	if c.opts.OnZoomChange != nil {
		c.opts.OnZoomChange(c.zoom.Level())
	}
}

func (c *Controller) relayout() {
	dw := c.zoom.DayWidth(c.opts.BaseDayWidth)
	c.chart = Layout(c.tasks, c.opts.Start, c.opts.End, dw, c.opts.RowHeight, c.collapsed)
	c.overlays = ComputeOverlays(c.chart.Start, c.chart.End, c.opts.Today, dw)
	c.clampScroll()
}

func (c *Controller) clampScroll() {
	c.scrollX = clampScroll(c.scrollX, c.chart.TotalWidth(), c.viewW)
	c.scrollY = clampScroll(c.scrollY, c.chart.TotalHeight(), c.viewH)
}
