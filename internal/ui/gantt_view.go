package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gantt-planner/internal/gantt"
)

// GanttView hosts a gantt controller on a single raster.
// Only the rows inside the view are drawn on each refresh.
type GanttView struct {
	widget.BaseWidget

	controller *gantt.Controller
	raster     *canvas.Raster
}

// NewGanttView creates the view and its controller
func NewGanttView(opts gantt.Options) *GanttView {
	gv := &GanttView{controller: gantt.NewController(opts)}
	gv.raster = canvas.NewRaster(gv.draw)
	gv.ExtendBaseWidget(gv)
	return gv
}

// Controller returns the chart state behind the view
func (gv *GanttView) Controller() *gantt.Controller {
	return gv.controller
}

// Zoom runs a zoom action anchored at the middle of the view
func (gv *GanttView) Zoom(action gantt.ZoomAction) bool {
	if !gv.controller.ApplyZoom(action, float64(gv.Size().Width)/2) {
		return false
	}
	gv.raster.Refresh()
	return true
}

// RegisterShortcuts adds ctrl+= / ctrl+- / ctrl+0 zoom to the window canvas.
// The canvas consumes them so the host never sees the browser-style defaults.
func (gv *GanttView) RegisterShortcuts(c fyne.Canvas) {
	bind := func(key fyne.KeyName, action gantt.ZoomAction) {
		c.AddShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
			gv.Zoom(action)
		})
	}
	bind(fyne.KeyEqual, gantt.ZoomIn)
	bind(fyne.KeyMinus, gantt.ZoomOut)
	bind(fyne.Key0, gantt.ZoomReset)
}

// Resize keeps the controller's viewport in step with the widget
func (gv *GanttView) Resize(size fyne.Size) {
	gv.BaseWidget.Resize(size)
	gv.controller.SetViewport(float64(size.Width), float64(size.Height))
}

// Scrolled implements fyne.Scrollable. Ctrl+wheel zooms at the cursor.
func (gv *GanttView) Scrolled(ev *fyne.ScrollEvent) {
	gv.controller.Wheel(float64(ev.Scrolled.DX), float64(ev.Scrolled.DY), float64(ev.Position.X), zoomModifierPressed())
	gv.raster.Refresh()
}

// Dragged implements fyne.Draggable
func (gv *GanttView) Dragged(ev *fyne.DragEvent) {
	gv.controller.ScrollBy(-float64(ev.Dragged.DX), -float64(ev.Dragged.DY))
	gv.raster.Refresh()
}

// DragEnd implements fyne.Draggable
func (gv *GanttView) DragEnd() {}

// Tapped implements fyne.Tappable
func (gv *GanttView) Tapped(ev *fyne.PointEvent) {
	gv.controller.Click(float64(ev.Position.X), float64(ev.Position.Y))
}

// DoubleTapped collapses or expands a group bar
func (gv *GanttView) DoubleTapped(ev *fyne.PointEvent) {
	x, y := gv.controller.Scroll()
	task := gv.controller.Chart().HitTest(float64(ev.Position.X)+x, float64(ev.Position.Y)+y)
	if task == nil || !task.IsGroup {
		return
	}
	gv.controller.ToggleCollapse(task.ID)
	gv.raster.Refresh()
}

func (gv *GanttView) draw(w, h int) image.Image {
	ps := pixelScale(w, gv.raster.Size().Width)
	if ps == 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	return gv.controller.Render(w, h, ps)
}

// CreateRenderer implements fyne.Widget
func (gv *GanttView) CreateRenderer() fyne.WidgetRenderer {
	return &ganttViewRenderer{view: gv}
}

type ganttViewRenderer struct {
	view *GanttView
}

func (r *ganttViewRenderer) Layout(size fyne.Size) {
	r.view.raster.Move(fyne.NewPos(0, 0))
	r.view.raster.Resize(size)
}

func (r *ganttViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(ChartMinWidth, ChartMinHeight)
}

func (r *ganttViewRenderer) Refresh() {
	r.Layout(r.view.Size())
	r.view.raster.Refresh()
}

func (r *ganttViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.raster}
}

func (r *ganttViewRenderer) Destroy() {}

var (
	_ fyne.Scrollable     = (*GanttView)(nil)
	_ fyne.Draggable      = (*GanttView)(nil)
	_ fyne.Tappable       = (*GanttView)(nil)
	_ fyne.DoubleTappable = (*GanttView)(nil)
)
