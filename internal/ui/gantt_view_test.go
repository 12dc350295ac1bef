package ui

import (
	"math"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/gantt-planner/internal/gantt"
	"github.com/ytget/gantt-planner/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// chartTasks is a group with two children and a root task
func chartTasks() []*model.Task {
	return []*model.Task{
		{ID: "design", Title: "Design", IsGroup: true, Children: []model.TaskID{"sketch", "review"}},
		{ID: "sketch", Title: "Sketch", ParentID: "design", StartDate: day(2024, 1, 5), EndDate: day(2024, 1, 10)},
		{ID: "review", Title: "Review", ParentID: "design", StartDate: day(2024, 1, 8), EndDate: day(2024, 1, 20)},
		{ID: "ship", Title: "Ship", StartDate: day(2024, 2, 1), EndDate: day(2024, 2, 1)},
	}
}

func newTestGanttView(t *testing.T, opts gantt.Options) *GanttView {
	t.Helper()
	test.NewApp()

	opts.Start = day(2024, 1, 1)
	opts.End = day(2024, 12, 31)
	opts.BaseDayWidth = 30
	opts.RowHeight = 32
	gv := NewGanttView(opts)
	gv.Controller().SetTasks(chartTasks())
	gv.Resize(fyne.NewSize(900, 64))
	return gv
}

func TestGanttViewWheelScrolls(t *testing.T) {
	gv := newTestGanttView(t, gantt.Options{})

	gv.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: -40}})
	if x, y := gv.Controller().Scroll(); x != 0 || y != 40 {
		t.Errorf("Expected scroll (0, 40), got (%v, %v)", x, y)
	}

	gv.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: -100, DY: 100}})
	if x, y := gv.Controller().Scroll(); x != 100 || y != 0 {
		t.Errorf("Expected scroll (100, 0) after drag, got (%v, %v)", x, y)
	}
}

func TestGanttViewTap(t *testing.T) {
	var clicked []model.TaskID
	gv := newTestGanttView(t, gantt.Options{
		OnTaskClick: func(task *model.Task) { clicked = append(clicked, task.ID) },
	})

	gv.Tapped(&fyne.PointEvent{Position: fyne.NewPos(130, 45)})
	gv.Tapped(&fyne.PointEvent{Position: fyne.NewPos(10, 45)})

	if len(clicked) != 1 || clicked[0] != "sketch" {
		t.Errorf("Expected one click on sketch, got %v", clicked)
	}
}

func TestGanttViewDoubleTapCollapses(t *testing.T) {
	gv := newTestGanttView(t, gantt.Options{})

	gv.DoubleTapped(&fyne.PointEvent{Position: fyne.NewPos(130, 16)})
	if n := len(gv.Controller().Chart().Rows); n != 2 {
		t.Fatalf("Expected the group collapsed to 2 rows, got %d", n)
	}

	// not a group
	gv.DoubleTapped(&fyne.PointEvent{Position: fyne.NewPos(31*30+5, 48)})
	if n := len(gv.Controller().Chart().Rows); n != 2 {
		t.Errorf("Expected rows unchanged, got %d", n)
	}

	gv.DoubleTapped(&fyne.PointEvent{Position: fyne.NewPos(130, 16)})
	if n := len(gv.Controller().Chart().Rows); n != 4 {
		t.Errorf("Expected the group expanded to 4 rows, got %d", n)
	}
}

func TestGanttViewZoom(t *testing.T) {
	var levels []float64
	gv := newTestGanttView(t, gantt.Options{
		OnZoomChange: func(level float64) { levels = append(levels, level) },
	})

	if !gv.Zoom(gantt.ZoomIn) {
		t.Fatal("Expected zoom in to change the level")
	}
	if math.Abs(gv.Controller().ZoomLevel()-1.1) > 1e-9 {
		t.Errorf("Expected zoom 1.1, got %v", gv.Controller().ZoomLevel())
	}
	if !gv.Zoom(gantt.ZoomReset) {
		t.Fatal("Expected reset to change the level")
	}
	if gv.Zoom(gantt.ZoomReset) {
		t.Error("Expected a second reset to be a no-op")
	}
	if len(levels) != 2 {
		t.Errorf("Expected 2 zoom changes, got %v", levels)
	}
}

func TestGanttViewDraw(t *testing.T) {
	gv := newTestGanttView(t, gantt.Options{})

	img := gv.draw(1800, 128)
	if b := img.Bounds(); b.Dx() != 1800 || b.Dy() != 128 {
		t.Errorf("Expected 1800x128, got %v", b)
	}
}
