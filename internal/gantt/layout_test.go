package gantt

import (
	"fmt"
	"testing"
	"time"

	"github.com/ytget/gantt-planner/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sampleTasks is a group A with children B and C, plus a root task D
func sampleTasks() []*model.Task {
	return []*model.Task{
		{ID: "A", Title: "Design", IsGroup: true, Children: []model.TaskID{"B", "C"}},
		{ID: "B", Title: "Sketch", ParentID: "A", StartDate: date(2024, 1, 5), EndDate: date(2024, 1, 10)},
		{ID: "C", Title: "Review", ParentID: "A", StartDate: date(2024, 1, 8), EndDate: date(2024, 1, 20)},
		{ID: "D", Title: "Ship", StartDate: date(2024, 2, 1), EndDate: date(2024, 2, 1)},
	}
}

func rowIDs(rows []Row) []model.TaskID {
	ids := make([]model.TaskID, len(rows))
	for i, r := range rows {
		ids[i] = r.Task.ID
	}
	return ids
}

func TestFlatten(t *testing.T) {
	rows := Flatten(sampleTasks(), nil)
	want := []model.TaskID{"A", "B", "C", "D"}
	wantDepth := []int{0, 1, 1, 0}

	if len(rows) != len(want) {
		t.Fatalf("Expected %d rows, got %d", len(want), len(rows))
	}
	for i, r := range rows {
		if r.Task.ID != want[i] {
			t.Errorf("Row %d: expected %s, got %s", i, want[i], r.Task.ID)
		}
		if r.Depth != wantDepth[i] {
			t.Errorf("Row %d: expected depth %d, got %d", i, wantDepth[i], r.Depth)
		}
		if r.Index != i {
			t.Errorf("Row %d: expected index %d, got %d", i, i, r.Index)
		}
	}
}

func TestFlattenCollapsed(t *testing.T) {
	rows := Flatten(sampleTasks(), map[model.TaskID]bool{"A": true})
	got := rowIDs(rows)
	if len(got) != 2 || got[0] != "A" || got[1] != "D" {
		t.Errorf("Expected [A D], got %v", got)
	}
}

func TestFlattenParentIDOnly(t *testing.T) {
	tasks := []*model.Task{
		{ID: "child", ParentID: "root"},
		{ID: "root"},
		{ID: "orphan", ParentID: "missing"},
	}
	got := rowIDs(Flatten(tasks, nil))
	want := []model.TaskID{"root", "child", "orphan"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
			break
		}
	}
}

func TestFlattenCycle(t *testing.T) {
	tasks := []*model.Task{
		{ID: "x", Children: []model.TaskID{"y"}},
		{ID: "y", Children: []model.TaskID{"x"}},
	}
	rows := Flatten(tasks, nil)
	if len(rows) != 2 {
		t.Errorf("Expected both tasks once, got %v", rowIDs(rows))
	}
}

func TestLayoutGroupSpan(t *testing.T) {
	chart := Layout(sampleTasks(), date(2024, 1, 1), date(2024, 12, 31), 30, 32, nil)

	if chart.Days() != 366 {
		t.Errorf("Expected 366 days, got %d", chart.Days())
	}
	if chart.TotalWidth() != 10980 {
		t.Errorf("Expected total width 10980, got %v", chart.TotalWidth())
	}
	if chart.TotalHeight() != 128 {
		t.Errorf("Expected total height 128, got %v", chart.TotalHeight())
	}

	group := chart.Bars[0]
	if !group.IsGroup {
		t.Fatal("Expected the first bar to be a group")
	}
	if !group.Start.Equal(date(2024, 1, 5)) || !group.End.Equal(date(2024, 1, 20)) {
		t.Errorf("Expected group span Jan 5..Jan 20, got %v..%v", group.Start, group.End)
	}
	if group.X != 120 || group.Width != 480 {
		t.Errorf("Expected group x=120 width=480, got x=%v width=%v", group.X, group.Width)
	}

	ship := chart.Bars[3]
	if ship.Width != 30 {
		t.Errorf("Expected single day bar width 30, got %v", ship.Width)
	}
	if ship.X != 31*30 {
		t.Errorf("Expected x=%v, got %v", 31*30, ship.X)
	}
	if ship.Y <= chart.Rows[3].Y || ship.Y+ship.Height >= chart.Rows[3].Y+32 {
		t.Errorf("Expected the bar inside its row, got y=%v h=%v", ship.Y, ship.Height)
	}
}

func TestLayoutUndatedTask(t *testing.T) {
	tasks := []*model.Task{{ID: "todo", Title: "Someday"}}
	chart := Layout(tasks, date(2024, 1, 1), date(2024, 1, 31), 30, 32, nil)
	if len(chart.Rows) != 1 {
		t.Fatalf("Expected one row, got %d", len(chart.Rows))
	}
	if chart.Bars[0].Task != nil {
		t.Error("Expected no bar for an undated task")
	}
}

func TestHitTest(t *testing.T) {
	chart := Layout(sampleTasks(), date(2024, 1, 1), date(2024, 12, 31), 30, 32, nil)

	tests := []struct {
		name string
		x, y float64
		want model.TaskID
	}{
		{"inside B", 130, 45, "B"},
		{"inside C", 300, 80, "C"},
		{"row padding", 130, 33, ""},
		{"left of bar", 100, 45, ""},
		{"below all rows", 130, 500, ""},
		{"negative y", 130, -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chart.HitTest(tt.x, tt.y)
			switch {
			case tt.want == "" && got != nil:
				t.Errorf("Expected no task, got %s", got.ID)
			case tt.want != "" && (got == nil || got.ID != tt.want):
				t.Errorf("Expected %s, got %v", tt.want, got)
			}
		})
	}
}

func TestVisibleRows(t *testing.T) {
	tasks := make([]*model.Task, 100)
	for i := range tasks {
		tasks[i] = &model.Task{ID: model.TaskID(fmt.Sprintf("t%d", i))}
	}
	chart := Layout(tasks, date(2024, 1, 1), date(2024, 1, 31), 30, 32, nil)

	first, last := chart.VisibleRows(0, 320)
	if first != 0 || last != 10 {
		t.Errorf("Expected rows [0,10), got [%d,%d)", first, last)
	}
	first, last = chart.VisibleRows(50, 100)
	if first != 1 || last != 5 {
		t.Errorf("Expected rows [1,5), got [%d,%d)", first, last)
	}
	first, last = chart.VisibleRows(3190, 500)
	if first != 99 || last != 100 {
		t.Errorf("Expected rows [99,100), got [%d,%d)", first, last)
	}
}
