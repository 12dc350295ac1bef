package gantt

import (
	"math"
	"time"

	"github.com/ytget/gantt-planner/internal/model"
	"github.com/ytget/gantt-planner/internal/timeline"
)

// Row is one visible line of the chart
type Row struct {
	Task  *model.Task
	Index int
	Depth int
	Y     float64
}

// Bar is the placed rectangle of a task, in content coordinates
type Bar struct {
	Task    *model.Task
	Row     int
	Start   time.Time
	End     time.Time
	X       float64
	Y       float64
	Width   float64
	Height  float64
	IsGroup bool
}

// Contains reports whether the content point lies on the bar
func (b Bar) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Chart is a laid-out set of rows and bars over a fixed date range
type Chart struct {
	Start     time.Time
	End       time.Time
	DayWidth  float64
	RowHeight float64
	Rows      []Row
	Bars      []Bar
}

// Days returns the inclusive number of days in the chart range
func (c Chart) Days() int {
	if c.End.Before(c.Start) {
		return 0
	}
	return timeline.DaysBetween(c.End, c.Start) + 1
}

// TotalWidth returns the content width in pixels
func (c Chart) TotalWidth() float64 {
	return float64(c.Days()) * c.DayWidth
}

// TotalHeight returns the content height in pixels
func (c Chart) TotalHeight() float64 {
	return float64(len(c.Rows)) * c.RowHeight
}

// VisibleRows returns the index range [first, last) of rows intersecting [top, top+height)
func (c Chart) VisibleRows(top, height float64) (first, last int) {
	if c.RowHeight <= 0 || len(c.Rows) == 0 {
		return 0, 0
	}
	first = int(math.Floor(top / c.RowHeight))
	last = int(math.Ceil((top + height) / c.RowHeight))
	if first < 0 {
		first = 0
	}
	if last > len(c.Rows) {
		last = len(c.Rows)
	}
	if first > last {
		first = last
	}
	return first, last
}

// HitTest returns the task whose bar is under the content point, or nil
func (c Chart) HitTest(x, y float64) *model.Task {
	if c.RowHeight <= 0 || y < 0 {
		return nil
	}
	row := int(y / c.RowHeight)
	if row >= len(c.Bars) {
		return nil
	}
	// bars are indexed by row
	if b := c.Bars[row]; b.Task != nil && b.Contains(x, y) {
		return b.Task
	}
	return nil
}

// Flatten orders tasks depth-first with parents before their children.
// Tasks whose parent is unknown are treated as roots. Descendants of
// collapsed groups are left out.
func Flatten(tasks []*model.Task, collapsed map[model.TaskID]bool) []Row {
	children := childIndex(tasks, indexTasks(tasks))
	parentOf := make(map[model.TaskID]model.TaskID)
	for id, kids := range children {
		for _, k := range kids {
			parentOf[k.ID] = id
		}
	}

	rows := make([]Row, 0, len(tasks))
	visited := make(map[model.TaskID]bool, len(tasks))

	var walk func(t *model.Task, depth int)
	walk = func(t *model.Task, depth int) {
		if visited[t.ID] {
			return
		}
		visited[t.ID] = true
		rows = append(rows, Row{Task: t, Index: len(rows), Depth: depth})
		if collapsed[t.ID] {
			return
		}
		for _, child := range children[t.ID] {
			walk(child, depth+1)
		}
	}

	for _, t := range tasks {
		if _, isChild := parentOf[t.ID]; !isChild {
			walk(t, 0)
		}
	}
	// parent cycles leave tasks unreachable from any root
	for _, t := range tasks {
		if !visited[t.ID] && !hiddenByCollapse(t.ID, parentOf, collapsed) {
			walk(t, 0)
		}
	}
	return rows
}

// Layout places one bar per flattened row. Group bars span their descendants.
func Layout(tasks []*model.Task, start, end time.Time, dayWidth, rowHeight float64, collapsed map[model.TaskID]bool) Chart {
	chart := Chart{
		Start:     timeline.DateOf(start),
		End:       timeline.DateOf(end),
		DayWidth:  dayWidth,
		RowHeight: rowHeight,
	}

	byID := indexTasks(tasks)
	children := childIndex(tasks, byID)
	chart.Rows = Flatten(tasks, collapsed)
	chart.Bars = make([]Bar, len(chart.Rows))

	for i := range chart.Rows {
		row := &chart.Rows[i]
		row.Y = float64(i) * rowHeight

		t := row.Task
		isGroup := t.IsGroup || len(children[t.ID]) > 0
		barStart, barEnd := t.StartDate, t.EndDate
		if isGroup {
			if s, e, ok := GroupSpan(t, children); ok {
				barStart, barEnd = s, e
			}
		}
		if barStart.IsZero() || barEnd.IsZero() {
			chart.Bars[i] = Bar{Row: i}
			continue
		}
		if barEnd.Before(barStart) {
			barEnd = barStart
		}

		pad := rowHeight * 0.2
		height := rowHeight - 2*pad
		if isGroup {
			pad = rowHeight * 0.3
			height = rowHeight - 2*pad
		}
		chart.Bars[i] = Bar{
			Task:    t,
			Row:     i,
			Start:   timeline.DateOf(barStart),
			End:     timeline.DateOf(barEnd),
			X:       timeline.PixelFromDate(barStart, chart.Start, dayWidth),
			Y:       row.Y + pad,
			Width:   float64(timeline.DaysBetween(barEnd, barStart)+1) * dayWidth,
			Height:  height,
			IsGroup: isGroup,
		}
	}
	return chart
}

// GroupSpan returns the union of the date ranges of every dated descendant
func GroupSpan(group *model.Task, children map[model.TaskID][]*model.Task) (start, end time.Time, ok bool) {
	seen := map[model.TaskID]bool{group.ID: true}
	var visit func(id model.TaskID)
	visit = func(id model.TaskID) {
		for _, c := range children[id] {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			if !c.StartDate.IsZero() && !c.EndDate.IsZero() {
				s, e := timeline.DateOf(c.StartDate), timeline.DateOf(c.EndDate)
				if e.Before(s) {
					e = s
				}
				if !ok || s.Before(start) {
					start = s
				}
				if !ok || e.After(end) {
					end = e
				}
				ok = true
			}
			visit(c.ID)
		}
	}
	visit(group.ID)
	return start, end, ok
}

// ChildIndex maps each task ID to its children in display order
func ChildIndex(tasks []*model.Task) map[model.TaskID][]*model.Task {
	return childIndex(tasks, indexTasks(tasks))
}

func indexTasks(tasks []*model.Task) map[model.TaskID]*model.Task {
	byID := make(map[model.TaskID]*model.Task, len(tasks))
	for _, t := range tasks {
		if _, dup := byID[t.ID]; !dup {
			byID[t.ID] = t
		}
	}
	return byID
}

// childIndex honours each parent's Children order, then appends tasks that
// only name the parent through ParentID.
func childIndex(tasks []*model.Task, byID map[model.TaskID]*model.Task) map[model.TaskID][]*model.Task {
	out := make(map[model.TaskID][]*model.Task)
	placed := make(map[model.TaskID]bool)

	for _, parent := range tasks {
		for _, id := range parent.Children {
			child, ok := byID[id]
			if !ok || placed[id] || id == parent.ID {
				continue
			}
			out[parent.ID] = append(out[parent.ID], child)
			placed[id] = true
		}
	}
	for _, t := range tasks {
		if t.ParentID == "" || placed[t.ID] || t.ParentID == t.ID {
			continue
		}
		if _, ok := byID[t.ParentID]; !ok {
			continue
		}
		out[t.ParentID] = append(out[t.ParentID], t)
		placed[t.ID] = true
	}
	return out
}

func hiddenByCollapse(id model.TaskID, parentOf map[model.TaskID]model.TaskID, collapsed map[model.TaskID]bool) bool {
	seen := map[model.TaskID]bool{id: true}
	for p, ok := parentOf[id]; ok && !seen[p]; p, ok = parentOf[p] {
		seen[p] = true
		if collapsed[p] {
			return true
		}
	}
	return false
}
