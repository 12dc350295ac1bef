package model

import (
	"time"
)

// Project groups the tasks and calendar annotations shown by the views
type Project struct {
	Name     string
	Start    time.Time // first day of the chart
	End      time.Time // last day of the chart, inclusive
	Tasks    []*Task
	Holidays []Holiday
	Events   []Event
}

// NewProject creates an empty project covering the given range
func NewProject(name string, start, end time.Time) *Project {
	return &Project{
		Name:  name,
		Start: dateOnly(start),
		End:   dateOnly(end),
		Tasks: make([]*Task, 0),
	}
}

// AddTask appends a task and links it to its parent when the parent is known
func (p *Project) AddTask(task *Task) {
	p.Tasks = append(p.Tasks, task)
	if !task.HasParent() {
		return
	}
	if parent := p.GetTask(task.ParentID); parent != nil {
		parent.Children = append(parent.Children, task.ID)
		parent.IsGroup = true
	}
}

// GetTask returns the task with the given ID, or nil
func (p *Project) GetTask(id TaskID) *Task {
	for _, task := range p.Tasks {
		if task.ID == id {
			return task
		}
	}
	return nil
}

// Roots returns tasks without a parent in insertion order
func (p *Project) Roots() []*Task {
	var roots []*Task
	for _, task := range p.Tasks {
		if !task.HasParent() || p.GetTask(task.ParentID) == nil {
			roots = append(roots, task)
		}
	}
	return roots
}

// ChildrenOf returns the direct children of a task in the order they were linked
func (p *Project) ChildrenOf(id TaskID) []*Task {
	parent := p.GetTask(id)
	if parent == nil {
		return nil
	}
	children := make([]*Task, 0, len(parent.Children))
	for _, childID := range parent.Children {
		if child := p.GetTask(childID); child != nil {
			children = append(children, child)
		}
	}
	return children
}

// AddHoliday adds a holiday unless one already exists on the same day.
// It reports whether the holiday was added.
func (p *Project) AddHoliday(h Holiday) bool {
	key := h.Key()
	for _, existing := range p.Holidays {
		if existing.Key() == key {
			return false
		}
	}
	p.Holidays = append(p.Holidays, h)
	return true
}

// AddEvent adds a calendar event
func (p *Project) AddEvent(e Event) {
	p.Events = append(p.Events, e)
}

// DurationDays returns the inclusive length of the project range in days
func (p *Project) DurationDays() int {
	if p.End.Before(p.Start) {
		return 0
	}
	return int(dateOnly(p.End).Sub(dateOnly(p.Start))/(24*time.Hour)) + 1
}

// GetOverallProgress returns the mean progress of leaf tasks as a percentage
func (p *Project) GetOverallProgress() float64 {
	var sum float64
	var leaves int
	for _, task := range p.Tasks {
		if task.IsGroup {
			continue
		}
		sum += task.Progress
		leaves++
	}
	if leaves == 0 {
		return 0
	}
	return sum / float64(leaves) * 100
}
