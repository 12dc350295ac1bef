package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskIDPrefix marks identifiers generated by NewTaskID
const TaskIDPrefix = "task-"

// TaskID identifies a task within a project
type TaskID string

// Task represents a single planned task or a group of tasks
type Task struct {
	ID        TaskID
	Title     string
	StartDate time.Time
	EndDate   time.Time // inclusive
	IsGroup   bool      // true when the task has children
	Children  []TaskID
	ParentID  TaskID  // empty for root tasks
	Progress  float64 // 0.0 to 1.0
	Color     string  // optional "#rrggbb" bar color
}

// NewTaskID generates a unique task ID using UUID v7 so IDs sort by creation time
func NewTaskID() TaskID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return TaskID(fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano()))
	}
	return TaskID(TaskIDPrefix + id.String())
}

// HasParent reports whether the task is nested under another task
func (t *Task) HasParent() bool {
	return t.ParentID != ""
}

// DurationDays returns the number of calendar days covered by the task,
// counting both the start and the end day. Inverted ranges count as one day.
func (t *Task) DurationDays() int {
	start := dateOnly(t.StartDate)
	end := dateOnly(t.EndDate)
	if end.Before(start) {
		return 1
	}
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

// GetDisplayTitle returns the title, or the ID when the title is blank
func (t *Task) GetDisplayTitle() string {
	title := strings.Join(strings.Fields(t.Title), " ")
	if title != "" {
		return title
	}
	return string(t.ID)
}

// GetProgressString returns progress formatted as a whole percentage
func (t *Task) GetProgressString() string {
	p := t.Progress
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return fmt.Sprintf("%d%%", int(p*100+0.5))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
