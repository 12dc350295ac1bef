package project

import (
	"context"
	"time"

	"github.com/ytget/gantt-planner/internal/model"
)

// Source loads a project, typically from a file
type Source interface {
	Load(ctx context.Context) (*model.Project, error)
}

// Repository defines the interface for the project store.
type Repository interface {
	SetUpdateCallback(func(*model.Project))
	Load(ctx context.Context, src Source) error
	Replace(p *model.Project)
	Project() *model.Project
	AddTask(title string, parent model.TaskID, start, end time.Time) (*model.Task, error)
	GetTask(id model.TaskID) (*model.Task, bool)
	GetAllTasks() []*model.Task
	SetProgress(id model.TaskID, progress float64) error
	Reschedule(id model.TaskID, start, end time.Time) error
	RemoveTask(id model.TaskID) error
}
