package project

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ytget/gantt-planner/internal/model"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrInvalidRange = errors.New("end date is before start date")
	ErrNoSource     = errors.New("no project source")
)

// Store keeps the current project
type Store struct {
	project  *model.Project
	mu       sync.RWMutex
	logger   *log.Logger
	onUpdate func(*model.Project) // callback for UI updates
}

// NewStore creates a store holding p. A nil project starts empty.
func NewStore(p *model.Project, logger *log.Logger) *Store {
	if p == nil {
		now := time.Now()
		p = model.NewProject("", now, now)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Store{project: p, logger: logger}
}

// SetUpdateCallback sets the callback invoked after every change.
// It runs on the goroutine that made the change.
func (s *Store) SetUpdateCallback(callback func(*model.Project)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Load replaces the project with the one read from src
func (s *Store) Load(ctx context.Context, src Source) error {
	if src == nil {
		return ErrNoSource
	}
	p, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}
	s.logger.Info("project loaded", "name", p.Name, "tasks", len(p.Tasks), "holidays", len(p.Holidays))
	s.Replace(p)
	return nil
}

// Replace swaps the whole project
func (s *Store) Replace(p *model.Project) {
	s.mu.Lock()
	s.project = p
	s.mu.Unlock()
	s.notifyUpdate()
}

// Project returns the current project
func (s *Store) Project() *model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.project
}

// AddTask creates a task. A non-empty parent must exist.
func (s *Store) AddTask(title string, parent model.TaskID, start, end time.Time) (*model.Task, error) {
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return nil, fmt.Errorf("%w: %s..%s", ErrInvalidRange, start.Format(model.DateKeyLayout), end.Format(model.DateKeyLayout))
	}

	s.mu.Lock()
	if parent != "" && s.project.GetTask(parent) == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: parent %s", ErrTaskNotFound, parent)
	}
	task := &model.Task{
		ID:        model.NewTaskID(),
		Title:     title,
		StartDate: start,
		EndDate:   end,
		ParentID:  parent,
	}
	s.project.AddTask(task)
	s.mu.Unlock()

	s.logger.Debug("task added", "id", task.ID, "parent", parent)
	s.notifyUpdate()
	return task, nil
}

// GetTask returns a task by ID
func (s *Store) GetTask(id model.TaskID) (*model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task := s.project.GetTask(id)
	return task, task != nil
}

// GetAllTasks returns the tasks in project order
func (s *Store) GetAllTasks() []*model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*model.Task, len(s.project.Tasks))
	copy(tasks, s.project.Tasks)
	return tasks
}

// SetProgress sets the completion of a task, clamped to [0, 1]
func (s *Store) SetProgress(id model.TaskID, progress float64) error {
	s.mu.Lock()
	task := s.project.GetTask(id)
	if task == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	if math.IsNaN(progress) {
		progress = 0
	}
	task.Progress = math.Max(0, math.Min(1, progress))
	s.mu.Unlock()

	s.notifyUpdate()
	return nil
}

// Reschedule moves a task to a new inclusive date range
func (s *Store) Reschedule(id model.TaskID, start, end time.Time) error {
	if end.Before(start) {
		return fmt.Errorf("%w: %s..%s", ErrInvalidRange, start.Format(model.DateKeyLayout), end.Format(model.DateKeyLayout))
	}

	s.mu.Lock()
	task := s.project.GetTask(id)
	if task == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	task.StartDate, task.EndDate = start, end
	s.mu.Unlock()

	s.notifyUpdate()
	return nil
}

// RemoveTask deletes a task together with its descendants
func (s *Store) RemoveTask(id model.TaskID) error {
	s.mu.Lock()
	task := s.project.GetTask(id)
	if task == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	doomed := map[model.TaskID]bool{id: true}
	s.collectDescendants(id, doomed)

	kept := s.project.Tasks[:0]
	for _, t := range s.project.Tasks {
		if !doomed[t.ID] {
			kept = append(kept, t)
		}
	}
	s.project.Tasks = kept

	if parent := s.project.GetTask(task.ParentID); parent != nil {
		children := parent.Children[:0]
		for _, c := range parent.Children {
			if c != id {
				children = append(children, c)
			}
		}
		parent.Children = children
		parent.IsGroup = len(children) > 0
	}
	s.mu.Unlock()

	s.logger.Debug("task removed", "id", id, "count", len(doomed))
	s.notifyUpdate()
	return nil
}

// collectDescendants must be called with the lock held
func (s *Store) collectDescendants(id model.TaskID, into map[model.TaskID]bool) {
	for _, child := range s.project.ChildrenOf(id) {
		if into[child.ID] {
			continue
		}
		into[child.ID] = true
		s.collectDescendants(child.ID, into)
	}
}

func (s *Store) notifyUpdate() {
	s.mu.RLock()
	callback, p := s.onUpdate, s.project
	s.mu.RUnlock()
	if callback != nil {
		callback(p)
	}
}
var _ Repository = (*Store)(nil)
