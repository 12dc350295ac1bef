package platform

import (
	"context"
	_ "embed"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ytget/gantt-planner/internal/model"
)

//go:embed sample.yaml
var sampleProject []byte

// SampleName is reported as the file name of the embedded sample
const SampleName = "sample.yaml"

type projectFile struct {
	Name     string         `yaml:"name"`
	Start    string         `yaml:"start"` // YYYY-MM-DD, defaults to the earliest task
	End      string         `yaml:"end"`   // inclusive, defaults to the latest task
	Tasks    []taskEntry    `yaml:"tasks"`
	Holidays []holidayEntry `yaml:"holidays"`
	Events   []eventEntry   `yaml:"events"`
}

type taskEntry struct {
	ID       string  `yaml:"id"`    // generated when empty
	Title    string  `yaml:"title"`
	Start    string  `yaml:"start"` // both dates or neither
	End      string  `yaml:"end"`
	Parent   string  `yaml:"parent"`
	Progress float64 `yaml:"progress"` // 0..1, or a percentage when above 1
	Color    string  `yaml:"color"`
}

type holidayEntry struct {
	Date  string `yaml:"date"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type eventEntry struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"`
	End   string `yaml:"end"` // empty for a single day
	Color string `yaml:"color"`
}

// FileSource reads a project from a YAML file. An empty path loads the
// embedded sample project.
type FileSource struct {
	Path string
}

// Load implements project.Source
func (s FileSource) Load(ctx context.Context) (*model.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(s.Path) == "" {
		return SampleProject()
	}
	return LoadProject(s.Path)
}

// LoadProject reads and parses a project file
func LoadProject(path string) (*model.Project, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, ErrEmptyPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading project file: %w", err)
	}
	return ParseProject(path, data)
}

// SampleProject parses the embedded sample project
func SampleProject() (*model.Project, error) {
	return ParseProject(SampleName, sampleProject)
}

// ParseProject decodes YAML project data. file only labels errors.
func ParseProject(file string, data []byte) (*model.Project, error) {
	var pf projectFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("error parsing project file %s: %w", file, err)
	}

	fieldErr := func(field string, err error) error {
		return &FieldError{File: file, Field: field, Err: err}
	}

	tasks := make([]*model.Task, 0, len(pf.Tasks))
	seen := make(map[model.TaskID]bool, len(pf.Tasks))
	for i, te := range pf.Tasks {
		field := fmt.Sprintf("tasks[%d]", i)
		task := &model.Task{
			ID:       model.TaskID(strings.TrimSpace(te.ID)),
			Title:    te.Title,
			ParentID: model.TaskID(strings.TrimSpace(te.Parent)),
			Progress: normalizeProgress(te.Progress),
			Color:    strings.TrimSpace(te.Color),
		}
		if task.ID == "" {
			task.ID = model.NewTaskID()
		}
		if seen[task.ID] {
			return nil, fieldErr(field+".id", fmt.Errorf("%w: %s", ErrDuplicateID, task.ID))
		}
		seen[task.ID] = true

		if te.Start != "" || te.End != "" {
			start, err := parseDate(te.Start)
			if err != nil {
				return nil, fieldErr(field+".start", err)
			}
			end, err := parseDate(te.End)
			if err != nil {
				return nil, fieldErr(field+".end", err)
			}
			if end.Before(start) {
				return nil, fieldErr(field, ErrInvalidRange)
			}
			task.StartDate, task.EndDate = start, end
		}
		tasks = append(tasks, task)
	}

	for i, task := range tasks {
		if task.HasParent() && (!seen[task.ParentID] || task.ParentID == task.ID) {
			return nil, fieldErr(fmt.Sprintf("tasks[%d].parent", i), fmt.Errorf("%w: %s", ErrUnknownParent, task.ParentID))
		}
	}

	start, end, err := projectRange(pf, tasks)
	if err != nil {
		return nil, fieldErr("start", err)
	}
	if end.Before(start) {
		return nil, fieldErr("end", ErrInvalidRange)
	}

	p := model.NewProject(strings.TrimSpace(pf.Name), start, end)
	// parents may follow their children in the file, so link after all are known
	p.Tasks = tasks
	for _, task := range tasks {
		if !task.HasParent() {
			continue
		}
		parent := p.GetTask(task.ParentID)
		parent.Children = append(parent.Children, task.ID)
		parent.IsGroup = true
	}

	for i, he := range pf.Holidays {
		d, err := parseDate(he.Date)
		if err != nil {
			return nil, fieldErr(fmt.Sprintf("holidays[%d].date", i), err)
		}
		p.AddHoliday(model.Holiday{Date: d, Name: he.Name, Color: he.Color})
	}

	for i, ee := range pf.Events {
		field := fmt.Sprintf("events[%d]", i)
		s, err := parseDate(ee.Start)
		if err != nil {
			return nil, fieldErr(field+".start", err)
		}
		event := model.Event{StartDate: s, Name: ee.Name, Color: ee.Color}
		if ee.End != "" {
			e, err := parseDate(ee.End)
			if err != nil {
				return nil, fieldErr(field+".end", err)
			}
			if e.Before(s) {
				return nil, fieldErr(field, ErrInvalidRange)
			}
			event.EndDate = &e
		}
		p.AddEvent(event)
	}

	return p, nil
}

// projectRange returns the declared range, filling gaps from the task dates
func projectRange(pf projectFile, tasks []*model.Task) (start, end time.Time, err error) {
	for _, t := range tasks {
		if t.StartDate.IsZero() {
			continue
		}
		if start.IsZero() || t.StartDate.Before(start) {
			start = t.StartDate
		}
		if end.IsZero() || t.EndDate.After(end) {
			end = t.EndDate
		}
	}
	if pf.Start != "" {
		if start, err = parseDate(pf.Start); err != nil {
			return start, end, err
		}
	}
	if pf.End != "" {
		if end, err = parseDate(pf.End); err != nil {
			return start, end, err
		}
	}
	if start.IsZero() || end.IsZero() {
		return start, end, ErrMissingField
	}
	return start, end, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrMissingField
	}
	t, err := time.Parse(model.DateKeyLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

func normalizeProgress(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	if p > 1 {
		p /= 100
	}
	return math.Max(0, math.Min(1, p))
}
