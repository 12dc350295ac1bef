package project

import (
	"context"
	"fmt"

	"github.com/ytget/gantt-planner/internal/calendar"
	"github.com/ytget/gantt-planner/internal/model"
)

// HolidaySource adds the public holidays of a built-in region to every
// project loaded from Source. Holidays already in the project are kept.
type HolidaySource struct {
	Source Source
	Region string
}

// Load implements Source
func (s HolidaySource) Load(ctx context.Context) (*model.Project, error) {
	if s.Source == nil {
		return nil, ErrNoSource
	}
	p, err := s.Source.Load(ctx)
	if err != nil {
		return nil, err
	}
	holidays, err := calendar.Range(s.Region, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("holiday region: %w", err)
	}
	calendar.Merge(p, holidays)
	return p, nil
}
