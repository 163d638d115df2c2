package service

import (
	"context"
	"fmt"
	"time"

	"github.com/chaiwat-s/onepage/internal/repository"
	"github.com/chaiwat-s/onepage/internal/timeline"
)

type timelineService struct {
	projects   repository.ProjectRepo
	startMonth time.Month
}

// NewTimelineService creates the timeline projection service. startMonth is
// the configured first month of the fiscal year.
func NewTimelineService(projects repository.ProjectRepo, startMonth time.Month) TimelineService {
	return &timelineService{projects: projects, startMonth: startMonth}
}

func (s *timelineService) Build(ctx context.Context, projectID string) (*TimelineView, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}

	window := timeline.NewWindow(p.FiscalYear, s.startMonth)
	view := &TimelineView{
		Project:    p,
		Window:     window,
		StartMonth: s.startMonth,
		Tasks:      timeline.InferTasks(p.TimelineNote, s.startMonth),
	}
	if span, ok := timeline.MapToGrid(p.StartDate, p.EndDate, window); ok {
		view.ProjectSpan = &span
	}
	return view, nil
}
