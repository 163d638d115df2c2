package service

import (
	"context"
	"time"

	"github.com/chaiwat-s/onepage/internal/domain"
	"github.com/chaiwat-s/onepage/internal/timeline"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByCode(ctx context.Context, code string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListByFiscalYear(ctx context.Context, fiscalYear int) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

// ImportResult holds the outcome of a brief import.
type ImportResult struct {
	Project *domain.Project
	// DefaultedFields names record fields that required a fallback or
	// sentinel because the document did not yield them.
	DefaultedFields []string
}

type ImportService interface {
	// PreviewFile extracts a record from the document without persisting it.
	PreviewFile(ctx context.Context, path, title string) (*ImportResult, error)
	// ImportFile extracts a record from the document and persists it.
	ImportFile(ctx context.Context, path, title string) (*ImportResult, error)
	// ImportText extracts a record from already-decoded text and persists it.
	ImportText(ctx context.Context, text, title string) (*ImportResult, error)
	// Save persists a previously previewed (possibly edited) record.
	Save(ctx context.Context, p *domain.Project) error
}

// TimelineView is the renderable projection of one project's schedule onto
// the 12-column fiscal grid. It is recomputed on every call, never stored.
type TimelineView struct {
	Project    *domain.Project
	Window     timeline.Window
	StartMonth time.Month
	Tasks      []timeline.Task
	// ProjectSpan positions the record's explicit start/end range; nil when
	// the range is ungraphable.
	ProjectSpan *timeline.Span
}

type TimelineService interface {
	Build(ctx context.Context, projectID string) (*TimelineView, error)
}
