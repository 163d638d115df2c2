package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chaiwat-s/onepage/internal/domain"
	"github.com/chaiwat-s/onepage/internal/extract"
	"github.com/chaiwat-s/onepage/internal/pdftext"
	"github.com/chaiwat-s/onepage/internal/repository"
)

type importService struct {
	projects repository.ProjectRepo
	texts    pdftext.Extractor
	observer UseCaseObserver
	now      func() time.Time
}

// NewImportService creates the brief import pipeline: text acquisition,
// extraction, persistence. observer may be nil.
func NewImportService(projects repository.ProjectRepo, texts pdftext.Extractor, observer UseCaseObserver) ImportService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &importService{
		projects: projects,
		texts:    texts,
		observer: observer,
		now:      time.Now,
	}
}

func (s *importService) PreviewFile(ctx context.Context, path, title string) (*ImportResult, error) {
	raw, err := s.texts.ExtractText(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("acquiring document text: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("document %q produced no text", filepath.Base(path))
	}

	if title == "" {
		title = documentTitle(path)
	}
	return s.preview(raw, title), nil
}

// preview runs extraction over decoded text and stamps the record's identity
// and tracking defaults.
func (s *importService) preview(raw, title string) *ImportResult {
	now := s.now().UTC()
	p := extract.Record(extract.Normalize(raw), title, now)
	p.ID = uuid.New().String()
	p.Status = domain.ProjectOnTrack
	p.CreatedAt = now
	p.UpdatedAt = now

	return &ImportResult{Project: p, DefaultedFields: defaultedFields(p, title)}
}

func (s *importService) ImportText(ctx context.Context, text, title string) (*ImportResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text to import")
	}

	result := s.preview(text, title)
	if err := result.Project.Validate(); err != nil {
		return nil, fmt.Errorf("validating project: %w", err)
	}
	if err := s.projects.Create(ctx, result.Project); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *importService) ImportFile(ctx context.Context, path, title string) (*ImportResult, error) {
	started := s.now()
	result, err := s.PreviewFile(ctx, path, title)
	if err == nil {
		err = s.projects.Create(ctx, result.Project)
	}

	event := UseCaseEvent{
		Name:      "import_brief",
		Duration:  s.now().Sub(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields:    map[string]any{"path": filepath.Base(path)},
	}
	if result != nil && result.Project != nil {
		event.Fields["project_id"] = result.Project.ID
	}
	s.observer.ObserveUseCase(ctx, event)

	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *importService) Save(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("validating project: %w", err)
	}
	return s.projects.Create(ctx, p)
}

// documentTitle derives a fallback project title from the file name.
func documentTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// defaultedFields reports which record fields came from fallbacks or
// sentinels rather than the document body.
func defaultedFields(p *domain.Project, title string) []string {
	var fields []string
	if p.Name == extract.DefaultProjectName || p.Name == title {
		fields = append(fields, "name")
	}
	if p.Department == extract.Unspecified {
		fields = append(fields, "department")
	}
	if p.OwnerName == extract.Unspecified {
		fields = append(fields, "owner_name")
	}
	if p.Budget == 0 {
		fields = append(fields, "budget")
	}
	if p.TimelineNote == "" {
		fields = append(fields, "timeline_note")
	}
	return fields
}
