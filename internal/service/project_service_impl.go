package service

import (
	"context"
	"fmt"

	"github.com/chaiwat-s/onepage/internal/domain"
	"github.com/chaiwat-s/onepage/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
}

// NewProjectService creates the CRUD facade over the project repository.
func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) GetByCode(ctx context.Context, code string) (*domain.Project, error) {
	return s.projects.GetByCode(ctx, code)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) ListByFiscalYear(ctx context.Context, fiscalYear int) ([]*domain.Project, error) {
	return s.projects.ListByFiscalYear(ctx, fiscalYear)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("validating project: %w", err)
	}
	return s.projects.Update(ctx, p)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}
