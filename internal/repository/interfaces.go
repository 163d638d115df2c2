package repository

import (
	"context"

	"github.com/chaiwat-s/onepage/internal/domain"
)

// ProjectRepo persists project records.
type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByCode(ctx context.Context, code string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListByFiscalYear(ctx context.Context, fiscalYear int) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}
