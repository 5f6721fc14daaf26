package repository

import (
	"context"

	"github.com/morechaitanya606/ucia/internal/domain/entity"
)

// ProjectRepository defines project persistence operations.
type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	GetBySlug(ctx context.Context, slug string) (*entity.Project, error)
	List(ctx context.Context) ([]*entity.Project, error)
	Update(ctx context.Context, p *entity.Project) error
	DeleteBySlug(ctx context.Context, slug string) error
}
