package repository

import (
	"context"

	"github.com/morechaitanya606/ucia/internal/domain/entity"
)

// UpdateRepository defines persistence for project updates.
type UpdateRepository interface {
	Create(ctx context.Context, u *entity.Update) error
	GetByID(ctx context.Context, id string) (*entity.Update, error)
	ListPublishedByProject(ctx context.Context, projectID string) ([]*entity.Update, error)
	Update(ctx context.Context, u *entity.Update) error
	Delete(ctx context.Context, id string) error
}
