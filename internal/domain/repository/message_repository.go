package repository

import (
	"context"

	"github.com/morechaitanya606/ucia/internal/domain/entity"
)

// MessageRepository defines persistence for contact messages.
type MessageRepository interface {
	Create(ctx context.Context, m *entity.Message) error
	List(ctx context.Context) ([]*entity.Message, error)
	SetStatus(ctx context.Context, id string, status entity.MessageStatus) error
	Delete(ctx context.Context, id string) error
}
