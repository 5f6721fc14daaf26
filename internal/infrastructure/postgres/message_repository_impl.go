package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/morechaitanya606/ucia/internal/domain/entity"
	"github.com/morechaitanya606/ucia/internal/domain/repository"
)

type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

func (r *MessageRepository) Create(ctx context.Context, m *entity.Message) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO messages (name, email, body, project_ref, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, m.Name, m.Email, m.Body, nullable(m.ProjectRef), string(m.Status))

	return row.Scan(&m.ID, &m.CreatedAt)
}

func (r *MessageRepository) List(ctx context.Context) ([]*entity.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, body, project_ref, status, created_at
		FROM messages
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Message, 0)
	for rows.Next() {
		m := &entity.Message{}
		var projectRef *string
		var status string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &projectRef,
			&status, &m.CreatedAt); err != nil {
			return nil, err
		}
		if projectRef != nil {
			m.ProjectRef = *projectRef
		}
		m.Status = entity.MessageStatus(status)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MessageRepository) SetStatus(ctx context.Context, id string, status entity.MessageStatus) error {
	res, err := r.pool.Exec(ctx, `UPDATE messages SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ repository.MessageRepository = (*MessageRepository)(nil)
