package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/morechaitanya606/ucia/internal/domain/entity"
	"github.com/morechaitanya606/ucia/internal/domain/repository"
)

type UpdateRepository struct {
	pool *pgxpool.Pool
}

func NewUpdateRepository(pool *pgxpool.Pool) *UpdateRepository {
	return &UpdateRepository{pool: pool}
}

func (r *UpdateRepository) Create(ctx context.Context, u *entity.Update) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO updates (project_id, title, content, media_url, posted_by, published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, posted_at
	`, u.ProjectID, u.Title, u.Content, u.MediaURL, nullable(u.PostedBy), u.Published)

	return row.Scan(&u.ID, &u.PostedAt)
}

func (r *UpdateRepository) GetByID(ctx context.Context, id string) (*entity.Update, error) {
	u := &entity.Update{}
	var postedBy *string

	row := r.pool.QueryRow(ctx, `
		SELECT id, project_id, title, content, media_url, posted_by, published, posted_at
		FROM updates
		WHERE id = $1
	`, id)

	if err := row.Scan(&u.ID, &u.ProjectID, &u.Title, &u.Content, &u.MediaURL,
		&postedBy, &u.Published, &u.PostedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if postedBy != nil {
		u.PostedBy = *postedBy
	}
	return u, nil
}

// ListPublishedByProject returns published updates newest first, with the
// author's display name joined in for public rendering.
func (r *UpdateRepository) ListPublishedByProject(ctx context.Context, projectID string) ([]*entity.Update, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.project_id, u.title, u.content, u.media_url, u.posted_by,
			COALESCE(a.name, ''), u.published, u.posted_at
		FROM updates u
		LEFT JOIN users a ON a.id = u.posted_by
		WHERE u.project_id = $1 AND u.published
		ORDER BY u.posted_at DESC
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Update, 0)
	for rows.Next() {
		u := &entity.Update{}
		var postedBy *string
		if err := rows.Scan(&u.ID, &u.ProjectID, &u.Title, &u.Content, &u.MediaURL,
			&postedBy, &u.PostedName, &u.Published, &u.PostedAt); err != nil {
			return nil, err
		}
		if postedBy != nil {
			u.PostedBy = *postedBy
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UpdateRepository) Update(ctx context.Context, u *entity.Update) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE updates
		SET title = $1, content = $2, media_url = $3, published = $4
		WHERE id = $5
	`, u.Title, u.Content, u.MediaURL, u.Published, u.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UpdateRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM updates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ repository.UpdateRepository = (*UpdateRepository)(nil)
