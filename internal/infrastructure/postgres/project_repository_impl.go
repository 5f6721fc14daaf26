package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/morechaitanya606/ucia/internal/domain/entity"
	"github.com/morechaitanya606/ucia/internal/domain/repository"
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

const projectColumns = `id, slug, title, subtitle, short_description, description,
	icon, gradient, status, start_date, end_date, stats, features, created_by,
	created_at, updated_at`

func (r *ProjectRepository) Create(ctx context.Context, p *entity.Project) error {
	stats, err := json.Marshal(p.Stats)
	if err != nil {
		return err
	}
	features, err := json.Marshal(p.Features)
	if err != nil {
		return err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO projects (slug, title, subtitle, short_description, description,
			icon, gradient, status, start_date, end_date, stats, features, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`, p.Slug, p.Title, p.Subtitle, p.ShortDescription, p.Description,
		p.Icon, p.Gradient, string(p.Status), p.StartDate, p.EndDate, stats, features, nullable(p.CreatedBy))

	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *ProjectRepository) GetBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE slug = $1`, slug)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]*entity.Project, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, p *entity.Project) error {
	stats, err := json.Marshal(p.Stats)
	if err != nil {
		return err
	}
	features, err := json.Marshal(p.Features)
	if err != nil {
		return err
	}
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE projects
		SET title = $1, subtitle = $2, short_description = $3, description = $4,
			icon = $5, gradient = $6, status = $7, start_date = $8, end_date = $9,
			stats = $10, features = $11, updated_at = $12
		WHERE slug = $13
	`, p.Title, p.Subtitle, p.ShortDescription, p.Description,
		p.Icon, p.Gradient, string(p.Status), p.StartDate, p.EndDate,
		stats, features, p.UpdatedAt, p.Slug)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) DeleteBySlug(ctx context.Context, slug string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE slug = $1`, slug)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (*entity.Project, error) {
	p := &entity.Project{}
	var status string
	var stats, features []byte
	var createdBy *string

	if err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Subtitle, &p.ShortDescription,
		&p.Description, &p.Icon, &p.Gradient, &status, &p.StartDate, &p.EndDate,
		&stats, &features, &createdBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Status = entity.ProjectStatus(status)
	if createdBy != nil {
		p.CreatedBy = *createdBy
	}
	if len(stats) > 0 {
		if err := json.Unmarshal(stats, &p.Stats); err != nil {
			return nil, err
		}
	}
	if len(features) > 0 {
		if err := json.Unmarshal(features, &p.Features); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// nullable maps an empty string to SQL NULL for uuid foreign keys.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

var _ repository.ProjectRepository = (*ProjectRepository)(nil)
