package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/morechaitanya606/ucia/internal/domain/entity"
	"github.com/morechaitanya606/ucia/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, u.Email, u.PasswordHash, u.Name, u.Role.String())

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getBy(ctx, `WHERE id = $1`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getBy(ctx, `WHERE email = $1`, email)
}

func (r *UserRepository) getBy(ctx context.Context, where string, arg any) (*entity.User, error) {
	u := &entity.User{}
	var role string

	row := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, name, role, created_at, updated_at
		FROM users
	`+where, arg)

	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &role,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.Role = entity.ParseRole(role)

	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
