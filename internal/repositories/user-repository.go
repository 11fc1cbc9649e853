package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	AssignRole(ctx context.Context, userID uuid.UUID, roleCode string) error
}

type UserRepository struct {
	storage DB
}

func NewUserRepository(storage DB) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	query := `
		INSERT INTO users (id, first_name, last_name, email, phone_number, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := r.storage.QueryRow(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Email, user.PhoneNumber, user.Password,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return r.findBy(ctx, `WHERE u.id = $1`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findBy(ctx, `WHERE u.email = $1`, email)
}

func (r *UserRepository) findBy(ctx context.Context, where string, arg interface{}) (*entities.User, error) {
	query := fmt.Sprintf(`
		SELECT u.id, u.first_name, u.last_name, u.email, u.phone_number, u.password,
			u.created_at, u.updated_at,
			COALESCE(array_agg(r.code) FILTER (WHERE r.code IS NOT NULL), '{}')
		FROM users u
		LEFT JOIN user_roles ur ON ur.user_id = u.id
		LEFT JOIN roles r ON r.id = ur.role_id
		%s
		GROUP BY u.id`, where)

	var u entities.User
	err := r.storage.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PhoneNumber, &u.Password,
		&u.CreatedAt, &u.UpdatedAt, &u.Roles,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) AssignRole(ctx context.Context, userID uuid.UUID, roleCode string) error {
	query := `
		INSERT INTO user_roles (user_id, role_id)
		SELECT $1, id FROM roles WHERE code = $2
		ON CONFLICT DO NOTHING`

	if _, err := r.storage.Exec(ctx, query, userID, roleCode); err != nil {
		return fmt.Errorf("failed to assign role %q: %w", roleCode, err)
	}
	return nil
}
