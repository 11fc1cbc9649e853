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

// CatalogRepository serves the priced option dictionaries the order form
// and the pricing calculator read from.
type CatalogRepositoryInterface interface {
	GetCatalog(ctx context.Context) (*entities.Catalog, error)
	FindOrderType(ctx context.Context, id uuid.UUID) (*entities.OrderType, error)
	FindAcademicLevel(ctx context.Context, id uuid.UUID) (*entities.AcademicLevel, error)
	FindUrgency(ctx context.Context, id uuid.UUID) (*entities.Urgency, error)
	CreateOrderType(ctx context.Context, ot *entities.OrderType) error
	UpdateOrderType(ctx context.Context, ot *entities.OrderType) error
	CreateAcademicLevel(ctx context.Context, al *entities.AcademicLevel) error
	UpdateAcademicLevel(ctx context.Context, al *entities.AcademicLevel) error
	CreateUrgency(ctx context.Context, u *entities.Urgency) error
	UpdateUrgency(ctx context.Context, u *entities.Urgency) error
}

type CatalogRepository struct {
	storage DB
}

func NewCatalogRepository(storage DB) CatalogRepositoryInterface {
	return &CatalogRepository{storage: storage}
}

func (r *CatalogRepository) GetCatalog(ctx context.Context) (*entities.Catalog, error) {
	catalog := &entities.Catalog{}

	rows, err := r.storage.Query(ctx, `SELECT id, name, base_price_per_page, created_at, updated_at FROM order_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list order types: %w", err)
	}
	for rows.Next() {
		var ot entities.OrderType
		if err := rows.Scan(&ot.ID, &ot.Name, &ot.BasePricePerPage, &ot.CreatedAt, &ot.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan order type: %w", err)
		}
		catalog.OrderTypes = append(catalog.OrderTypes, ot)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.storage.Query(ctx, `SELECT id, name, multiplier, created_at, updated_at FROM academic_levels ORDER BY multiplier`)
	if err != nil {
		return nil, fmt.Errorf("failed to list academic levels: %w", err)
	}
	for rows.Next() {
		var al entities.AcademicLevel
		if err := rows.Scan(&al.ID, &al.Name, &al.Multiplier, &al.CreatedAt, &al.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan academic level: %w", err)
		}
		catalog.AcademicLevels = append(catalog.AcademicLevels, al)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.storage.Query(ctx, `SELECT id, name, hours, multiplier, created_at, updated_at FROM urgencies ORDER BY hours`)
	if err != nil {
		return nil, fmt.Errorf("failed to list urgencies: %w", err)
	}
	for rows.Next() {
		var u entities.Urgency
		if err := rows.Scan(&u.ID, &u.Name, &u.Hours, &u.Multiplier, &u.CreatedAt, &u.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan urgency: %w", err)
		}
		catalog.Urgencies = append(catalog.Urgencies, u)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.storage.Query(ctx, `SELECT id, name, created_at, updated_at FROM writing_styles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list writing styles: %w", err)
	}
	for rows.Next() {
		var ws entities.WritingStyle
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.CreatedAt, &ws.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan writing style: %w", err)
		}
		catalog.WritingStyles = append(catalog.WritingStyles, ws)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.storage.Query(ctx, `SELECT id, name, created_at, updated_at FROM languages ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}
	for rows.Next() {
		var l entities.Language
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan language: %w", err)
		}
		catalog.Languages = append(catalog.Languages, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return catalog, nil
}

func (r *CatalogRepository) FindOrderType(ctx context.Context, id uuid.UUID) (*entities.OrderType, error) {
	var ot entities.OrderType
	err := r.storage.QueryRow(ctx,
		`SELECT id, name, base_price_per_page, created_at, updated_at FROM order_types WHERE id = $1`, id,
	).Scan(&ot.ID, &ot.Name, &ot.BasePricePerPage, &ot.CreatedAt, &ot.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order type: %w", err)
	}
	return &ot, nil
}

func (r *CatalogRepository) FindAcademicLevel(ctx context.Context, id uuid.UUID) (*entities.AcademicLevel, error) {
	var al entities.AcademicLevel
	err := r.storage.QueryRow(ctx,
		`SELECT id, name, multiplier, created_at, updated_at FROM academic_levels WHERE id = $1`, id,
	).Scan(&al.ID, &al.Name, &al.Multiplier, &al.CreatedAt, &al.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find academic level: %w", err)
	}
	return &al, nil
}

func (r *CatalogRepository) FindUrgency(ctx context.Context, id uuid.UUID) (*entities.Urgency, error) {
	var u entities.Urgency
	err := r.storage.QueryRow(ctx,
		`SELECT id, name, hours, multiplier, created_at, updated_at FROM urgencies WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Hours, &u.Multiplier, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find urgency: %w", err)
	}
	return &u, nil
}

func (r *CatalogRepository) CreateOrderType(ctx context.Context, ot *entities.OrderType) error {
	err := r.storage.QueryRow(ctx,
		`INSERT INTO order_types (id, name, base_price_per_page, created_at, updated_at)
		 VALUES ($1, $2, $3, NOW(), NOW()) RETURNING created_at, updated_at`,
		ot.ID, ot.Name, ot.BasePricePerPage,
	).Scan(&ot.CreatedAt, &ot.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order type: %w", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateOrderType(ctx context.Context, ot *entities.OrderType) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE order_types SET name = $1, base_price_per_page = $2, updated_at = NOW() WHERE id = $3`,
		ot.Name, ot.BasePricePerPage, ot.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CatalogRepository) CreateAcademicLevel(ctx context.Context, al *entities.AcademicLevel) error {
	err := r.storage.QueryRow(ctx,
		`INSERT INTO academic_levels (id, name, multiplier, created_at, updated_at)
		 VALUES ($1, $2, $3, NOW(), NOW()) RETURNING created_at, updated_at`,
		al.ID, al.Name, al.Multiplier,
	).Scan(&al.CreatedAt, &al.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert academic level: %w", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateAcademicLevel(ctx context.Context, al *entities.AcademicLevel) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE academic_levels SET name = $1, multiplier = $2, updated_at = NOW() WHERE id = $3`,
		al.Name, al.Multiplier, al.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update academic level: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CatalogRepository) CreateUrgency(ctx context.Context, u *entities.Urgency) error {
	err := r.storage.QueryRow(ctx,
		`INSERT INTO urgencies (id, name, hours, multiplier, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, NOW(), NOW()) RETURNING created_at, updated_at`,
		u.ID, u.Name, u.Hours, u.Multiplier,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert urgency: %w", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateUrgency(ctx context.Context, u *entities.Urgency) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE urgencies SET name = $1, hours = $2, multiplier = $3, updated_at = NOW() WHERE id = $4`,
		u.Name, u.Hours, u.Multiplier, u.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update urgency: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
