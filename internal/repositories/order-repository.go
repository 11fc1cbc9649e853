package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
	"github.com/Nduhiu17/treasure-shop-api/pkg/types"
)

// OrderScope narrows list queries to what the actor is allowed to see.
// Nil fields mean "no restriction" (admin).
type OrderScope struct {
	CustomerID *uuid.UUID
	WriterID   *uuid.UUID
}

type OrderRepositoryInterface interface {
	Create(ctx context.Context, q Querier, order *entities.Order) error
	FindByID(ctx context.Context, q Querier, id uuid.UUID) (*entities.Order, error)
	Save(ctx context.Context, q Querier, order *entities.Order) error
	List(ctx context.Context, filter types.Filter, scope OrderScope) ([]entities.Order, uint64, error)
}

type OrderRepository struct {
	storage DB
}

func NewOrderRepository(storage DB) OrderRepositoryInterface {
	return &OrderRepository{storage: storage}
}

const orderColumns = `id, order_number, customer_id, writer_id, status,
	order_type_id, academic_level_id, urgency_id, style_id, language_id,
	no_of_pages, no_of_sources,
	high_priority, top_writer, plagiarism_report, one_page_summary,
	extra_quality_check, initial_draft, sms_update, copy_of_sources, preferred_writer,
	price, title, description, original_file_url, version, created_at, updated_at`

func scanOrder(row pgx.Row) (*entities.Order, error) {
	var o entities.Order
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.CustomerID, &o.WriterID, &o.Status,
		&o.OrderTypeID, &o.AcademicLevelID, &o.UrgencyID, &o.StyleID, &o.LanguageID,
		&o.NoOfPages, &o.NoOfSources,
		&o.HighPriority, &o.TopWriter, &o.PlagiarismReport, &o.OnePageSummary,
		&o.ExtraQualityCheck, &o.InitialDraft, &o.SMSUpdate, &o.CopyOfSources, &o.PreferredWriter,
		&o.Price, &o.Title, &o.Description, &o.OriginalFileURL, &o.Version, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}
	return &o, nil
}

func (r *OrderRepository) Create(ctx context.Context, q Querier, order *entities.Order) error {
	if q == nil {
		q = r.storage
	}
	query := `
		INSERT INTO orders (
			id, order_number, customer_id, writer_id, status,
			order_type_id, academic_level_id, urgency_id, style_id, language_id,
			no_of_pages, no_of_sources,
			high_priority, top_writer, plagiarism_report, one_page_summary,
			extra_quality_check, initial_draft, sms_update, copy_of_sources, preferred_writer,
			price, title, description, original_file_url, version, created_at, updated_at
		) VALUES (
			$1, 'TS-' || nextval('order_number_seq'), $2, $3, $4,
			$5, $6, $7, $8, $9,
			$10, $11,
			$12, $13, $14, $15,
			$16, $17, $18, $19, $20,
			$21, $22, $23, $24, 1, NOW(), NOW()
		) RETURNING order_number, version, created_at, updated_at`

	err := q.QueryRow(ctx, query,
		order.ID, order.CustomerID, order.WriterID, order.Status,
		order.OrderTypeID, order.AcademicLevelID, order.UrgencyID, order.StyleID, order.LanguageID,
		order.NoOfPages, order.NoOfSources,
		order.HighPriority, order.TopWriter, order.PlagiarismReport, order.OnePageSummary,
		order.ExtraQualityCheck, order.InitialDraft, order.SMSUpdate, order.CopyOfSources, order.PreferredWriter,
		order.Price, order.Title, order.Description, order.OriginalFileURL,
	).Scan(&order.OrderNumber, &order.Version, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, q Querier, id uuid.UUID) (*entities.Order, error) {
	if q == nil {
		q = r.storage
	}
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1`, orderColumns)
	return scanOrder(q.QueryRow(ctx, query, id))
}

// Save persists the whole mutable part of the order guarded by the version
// counter. A zero-row update means a concurrent transition won the race:
// the caller gets ErrConflict and must re-read before retrying.
func (r *OrderRepository) Save(ctx context.Context, q Querier, order *entities.Order) error {
	if q == nil {
		q = r.storage
	}
	query := `
		UPDATE orders SET
			writer_id = $1, status = $2, version = version + 1, updated_at = NOW()
		WHERE id = $3 AND version = $4`

	tag, err := q.Exec(ctx, query, order.WriterID, order.Status, order.ID, order.Version)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	order.Version++
	return nil
}

var orderFilterColumns = map[string]string{
	"status":      "status",
	"customer_id": "customer_id",
	"writer_id":   "writer_id",
	"order_type":  "order_type_id",
}

func (r *OrderRepository) List(ctx context.Context, filter types.Filter, scope OrderScope) ([]entities.Order, uint64, error) {
	builder := sq.Select(orderColumns).
		From("orders").
		PlaceholderFormat(sq.Dollar).
		OrderBy("created_at DESC")

	countBuilder := sq.Select("COUNT(*)").From("orders").PlaceholderFormat(sq.Dollar)

	if scope.CustomerID != nil {
		builder = builder.Where(sq.Eq{"customer_id": *scope.CustomerID})
		countBuilder = countBuilder.Where(sq.Eq{"customer_id": *scope.CustomerID})
	}
	if scope.WriterID != nil {
		builder = builder.Where(sq.Eq{"writer_id": *scope.WriterID})
		countBuilder = countBuilder.Where(sq.Eq{"writer_id": *scope.WriterID})
	}

	for field, val := range filter.Filter {
		col, ok := orderFilterColumns[field]
		if !ok {
			continue
		}
		builder = builder.Where(sq.Eq{col: val})
		countBuilder = countBuilder.Where(sq.Eq{col: val})
	}

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build order count query: %w", err)
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build order list query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read order rows: %w", err)
	}
	return orders, total, nil
}
