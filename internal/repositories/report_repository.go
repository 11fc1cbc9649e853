package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
)

type ReportRepositoryInterface interface {
	GetOrdersReport(ctx context.Context, filter entities.ReportFilter) ([]entities.ReportItem, uint64, error)
}

type ReportRepository struct {
	storage DB
}

func NewReportRepository(storage DB) ReportRepositoryInterface {
	return &ReportRepository{storage: storage}
}

func (r *ReportRepository) GetOrdersReport(ctx context.Context, filter entities.ReportFilter) ([]entities.ReportItem, uint64, error) {
	base := sq.Select().
		From("orders o").
		LeftJoin("order_types ot ON ot.id = o.order_type_id").
		LeftJoin("users c ON c.id = o.customer_id").
		LeftJoin("users w ON w.id = o.writer_id").
		PlaceholderFormat(sq.Dollar)

	if filter.DateFrom != nil {
		base = base.Where(sq.GtOrEq{"o.created_at": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		base = base.Where(sq.LtOrEq{"o.created_at": *filter.DateTo})
	}
	if len(filter.Statuses) > 0 {
		base = base.Where(sq.Eq{"o.status": filter.Statuses})
	}

	countQuery, countArgs, err := base.Column("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build report count query: %w", err)
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count report rows: %w", err)
	}

	builder := base.Columns(
		"o.order_number", "o.title", "o.status", "ot.name",
		"c.first_name || ' ' || c.last_name",
		"w.first_name || ' ' || w.last_name",
		"o.no_of_pages", "o.price", "o.created_at", "o.updated_at",
	).OrderBy("o.created_at DESC")

	if filter.PerPage > 0 {
		builder = builder.Limit(uint64(filter.PerPage))
		if filter.Page > 1 {
			builder = builder.Offset(uint64((filter.Page - 1) * filter.PerPage))
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build report query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query report: %w", err)
	}
	defer rows.Close()

	items := make([]entities.ReportItem, 0)
	for rows.Next() {
		var item entities.ReportItem
		if err := rows.Scan(
			&item.OrderNumber, &item.Title, &item.Status, &item.OrderTypeName,
			&item.CustomerName, &item.WriterName,
			&item.Pages, &item.Price, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan report row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read report rows: %w", err)
	}
	return items, total, nil
}
