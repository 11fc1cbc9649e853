package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
)

type FeedbackRepositoryInterface interface {
	Create(ctx context.Context, q Querier, feedback *entities.Feedback) error
	ListByOrder(ctx context.Context, q Querier, orderID uuid.UUID) ([]entities.Feedback, error)
}

type FeedbackRepository struct {
	storage DB
}

func NewFeedbackRepository(storage DB) FeedbackRepositoryInterface {
	return &FeedbackRepository{storage: storage}
}

func (r *FeedbackRepository) Create(ctx context.Context, q Querier, feedback *entities.Feedback) error {
	if q == nil {
		q = r.storage
	}
	query := `
		INSERT INTO order_feedbacks (id, order_id, author_id, text, file_url, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at`

	err := q.QueryRow(ctx, query,
		feedback.ID, feedback.OrderID, feedback.AuthorID, feedback.Text, feedback.FileURL,
	).Scan(&feedback.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepository) ListByOrder(ctx context.Context, q Querier, orderID uuid.UUID) ([]entities.Feedback, error) {
	if q == nil {
		q = r.storage
	}
	query := `SELECT id, order_id, author_id, text, file_url, created_at
		FROM order_feedbacks WHERE order_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedbacks: %w", err)
	}
	defer rows.Close()

	feedbacks := make([]entities.Feedback, 0)
	for rows.Next() {
		var f entities.Feedback
		if err := rows.Scan(&f.ID, &f.OrderID, &f.AuthorID, &f.Text, &f.FileURL, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		feedbacks = append(feedbacks, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback rows: %w", err)
	}
	return feedbacks, nil
}
