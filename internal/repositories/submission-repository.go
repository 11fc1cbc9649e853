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

type SubmissionRepositoryInterface interface {
	Create(ctx context.Context, q Querier, submission *entities.Submission) error
	ListByOrder(ctx context.Context, q Querier, orderID uuid.UUID) ([]entities.Submission, error)
	LatestByOrder(ctx context.Context, q Querier, orderID uuid.UUID) (*entities.Submission, error)
	UpdateStatus(ctx context.Context, q Querier, id uuid.UUID, status string) error
}

type SubmissionRepository struct {
	storage DB
}

func NewSubmissionRepository(storage DB) SubmissionRepositoryInterface {
	return &SubmissionRepository{storage: storage}
}

const submissionColumns = `id, order_id, writer_id, file_url, note, status, submitted_at`

func (r *SubmissionRepository) Create(ctx context.Context, q Querier, submission *entities.Submission) error {
	if q == nil {
		q = r.storage
	}
	query := `
		INSERT INTO order_submissions (id, order_id, writer_id, file_url, note, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING submitted_at`

	err := q.QueryRow(ctx, query,
		submission.ID, submission.OrderID, submission.WriterID,
		submission.FileURL, submission.Note, submission.Status,
	).Scan(&submission.SubmittedAt)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

// ListByOrder returns submissions newest first. Reviewers act only on
// index 0, so the DESC ordering is a hard contract.
func (r *SubmissionRepository) ListByOrder(ctx context.Context, q Querier, orderID uuid.UUID) ([]entities.Submission, error) {
	if q == nil {
		q = r.storage
	}
	query := fmt.Sprintf(`SELECT %s FROM order_submissions WHERE order_id = $1 ORDER BY submitted_at DESC, id DESC`, submissionColumns)

	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	submissions := make([]entities.Submission, 0)
	for rows.Next() {
		var s entities.Submission
		if err := rows.Scan(&s.ID, &s.OrderID, &s.WriterID, &s.FileURL, &s.Note, &s.Status, &s.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read submission rows: %w", err)
	}
	return submissions, nil
}

func (r *SubmissionRepository) LatestByOrder(ctx context.Context, q Querier, orderID uuid.UUID) (*entities.Submission, error) {
	if q == nil {
		q = r.storage
	}
	query := fmt.Sprintf(`SELECT %s FROM order_submissions WHERE order_id = $1 ORDER BY submitted_at DESC, id DESC LIMIT 1`, submissionColumns)

	var s entities.Submission
	err := q.QueryRow(ctx, query, orderID).Scan(&s.ID, &s.OrderID, &s.WriterID, &s.FileURL, &s.Note, &s.Status, &s.SubmittedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest submission: %w", err)
	}
	return &s, nil
}

func (r *SubmissionRepository) UpdateStatus(ctx context.Context, q Querier, id uuid.UUID, status string) error {
	if q == nil {
		q = r.storage
	}
	tag, err := q.Exec(ctx, `UPDATE order_submissions SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update submission status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
