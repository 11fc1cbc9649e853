package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Nduhiu17/treasure-shop-api/internal/authz"
	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
	"github.com/Nduhiu17/treasure-shop-api/internal/repositories"
	"github.com/Nduhiu17/treasure-shop-api/pkg/constants"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
)

// SubmissionTracker records writer submissions per order. Submissions are
// append-only: a correction is always a new row, never an edit.
type SubmissionTracker struct {
	db             repositories.DB
	orderRepo      repositories.OrderRepositoryInterface
	submissionRepo repositories.SubmissionRepositoryInterface
	authorizer     *authz.Authorizer
	logger         *zap.Logger
}

func NewSubmissionTracker(
	db repositories.DB,
	orderRepo repositories.OrderRepositoryInterface,
	submissionRepo repositories.SubmissionRepositoryInterface,
	authorizer *authz.Authorizer,
	logger *zap.Logger,
) *SubmissionTracker {
	return &SubmissionTracker{
		db:             db,
		orderRepo:      orderRepo,
		submissionRepo: submissionRepo,
		authorizer:     authorizer,
		logger:         logger,
	}
}

// record appends a new pending_review submission for the assigned writer.
func (t *SubmissionTracker) record(ctx context.Context, tx pgx.Tx, order *entities.Order, fileURL, note string) error {
	if order.WriterID == nil {
		return apperrors.NewMissingPrerequisite("order %s has no assigned writer", order.OrderNumber)
	}
	if fileURL == "" {
		return apperrors.NewMissingPrerequisite("a submission requires a file")
	}

	submission := &entities.Submission{
		ID:       uuid.New(),
		OrderID:  order.ID,
		WriterID: *order.WriterID,
		FileURL:  fileURL,
		Note:     note,
		Status:   constants.SubmissionPendingReview,
	}
	return t.submissionRepo.Create(ctx, tx, submission)
}

// List returns an order's submissions newest first, gated by view access.
func (t *SubmissionTracker) List(ctx context.Context, orderID uuid.UUID, actor entities.Actor) ([]entities.Submission, error) {
	order, err := t.orderRepo.FindByID(ctx, nil, orderID)
	if err != nil {
		return nil, err
	}
	if !t.authorizer.CanView(actor, order) {
		return nil, apperrors.ErrUnauthorized
	}
	return t.submissionRepo.ListByOrder(ctx, nil, orderID)
}

// Latest returns the only submission eligible for approve/feedback.
func (t *SubmissionTracker) Latest(ctx context.Context, orderID uuid.UUID, actor entities.Actor) (*entities.Submission, error) {
	order, err := t.orderRepo.FindByID(ctx, nil, orderID)
	if err != nil {
		return nil, err
	}
	if !t.authorizer.CanView(actor, order) {
		return nil, apperrors.ErrUnauthorized
	}
	return t.submissionRepo.LatestByOrder(ctx, nil, orderID)
}
