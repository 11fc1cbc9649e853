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

// ReviewEngine resolves a submitted-for-review order either way: approval
// marks the latest submission approved, a change request files an immutable
// feedback record and reopens the order for a new submission. Older
// submissions keep their state, so the review history is preserved.
type ReviewEngine struct {
	db             repositories.DB
	orderRepo      repositories.OrderRepositoryInterface
	submissionRepo repositories.SubmissionRepositoryInterface
	feedbackRepo   repositories.FeedbackRepositoryInterface
	authorizer     *authz.Authorizer
	logger         *zap.Logger
}

func NewReviewEngine(
	db repositories.DB,
	orderRepo repositories.OrderRepositoryInterface,
	submissionRepo repositories.SubmissionRepositoryInterface,
	feedbackRepo repositories.FeedbackRepositoryInterface,
	authorizer *authz.Authorizer,
	logger *zap.Logger,
) *ReviewEngine {
	return &ReviewEngine{
		db:             db,
		orderRepo:      orderRepo,
		submissionRepo: submissionRepo,
		feedbackRepo:   feedbackRepo,
		authorizer:     authorizer,
		logger:         logger,
	}
}

func (e *ReviewEngine) approveLatest(ctx context.Context, tx pgx.Tx, order *entities.Order) error {
	latest, err := e.submissionRepo.LatestByOrder(ctx, tx, order.ID)
	if err != nil {
		return apperrors.NewMissingPrerequisite("order %s has no submission to approve", order.OrderNumber)
	}
	return e.submissionRepo.UpdateStatus(ctx, tx, latest.ID, constants.SubmissionApproved)
}

func (e *ReviewEngine) recordFeedback(ctx context.Context, tx pgx.Tx, order *entities.Order, actor entities.Actor, text string, fileURL *string) error {
	if text == "" {
		return apperrors.NewMissingPrerequisite("feedback requires a message")
	}

	latest, err := e.submissionRepo.LatestByOrder(ctx, tx, order.ID)
	if err != nil {
		return apperrors.NewMissingPrerequisite("order %s has no submission to review", order.OrderNumber)
	}
	if err := e.submissionRepo.UpdateStatus(ctx, tx, latest.ID, constants.SubmissionChangeRequested); err != nil {
		return err
	}

	feedback := &entities.Feedback{
		ID:       uuid.New(),
		OrderID:  order.ID,
		AuthorID: actor.ID,
		Text:     text,
		FileURL:  fileURL,
	}
	return e.feedbackRepo.Create(ctx, tx, feedback)
}

// ListFeedbacks returns an order's change requests newest first.
func (e *ReviewEngine) ListFeedbacks(ctx context.Context, orderID uuid.UUID, actor entities.Actor) ([]entities.Feedback, error) {
	order, err := e.orderRepo.FindByID(ctx, nil, orderID)
	if err != nil {
		return nil, err
	}
	if !e.authorizer.CanView(actor, order) {
		return nil, apperrors.ErrUnauthorized
	}
	return e.feedbackRepo.ListByOrder(ctx, nil, orderID)
}
