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

// TransitionPayload carries the action-specific inputs. Fields that do not
// apply to the requested action are ignored.
type TransitionPayload struct {
	WriterID        *uuid.UUID // assign
	FileURL         string     // submit_work
	Note            string     // submit_work
	FeedbackText    string     // request_feedback
	FeedbackFileURL *string    // request_feedback
}

type transitionRule struct {
	from       []string
	to         string
	authorized func(a *authz.Authorizer, actor entities.Actor, order *entities.Order) bool
}

// transitionTable is the single authoritative status/action matrix. The
// dashboards render buttons from AllowedActions; nothing outside this
// engine decides legality.
var transitionTable = map[string]transitionRule{
	constants.ActionPay: {
		from: []string{constants.StatusPendingPayment},
		to:   constants.StatusPaid,
		authorized: func(a *authz.Authorizer, actor entities.Actor, order *entities.Order) bool {
			return a.IsOwner(actor, order) || a.IsAdmin(actor)
		},
	},
	constants.ActionAssign: {
		// A paid order sits in the same assignment queue as one explicitly
		// parked at awaiting_assignment.
		from: []string{constants.StatusPaid, constants.StatusAwaitingAssignment, constants.StatusAwaitingAssignmentRejected},
		to:   constants.StatusAwaitingAsignAcceptance,
		authorized: func(a *authz.Authorizer, actor entities.Actor, order *entities.Order) bool {
			return a.IsAdmin(actor)
		},
	},
	constants.ActionAcceptAssignment: {
		from: []string{constants.StatusAwaitingAsignAcceptance},
		to:   constants.StatusAssigned,
		authorized: func(a *authz.Authorizer, actor entities.Actor, order *entities.Order) bool {
			return a.IsAssignedWriter(actor, order)
		},
	},
	constants.ActionRejectAssignment: {
		from: []string{constants.StatusAwaitingAsignAcceptance},
		to:   constants.StatusAwaitingAssignmentRejected,
		authorized: func(a *authz.Authorizer, actor entities.Actor, order *entities.Order) bool {
			return a.IsAssignedWriter(actor, order)
		},
	},
	constants.ActionStartProgress: {
		from: []string{constants.StatusAssigned},
		to:   constants.StatusInProgress,
		authorized: func(a *authz.Authorizer, actor entities.Actor, order *entities.Order) bool {
			return a.IsAssignedWriter(actor, order)
		},
	},
	constants.ActionSubmitWork: {
		// Resubmission after feedback goes straight back to review,
		// skipping in_progress.
		from: []string{constants.StatusAssigned, constants.StatusInProgress, constants.StatusFeedback},
		to:   constants.StatusSubmittedForReview,
		authorized: func(a *authz.Authorizer, actor entities.Actor, order *entities.Order) bool {
			return a.IsAssignedWriter(actor, order)
		},
	},
	constants.ActionApprove: {
		from: []string{constants.StatusSubmittedForReview},
		to:   constants.StatusApproved,
		authorized: func(a *authz.Authorizer, actor entities.Actor, order *entities.Order) bool {
			return a.IsOwner(actor, order) || a.IsAdmin(actor)
		},
	},
	constants.ActionRequestFeedback: {
		from: []string{constants.StatusSubmittedForReview},
		to:   constants.StatusFeedback,
		authorized: func(a *authz.Authorizer, actor entities.Actor, order *entities.Order) bool {
			return a.IsOwner(actor, order) || a.IsAdmin(actor)
		},
	},
	constants.ActionMarkCompleted: {
		from: []string{constants.StatusApproved},
		to:   constants.StatusCompleted,
		authorized: func(a *authz.Authorizer, actor entities.Actor, order *entities.Order) bool {
			return a.IsAdmin(actor)
		},
	},
}

// actionOrder keeps AllowedActions output deterministic.
var actionOrder = []string{
	constants.ActionPay,
	constants.ActionAssign,
	constants.ActionAcceptAssignment,
	constants.ActionRejectAssignment,
	constants.ActionStartProgress,
	constants.ActionSubmitWork,
	constants.ActionApprove,
	constants.ActionRequestFeedback,
	constants.ActionMarkCompleted,
}

type TransitionEngineInterface interface {
	Transition(ctx context.Context, orderID uuid.UUID, action string, actor entities.Actor, payload TransitionPayload) (*entities.Order, error)
	AllowedActions(order *entities.Order, actor entities.Actor) []string
}

type TransitionEngine struct {
	db          repositories.DB
	orderRepo   repositories.OrderRepositoryInterface
	assignments *AssignmentCoordinator
	submissions *SubmissionTracker
	reviews     *ReviewEngine
	authorizer  *authz.Authorizer
	logger      *zap.Logger
}

func NewTransitionEngine(
	db repositories.DB,
	orderRepo repositories.OrderRepositoryInterface,
	assignments *AssignmentCoordinator,
	submissions *SubmissionTracker,
	reviews *ReviewEngine,
	authorizer *authz.Authorizer,
	logger *zap.Logger,
) *TransitionEngine {
	return &TransitionEngine{
		db:          db,
		orderRepo:   orderRepo,
		assignments: assignments,
		submissions: submissions,
		reviews:     reviews,
		authorizer:  authorizer,
		logger:      logger,
	}
}

// Transition applies one action to one order atomically. It either fully
// applies (status changed, side-table rows written, updated_at refreshed)
// or rejects with a typed error and no partial state.
func (e *TransitionEngine) Transition(ctx context.Context, orderID uuid.UUID, action string, actor entities.Actor, payload TransitionPayload) (*entities.Order, error) {
	rule, ok := transitionTable[action]
	if !ok {
		return nil, apperrors.NewInvalidInputError("unknown action %q", action)
	}

	var order *entities.Order
	err := repositories.WithTx(ctx, e.db, func(tx pgx.Tx) error {
		var err error
		order, err = e.orderRepo.FindByID(ctx, tx, orderID)
		if err != nil {
			return err
		}

		if !statusIn(order.Status, rule.from) {
			return apperrors.NewInvalidTransition(action, order.Status)
		}
		if !rule.authorized(e.authorizer, actor, order) {
			return apperrors.ErrUnauthorized
		}

		if err := e.applySideEffects(ctx, tx, order, action, actor, payload); err != nil {
			return err
		}

		order.Status = rule.to
		return e.orderRepo.Save(ctx, tx, order)
	})
	if err != nil {
		e.logger.Warn("order transition rejected",
			zap.String("orderId", orderID.String()),
			zap.String("action", action),
			zap.Error(err))
		return nil, err
	}

	e.logger.Info("order transition applied",
		zap.String("orderId", order.ID.String()),
		zap.String("orderNumber", order.OrderNumber),
		zap.String("action", action),
		zap.String("status", order.Status))
	return order, nil
}

// applySideEffects delegates the action's writes to the owning component.
// Legality and authorization are already checked; components only validate
// their own prerequisites.
func (e *TransitionEngine) applySideEffects(ctx context.Context, tx pgx.Tx, order *entities.Order, action string, actor entities.Actor, payload TransitionPayload) error {
	switch action {
	case constants.ActionAssign:
		return e.assignments.assign(ctx, tx, order, payload.WriterID)
	case constants.ActionRejectAssignment:
		e.assignments.clearWriter(order)
		return nil
	case constants.ActionSubmitWork:
		return e.submissions.record(ctx, tx, order, payload.FileURL, payload.Note)
	case constants.ActionApprove:
		return e.reviews.approveLatest(ctx, tx, order)
	case constants.ActionRequestFeedback:
		return e.reviews.recordFeedback(ctx, tx, order, actor, payload.FeedbackText, payload.FeedbackFileURL)
	default:
		// pay, accept_assignment, start_progress and mark_completed only
		// move the status.
		return nil
	}
}

// AllowedActions reports which actions this actor may invoke on the order
// right now. The UI is a thin renderer of this list.
func (e *TransitionEngine) AllowedActions(order *entities.Order, actor entities.Actor) []string {
	actions := make([]string, 0)
	for _, action := range actionOrder {
		rule := transitionTable[action]
		if statusIn(order.Status, rule.from) && rule.authorized(e.authorizer, actor, order) {
			actions = append(actions, action)
		}
	}
	return actions
}

func statusIn(status string, set []string) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}
