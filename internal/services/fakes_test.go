package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Nduhiu17/treasure-shop-api/internal/authz"
	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
	"github.com/Nduhiu17/treasure-shop-api/internal/repositories"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
	"github.com/Nduhiu17/treasure-shop-api/pkg/types"
)

// fakeTx satisfies pgx.Tx for engine tests; only Commit and Rollback are
// ever called because the repositories underneath are in-memory fakes.
type fakeTx struct{ pgx.Tx }

func (fakeTx) Commit(ctx context.Context) error   { return nil }
func (fakeTx) Rollback(ctx context.Context) error { return nil }

type fakeDB struct{ repositories.DB }

func (fakeDB) Begin(ctx context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

type fakeOrderRepo struct {
	orders  map[uuid.UUID]*entities.Order
	nextSeq int
	saveErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entities.Order), nextSeq: 1000}
}

func (r *fakeOrderRepo) Create(ctx context.Context, q repositories.Querier, order *entities.Order) error {
	order.OrderNumber = fmt.Sprintf("TS-%d", r.nextSeq)
	r.nextSeq++
	order.Version = 1
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, q repositories.Querier, id uuid.UUID) (*entities.Order, error) {
	stored, ok := r.orders[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cpy := *stored
	return &cpy, nil
}

func (r *fakeOrderRepo) Save(ctx context.Context, q repositories.Querier, order *entities.Order) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	stored, ok := r.orders[order.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if stored.Version != order.Version {
		return apperrors.ErrConflict
	}
	order.Version++
	order.UpdatedAt = time.Now()
	cpy := *order
	r.orders[order.ID] = &cpy
	return nil
}

func (r *fakeOrderRepo) List(ctx context.Context, filter types.Filter, scope repositories.OrderScope) ([]entities.Order, uint64, error) {
	out := make([]entities.Order, 0)
	for _, o := range r.orders {
		if scope.CustomerID != nil && o.CustomerID != *scope.CustomerID {
			continue
		}
		if scope.WriterID != nil && (o.WriterID == nil || *o.WriterID != *scope.WriterID) {
			continue
		}
		out = append(out, *o)
	}
	return out, uint64(len(out)), nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entities.User)}
}

func (r *fakeUserRepo) add(roles ...string) uuid.UUID {
	id := uuid.New()
	r.users[id] = &entities.User{ID: id, Roles: roles}
	return id
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) AssignRole(ctx context.Context, userID uuid.UUID, roleCode string) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	user.Roles = append(user.Roles, roleCode)
	return nil
}

type fakeSubmissionRepo struct {
	submissions []entities.Submission
}

func (r *fakeSubmissionRepo) Create(ctx context.Context, q repositories.Querier, submission *entities.Submission) error {
	submission.SubmittedAt = time.Now().Add(time.Duration(len(r.submissions)) * time.Second)
	r.submissions = append(r.submissions, *submission)
	return nil
}

func (r *fakeSubmissionRepo) ListByOrder(ctx context.Context, q repositories.Querier, orderID uuid.UUID) ([]entities.Submission, error) {
	out := make([]entities.Submission, 0)
	for i := len(r.submissions) - 1; i >= 0; i-- {
		if r.submissions[i].OrderID == orderID {
			out = append(out, r.submissions[i])
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) LatestByOrder(ctx context.Context, q repositories.Querier, orderID uuid.UUID) (*entities.Submission, error) {
	for i := len(r.submissions) - 1; i >= 0; i-- {
		if r.submissions[i].OrderID == orderID {
			cpy := r.submissions[i]
			return &cpy, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeSubmissionRepo) UpdateStatus(ctx context.Context, q repositories.Querier, id uuid.UUID, status string) error {
	for i := range r.submissions {
		if r.submissions[i].ID == id {
			r.submissions[i].Status = status
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakeFeedbackRepo struct {
	feedbacks []entities.Feedback
}

func (r *fakeFeedbackRepo) Create(ctx context.Context, q repositories.Querier, feedback *entities.Feedback) error {
	feedback.CreatedAt = time.Now()
	r.feedbacks = append(r.feedbacks, *feedback)
	return nil
}

func (r *fakeFeedbackRepo) ListByOrder(ctx context.Context, q repositories.Querier, orderID uuid.UUID) ([]entities.Feedback, error) {
	out := make([]entities.Feedback, 0)
	for i := len(r.feedbacks) - 1; i >= 0; i-- {
		if r.feedbacks[i].OrderID == orderID {
			out = append(out, r.feedbacks[i])
		}
	}
	return out, nil
}

// testEnv bundles a fully wired engine over in-memory repositories.
type testEnv struct {
	orderRepo      *fakeOrderRepo
	userRepo       *fakeUserRepo
	submissionRepo *fakeSubmissionRepo
	feedbackRepo   *fakeFeedbackRepo
	engine         *TransitionEngine
	submissions    *SubmissionTracker
	reviews        *ReviewEngine
}

func newTestEnv() *testEnv {
	logger := zap.NewNop()
	authorizer := authz.NewAuthorizer()
	db := fakeDB{}

	orderRepo := newFakeOrderRepo()
	userRepo := newFakeUserRepo()
	submissionRepo := &fakeSubmissionRepo{}
	feedbackRepo := &fakeFeedbackRepo{}

	assignments := NewAssignmentCoordinator(userRepo, logger)
	submissions := NewSubmissionTracker(db, orderRepo, submissionRepo, authorizer, logger)
	reviews := NewReviewEngine(db, orderRepo, submissionRepo, feedbackRepo, authorizer, logger)
	engine := NewTransitionEngine(db, orderRepo, assignments, submissions, reviews, authorizer, logger)

	return &testEnv{
		orderRepo:      orderRepo,
		userRepo:       userRepo,
		submissionRepo: submissionRepo,
		feedbackRepo:   feedbackRepo,
		engine:         engine,
		submissions:    submissions,
		reviews:        reviews,
	}
}

// seedOrder stores an order in the given status and returns it with fresh
// customer and (optionally assigned) writer actors.
func (env *testEnv) seedOrder(status string, assignWriter bool) (*entities.Order, entities.Actor, entities.Actor) {
	customerID := env.userRepo.add("user")
	writerID := env.userRepo.add("writer")

	order := &entities.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		Status:     status,
		NoOfPages:  5,
	}
	if assignWriter {
		order.WriterID = &writerID
	}
	_ = env.orderRepo.Create(context.Background(), nil, order)

	customer := entities.Actor{ID: customerID, Roles: []string{"user"}}
	writer := entities.Actor{ID: writerID, Roles: []string{"writer"}}
	return order, customer, writer
}

func (env *testEnv) admin() entities.Actor {
	id := env.userRepo.add("admin")
	return entities.Actor{ID: id, Roles: []string{"admin"}}
}
