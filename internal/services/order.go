package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Nduhiu17/treasure-shop-api/internal/authz"
	"github.com/Nduhiu17/treasure-shop-api/internal/dto"
	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
	"github.com/Nduhiu17/treasure-shop-api/internal/repositories"
	"github.com/Nduhiu17/treasure-shop-api/pkg/constants"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
	"github.com/Nduhiu17/treasure-shop-api/pkg/types"
)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, data dto.CreateOrderDTO, originalFileURL *string, actor entities.Actor) (*entities.Order, error)
	FindOrder(ctx context.Context, id uuid.UUID, actor entities.Actor) (*entities.Order, error)
	ListOrders(ctx context.Context, filter types.Filter, actor entities.Actor) ([]entities.Order, uint64, error)
}

type OrderService struct {
	orderRepo repositories.OrderRepositoryInterface
	pricing   PricingServiceInterface
	authz     *authz.Authorizer
	logger    *zap.Logger
}

func NewOrderService(
	orderRepo repositories.OrderRepositoryInterface,
	pricing PricingServiceInterface,
	authorizer *authz.Authorizer,
	logger *zap.Logger,
) OrderServiceInterface {
	return &OrderService{
		orderRepo: orderRepo,
		pricing:   pricing,
		authz:     authorizer,
		logger:    logger,
	}
}

// CreateOrder prices the selection and stores the order at
// pending_payment. The computed price is frozen on the row; catalog rate
// changes never reprice an existing order.
func (s *OrderService) CreateOrder(ctx context.Context, data dto.CreateOrderDTO, originalFileURL *string, actor entities.Actor) (*entities.Order, error) {
	price, err := s.pricing.Quote(ctx, PriceSelection{
		OrderTypeID:     data.OrderTypeID,
		AcademicLevelID: data.AcademicLevelID,
		UrgencyID:       data.UrgencyID,
		Pages:           data.NoOfPages,
	})
	if err != nil {
		return nil, err
	}

	order := &entities.Order{
		ID:              uuid.New(),
		CustomerID:      actor.ID,
		Status:          constants.StatusPendingPayment,
		OrderTypeID:     *data.OrderTypeID,
		AcademicLevelID: *data.AcademicLevelID,
		UrgencyID:       *data.UrgencyID,
		StyleID:         *data.StyleID,
		LanguageID:      *data.LanguageID,
		NoOfPages:       data.NoOfPages,
		NoOfSources:     data.NoOfSources,

		HighPriority:      data.HighPriority,
		TopWriter:         data.TopWriter,
		PlagiarismReport:  data.PlagiarismReport,
		OnePageSummary:    data.OnePageSummary,
		ExtraQualityCheck: data.ExtraQualityCheck,
		InitialDraft:      data.InitialDraft,
		SMSUpdate:         data.SMSUpdate,
		CopyOfSources:     data.CopyOfSources,
		PreferredWriter:   data.PreferredWriter,

		Price:           price,
		Title:           data.Title,
		Description:     data.Description,
		OriginalFileURL: originalFileURL,
	}

	if err := s.orderRepo.Create(ctx, nil, order); err != nil {
		s.logger.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	s.logger.Info("order created",
		zap.String("orderNumber", order.OrderNumber),
		zap.String("customerId", order.CustomerID.String()),
		zap.String("price", order.Price.StringFixed(2)))
	return order, nil
}

func (s *OrderService) FindOrder(ctx context.Context, id uuid.UUID, actor entities.Actor) (*entities.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if !s.authz.CanView(actor, order) {
		return nil, apperrors.ErrUnauthorized
	}
	return order, nil
}

// ListOrders scopes the listing by role: admins see every order, writers
// the orders assigned to them, customers their own.
func (s *OrderService) ListOrders(ctx context.Context, filter types.Filter, actor entities.Actor) ([]entities.Order, uint64, error) {
	scope := repositories.OrderScope{}
	switch {
	case s.authz.IsAdmin(actor):
		// unrestricted
	case actor.HasRole(constants.RoleWriter):
		id := actor.ID
		scope.WriterID = &id
	default:
		id := actor.ID
		scope.CustomerID = &id
	}
	return s.orderRepo.List(ctx, filter, scope)
}
