package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Nduhiu17/treasure-shop-api/internal/repositories"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
)

// PriceSelection is the set of priced options chosen on the order form.
type PriceSelection struct {
	OrderTypeID     *uuid.UUID
	AcademicLevelID *uuid.UUID
	UrgencyID       *uuid.UUID
	Pages           int
}

// CalculatePrice is the pricing formula:
//
//	base_price_per_page × urgency_multiplier × level_multiplier × pages
//
// Pure and deterministic; rounded to two decimal places.
func CalculatePrice(basePricePerPage, urgencyMultiplier, levelMultiplier decimal.Decimal, pages int) decimal.Decimal {
	return basePricePerPage.
		Mul(urgencyMultiplier).
		Mul(levelMultiplier).
		Mul(decimal.NewFromInt(int64(pages))).
		Round(2)
}

type PricingServiceInterface interface {
	Quote(ctx context.Context, selection PriceSelection) (decimal.Decimal, error)
}

// PricingService resolves a selection against the catalog and applies the
// formula. The result is stored on the order at creation; later catalog
// changes never retouch stored prices.
type PricingService struct {
	catalogRepo repositories.CatalogRepositoryInterface
	logger      *zap.Logger
}

func NewPricingService(catalogRepo repositories.CatalogRepositoryInterface, logger *zap.Logger) PricingServiceInterface {
	return &PricingService{catalogRepo: catalogRepo, logger: logger}
}

func (s *PricingService) Quote(ctx context.Context, selection PriceSelection) (decimal.Decimal, error) {
	if selection.OrderTypeID == nil {
		return decimal.Zero, apperrors.NewIncompleteSelection("order type")
	}
	if selection.AcademicLevelID == nil {
		return decimal.Zero, apperrors.NewIncompleteSelection("academic level")
	}
	if selection.UrgencyID == nil {
		return decimal.Zero, apperrors.NewIncompleteSelection("urgency")
	}
	if selection.Pages <= 0 {
		return decimal.Zero, apperrors.NewIncompleteSelection("page count")
	}

	orderType, err := s.catalogRepo.FindOrderType(ctx, *selection.OrderTypeID)
	if err != nil {
		return decimal.Zero, apperrors.NewIncompleteSelection("order type")
	}
	level, err := s.catalogRepo.FindAcademicLevel(ctx, *selection.AcademicLevelID)
	if err != nil {
		return decimal.Zero, apperrors.NewIncompleteSelection("academic level")
	}
	urgency, err := s.catalogRepo.FindUrgency(ctx, *selection.UrgencyID)
	if err != nil {
		return decimal.Zero, apperrors.NewIncompleteSelection("urgency")
	}

	return CalculatePrice(orderType.BasePricePerPage, urgency.Multiplier, level.Multiplier, selection.Pages), nil
}
