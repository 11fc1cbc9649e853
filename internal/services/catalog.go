package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Nduhiu17/treasure-shop-api/internal/dto"
	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
	"github.com/Nduhiu17/treasure-shop-api/internal/repositories"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
)

const catalogCacheKey = "catalog:v1"

type CatalogServiceInterface interface {
	GetCatalog(ctx context.Context) (*entities.Catalog, error)
	CreateOrderType(ctx context.Context, data dto.CreateOrderTypeDTO) (*entities.OrderType, error)
	UpdateOrderType(ctx context.Context, id uuid.UUID, data dto.UpdateOrderTypeDTO) error
	CreateAcademicLevel(ctx context.Context, data dto.CreateAcademicLevelDTO) (*entities.AcademicLevel, error)
	UpdateAcademicLevel(ctx context.Context, id uuid.UUID, data dto.UpdateAcademicLevelDTO) error
	CreateUrgency(ctx context.Context, data dto.CreateUrgencyDTO) (*entities.Urgency, error)
	UpdateUrgency(ctx context.Context, id uuid.UUID, data dto.UpdateUrgencyDTO) error
}

// CatalogService fronts the priced option dictionaries with a short-lived
// cache; the storefront order form hits this on every visit.
type CatalogService struct {
	catalogRepo repositories.CatalogRepositoryInterface
	cacheRepo   repositories.CacheRepositoryInterface
	cacheTTL    time.Duration
	logger      *zap.Logger
}

func NewCatalogService(
	catalogRepo repositories.CatalogRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) CatalogServiceInterface {
	return &CatalogService{
		catalogRepo: catalogRepo,
		cacheRepo:   cacheRepo,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

func (s *CatalogService) GetCatalog(ctx context.Context) (*entities.Catalog, error) {
	if cached, err := s.cacheRepo.Get(ctx, catalogCacheKey); err == nil && cached != "" {
		var catalog entities.Catalog
		if err := json.Unmarshal([]byte(cached), &catalog); err == nil {
			return &catalog, nil
		}
		s.logger.Warn("failed to decode cached catalog, falling back to db")
	}

	catalog, err := s.catalogRepo.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(catalog); err == nil {
		if err := s.cacheRepo.Set(ctx, catalogCacheKey, string(encoded), s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache catalog", zap.Error(err))
		}
	}
	return catalog, nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if err := s.cacheRepo.Del(ctx, catalogCacheKey); err != nil {
		s.logger.Warn("failed to invalidate catalog cache", zap.Error(err))
	}
}

func parsePrice(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero, apperrors.NewInvalidInputError("invalid price value %q", raw)
	}
	return d, nil
}

func (s *CatalogService) CreateOrderType(ctx context.Context, data dto.CreateOrderTypeDTO) (*entities.OrderType, error) {
	price, err := parsePrice(data.BasePricePerPage)
	if err != nil {
		return nil, err
	}
	ot := &entities.OrderType{ID: uuid.New(), Name: data.Name, BasePricePerPage: price}
	if err := s.catalogRepo.CreateOrderType(ctx, ot); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return ot, nil
}

func (s *CatalogService) UpdateOrderType(ctx context.Context, id uuid.UUID, data dto.UpdateOrderTypeDTO) error {
	ot, err := s.catalogRepo.FindOrderType(ctx, id)
	if err != nil {
		return err
	}
	if data.Name.Valid {
		ot.Name = data.Name.String
	}
	if data.BasePricePerPage.Valid {
		price, err := parsePrice(data.BasePricePerPage.String)
		if err != nil {
			return err
		}
		ot.BasePricePerPage = price
	}
	if err := s.catalogRepo.UpdateOrderType(ctx, ot); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) CreateAcademicLevel(ctx context.Context, data dto.CreateAcademicLevelDTO) (*entities.AcademicLevel, error) {
	multiplier, err := parsePrice(data.Multiplier)
	if err != nil {
		return nil, err
	}
	al := &entities.AcademicLevel{ID: uuid.New(), Name: data.Name, Multiplier: multiplier}
	if err := s.catalogRepo.CreateAcademicLevel(ctx, al); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return al, nil
}

func (s *CatalogService) UpdateAcademicLevel(ctx context.Context, id uuid.UUID, data dto.UpdateAcademicLevelDTO) error {
	al, err := s.catalogRepo.FindAcademicLevel(ctx, id)
	if err != nil {
		return err
	}
	if data.Name.Valid {
		al.Name = data.Name.String
	}
	if data.Multiplier.Valid {
		multiplier, err := parsePrice(data.Multiplier.String)
		if err != nil {
			return err
		}
		al.Multiplier = multiplier
	}
	if err := s.catalogRepo.UpdateAcademicLevel(ctx, al); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) CreateUrgency(ctx context.Context, data dto.CreateUrgencyDTO) (*entities.Urgency, error) {
	multiplier, err := parsePrice(data.Multiplier)
	if err != nil {
		return nil, err
	}
	u := &entities.Urgency{ID: uuid.New(), Name: data.Name, Hours: data.Hours, Multiplier: multiplier}
	if err := s.catalogRepo.CreateUrgency(ctx, u); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return u, nil
}

func (s *CatalogService) UpdateUrgency(ctx context.Context, id uuid.UUID, data dto.UpdateUrgencyDTO) error {
	u, err := s.catalogRepo.FindUrgency(ctx, id)
	if err != nil {
		return err
	}
	if data.Name.Valid {
		u.Name = data.Name.String
	}
	if data.Hours.Valid {
		u.Hours = data.Hours.Int
	}
	if data.Multiplier.Valid {
		multiplier, err := parsePrice(data.Multiplier.String)
		if err != nil {
			return err
		}
		u.Multiplier = multiplier
	}
	if err := s.catalogRepo.UpdateUrgency(ctx, u); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}
