package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
)

// fakeCatalogRepo backs pricing tests with fixed rates.
type fakeCatalogRepo struct {
	orderTypes map[uuid.UUID]*entities.OrderType
	levels     map[uuid.UUID]*entities.AcademicLevel
	urgencies  map[uuid.UUID]*entities.Urgency
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		orderTypes: make(map[uuid.UUID]*entities.OrderType),
		levels:     make(map[uuid.UUID]*entities.AcademicLevel),
		urgencies:  make(map[uuid.UUID]*entities.Urgency),
	}
}

func (r *fakeCatalogRepo) addRates(base, levelMult, urgencyMult string) (uuid.UUID, uuid.UUID, uuid.UUID) {
	ot := &entities.OrderType{ID: uuid.New(), BasePricePerPage: decimal.RequireFromString(base)}
	al := &entities.AcademicLevel{ID: uuid.New(), Multiplier: decimal.RequireFromString(levelMult)}
	u := &entities.Urgency{ID: uuid.New(), Multiplier: decimal.RequireFromString(urgencyMult)}
	r.orderTypes[ot.ID] = ot
	r.levels[al.ID] = al
	r.urgencies[u.ID] = u
	return ot.ID, al.ID, u.ID
}

func (r *fakeCatalogRepo) GetCatalog(ctx context.Context) (*entities.Catalog, error) {
	return &entities.Catalog{}, nil
}

func (r *fakeCatalogRepo) FindOrderType(ctx context.Context, id uuid.UUID) (*entities.OrderType, error) {
	ot, ok := r.orderTypes[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return ot, nil
}

func (r *fakeCatalogRepo) FindAcademicLevel(ctx context.Context, id uuid.UUID) (*entities.AcademicLevel, error) {
	al, ok := r.levels[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return al, nil
}

func (r *fakeCatalogRepo) FindUrgency(ctx context.Context, id uuid.UUID) (*entities.Urgency, error) {
	u, ok := r.urgencies[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return u, nil
}

func (r *fakeCatalogRepo) CreateOrderType(ctx context.Context, ot *entities.OrderType) error {
	r.orderTypes[ot.ID] = ot
	return nil
}

func (r *fakeCatalogRepo) UpdateOrderType(ctx context.Context, ot *entities.OrderType) error {
	r.orderTypes[ot.ID] = ot
	return nil
}

func (r *fakeCatalogRepo) CreateAcademicLevel(ctx context.Context, al *entities.AcademicLevel) error {
	r.levels[al.ID] = al
	return nil
}

func (r *fakeCatalogRepo) UpdateAcademicLevel(ctx context.Context, al *entities.AcademicLevel) error {
	r.levels[al.ID] = al
	return nil
}

func (r *fakeCatalogRepo) CreateUrgency(ctx context.Context, u *entities.Urgency) error {
	r.urgencies[u.ID] = u
	return nil
}

func (r *fakeCatalogRepo) UpdateUrgency(ctx context.Context, u *entities.Urgency) error {
	r.urgencies[u.ID] = u
	return nil
}

func TestCalculatePrice(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		urgency  string
		level    string
		pages    int
		expected string
	}{
		{"reference formula", "10", "1.5", "1.2", 5, "90"},
		{"single page no multipliers", "10", "1", "1", 1, "10"},
		{"rounds to cents", "9.99", "1.33", "1.17", 3, "46.64"},
		{"large order", "20", "2", "2", 100, "8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePrice(
				decimal.RequireFromString(tt.base),
				decimal.RequireFromString(tt.urgency),
				decimal.RequireFromString(tt.level),
				tt.pages,
			)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"got %s, want %s", got, tt.expected)
		})
	}
}

func TestCalculatePrice_Deterministic(t *testing.T) {
	base := decimal.RequireFromString("12.50")
	urgency := decimal.RequireFromString("1.8")
	level := decimal.RequireFromString("1.5")

	first := CalculatePrice(base, urgency, level, 7)
	for i := 0; i < 10; i++ {
		assert.True(t, first.Equal(CalculatePrice(base, urgency, level, 7)))
	}
}

func TestPricingService_Quote(t *testing.T) {
	ctx := context.Background()
	catalog := newFakeCatalogRepo()
	typeID, levelID, urgencyID := catalog.addRates("10", "1.2", "1.5")
	svc := NewPricingService(catalog, zap.NewNop())

	price, err := svc.Quote(ctx, PriceSelection{
		OrderTypeID:     &typeID,
		AcademicLevelID: &levelID,
		UrgencyID:       &urgencyID,
		Pages:           5,
	})
	require.NoError(t, err)
	assert.Equal(t, "90.00", price.StringFixed(2))
}

func TestPricingService_Quote_IncompleteSelection(t *testing.T) {
	ctx := context.Background()
	catalog := newFakeCatalogRepo()
	typeID, levelID, urgencyID := catalog.addRates("10", "1.2", "1.5")
	svc := NewPricingService(catalog, zap.NewNop())
	unknown := uuid.New()

	tests := []struct {
		name      string
		selection PriceSelection
		field     string
	}{
		{"missing order type", PriceSelection{AcademicLevelID: &levelID, UrgencyID: &urgencyID, Pages: 5}, "order type"},
		{"missing level", PriceSelection{OrderTypeID: &typeID, UrgencyID: &urgencyID, Pages: 5}, "academic level"},
		{"missing urgency", PriceSelection{OrderTypeID: &typeID, AcademicLevelID: &levelID, Pages: 5}, "urgency"},
		{"zero pages", PriceSelection{OrderTypeID: &typeID, AcademicLevelID: &levelID, UrgencyID: &urgencyID}, "page count"},
		{"unknown order type", PriceSelection{OrderTypeID: &unknown, AcademicLevelID: &levelID, UrgencyID: &urgencyID, Pages: 5}, "order type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Quote(ctx, tt.selection)
			var incomplete *apperrors.IncompleteSelectionError
			require.ErrorAs(t, err, &incomplete)
			assert.Equal(t, tt.field, incomplete.Field)
		})
	}
}

// A stored order price must survive catalog rate changes untouched.
func TestPricingService_StoredPriceImmuneToCatalogChange(t *testing.T) {
	ctx := context.Background()
	catalog := newFakeCatalogRepo()
	typeID, levelID, urgencyID := catalog.addRates("10", "1.2", "1.5")
	svc := NewPricingService(catalog, zap.NewNop())

	selection := PriceSelection{
		OrderTypeID:     &typeID,
		AcademicLevelID: &levelID,
		UrgencyID:       &urgencyID,
		Pages:           5,
	}
	original, err := svc.Quote(ctx, selection)
	require.NoError(t, err)

	// the admin doubles the base rate after the order was priced
	catalog.orderTypes[typeID].BasePricePerPage = decimal.RequireFromString("20")

	requote, err := svc.Quote(ctx, selection)
	require.NoError(t, err)
	assert.False(t, original.Equal(requote), "a new quote must see the new rate")
	assert.Equal(t, "90.00", original.StringFixed(2), "the stored value never changes")
	assert.Equal(t, "180.00", requote.StringFixed(2))
}
