package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Nduhiu17/treasure-shop-api/pkg/types"
)

// Priced catalog options referenced by orders. Changing a rate here does
// not touch prices already stored on existing orders.

type OrderType struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	Name             string          `json:"name" db:"name"`
	BasePricePerPage decimal.Decimal `json:"base_price_per_page" db:"base_price_per_page"`

	types.BaseEntity
}

type AcademicLevel struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	Name       string          `json:"name" db:"name"`
	Multiplier decimal.Decimal `json:"multiplier" db:"multiplier"`

	types.BaseEntity
}

type Urgency struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	Name       string          `json:"name" db:"name"`
	Hours      int             `json:"hours" db:"hours"`
	Multiplier decimal.Decimal `json:"multiplier" db:"multiplier"`

	types.BaseEntity
}

type WritingStyle struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`

	types.BaseEntity
}

type Language struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`

	types.BaseEntity
}

// Catalog bundles every priced option list for the storefront order form.
type Catalog struct {
	OrderTypes     []OrderType     `json:"order_types"`
	AcademicLevels []AcademicLevel `json:"academic_levels"`
	Urgencies      []Urgency       `json:"urgencies"`
	WritingStyles  []WritingStyle  `json:"writing_styles"`
	Languages      []Language      `json:"languages"`
}
