package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Nduhiu17/treasure-shop-api/pkg/types"
)

// Order is the unit of work purchased by a customer and fulfilled by a
// writer. Status is the single source of truth for what actions are valid;
// only the transition engine writes it.
type Order struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	OrderNumber string     `json:"order_number" db:"order_number"`
	CustomerID  uuid.UUID  `json:"customer_id" db:"customer_id"`
	WriterID    *uuid.UUID `json:"writer_id,omitempty" db:"writer_id"`
	Status      string     `json:"status" db:"status"`

	OrderTypeID     uuid.UUID `json:"order_type_id" db:"order_type_id"`
	AcademicLevelID uuid.UUID `json:"academic_level_id" db:"academic_level_id"`
	UrgencyID       uuid.UUID `json:"urgency_id" db:"urgency_id"`
	StyleID         uuid.UUID `json:"style_id" db:"style_id"`
	LanguageID      uuid.UUID `json:"language_id" db:"language_id"`

	NoOfPages   int `json:"no_of_pages" db:"no_of_pages"`
	NoOfSources int `json:"no_of_sources" db:"no_of_sources"`

	HighPriority      bool `json:"high_priority" db:"high_priority"`
	TopWriter         bool `json:"top_writer" db:"top_writer"`
	PlagiarismReport  bool `json:"plagiarism_report" db:"plagiarism_report"`
	OnePageSummary    bool `json:"one_page_summary" db:"one_page_summary"`
	ExtraQualityCheck bool `json:"extra_quality_check" db:"extra_quality_check"`
	InitialDraft      bool `json:"initial_draft" db:"initial_draft"`
	SMSUpdate         bool `json:"sms_update" db:"sms_update"`
	CopyOfSources     bool `json:"copy_of_sources" db:"copy_of_sources"`
	PreferredWriter   bool `json:"preferred_writer" db:"preferred_writer"`

	// Price is fixed at creation time by the pricing calculator and is
	// never recomputed from the catalog afterwards.
	Price decimal.Decimal `json:"price" db:"price"`

	Title           string  `json:"title" db:"title"`
	Description     string  `json:"description" db:"description"`
	OriginalFileURL *string `json:"original_file_url,omitempty" db:"original_file_url"`

	// Version backs the optimistic per-order write lock.
	Version int `json:"-" db:"version"`

	types.BaseEntity
}
