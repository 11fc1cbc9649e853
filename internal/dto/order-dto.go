package dto

import (
	"github.com/google/uuid"

	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
)

type CreateOrderDTO struct {
	Title           string     `json:"title" validate:"required,min=5,max=255"`
	Description     string     `json:"description" validate:"required,min=10"`
	OrderTypeID     *uuid.UUID `json:"order_type_id" validate:"required"`
	AcademicLevelID *uuid.UUID `json:"academic_level_id" validate:"required"`
	UrgencyID       *uuid.UUID `json:"urgency_id" validate:"required"`
	StyleID         *uuid.UUID `json:"style_id" validate:"required"`
	LanguageID      *uuid.UUID `json:"language_id" validate:"required"`
	NoOfPages       int        `json:"no_of_pages" validate:"required,gt=0"`
	NoOfSources     int        `json:"no_of_sources" validate:"gte=0"`

	HighPriority      bool `json:"high_priority"`
	TopWriter         bool `json:"top_writer"`
	PlagiarismReport  bool `json:"plagiarism_report"`
	OnePageSummary    bool `json:"one_page_summary"`
	ExtraQualityCheck bool `json:"extra_quality_check"`
	InitialDraft      bool `json:"initial_draft"`
	SMSUpdate         bool `json:"sms_update"`
	CopyOfSources     bool `json:"copy_of_sources"`
	PreferredWriter   bool `json:"preferred_writer"`
}

type AssignOrderDTO struct {
	WriterID *uuid.UUID `json:"writer_id" validate:"required"`
}

type SubmitWorkDTO struct {
	Note string `json:"note" validate:"omitempty,max=2000"`
}

type RequestFeedbackDTO struct {
	Text string `json:"text" validate:"required,min=3,max=5000"`
}

// OrderResponseDTO is the order plus the actions the requesting actor may
// take on it, so the UI never re-derives business rules.
type OrderResponseDTO struct {
	Order          entities.Order `json:"order"`
	AllowedActions []string       `json:"allowed_actions"`
}
