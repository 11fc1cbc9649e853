package entities

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a customer/admin request for changes. Immutable once
// created; each record reopens the order for a new submission cycle.
type Feedback struct {
	ID        uuid.UUID `json:"id" db:"id"`
	OrderID   uuid.UUID `json:"order_id" db:"order_id"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id"`
	Text      string    `json:"text" db:"text"`
	FileURL   *string   `json:"file_url,omitempty" db:"file_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
