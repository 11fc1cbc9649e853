package entities

import (
	"time"

	"github.com/google/uuid"
)

// Submission is a writer's delivered work artifact tied to one order.
// Rows are append-only: a correction is always a new submission, and only
// the review engine mutates Status.
type Submission struct {
	ID          uuid.UUID `json:"id" db:"id"`
	OrderID     uuid.UUID `json:"order_id" db:"order_id"`
	WriterID    uuid.UUID `json:"writer_id" db:"writer_id"`
	FileURL     string    `json:"file_url" db:"file_url"`
	Note        string    `json:"note" db:"note"`
	Status      string    `json:"status" db:"status"`
	SubmittedAt time.Time `json:"submitted_at" db:"submitted_at"`
}
