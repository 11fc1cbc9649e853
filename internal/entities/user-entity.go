package entities

import (
	"github.com/google/uuid"

	"github.com/Nduhiu17/treasure-shop-api/pkg/types"
)

type User struct {
	ID          uuid.UUID `json:"id" db:"id"`
	FirstName   string    `json:"first_name" db:"first_name"`
	LastName    string    `json:"last_name" db:"last_name"`
	Email       string    `json:"email" db:"email"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`

	Password string `json:"-" db:"password"`

	// Roles carries the user's full role set. Authorization must never
	// look at a single "primary" role.
	Roles []string `json:"roles" db:"-"`

	types.BaseEntity
}

// Actor is the authenticated identity plus role set attempting an action.
// It is built by the auth middleware and passed explicitly into every
// transition call; the core never reads ambient state.
type Actor struct {
	ID    uuid.UUID
	Roles []string
}

func (a Actor) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}
