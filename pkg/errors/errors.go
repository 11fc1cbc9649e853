package errors

import (
	"errors"
	"fmt"
)

var (
	// JWT / tokens
	ErrInvalidSigningMethod = errors.New("unexpected token signing method")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token has expired")
	ErrTokenIsNotRefresh    = errors.New("token is not a refresh token")
	ErrTokenIsNotAccess     = errors.New("token is not an access token")

	// Auth
	ErrEmptyAuthHeader    = errors.New("authorization header is missing")
	ErrInvalidAuthHeader  = errors.New("malformed authorization header")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	// Context
	ErrActorNotFoundInContext = errors.New("actor not found in request context")

	// Common
	ErrNotFound   = errors.New("record not found")
	ErrBadRequest = errors.New("bad request")
	ErrInternal   = errors.New("internal server error")

	// ErrConflict is returned when an optimistic write loses a race.
	// Callers may retry by re-reading the order and re-issuing the action.
	ErrConflict = errors.New("order was modified concurrently")
)

// InvalidTransitionError means the requested action is not legal from the
// order's current status.
type InvalidTransitionError struct {
	Action string
	Status string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("action %q is not allowed while order is %q", e.Action, e.Status)
}

func NewInvalidTransition(action, status string) error {
	return &InvalidTransitionError{Action: action, Status: status}
}

// MissingPrerequisiteError means required related data is absent, e.g. a
// submission on an order with no assigned writer.
type MissingPrerequisiteError struct {
	Message string
}

func (e *MissingPrerequisiteError) Error() string { return e.Message }

func NewMissingPrerequisite(format string, args ...interface{}) error {
	return &MissingPrerequisiteError{Message: fmt.Sprintf(format, args...)}
}

// IncompleteSelectionError means a priced option required by the pricing
// formula is unset.
type IncompleteSelectionError struct {
	Field string
}

func (e *IncompleteSelectionError) Error() string {
	return fmt.Sprintf("incomplete selection: %s is required for pricing", e.Field)
}

func NewIncompleteSelection(field string) error {
	return &IncompleteSelectionError{Field: field}
}

// InvalidInputError carries a user-facing validation message.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
