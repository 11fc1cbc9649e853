package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
)

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Body    T      `json:"body,omitempty"`
}

type ListBody[T any] struct {
	List       []T             `json:"list"`
	Pagination *PaginationMeta `json:"pagination"`
}

type PaginationMeta struct {
	TotalCount uint64 `json:"total_count"`
	TotalPages int    `json:"total_pages"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}

// SuccessOne returns a single object.
func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

func SuccessList[T any](c echo.Context, message string, list []T, total uint64, page, limit int) error {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + uint64(limit) - 1) / uint64(limit))
	}

	if list == nil {
		list = make([]T, 0)
	}

	body := ListBody[T]{
		List: list,
		Pagination: &PaginationMeta{
			TotalCount: total,
			TotalPages: totalPages,
			Page:       page,
			Limit:      limit,
		},
	}

	return c.JSON(http.StatusOK, Response[ListBody[T]]{
		Status:  true,
		Message: message,
		Body:    body,
	})
}

func ErrorResponse(c echo.Context, err error) error {
	return c.JSON(StatusCodeFor(err), Response[any]{
		Status:  false,
		Message: err.Error(),
	})
}

// StatusCodeFor maps the domain error taxonomy onto HTTP codes.
// InvalidTransition and MissingPrerequisite are conflicts: the request was
// well-formed but the order is not in a state that permits it.
func StatusCodeFor(err error) int {
	var (
		invalidTransition   *apperrors.InvalidTransitionError
		missingPrerequisite *apperrors.MissingPrerequisiteError
		incompleteSelection *apperrors.IncompleteSelectionError
		invalidInput        *apperrors.InvalidInputError
	)

	switch {
	case errors.As(err, &invalidTransition),
		errors.As(err, &missingPrerequisite),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.As(err, &incompleteSelection):
		return http.StatusUnprocessableEntity
	case errors.As(err, &invalidInput), errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrTokenIsNotAccess),
		errors.Is(err, apperrors.ErrTokenIsNotRefresh):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
