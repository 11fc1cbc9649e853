package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Nduhiu17/treasure-shop-api/internal/dto"
	"github.com/Nduhiu17/treasure-shop-api/internal/services"
	"github.com/Nduhiu17/treasure-shop-api/pkg/api"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
	logger         *zap.Logger
}

func NewCatalogController(catalogService services.CatalogServiceInterface, logger *zap.Logger) *CatalogController {
	return &CatalogController{catalogService: catalogService, logger: logger}
}

func parseCatalogID(ctx echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.NewInvalidInputError("invalid id %q", ctx.Param("id"))
	}
	return id, nil
}

// GetCatalog serves every option dictionary the order form needs in one
// response.
func (c *CatalogController) GetCatalog(ctx echo.Context) error {
	catalog, err := c.catalogService.GetCatalog(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "catalog", catalog)
}

func (c *CatalogController) CreateOrderType(ctx echo.Context) error {
	var body dto.CreateOrderTypeDTO
	if err := ctx.Bind(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	ot, err := c.catalogService.CreateOrderType(ctx.Request().Context(), body)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "order type created", ot)
}

func (c *CatalogController) UpdateOrderType(ctx echo.Context) error {
	id, err := parseCatalogID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	var body dto.UpdateOrderTypeDTO
	if err := ctx.Bind(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.catalogService.UpdateOrderType(ctx.Request().Context(), id, body); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "order type updated", struct{}{})
}

func (c *CatalogController) CreateAcademicLevel(ctx echo.Context) error {
	var body dto.CreateAcademicLevelDTO
	if err := ctx.Bind(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	al, err := c.catalogService.CreateAcademicLevel(ctx.Request().Context(), body)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "academic level created", al)
}

func (c *CatalogController) UpdateAcademicLevel(ctx echo.Context) error {
	id, err := parseCatalogID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	var body dto.UpdateAcademicLevelDTO
	if err := ctx.Bind(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.catalogService.UpdateAcademicLevel(ctx.Request().Context(), id, body); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "academic level updated", struct{}{})
}

func (c *CatalogController) CreateUrgency(ctx echo.Context) error {
	var body dto.CreateUrgencyDTO
	if err := ctx.Bind(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	u, err := c.catalogService.CreateUrgency(ctx.Request().Context(), body)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "urgency created", u)
}

func (c *CatalogController) UpdateUrgency(ctx echo.Context) error {
	id, err := parseCatalogID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	var body dto.UpdateUrgencyDTO
	if err := ctx.Bind(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.catalogService.UpdateUrgency(ctx.Request().Context(), id, body); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "urgency updated", struct{}{})
}
