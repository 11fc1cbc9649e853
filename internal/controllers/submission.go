package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Nduhiu17/treasure-shop-api/internal/services"
	"github.com/Nduhiu17/treasure-shop-api/pkg/api"
	"github.com/Nduhiu17/treasure-shop-api/pkg/utils"
)

type SubmissionController struct {
	submissions *services.SubmissionTracker
	logger      *zap.Logger
}

func NewSubmissionController(submissions *services.SubmissionTracker, logger *zap.Logger) *SubmissionController {
	return &SubmissionController{submissions: submissions, logger: logger}
}

func (c *SubmissionController) ListSubmissions(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	actor, err := utils.GetActorFromCtx(reqCtx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	id, err := parseOrderID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	submissions, err := c.submissions.List(reqCtx, id, actor)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "submissions listed", submissions)
}
