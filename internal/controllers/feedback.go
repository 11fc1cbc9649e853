package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Nduhiu17/treasure-shop-api/internal/services"
	"github.com/Nduhiu17/treasure-shop-api/pkg/api"
	"github.com/Nduhiu17/treasure-shop-api/pkg/utils"
)

type FeedbackController struct {
	reviews *services.ReviewEngine
	logger  *zap.Logger
}

func NewFeedbackController(reviews *services.ReviewEngine, logger *zap.Logger) *FeedbackController {
	return &FeedbackController{reviews: reviews, logger: logger}
}

func (c *FeedbackController) ListFeedbacks(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	actor, err := utils.GetActorFromCtx(reqCtx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	id, err := parseOrderID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	feedbacks, err := c.reviews.ListFeedbacks(reqCtx, id, actor)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "feedbacks listed", feedbacks)
}
