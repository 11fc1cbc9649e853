package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Nduhiu17/treasure-shop-api/internal/dto"
	"github.com/Nduhiu17/treasure-shop-api/internal/services"
	"github.com/Nduhiu17/treasure-shop-api/pkg/api"
)

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

func (c *AuthController) Register(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var body dto.RegisterDTO
	if err := ctx.Bind(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	user, err := c.authService.Register(reqCtx, body)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	user.Password = ""
	return api.SuccessOne(ctx, http.StatusCreated, "user registered", user)
}

func (c *AuthController) Login(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var body dto.LoginDTO
	if err := ctx.Bind(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	tokens, err := c.authService.Login(reqCtx, body)
	if err != nil {
		c.logger.Warn("login failed", zap.String("email", body.Email), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.SuccessOne(ctx, http.StatusOK, "logged in", tokens)
}

func (c *AuthController) Refresh(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var body dto.RefreshDTO
	if err := ctx.Bind(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	tokens, err := c.authService.Refresh(reqCtx, body.RefreshToken)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	return api.SuccessOne(ctx, http.StatusOK, "token refreshed", tokens)
}
