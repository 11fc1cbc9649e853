package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Nduhiu17/treasure-shop-api/internal/dto"
	"github.com/Nduhiu17/treasure-shop-api/internal/repositories"
	"github.com/Nduhiu17/treasure-shop-api/pkg/api"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
	"github.com/Nduhiu17/treasure-shop-api/pkg/utils"
)

type UserController struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserController(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) *UserController {
	return &UserController{userRepo: userRepo, logger: logger}
}

func (c *UserController) Me(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	actor, err := utils.GetActorFromCtx(reqCtx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	user, err := c.userRepo.FindByID(reqCtx, actor.ID)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	user.Password = ""
	return api.SuccessOne(ctx, http.StatusOK, "profile", user)
}

// GrantRole adds a role to a user. Roles are additive; granting writer
// does not revoke customer.
func (c *UserController) GrantRole(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, apperrors.NewInvalidInputError("invalid user id %q", ctx.Param("id")))
	}

	var body dto.GrantRoleDTO
	if err := ctx.Bind(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if _, err := c.userRepo.FindByID(reqCtx, userID); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := c.userRepo.AssignRole(reqCtx, userID, body.Role); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	c.logger.Info("role granted",
		zap.String("userId", userID.String()),
		zap.String("role", body.Role))
	return api.SuccessOne(ctx, http.StatusOK, "role granted", struct{}{})
}
