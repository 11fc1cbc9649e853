package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Nduhiu17/treasure-shop-api/internal/controllers"
	"github.com/Nduhiu17/treasure-shop-api/pkg/constants"
	"github.com/Nduhiu17/treasure-shop-api/pkg/middleware"
)

func runUserRouter(secureGroup *echo.Group, ctrl *controllers.UserController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/me", ctrl.Me)

	secureGroup.POST("/admin/users/:id/roles", ctrl.GrantRole,
		authMW.RequireRole(constants.RoleSuperAdmin))
}
