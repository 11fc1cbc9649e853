package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Nduhiu17/treasure-shop-api/internal/controllers"
)

func runAuthRouter(apiGroup *echo.Group, ctrl *controllers.AuthController) {
	authGroup := apiGroup.Group("/auth")
	{
		authGroup.POST("/register", ctrl.Register)
		authGroup.POST("/login", ctrl.Login)
		authGroup.POST("/refresh", ctrl.Refresh)
	}
}
