package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Nduhiu17/treasure-shop-api/internal/controllers"
	"github.com/Nduhiu17/treasure-shop-api/pkg/constants"
	"github.com/Nduhiu17/treasure-shop-api/pkg/middleware"
)

func runCatalogRouter(
	apiGroup *echo.Group,
	secureGroup *echo.Group,
	ctrl *controllers.CatalogController,
	authMW *middleware.AuthMiddleware,
) {
	// the order form reads the catalog before login
	apiGroup.GET("/catalog", ctrl.GetCatalog)

	adminGroup := secureGroup.Group("/admin", authMW.RequireRole(constants.RoleAdmin, constants.RoleSuperAdmin))
	{
		adminGroup.POST("/order-types", ctrl.CreateOrderType)
		adminGroup.PUT("/order-types/:id", ctrl.UpdateOrderType)
		adminGroup.POST("/academic-levels", ctrl.CreateAcademicLevel)
		adminGroup.PUT("/academic-levels/:id", ctrl.UpdateAcademicLevel)
		adminGroup.POST("/urgencies", ctrl.CreateUrgency)
		adminGroup.PUT("/urgencies/:id", ctrl.UpdateUrgency)
	}
}
