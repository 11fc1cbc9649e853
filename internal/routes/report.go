package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Nduhiu17/treasure-shop-api/internal/controllers"
	"github.com/Nduhiu17/treasure-shop-api/pkg/constants"
	"github.com/Nduhiu17/treasure-shop-api/pkg/middleware"
)

func runReportRouter(secureGroup *echo.Group, ctrl *controllers.ReportController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/admin/reports/orders", ctrl.GetOrdersReport,
		authMW.RequireRole(constants.RoleAdmin, constants.RoleSuperAdmin))
}
