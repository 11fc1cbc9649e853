package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Nduhiu17/treasure-shop-api/internal/authz"
	"github.com/Nduhiu17/treasure-shop-api/internal/controllers"
	"github.com/Nduhiu17/treasure-shop-api/internal/repositories"
	"github.com/Nduhiu17/treasure-shop-api/internal/services"
	"github.com/Nduhiu17/treasure-shop-api/pkg/config"
	"github.com/Nduhiu17/treasure-shop-api/pkg/filestorage"
	"github.com/Nduhiu17/treasure-shop-api/pkg/middleware"
	"github.com/Nduhiu17/treasure-shop-api/pkg/service"
)

// InitRouter constructs the whole dependency graph and mounts every route.
func InitRouter(
	e *echo.Echo,
	db repositories.DB,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cfg *config.Config,
) error {
	apiGroup := e.Group("/api")

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Uploads.BasePath)
	if err != nil {
		return err
	}

	// repositories
	userRepo := repositories.NewUserRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	submissionRepo := repositories.NewSubmissionRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// services
	authorizer := authz.NewAuthorizer()
	pricingService := services.NewPricingService(catalogRepo, logger)
	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	orderService := services.NewOrderService(orderRepo, pricingService, authorizer, logger)
	assignments := services.NewAssignmentCoordinator(userRepo, logger)
	submissions := services.NewSubmissionTracker(db, orderRepo, submissionRepo, authorizer, logger)
	reviews := services.NewReviewEngine(db, orderRepo, submissionRepo, feedbackRepo, authorizer, logger)
	engine := services.NewTransitionEngine(db, orderRepo, assignments, submissions, reviews, authorizer, logger)
	catalogService := services.NewCatalogService(catalogRepo, cacheRepo, cfg.Catalog.CacheTTL, logger)
	reportService := services.NewReportService(reportRepo, authorizer, logger)

	// controllers
	authController := controllers.NewAuthController(authService, logger)
	orderController := controllers.NewOrderController(orderService, engine, fileStorage, cfg.Uploads.PublicURL, logger)
	submissionController := controllers.NewSubmissionController(submissions, logger)
	feedbackController := controllers.NewFeedbackController(reviews, logger)
	catalogController := controllers.NewCatalogController(catalogService, logger)
	reportController := controllers.NewReportController(reportService, logger)
	userController := controllers.NewUserController(userRepo, logger)

	authMW := middleware.NewAuthMiddleware(jwtSvc, userRepo, logger)
	secureGroup := apiGroup.Group("", authMW.Auth)

	runAuthRouter(apiGroup, authController)
	runOrderRouter(secureGroup, orderController, submissionController, feedbackController)
	runCatalogRouter(apiGroup, secureGroup, catalogController, authMW)
	runUserRouter(secureGroup, userController, authMW)
	runReportRouter(secureGroup, reportController, authMW)

	e.Static(cfg.Uploads.PublicURL, cfg.Uploads.BasePath)

	logger.Info("routes registered")
	return nil
}
