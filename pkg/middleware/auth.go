package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
	"github.com/Nduhiu17/treasure-shop-api/internal/repositories"
	"github.com/Nduhiu17/treasure-shop-api/pkg/api"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
	"github.com/Nduhiu17/treasure-shop-api/pkg/service"
	"github.com/Nduhiu17/treasure-shop-api/pkg/utils"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	userRepo   repositories.UserRepositoryInterface
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, userRepo repositories.UserRepositoryInterface, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Auth validates the bearer token and stores the acting user, with their
// role set, in the request context.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("auth: empty Authorization header")
			return api.ErrorResponse(c, apperrors.ErrEmptyAuthHeader)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("auth: malformed Authorization header")
			return api.ErrorResponse(c, apperrors.ErrInvalidAuthHeader)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("auth: token validation failed", zap.Error(err))
			return api.ErrorResponse(c, err)
		}

		if claims.IsRefreshToken {
			m.logger.Warn("auth: refresh token used for access")
			return api.ErrorResponse(c, apperrors.ErrTokenIsNotAccess)
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return api.ErrorResponse(c, apperrors.ErrInvalidToken)
		}

		ctx := c.Request().Context()
		user, err := m.userRepo.FindByID(ctx, userID)
		if err != nil {
			m.logger.Warn("auth: token subject no longer exists", zap.String("userID", claims.UserID))
			return api.ErrorResponse(c, apperrors.ErrInvalidToken)
		}

		actor := entities.Actor{ID: user.ID, Roles: user.Roles}
		c.SetRequest(c.Request().WithContext(utils.ContextWithActor(ctx, actor)))

		return next(c)
	}
}

// RequireRole gates a route group on role membership, checked after Auth.
func (m *AuthMiddleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := utils.GetActorFromCtx(c.Request().Context())
			if err != nil {
				return api.ErrorResponse(c, apperrors.ErrUnauthorized)
			}
			for _, role := range roles {
				if actor.HasRole(role) {
					return next(c)
				}
			}
			m.logger.Warn("auth: role check failed",
				zap.String("userID", actor.ID.String()),
				zap.Strings("required", roles))
			return api.ErrorResponse(c, apperrors.ErrForbidden)
		}
	}
}
