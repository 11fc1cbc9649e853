package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Nduhiu17/treasure-shop-api/internal/dto"
	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
	"github.com/Nduhiu17/treasure-shop-api/internal/repositories"
	"github.com/Nduhiu17/treasure-shop-api/pkg/constants"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
	"github.com/Nduhiu17/treasure-shop-api/pkg/service"
	"github.com/Nduhiu17/treasure-shop-api/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, data dto.RegisterDTO) (*entities.User, error)
	Login(ctx context.Context, data dto.LoginDTO) (*dto.TokenPairDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error)
}

type AuthService struct {
	userRepo repositories.UserRepositoryInterface
	jwtSvc   service.JWTService
	logger   *zap.Logger
}

func NewAuthService(userRepo repositories.UserRepositoryInterface, jwtSvc service.JWTService, logger *zap.Logger) AuthServiceInterface {
	return &AuthService{userRepo: userRepo, jwtSvc: jwtSvc, logger: logger}
}

// Register creates a customer account. Writer and admin roles are granted
// separately by a super admin, never self-service.
func (s *AuthService) Register(ctx context.Context, data dto.RegisterDTO) (*entities.User, error) {
	if existing, err := s.userRepo.FindByEmail(ctx, data.Email); err == nil && existing != nil {
		return nil, apperrors.NewInvalidInputError("email %s is already registered", data.Email)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(data.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:          uuid.New(),
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Password:    hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, err
	}
	if err := s.userRepo.AssignRole(ctx, user.ID, constants.RoleUser); err != nil {
		return nil, err
	}
	user.Roles = []string{constants.RoleUser}

	s.logger.Info("user registered", zap.String("userId", user.ID.String()))
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, data dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepo.FindByEmail(ctx, data.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.Password, data.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	access, refresh, err := s.jwtSvc.GenerateTokens(user.ID.String())
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtSvc.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	access, refresh, err := s.jwtSvc.GenerateTokens(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}
