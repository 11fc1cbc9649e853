package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/Nduhiu17/treasure-shop-api/internal/authz"
	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
	"github.com/Nduhiu17/treasure-shop-api/internal/repositories"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
)

type ReportServiceInterface interface {
	GetOrdersReport(ctx context.Context, filter entities.ReportFilter, actor entities.Actor) ([]entities.ReportItem, uint64, error)
}

type ReportService struct {
	reportRepo repositories.ReportRepositoryInterface
	authorizer *authz.Authorizer
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, authorizer *authz.Authorizer, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{reportRepo: reportRepo, authorizer: authorizer, logger: logger}
}

func (s *ReportService) GetOrdersReport(ctx context.Context, filter entities.ReportFilter, actor entities.Actor) ([]entities.ReportItem, uint64, error) {
	if !s.authorizer.IsAdmin(actor) {
		return nil, 0, apperrors.ErrUnauthorized
	}
	return s.reportRepo.GetOrdersReport(ctx, filter)
}
