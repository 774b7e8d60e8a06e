package report

import (
	"context"

	"go.uber.org/zap"

	"github.com/vitorlacerda05/Formula1-dashboard/domain"
	"github.com/vitorlacerda05/Formula1-dashboard/repository"
)

// UseCase serves the administrator reports.
type UseCase struct {
	repo   repository.ReportRepository
	logger *zap.Logger
}

func New(repo repository.ReportRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *UseCase) ResultStatusCounts(ctx context.Context) ([]domain.StatusCount, error) {
	return uc.repo.ResultStatusCounts(ctx)
}

func (uc *UseCase) AirportsNearby(ctx context.Context, city string) ([]domain.NearbyAirport, error) {
	if city == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "city parameter is required")
	}
	return uc.repo.AirportsNearby(ctx, city)
}
