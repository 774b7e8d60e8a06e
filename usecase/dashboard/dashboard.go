package dashboard

import (
	"context"

	"go.uber.org/zap"

	"github.com/vitorlacerda05/Formula1-dashboard/domain"
	"github.com/vitorlacerda05/Formula1-dashboard/repository"
)

// UseCase serves the role-specific dashboard queries. The current-year
// variants resolve the latest recorded season first, mirroring how the
// dashboards always show the most recent championship.
type UseCase struct {
	repo   repository.DashboardRepository
	logger *zap.Logger
}

func New(repo repository.DashboardRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *UseCase) AdminSummary(ctx context.Context) (*domain.AdminSummary, error) {
	return uc.repo.AdminSummary(ctx)
}

func (uc *UseCase) CurrentYearRaces(ctx context.Context) ([]domain.SeasonRace, error) {
	year, err := uc.repo.LatestSeason(ctx)
	if err != nil {
		return nil, err
	}
	return uc.repo.SeasonRaces(ctx, year)
}

func (uc *UseCase) CurrentYearTeamStandings(ctx context.Context) ([]domain.TeamStanding, error) {
	year, err := uc.repo.LatestSeason(ctx)
	if err != nil {
		return nil, err
	}
	return uc.repo.SeasonTeamStandings(ctx, year)
}

func (uc *UseCase) CurrentYearDriverStandings(ctx context.Context) ([]domain.DriverStanding, error) {
	year, err := uc.repo.LatestSeason(ctx)
	if err != nil {
		return nil, err
	}
	return uc.repo.SeasonDriverStandings(ctx, year)
}

func (uc *UseCase) TeamStats(ctx context.Context, constructorID int64) (*domain.TeamStats, error) {
	return uc.repo.TeamStats(ctx, constructorID)
}

func (uc *UseCase) DriverStats(ctx context.Context, driverID int64) (*domain.DriverStats, error) {
	return uc.repo.DriverStats(ctx, driverID)
}

func (uc *UseCase) SearchTeamDrivers(ctx context.Context, constructorID int64, lastName string) ([]domain.TeamDriverResult, error) {
	if lastName == "" {
		return nil, domain.ErrInvalidPayload
	}
	return uc.repo.SearchTeamDrivers(ctx, constructorID, lastName)
}
