package repository

import (
	"context"

	"github.com/vitorlacerda05/Formula1-dashboard/domain"
)

// DashboardRepository exposes the pre-existing SQL reporting functions. The
// functions themselves are opaque collaborators; this layer only binds
// parameters and scans rows.
type DashboardRepository interface {
	AdminSummary(ctx context.Context) (*domain.AdminSummary, error)
	LatestSeason(ctx context.Context) (int64, error)
	SeasonRaces(ctx context.Context, year int64) ([]domain.SeasonRace, error)
	SeasonTeamStandings(ctx context.Context, year int64) ([]domain.TeamStanding, error)
	SeasonDriverStandings(ctx context.Context, year int64) ([]domain.DriverStanding, error)
	TeamStats(ctx context.Context, constructorID int64) (*domain.TeamStats, error)
	DriverStats(ctx context.Context, driverID int64) (*domain.DriverStats, error)
	SearchTeamDrivers(ctx context.Context, constructorID int64, lastName string) ([]domain.TeamDriverResult, error)
}

// ReportRepository backs the standalone report endpoints.
type ReportRepository interface {
	ResultStatusCounts(ctx context.Context) ([]domain.StatusCount, error)
	AirportsNearby(ctx context.Context, city string) ([]domain.NearbyAirport, error)
}
