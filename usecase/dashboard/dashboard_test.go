package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitorlacerda05/Formula1-dashboard/domain"
)

type fakeDashboardRepo struct {
	latestSeason    int64
	latestSeasonErr error
	racesByYear     map[int64][]domain.SeasonRace
	searched        []string
}

func (f *fakeDashboardRepo) AdminSummary(context.Context) (*domain.AdminSummary, error) {
	return &domain.AdminSummary{}, nil
}

func (f *fakeDashboardRepo) LatestSeason(context.Context) (int64, error) {
	if f.latestSeasonErr != nil {
		return 0, f.latestSeasonErr
	}
	return f.latestSeason, nil
}

func (f *fakeDashboardRepo) SeasonRaces(_ context.Context, year int64) ([]domain.SeasonRace, error) {
	return f.racesByYear[year], nil
}

func (f *fakeDashboardRepo) SeasonTeamStandings(context.Context, int64) ([]domain.TeamStanding, error) {
	return nil, nil
}

func (f *fakeDashboardRepo) SeasonDriverStandings(context.Context, int64) ([]domain.DriverStanding, error) {
	return nil, nil
}

func (f *fakeDashboardRepo) TeamStats(context.Context, int64) (*domain.TeamStats, error) {
	return &domain.TeamStats{}, nil
}

func (f *fakeDashboardRepo) DriverStats(context.Context, int64) (*domain.DriverStats, error) {
	return nil, domain.ErrDriverNotFound
}

func (f *fakeDashboardRepo) SearchTeamDrivers(_ context.Context, _ int64, lastName string) ([]domain.TeamDriverResult, error) {
	f.searched = append(f.searched, lastName)
	return nil, nil
}

func TestCurrentYearRacesResolvesLatestSeason(t *testing.T) {
	repo := &fakeDashboardRepo{
		latestSeason: 2024,
		racesByYear: map[int64][]domain.SeasonRace{
			2023: {{Name: "Abu Dhabi Grand Prix"}},
			2024: {{Name: "Bahrain Grand Prix"}, {Name: "Monaco Grand Prix"}},
		},
	}
	uc := New(repo, nil)

	races, err := uc.CurrentYearRaces(context.Background())
	require.NoError(t, err)
	require.Len(t, races, 2)
	assert.Equal(t, "Bahrain Grand Prix", races[0].Name)
}

func TestCurrentYearRacesPropagatesSeasonLookupError(t *testing.T) {
	repo := &fakeDashboardRepo{latestSeasonErr: errors.New("races table empty")}
	uc := New(repo, nil)

	_, err := uc.CurrentYearRaces(context.Background())
	assert.Error(t, err)
}

func TestSearchTeamDriversRejectsEmptyLastName(t *testing.T) {
	repo := &fakeDashboardRepo{}
	uc := New(repo, nil)

	_, err := uc.SearchTeamDrivers(context.Background(), 6, "")
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	assert.Empty(t, repo.searched)
}

func TestSearchTeamDriversPassesThrough(t *testing.T) {
	repo := &fakeDashboardRepo{}
	uc := New(repo, nil)

	_, err := uc.SearchTeamDrivers(context.Background(), 6, "Hamilton")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hamilton"}, repo.searched)
}

func TestDriverStatsNotFound(t *testing.T) {
	uc := New(&fakeDashboardRepo{}, nil)

	_, err := uc.DriverStats(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrDriverNotFound)
}
