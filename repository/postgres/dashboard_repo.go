package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vitorlacerda05/Formula1-dashboard/domain"
	"github.com/vitorlacerda05/Formula1-dashboard/repository"
)

type dashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a Postgres-backed DashboardRepository. All
// aggregation lives in SQL functions shipped with the database; this type
// only binds parameters and scans rows.
func NewDashboardRepository(pool *pgxpool.Pool) repository.DashboardRepository {
	return &dashboardRepository{pool: pool}
}

func (r *dashboardRepository) AdminSummary(ctx context.Context) (*domain.AdminSummary, error) {
	const query = `SELECT * FROM admin_resumo_geral()`

	var summary domain.AdminSummary
	if err := r.pool.QueryRow(ctx, query).Scan(&summary.TotalDrivers, &summary.TotalTeams, &summary.TotalSeasons); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "admin summary query failed", err)
	}
	return &summary, nil
}

func (r *dashboardRepository) LatestSeason(ctx context.Context) (int64, error) {
	const query = `SELECT MAX(year) FROM races`

	var year *int64
	if err := r.pool.QueryRow(ctx, query).Scan(&year); err != nil {
		return 0, domain.WrapError(domain.ErrCodeInternal, "latest season query failed", err)
	}
	if year == nil {
		return 0, domain.NewError(domain.ErrCodeNotFound, "no seasons recorded")
	}
	return *year, nil
}

func (r *dashboardRepository) SeasonRaces(ctx context.Context, year int64) ([]domain.SeasonRace, error) {
	const query = `SELECT * FROM admin_corridas_por_ano($1)`

	rows, err := r.pool.Query(ctx, query, year)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "season races query failed", err)
	}
	defer rows.Close()

	var races []domain.SeasonRace
	for rows.Next() {
		var race domain.SeasonRace
		if err := rows.Scan(&race.Name, &race.Date, &race.MaxLaps, &race.EstimatedDuration); err != nil {
			return nil, domain.WrapError(domain.ErrCodeInternal, "season races scan failed", err)
		}
		races = append(races, race)
	}
	return races, rows.Err()
}

func (r *dashboardRepository) SeasonTeamStandings(ctx context.Context, year int64) ([]domain.TeamStanding, error) {
	const query = `SELECT * FROM admin_escuderias_pontos_por_ano($1)`

	rows, err := r.pool.Query(ctx, query, year)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "team standings query failed", err)
	}
	defer rows.Close()

	var standings []domain.TeamStanding
	for rows.Next() {
		var standing domain.TeamStanding
		if err := rows.Scan(&standing.Name, &standing.Points); err != nil {
			return nil, domain.WrapError(domain.ErrCodeInternal, "team standings scan failed", err)
		}
		standings = append(standings, standing)
	}
	return standings, rows.Err()
}

func (r *dashboardRepository) SeasonDriverStandings(ctx context.Context, year int64) ([]domain.DriverStanding, error) {
	const query = `SELECT * FROM admin_pilotos_pontos_por_ano($1)`

	rows, err := r.pool.Query(ctx, query, year)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "driver standings query failed", err)
	}
	defer rows.Close()

	var standings []domain.DriverStanding
	for rows.Next() {
		var standing domain.DriverStanding
		if err := rows.Scan(&standing.DriverID, &standing.Name, &standing.Points, &standing.Nationality); err != nil {
			return nil, domain.WrapError(domain.ErrCodeInternal, "driver standings scan failed", err)
		}
		standings = append(standings, standing)
	}
	return standings, rows.Err()
}

// TeamStats returns zeroed stats for a constructor without recorded activity
// so the dashboard can render an empty card instead of an error.
func (r *dashboardRepository) TeamStats(ctx context.Context, constructorID int64) (*domain.TeamStats, error) {
	var stats domain.TeamStats

	if err := r.pool.QueryRow(ctx, `SELECT escuderia_vitorias($1)`, constructorID).Scan(&stats.Wins); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "team wins query failed", err)
	}
	if err := r.pool.QueryRow(ctx, `SELECT escuderia_pilotos_unicos($1)`, constructorID).Scan(&stats.UniqueDrivers); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "team drivers query failed", err)
	}

	err := r.pool.QueryRow(ctx, `SELECT * FROM escuderia_periodo_atividade($1)`, constructorID).
		Scan(&stats.FirstYear, &stats.LastYear)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.TeamStats{}, nil
		}
		return nil, domain.WrapError(domain.ErrCodeInternal, "team activity query failed", err)
	}

	return &stats, nil
}

func (r *dashboardRepository) DriverStats(ctx context.Context, driverID int64) (*domain.DriverStats, error) {
	var period domain.ActivityPeriod
	err := r.pool.QueryRow(ctx, `SELECT * FROM piloto_periodo_atividade($1)`, driverID).
		Scan(&period.FirstYear, &period.LastYear)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDriverNotFound
		}
		return nil, domain.WrapError(domain.ErrCodeInternal, "driver activity query failed", err)
	}

	rows, err := r.pool.Query(ctx, `SELECT * FROM piloto_desempenho($1)`, driverID)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "driver performance query failed", err)
	}
	defer rows.Close()

	var performance []domain.DriverSeasonPerformance
	for rows.Next() {
		var row domain.DriverSeasonPerformance
		if err := rows.Scan(&row.Year, &row.Circuit, &row.Points, &row.Wins, &row.TotalRaces); err != nil {
			return nil, domain.WrapError(domain.ErrCodeInternal, "driver performance scan failed", err)
		}
		performance = append(performance, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &domain.DriverStats{Period: period, Performance: performance}, nil
}

func (r *dashboardRepository) SearchTeamDrivers(ctx context.Context, constructorID int64, lastName string) ([]domain.TeamDriverResult, error) {
	const query = `
		SELECT
			p.driverid,
			p.forename || ' ' || p.surname,
			p.nationality,
			COALESCE(SUM(rs.points), 0)
		FROM drivers p
		INNER JOIN results rs ON p.driverid = rs.driverid
		INNER JOIN races r ON rs.raceid = r.raceid
		WHERE rs.constructorid = $1
		  AND p.surname ILIKE $2
		  AND r.year = (SELECT MAX(year) FROM races)
		GROUP BY p.driverid, p.forename, p.surname, p.nationality
		ORDER BY 4 DESC
	`

	rows, err := r.pool.Query(ctx, query, constructorID, "%"+lastName+"%")
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "driver search query failed", err)
	}
	defer rows.Close()

	var results []domain.TeamDriverResult
	for rows.Next() {
		var result domain.TeamDriverResult
		if err := rows.Scan(&result.DriverID, &result.Name, &result.Nationality, &result.Points); err != nil {
			return nil, domain.WrapError(domain.ErrCodeInternal, "driver search scan failed", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}
