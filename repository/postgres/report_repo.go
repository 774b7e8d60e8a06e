package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vitorlacerda05/Formula1-dashboard/domain"
	"github.com/vitorlacerda05/Formula1-dashboard/repository"
)

type reportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a Postgres-backed ReportRepository.
func NewReportRepository(pool *pgxpool.Pool) repository.ReportRepository {
	return &reportRepository{pool: pool}
}

func (r *reportRepository) ResultStatusCounts(ctx context.Context) ([]domain.StatusCount, error) {
	const query = `SELECT * FROM admin_relatorio_status_resultados()`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "status report query failed", err)
	}
	defer rows.Close()

	var counts []domain.StatusCount
	for rows.Next() {
		var count domain.StatusCount
		if err := rows.Scan(&count.Status, &count.Count); err != nil {
			return nil, domain.WrapError(domain.ErrCodeInternal, "status report scan failed", err)
		}
		counts = append(counts, count)
	}
	return counts, rows.Err()
}

func (r *reportRepository) AirportsNearby(ctx context.Context, city string) ([]domain.NearbyAirport, error) {
	const query = `SELECT * FROM admin_aeroportos_proximos($1)`

	rows, err := r.pool.Query(ctx, query, city)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "airport report query failed", err)
	}
	defer rows.Close()

	var airports []domain.NearbyAirport
	for rows.Next() {
		var airport domain.NearbyAirport
		if err := rows.Scan(&airport.City, &airport.IATA, &airport.Name, &airport.AirportCity, &airport.DistanceKM, &airport.Type); err != nil {
			return nil, domain.WrapError(domain.ErrCodeInternal, "airport report scan failed", err)
		}
		airports = append(airports, airport)
	}
	return airports, rows.Err()
}
