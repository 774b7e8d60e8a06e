package domain

import "time"

// AdminSummary is the single row returned by admin_resumo_geral().
type AdminSummary struct {
	TotalDrivers int64 `json:"total_pilotos"`
	TotalTeams   int64 `json:"total_escuderias"`
	TotalSeasons int64 `json:"total_temporadas"`
}

// SeasonRace is one row of admin_corridas_por_ano($year).
type SeasonRace struct {
	Name              string    `json:"nome_corrida"`
	Date              time.Time `json:"data_corrida"`
	MaxLaps           int64     `json:"max_voltas_registradas"`
	EstimatedDuration string    `json:"duracao_estimada_formatada"`
}

// TeamStanding is one row of admin_escuderias_pontos_por_ano($year).
type TeamStanding struct {
	Name   string  `json:"nome_escuderia"`
	Points float64 `json:"total_pontos_ano"`
}

// DriverStanding is one row of admin_pilotos_pontos_por_ano($year).
type DriverStanding struct {
	DriverID    int64   `json:"piloto_id"`
	Name        string  `json:"nome_piloto"`
	Points      float64 `json:"total_pontos_ano"`
	Nationality string  `json:"nacionalidade"`
}

// TeamStats aggregates a constructor's career numbers. A team without any
// recorded activity yields the zero value, not an error.
type TeamStats struct {
	Wins          int64  `json:"vitorias"`
	UniqueDrivers int64  `json:"pilotos_unicos"`
	FirstYear     *int64 `json:"primeiro_ano"`
	LastYear      *int64 `json:"ultimo_ano"`
}

// ActivityPeriod is the row shape of the *_periodo_atividade functions.
type ActivityPeriod struct {
	FirstYear int64 `json:"primeiro_ano"`
	LastYear  int64 `json:"ultimo_ano"`
}

// DriverSeasonPerformance is one row of piloto_desempenho($driver).
type DriverSeasonPerformance struct {
	Year       int64   `json:"ano"`
	Circuit    string  `json:"circuito"`
	Points     float64 `json:"pontos"`
	Wins       int64   `json:"vitorias"`
	TotalRaces int64   `json:"total_corridas"`
}

// DriverStats combines a driver's activity period with per-season performance.
type DriverStats struct {
	Period      ActivityPeriod            `json:"period"`
	Performance []DriverSeasonPerformance `json:"performance"`
}

// TeamDriverResult is a surname search hit within a constructor's roster.
type TeamDriverResult struct {
	DriverID    int64   `json:"piloto_id"`
	Name        string  `json:"nome_piloto"`
	Nationality string  `json:"nacionalidade"`
	Points      float64 `json:"total_pontos_ano"`
}

// StatusCount is one row of admin_relatorio_status_resultados().
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"quantidade"`
}

// NearbyAirport is one row of admin_aeroportos_proximos($city).
type NearbyAirport struct {
	City        string  `json:"cidade"`
	IATA        string  `json:"codigo_iata"`
	Name        string  `json:"nome_aeroporto"`
	AirportCity string  `json:"cidade_aeroporto"`
	DistanceKM  float64 `json:"distancia_km"`
	Type        string  `json:"tipo"`
}
