package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vitorlacerda05/Formula1-dashboard/domain"
	"github.com/vitorlacerda05/Formula1-dashboard/repository"
)

type auditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository creates a Postgres-backed audit log writer.
func NewAuditRepository(pool *pgxpool.Pool) repository.AuditRepository {
	return &auditRepository{pool: pool}
}

func (r *auditRepository) Record(ctx context.Context, entry domain.AuditEntry) error {
	const query = `
		INSERT INTO users_log (userid, tipo_acao, data_hora_login)
		VALUES ($1, $2, $3)
	`
	occurredAt := entry.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	if _, err := r.pool.Exec(ctx, query, entry.UserID, string(entry.Action), occurredAt); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "audit insert failed", err)
	}
	return nil
}
