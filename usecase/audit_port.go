package usecase

import (
	"context"

	"github.com/vitorlacerda05/Formula1-dashboard/domain"
)

// AuditTrail abstracts the audit spooler so use cases stay storage-agnostic.
// Implementations absorb downstream failures; recording must never block an
// auth response on the state of the users_log table.
type AuditTrail interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
}
