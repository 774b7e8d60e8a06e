package repository

import (
	"context"

	"github.com/vitorlacerda05/Formula1-dashboard/domain"
)

// AuditRepository appends login/logout events to the users_log table.
type AuditRepository interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
}
