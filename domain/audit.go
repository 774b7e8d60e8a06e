package domain

import "time"

// AuditAction is the action column of a users_log row.
type AuditAction string

const (
	AuditLogin  AuditAction = "LOGIN"
	AuditLogout AuditAction = "LOGOUT"
)

// AuditEntry is a single login/logout event destined for the users_log table.
// Delivery is at-least-once: entries that cannot be written immediately are
// spooled and retried.
type AuditEntry struct {
	UserID     int64       `json:"userid"`
	Action     AuditAction `json:"tipo_acao"`
	OccurredAt time.Time   `json:"data_hora_login"`
}
