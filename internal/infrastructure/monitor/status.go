package monitor

import "time"

// Status is the last observed health of the service's dependencies. Redis is
// reported healthy when it is not part of the deployment (cookie sessions).
type Status struct {
	PostgreSQL bool      `json:"postgresql"`
	Redis      bool      `json:"redis"`
	Spool      bool      `json:"audit_spool"`
	SpoolSize  int       `json:"audit_spool_size"`
	LastCheck  time.Time `json:"last_check"`
}
