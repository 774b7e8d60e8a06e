package transport

import (
	"encoding/json"

	"github.com/vitorlacerda05/Formula1-dashboard/domain"
)

// Envelope is the standard API response wrapper consumed by the frontend.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccess returns a success envelope.
func NewSuccess(data interface{}) Envelope {
	return Envelope{
		Success: true,
		Data:    data,
	}
}

// NewError returns an error envelope.
func NewError(message string) Envelope {
	return Envelope{
		Success: false,
		Message: message,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// LoginResponse is the POST /auth/login reply.
type LoginResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Session *domain.Session `json:"session,omitempty"`
}

// SessionResponse is the GET /auth/session reply. A missing or broken cookie
// is an unauthenticated state, never an error status.
type SessionResponse struct {
	Success         bool            `json:"success"`
	IsAuthenticated bool            `json:"isAuthenticated"`
	Message         string          `json:"message,omitempty"`
	Session         *domain.Session `json:"session,omitempty"`
}
