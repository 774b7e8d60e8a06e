package repository

import (
	"context"

	"github.com/vitorlacerda05/Formula1-dashboard/domain"
)

// SessionStore turns sessions into opaque client-held tokens and back.
// The default implementation signs the session into the token itself
// (stateless cookie); a Redis-backed implementation keeps the session
// server-side and hands out a random key instead. The controller contract
// is identical for both.
type SessionStore interface {
	Issue(ctx context.Context, session *domain.Session) (string, error)
	Resolve(ctx context.Context, token string) (*domain.Session, error)
	Revoke(ctx context.Context, token string) error
}
