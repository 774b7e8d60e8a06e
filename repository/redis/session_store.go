package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"

	"github.com/vitorlacerda05/Formula1-dashboard/domain"
	"github.com/vitorlacerda05/Formula1-dashboard/repository"
)

type sessionStore struct {
	client *redislib.Client
	prefix string
	ttl    time.Duration
}

// NewSessionStore creates a Redis-backed SessionStore. Unlike the cookie
// store, the client only ever holds a random key; the session itself stays
// server-side and can be revoked by deleting that key.
func NewSessionStore(client *redislib.Client, ttl time.Duration) repository.SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &sessionStore{
		client: client,
		prefix: "session:",
		ttl:    ttl,
	}
}

func (s *sessionStore) Issue(ctx context.Context, session *domain.Session) (string, error) {
	if session == nil {
		return "", domain.ErrInvalidPayload
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	if err := s.client.Set(ctx, s.key(token), payload, s.ttl).Err(); err != nil {
		return "", domain.WrapError(domain.ErrCodeInternal, "session save failed", err)
	}
	return token, nil
}

func (s *sessionStore) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	result, err := s.client.Get(ctx, s.key(token)).Result()
	if err != nil {
		if err == redislib.Nil {
			return nil, domain.ErrCorruptedSession
		}
		return nil, domain.WrapError(domain.ErrCodeInternal, "session lookup failed", err)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(result), &session); err != nil {
		return nil, domain.WrapError(domain.ErrCodeUnauthorized, "corrupted session", domain.ErrCorruptedSession)
	}
	return &session, nil
}

func (s *sessionStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}

func (s *sessionStore) key(token string) string {
	return fmt.Sprintf("%s%s", s.prefix, token)
}
