package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/vitorlacerda05/Formula1-dashboard/domain"
	"github.com/vitorlacerda05/Formula1-dashboard/repository"
)

type sessionClaims struct {
	UserID        int64  `json:"userid"`
	Login         string `json:"login"`
	Role          string `json:"tipo"`
	OriginalID    int64  `json:"id_original"`
	Authenticated bool   `json:"is_authenticated"`
	jwt.RegisteredClaims
}

// CookieStore implements repository.SessionStore by signing the session into
// the token itself (HS256). The server keeps no state: the cookie is the
// session, and revocation is advisory. Deactivated accounts are caught by the
// active-flag re-check during validation, not by token revocation.
type CookieStore struct {
	secret []byte
	maxAge time.Duration
	issuer string
}

// NewCookieStore builds the stateless cookie-backed store. maxAge bounds the
// validity of issued tokens and should match the cookie Max-Age.
func NewCookieStore(secret string, maxAge time.Duration, issuer string) *CookieStore {
	if maxAge <= 0 {
		maxAge = 7 * 24 * time.Hour
	}
	return &CookieStore{
		secret: []byte(secret),
		maxAge: maxAge,
		issuer: issuer,
	}
}

func (s *CookieStore) Issue(_ context.Context, session *domain.Session) (string, error) {
	if session == nil {
		return "", domain.ErrInvalidPayload
	}

	now := time.Now()
	claims := sessionClaims{
		UserID:        session.UserID,
		Login:         session.Login,
		Role:          string(session.Role),
		OriginalID:    session.OriginalID,
		Authenticated: session.Authenticated,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.maxAge)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domain.WrapError(domain.ErrCodeInternal, "session signing failed", err)
	}
	return signed, nil
}

// Resolve parses and verifies a raw token. Any parse, signature or expiry
// failure is reported as a corrupted session so the caller clears the cookie;
// malformed input is never fatal.
func (s *CookieStore) Resolve(_ context.Context, token string) (*domain.Session, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrCorruptedSession
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrCorruptedSession
	}

	return &domain.Session{
		UserID:        claims.UserID,
		Login:         claims.Login,
		Role:          domain.Role(claims.Role),
		OriginalID:    claims.OriginalID,
		Authenticated: claims.Authenticated,
	}, nil
}

// Revoke is a no-op: the client holds the only copy of the session.
func (s *CookieStore) Revoke(context.Context, string) error {
	return nil
}

var _ repository.SessionStore = (*CookieStore)(nil)
