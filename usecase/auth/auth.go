package auth

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/vitorlacerda05/Formula1-dashboard/domain"
	"github.com/vitorlacerda05/Formula1-dashboard/repository"
	"github.com/vitorlacerda05/Formula1-dashboard/usecase"
)

// UseCase implements the session authentication flow: credential
// verification, session minting, token validation and logout bookkeeping.
type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionStore
	audit    usecase.AuditTrail
	logger   *zap.Logger
}

func New(users repository.UserRepository, sessions repository.SessionStore, audit usecase.AuditTrail, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:    users,
		sessions: sessions,
		audit:    audit,
		logger:   logger,
	}
}

// Login verifies credentials and mints an authenticated session. Unknown
// login, inactive account and wrong password are indistinguishable to the
// caller: all surface as ErrInvalidCredentials. On success exactly one LOGIN
// audit event is recorded and the user's last-login timestamp is touched;
// neither is allowed to fail the login.
func (uc *UseCase) Login(ctx context.Context, login, password string) (*domain.Session, string, error) {
	if login == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := uc.users.FindActiveByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", domain.WrapError(domain.ErrCodeInternal, "credential lookup failed", err)
	}

	valid, err := uc.users.VerifyPassword(ctx, password, user.Password)
	if err != nil {
		return nil, "", domain.WrapError(domain.ErrCodeInternal, "password verification failed", err)
	}
	if !valid {
		return nil, "", domain.ErrInvalidCredentials
	}

	uc.recordAudit(ctx, user.ID, domain.AuditLogin)
	if err := uc.users.TouchLastLogin(ctx, user.ID); err != nil {
		uc.logger.Warn("last login update failed", zap.Int64("user_id", user.ID), zap.Error(err))
	}

	session := domain.NewSession(user)
	token, err := uc.sessions.Issue(ctx, session)
	if err != nil {
		return nil, "", domain.WrapError(domain.ErrCodeInternal, "session issue failed", err)
	}

	uc.logger.Info("user logged in",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)
	return session, token, nil
}

// ValidateToken turns a raw cookie payload back into a session. Every failure
// mode of an untrusted token maps to a distinct sentinel; none of them is
// fatal. An empty token short-circuits without touching any store.
func (uc *UseCase) ValidateToken(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrNoSession
	}

	session, err := uc.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrCorruptedSession) {
			return nil, domain.ErrCorruptedSession
		}
		return nil, domain.WrapError(domain.ErrCodeInternal, "session resolve failed", err)
	}
	if !session.IsAuthenticated() {
		return nil, domain.ErrInvalidSession
	}

	// The cookie cannot express deactivation that happened after it was
	// minted, so the user's active flag is re-checked on every validation.
	active, err := uc.users.IsActive(ctx, session.UserID)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "user activity check failed", err)
	}
	if !active {
		return nil, domain.ErrUserDeactivated
	}

	return session, nil
}

// Logout records the logout event and revokes the token where the store
// supports it. It requires a session that already passed validation.
func (uc *UseCase) Logout(ctx context.Context, session *domain.Session, token string) error {
	if !session.IsAuthenticated() {
		return domain.ErrUnauthenticated
	}

	uc.recordAudit(ctx, session.UserID, domain.AuditLogout)

	if err := uc.sessions.Revoke(ctx, token); err != nil {
		uc.logger.Warn("session revoke failed", zap.Int64("user_id", session.UserID), zap.Error(err))
	}

	uc.logger.Info("user logged out", zap.Int64("user_id", session.UserID))
	return nil
}

func (uc *UseCase) recordAudit(ctx context.Context, userID int64, action domain.AuditAction) {
	if uc.audit == nil {
		return
	}
	entry := domain.AuditEntry{
		UserID:     userID,
		Action:     action,
		OccurredAt: time.Now(),
	}
	if err := uc.audit.Record(ctx, entry); err != nil {
		uc.logger.Error("audit record failed",
			zap.Int64("user_id", userID),
			zap.String("action", string(action)),
			zap.Error(err),
		)
	}
}
