package middleware

import (
	"encoding/json"
	"errors"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/vitorlacerda05/Formula1-dashboard/api/transport"
	"github.com/vitorlacerda05/Formula1-dashboard/domain"
	"github.com/vitorlacerda05/Formula1-dashboard/internal/session"
	"github.com/vitorlacerda05/Formula1-dashboard/pkg/httpcontext"
	authUC "github.com/vitorlacerda05/Formula1-dashboard/usecase/auth"
)

const sessionKey = "session"

// SessionFrom returns the session injected by SessionAuth, nil when the
// request never passed the middleware.
func SessionFrom(ctx *fasthttp.RequestCtx) *domain.Session {
	sess, _ := ctx.UserValue(sessionKey).(*domain.Session)
	return sess
}

// SessionAuth validates the session cookie on every protected request and
// injects the session into the request. Corrupted or deactivated sessions
// additionally clear the cookie so the client re-authenticates cleanly.
func SessionAuth(auth *authUC.UseCase, cookies session.CookiePolicy, adapter *httpcontext.Adapter, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			stdCtx, cancel := adapter.Attach(ctx)
			defer cancel()

			sess, err := auth.ValidateToken(stdCtx, cookies.Read(ctx))
			if err != nil {
				if errors.Is(err, domain.ErrCorruptedSession) || errors.Is(err, domain.ErrUserDeactivated) {
					cookies.Clear(ctx)
				}
				if domain.IsDomainError(err, domain.ErrCodeUnauthorized) {
					respond(ctx, fasthttp.StatusUnauthorized, transport.NewError(err.Error()))
					return
				}
				logger.Error("session validation failed", zap.Error(err))
				respond(ctx, fasthttp.StatusInternalServerError, transport.NewError("internal server error"))
				return
			}

			ctx.SetUserValue(sessionKey, sess)
			next(ctx)
		}
	}
}

// RequireRole gates a route on the session role. The switch over the role
// set is exhaustive: a session carrying an unknown role is rejected outright
// rather than falling through to any dashboard.
func RequireRole(logger *zap.Logger, roles ...domain.Role) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			sess := SessionFrom(ctx)
			if sess == nil {
				respond(ctx, fasthttp.StatusUnauthorized, transport.NewError(domain.ErrUnauthenticated.Message))
				return
			}

			switch sess.Role {
			case domain.RoleAdministrator, domain.RoleDriver, domain.RoleTeam:
				for _, role := range roles {
					if sess.Role == role {
						next(ctx)
						return
					}
				}
				respond(ctx, fasthttp.StatusForbidden, transport.NewError(domain.ErrForbidden.Message))
			default:
				logger.Warn("session with unknown role rejected",
					zap.Int64("user_id", sess.UserID),
					zap.String("role", string(sess.Role)),
				)
				respond(ctx, fasthttp.StatusForbidden, transport.NewError(domain.ErrUnknownRole.Message))
			}
		}
	}
}

func respond(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}
