package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/vitorlacerda05/Formula1-dashboard/api/transport"
	"github.com/vitorlacerda05/Formula1-dashboard/domain"
	"github.com/vitorlacerda05/Formula1-dashboard/internal/middleware"
	"github.com/vitorlacerda05/Formula1-dashboard/internal/session"
	"github.com/vitorlacerda05/Formula1-dashboard/pkg/httpcontext"
	authUC "github.com/vitorlacerda05/Formula1-dashboard/usecase/auth"
)

type AuthHandler struct {
	baseHandler
	uc      *authUC.UseCase
	cookies session.CookiePolicy
}

func NewAuthHandler(uc *authUC.UseCase, cookies session.CookiePolicy, adapter *httpcontext.Adapter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		cookies:     cookies,
	}
}

// @Summary Authenticate and issue a session cookie
// @Tags auth
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(ctx *fasthttp.RequestCtx) {
	var req transport.LoginRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(domain.ErrInvalidPayload.Message))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	sess, token, err := h.uc.Login(stdCtx, req.Login, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.respondJSON(ctx, http.StatusUnauthorized, transport.LoginResponse{
				Success: false,
				Message: domain.ErrInvalidCredentials.Message,
			})
			return
		}
		h.respondError(ctx, err)
		return
	}

	h.cookies.Write(ctx, token)
	h.respondJSON(ctx, http.StatusOK, transport.LoginResponse{
		Success: true,
		Session: sess,
	})
}

// @Summary Inspect the current session
// @Tags auth
// @Router /api/v1/auth/session [get]
func (h *AuthHandler) Session(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	sess, err := h.uc.ValidateToken(stdCtx, h.cookies.Read(ctx))
	if err == nil {
		h.respondJSON(ctx, http.StatusOK, transport.SessionResponse{
			Success:         true,
			IsAuthenticated: true,
			Session:         sess,
		})
		return
	}

	// Corrupted and deactivated sessions are self-healing: the cookie is
	// cleared so the next visit starts unauthenticated.
	if errors.Is(err, domain.ErrCorruptedSession) || errors.Is(err, domain.ErrUserDeactivated) {
		h.cookies.Clear(ctx)
	}
	if domain.IsDomainError(err, domain.ErrCodeUnauthorized) {
		h.respondJSON(ctx, http.StatusOK, transport.SessionResponse{
			Success:         false,
			IsAuthenticated: false,
			Message:         err.Error(),
		})
		return
	}
	h.respondError(ctx, err)
}

// @Summary End the session
// @Tags auth
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(ctx *fasthttp.RequestCtx) {
	sess := middleware.SessionFrom(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Logout(stdCtx, sess, h.cookies.Read(ctx)); err != nil {
		h.respondError(ctx, err)
		return
	}

	h.cookies.Clear(ctx)
	h.respondJSON(ctx, http.StatusOK, transport.Envelope{
		Success: true,
		Message: "logout successful",
	})
}
