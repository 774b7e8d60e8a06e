package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/vitorlacerda05/Formula1-dashboard/api/transport"
	"github.com/vitorlacerda05/Formula1-dashboard/domain"
	"github.com/vitorlacerda05/Formula1-dashboard/pkg/httpcontext"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload interface{}) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h baseHandler) respondSuccess(ctx *fasthttp.RequestCtx, status int, data interface{}) {
	h.respondJSON(ctx, status, transport.NewSuccess(data))
}

func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, err error) {
	status, message := mapError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	}
	h.respondJSON(ctx, status, transport.NewError(message))
}

// mapError translates the domain taxonomy into HTTP statuses. Internal
// failures collapse to a generic message so datastore details never reach
// the client.
func mapError(err error) (int, string) {
	var dErr *domain.Error
	status := http.StatusInternalServerError

	switch {
	case domain.IsDomainError(err, domain.ErrCodeUnauthorized):
		status = http.StatusUnauthorized
	case domain.IsDomainError(err, domain.ErrCodeForbidden):
		status = http.StatusForbidden
	case domain.IsDomainError(err, domain.ErrCodeInvalid):
		status = http.StatusBadRequest
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		return status, "internal server error"
	}
	if errors.As(err, &dErr) {
		return status, dErr.Message
	}
	return status, err.Error()
}
