package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/vitorlacerda05/Formula1-dashboard/pkg/httpcontext"
	reportUC "github.com/vitorlacerda05/Formula1-dashboard/usecase/report"
)

type ReportHandler struct {
	baseHandler
	uc *reportUC.UseCase
}

func NewReportHandler(uc *reportUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Race result counts grouped by status
// @Tags reports
// @Router /api/v1/reports/status-count [get]
func (h *ReportHandler) StatusCount(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	counts, err := h.uc.ResultStatusCounts(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, counts)
}

// @Summary Airports within reach of a city
// @Tags reports
// @Router /api/v1/reports/airports-nearby [get]
func (h *ReportHandler) AirportsNearby(ctx *fasthttp.RequestCtx) {
	city := string(ctx.QueryArgs().Peek("city"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	airports, err := h.uc.AirportsNearby(stdCtx, city)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, airports)
}
