package handler

import (
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/vitorlacerda05/Formula1-dashboard/api/transport"
	"github.com/vitorlacerda05/Formula1-dashboard/pkg/httpcontext"
	dashboardUC "github.com/vitorlacerda05/Formula1-dashboard/usecase/dashboard"
)

type DashboardHandler struct {
	baseHandler
	uc *dashboardUC.UseCase
}

func NewDashboardHandler(uc *dashboardUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Administrator summary card numbers
// @Tags dashboard
// @Router /api/v1/dashboard/admin/stats [get]
func (h *DashboardHandler) AdminStats(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	summary, err := h.uc.AdminSummary(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, summary)
}

// @Summary Races of the latest recorded season
// @Tags dashboard
// @Router /api/v1/dashboard/admin/races/current-year [get]
func (h *DashboardHandler) CurrentYearRaces(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	races, err := h.uc.CurrentYearRaces(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, races)
}

// @Summary Constructor standings of the latest recorded season
// @Tags dashboard
// @Router /api/v1/dashboard/admin/teams/current-year [get]
func (h *DashboardHandler) CurrentYearTeams(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	standings, err := h.uc.CurrentYearTeamStandings(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, standings)
}

// @Summary Driver standings of the latest recorded season
// @Tags dashboard
// @Router /api/v1/dashboard/admin/drivers/current-year [get]
func (h *DashboardHandler) CurrentYearDrivers(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	standings, err := h.uc.CurrentYearDriverStandings(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, standings)
}

// @Summary Career numbers for a constructor
// @Tags dashboard
// @Router /api/v1/dashboard/team/{constructorId}/stats [get]
func (h *DashboardHandler) TeamStats(ctx *fasthttp.RequestCtx) {
	constructorID, ok := h.pathID(ctx, "constructorId")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	stats, err := h.uc.TeamStats(stdCtx, constructorID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, stats)
}

// @Summary Search a constructor's current-season drivers by surname
// @Tags dashboard
// @Router /api/v1/dashboard/team/{constructorId}/drivers/search/{lastName} [get]
func (h *DashboardHandler) SearchTeamDrivers(ctx *fasthttp.RequestCtx) {
	constructorID, ok := h.pathID(ctx, "constructorId")
	if !ok {
		return
	}
	lastName, _ := ctx.UserValue("lastName").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	results, err := h.uc.SearchTeamDrivers(stdCtx, constructorID, lastName)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, results)
}

// @Summary Activity period and per-season performance for a driver
// @Tags dashboard
// @Router /api/v1/dashboard/driver/{driverId}/stats [get]
func (h *DashboardHandler) DriverStats(ctx *fasthttp.RequestCtx) {
	driverID, ok := h.pathID(ctx, "driverId")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	stats, err := h.uc.DriverStats(stdCtx, driverID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, stats)
}

func (h *DashboardHandler) pathID(ctx *fasthttp.RequestCtx, name string) (int64, bool) {
	raw, _ := ctx.UserValue(name).(string)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError("invalid "+name))
		return 0, false
	}
	return id, true
}
