package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/vitorlacerda05/Formula1-dashboard/api/handler"
	"github.com/vitorlacerda05/Formula1-dashboard/domain"
)

type Handlers struct {
	Auth      *apiHandler.AuthHandler
	Dashboard *apiHandler.DashboardHandler
	Report    *apiHandler.ReportHandler
	Health    *apiHandler.HealthHandler
}

// Middleware wraps a request handler.
type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

// RoleGuard builds a role-gating middleware for the given roles.
type RoleGuard func(roles ...domain.Role) Middleware

// New wires all routes. Dashboard and report routes require a validated
// session plus the role matching the view being served; administrators can
// also open the team and driver views.
func New(handlers Handlers, sessionAuth Middleware, requireRole RoleGuard) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.GET("/api/v1/auth/session", handlers.Auth.Session)
	r.POST("/api/v1/auth/logout", sessionAuth(handlers.Auth.Logout))

	admin := func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		return sessionAuth(requireRole(domain.RoleAdministrator)(h))
	}
	team := func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		return sessionAuth(requireRole(domain.RoleTeam, domain.RoleAdministrator)(h))
	}
	driver := func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		return sessionAuth(requireRole(domain.RoleDriver, domain.RoleAdministrator)(h))
	}

	// Administrator dashboard
	r.GET("/api/v1/dashboard/admin/stats", admin(handlers.Dashboard.AdminStats))
	r.GET("/api/v1/dashboard/admin/races/current-year", admin(handlers.Dashboard.CurrentYearRaces))
	r.GET("/api/v1/dashboard/admin/teams/current-year", admin(handlers.Dashboard.CurrentYearTeams))
	r.GET("/api/v1/dashboard/admin/drivers/current-year", admin(handlers.Dashboard.CurrentYearDrivers))

	// Team dashboard
	r.GET("/api/v1/dashboard/team/{constructorId}/stats", team(handlers.Dashboard.TeamStats))
	r.GET("/api/v1/dashboard/team/{constructorId}/drivers/search/{lastName}", team(handlers.Dashboard.SearchTeamDrivers))

	// Driver dashboard
	r.GET("/api/v1/dashboard/driver/{driverId}/stats", driver(handlers.Dashboard.DriverStats))

	// Administrator reports
	r.GET("/api/v1/reports/status-count", admin(handlers.Report.StatusCount))
	r.GET("/api/v1/reports/airports-nearby", admin(handlers.Report.AirportsNearby))

	return r
}
