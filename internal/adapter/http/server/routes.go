package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/vahanex/vahanex-server/internal/adapter/http/middleware"
	"github.com/vahanex/vahanex-server/internal/domain/types"
)

// allStaff covers every dashboard role.
var allStaff = []types.UserRole{types.AdminRole, types.ManagerRole, types.FrontDeskRole}

// managers covers roles allowed to manage reference data.
var managers = []types.UserRole{types.AdminRole, types.ManagerRole}

// setupRoutes - setups http routes
func setupRoutes(mux *http.ServeMux, routes *handlers, m *middleware.Middleware) {
	// System Health
	mux.HandleFunc("/health", routes.health.HealthCheck)

	setupSwaggerRoutes(mux)
	setupMetricsRoute(mux)

	setupAuthRoutes(mux, routes)
	setupScheduleRoutes(mux, routes, m)
	setupDirectoryRoutes(mux, routes, m)

	// Static training package catalogue
	mux.Handle("GET /packages", m.RequireRoles(routes.pkg.List, allStaff...))

	// WebSocket board feed for live schedule updates
	mux.HandleFunc("GET /ws/board", routes.board.Subscribe)
}

func setupAuthRoutes(mux *http.ServeMux, routes *handlers) {
	mux.HandleFunc("POST /auth/register", routes.auth.Register)
	mux.HandleFunc("POST /auth/login", routes.auth.Login)
	mux.HandleFunc("POST /auth/refresh", routes.auth.Refresh)
	mux.HandleFunc("GET /auth/me", routes.auth.Profile)
}

func setupScheduleRoutes(mux *http.ServeMux, routes *handlers, m *middleware.Middleware) {
	// The literal /schedules/count pattern takes precedence over {id}.
	mux.Handle("GET /schedules", m.RequireRoles(routes.schedule.List, allStaff...))
	mux.Handle("GET /schedules/count", m.RequireRoles(routes.schedule.Count, allStaff...))
	mux.Handle("GET /schedules/{id}", m.RequireRoles(routes.schedule.Get, allStaff...))
	mux.Handle("POST /schedules", m.RequireRoles(routes.schedule.Create, allStaff...))
	mux.Handle("PUT /schedules/{id}", m.RequireRoles(routes.schedule.Update, allStaff...))
	mux.Handle("PATCH /schedules/{id}/status", m.RequireRoles(routes.schedule.UpdateStatus, allStaff...))
	mux.Handle("DELETE /schedules/{id}", m.RequireRoles(routes.schedule.Delete, allStaff...))
}

func setupDirectoryRoutes(mux *http.ServeMux, routes *handlers, m *middleware.Middleware) {
	mux.Handle("GET /students", m.RequireRoles(routes.student.List, allStaff...))
	mux.Handle("GET /students/{id}", m.RequireRoles(routes.student.Get, allStaff...))
	mux.Handle("POST /students", m.RequireRoles(routes.student.Create, allStaff...))
	mux.Handle("PUT /students/{id}", m.RequireRoles(routes.student.Update, allStaff...))
	mux.Handle("DELETE /students/{id}", m.RequireRoles(routes.student.Delete, managers...))

	mux.Handle("GET /instructors", m.RequireRoles(routes.instructor.List, allStaff...))
	mux.Handle("GET /instructors/{id}", m.RequireRoles(routes.instructor.Get, allStaff...))
	mux.Handle("POST /instructors", m.RequireRoles(routes.instructor.Create, managers...))
	mux.Handle("PUT /instructors/{id}", m.RequireRoles(routes.instructor.Update, managers...))
	mux.Handle("DELETE /instructors/{id}", m.RequireRoles(routes.instructor.Delete, managers...))

	mux.Handle("GET /vehicles", m.RequireRoles(routes.vehicle.List, allStaff...))
	mux.Handle("GET /vehicles/{id}", m.RequireRoles(routes.vehicle.Get, allStaff...))
	mux.Handle("POST /vehicles", m.RequireRoles(routes.vehicle.Create, managers...))
	mux.Handle("PUT /vehicles/{id}", m.RequireRoles(routes.vehicle.Update, managers...))
	mux.Handle("DELETE /vehicles/{id}", m.RequireRoles(routes.vehicle.Delete, managers...))
}

// setupSwaggerRoutes configures the Swagger UI endpoint
func setupSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger/", httpSwagger.Handler())
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func setupMetricsRoute(mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.Handler())
}
