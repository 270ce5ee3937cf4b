package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vahanex/vahanex-server/config"
	"github.com/vahanex/vahanex-server/internal/adapter/http/handler"
	"github.com/vahanex/vahanex-server/internal/adapter/http/middleware"
	"github.com/vahanex/vahanex-server/pkg/logger"
	wrap "github.com/vahanex/vahanex-server/pkg/logger/wrapper"
	ws "github.com/vahanex/vahanex-server/pkg/wsHub"
)

const serviceName = "vahanex-server"

type API struct {
	mux    *http.ServeMux
	server *http.Server
	routes *handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	health     *handler.Health
	auth       *handler.Auth
	schedule   *handler.Schedule
	student    *handler.Student
	instructor *handler.Instructor
	vehicle    *handler.Vehicle
	pkg        *handler.Package
	board      *handler.Board
}

func New(
	cfg config.Config,
	scheduleService handler.ScheduleService,
	studentService handler.StudentService,
	instructorService handler.InstructorService,
	vehicleService handler.VehicleService,
	authService handler.AuthService,
	connHub *ws.ConnectionHub,
	logger logger.Logger,
) (*API, error) {
	if authService == nil {
		return nil, errors.New("auth service is required")
	}

	routes := &handlers{
		health:     handler.NewHealth(serviceName, logger),
		auth:       handler.NewAuth(authService, logger),
		schedule:   handler.NewSchedule(scheduleService, logger),
		student:    handler.NewStudent(studentService, logger),
		instructor: handler.NewInstructor(instructorService, logger),
		vehicle:    handler.NewVehicle(vehicleService, logger),
		pkg:        handler.NewPackage(logger),
		board:      handler.NewBoard(serviceName, connHub, logger),
	}

	mid := middleware.NewMiddleware(authService, logger)

	api := &API{
		mux:    http.NewServeMux(),
		routes: routes,
		m:      mid,
		addr:   cfg.Server.Addr(),
		cfg:    cfg,
		log:    logger,
	}

	api.server = &http.Server{
		Addr:    api.addr,
		Handler: api.withMiddleware(),
	}

	setupRoutes(api.mux, api.routes, api.m)

	return api, nil
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// withMiddleware applies middlewares to the mux
func (a *API) withMiddleware() http.Handler {
	return a.m.Recover(a.m.RequestID(a.m.Metrics(serviceName)(a.m.Logging(a.m.Auth(a.mux)))))
}
