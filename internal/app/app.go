package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vahanex/vahanex-server/config"
	httpserver "github.com/vahanex/vahanex-server/internal/adapter/http/server"
	repo "github.com/vahanex/vahanex-server/internal/adapter/postgres"
	"github.com/vahanex/vahanex-server/internal/adapter/rabbit"
	"github.com/vahanex/vahanex-server/internal/adapter/rediscache"
	"github.com/vahanex/vahanex-server/internal/service/auth"
	"github.com/vahanex/vahanex-server/internal/service/directory"
	"github.com/vahanex/vahanex-server/internal/service/schedule"
	"github.com/vahanex/vahanex-server/pkg/logger"
	postgresclient "github.com/vahanex/vahanex-server/pkg/postgres"
	rabbitclient "github.com/vahanex/vahanex-server/pkg/rabbit"
	"github.com/vahanex/vahanex-server/pkg/trm"
	ws "github.com/vahanex/vahanex-server/pkg/wsHub"
)

type App struct {
	postgresDB *postgresclient.PostgreDB
	redis      *rediscache.Client
	rabbitMQ   *rabbitclient.RabbitMQ
	connHub    *ws.ConnectionHub
	httpServer *httpserver.API

	cfg config.Config
	log logger.Logger
}

func NewApplication(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	postgresDB, err := postgresclient.New(ctx, cfg.Database)
	if err != nil {
		log.Error(ctx, "Failed to setup database", err)
		return nil, err
	}

	rabbitMQ, err := rabbitclient.New(ctx, cfg.RabbitMQ.GetDSN(), log)
	if err != nil {
		log.Error(ctx, "Failed to setup RabbitMQ", err)
		return nil, err
	}

	redisClient := rediscache.New(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Ping(ctx); err != nil {
		log.Error(ctx, "Failed to ping redis", err)
		return nil, err
	}

	connHub := ws.NewConnHub(log)
	txManager := trm.New(postgresDB.Pool)

	// repositories
	scheduleRepo := repo.NewScheduleRepo(postgresDB.Pool)
	studentRepo := repo.NewStudentRepo(postgresDB.Pool)
	instructorRepo := repo.NewInstructorRepo(postgresDB.Pool)
	vehicleRepo := repo.NewVehicleRepo(postgresDB.Pool)
	userRepo := repo.NewUserRepo(postgresDB.Pool)
	refreshTokenRepo := repo.NewRefreshTokenRepo(postgresDB.Pool)

	// adapters
	statsCache := rediscache.NewStatsCache(redisClient, cfg.Cache.StatsTTL, log)
	scheduleBroker := rabbit.NewScheduleBroker(rabbitMQ, log)

	// services
	scheduleSvc := schedule.NewScheduleService(scheduleRepo, statsCache, scheduleBroker, connHub, log, txManager)
	studentSvc := directory.NewStudentService(studentRepo, log)
	instructorSvc := directory.NewInstructorService(instructorRepo, log)
	vehicleSvc := directory.NewVehicleService(vehicleRepo, log)
	tokenSvc := auth.NewTokenService(cfg.Auth.JWTSecret, userRepo, refreshTokenRepo, txManager, cfg.Auth.RefreshTokenTTL, cfg.Auth.AccessTokenTTL, log)
	authSvc := auth.NewAuthService(userRepo, tokenSvc, log)

	httpServer, err := httpserver.New(cfg, scheduleSvc, studentSvc, instructorSvc, vehicleSvc, authSvc, connHub, log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		return nil, err
	}

	return &App{
		postgresDB: postgresDB,
		redis:      redisClient,
		rabbitMQ:   rabbitMQ,
		connHub:    connHub,
		httpServer: httpServer,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.httpServer.Run(ctx, errCh)
	defer func() {
		a.close(ctx)
		a.log.Info(ctx, "application closed")
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	a.log.Info(ctx, "application started")

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		a.log.Info(ctx, "shutting down application", "signal", sig.String())
		return nil
	}
}

func (a *App) close(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	if a.httpServer != nil {
		if err := a.httpServer.Stop(ctx); err != nil {
			a.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}

	if a.connHub != nil {
		a.connHub.Close()
	}

	if a.rabbitMQ != nil {
		if err := a.rabbitMQ.Close(ctx); err != nil {
			a.log.Warn(ctx, "Failed to gracefully close RabbitMQ", "error", err.Error())
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn(ctx, "Failed to close redis client", "error", err.Error())
		}
	}

	if a.postgresDB != nil && a.postgresDB.Pool != nil {
		a.postgresDB.Pool.Close()
	}
}
