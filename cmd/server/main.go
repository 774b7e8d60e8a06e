package main

import (
	"context"
	"log"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/vitorlacerda05/Formula1-dashboard/api/handler"
	"github.com/vitorlacerda05/Formula1-dashboard/domain"
	"github.com/vitorlacerda05/Formula1-dashboard/internal/config"
	"github.com/vitorlacerda05/Formula1-dashboard/internal/infrastructure/buffer"
	"github.com/vitorlacerda05/Formula1-dashboard/internal/infrastructure/monitor"
	pgInfra "github.com/vitorlacerda05/Formula1-dashboard/internal/infrastructure/postgres"
	redisInfra "github.com/vitorlacerda05/Formula1-dashboard/internal/infrastructure/redis"
	"github.com/vitorlacerda05/Formula1-dashboard/internal/middleware"
	"github.com/vitorlacerda05/Formula1-dashboard/internal/router"
	"github.com/vitorlacerda05/Formula1-dashboard/internal/services"
	"github.com/vitorlacerda05/Formula1-dashboard/internal/services/lifecycle"
	sessionInfra "github.com/vitorlacerda05/Formula1-dashboard/internal/session"
	"github.com/vitorlacerda05/Formula1-dashboard/pkg/httpcontext"
	"github.com/vitorlacerda05/Formula1-dashboard/pkg/logger"
	"github.com/vitorlacerda05/Formula1-dashboard/repository"
	"github.com/vitorlacerda05/Formula1-dashboard/repository/postgres"
	redisRepo "github.com/vitorlacerda05/Formula1-dashboard/repository/redis"
	authUC "github.com/vitorlacerda05/Formula1-dashboard/usecase/auth"
	dashboardUC "github.com/vitorlacerda05/Formula1-dashboard/usecase/dashboard"
	reportUC "github.com/vitorlacerda05/Formula1-dashboard/usecase/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
		AppName:  cfg.AppName,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pgInfra.Close(pool, zapLogger)
		return nil
	})

	// Redis is only dialed when sessions live server-side; the default
	// deployment keeps the session in the signed cookie.
	sessionStore, redisClient, err := buildSessionStore(cfg)
	if err != nil {
		zapLogger.Fatal("session store setup failed", zap.Error(err))
	}
	if redisClient != nil {
		manager.Register("redis", func(ctx context.Context) error {
			return redisClient.Close()
		})
	}

	spool, err := buffer.Open(cfg.Audit.SpoolPath, "audit")
	if err != nil {
		zapLogger.Fatal("failed to open audit spool", zap.Error(err))
	}
	manager.Register("audit_spool", func(ctx context.Context) error {
		return spool.Close()
	})

	mon := monitor.New(pool, redisClient, spool, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	auditSpooler := services.NewAuditSpooler(
		spool,
		mon,
		auditRepo,
		zapLogger,
		services.SpoolerConfig{
			Interval:   cfg.Audit.DrainInterval,
			BatchSize:  cfg.Audit.BatchSize,
			MaxRetries: cfg.Audit.MaxRetry,
		},
	)
	auditSpooler.Start()
	manager.Register("audit_spooler", func(ctx context.Context) error {
		auditSpooler.Stop(ctx)
		return nil
	})

	authUseCase := authUC.New(userRepo, sessionStore, auditSpooler, zapLogger)
	dashboardUseCase := dashboardUC.New(dashboardRepo, zapLogger)
	reportUseCase := reportUC.New(reportRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	cookies := sessionInfra.CookiePolicy{
		Name:   cfg.Session.CookieName,
		MaxAge: cfg.Session.MaxAge,
		Secure: cfg.IsProduction(),
	}

	handlers := router.Handlers{
		Auth:      apiHandler.NewAuthHandler(authUseCase, cookies, ctxAdapter, zapLogger),
		Dashboard: apiHandler.NewDashboardHandler(dashboardUseCase, ctxAdapter, zapLogger),
		Report:    apiHandler.NewReportHandler(reportUseCase, ctxAdapter, zapLogger),
		Health:    apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	sessionAuth := middleware.SessionAuth(authUseCase, cookies, ctxAdapter, zapLogger)
	requireRole := func(roles ...domain.Role) router.Middleware {
		return middleware.RequireRole(zapLogger, roles...)
	}
	r := router.New(handlers, sessionAuth, requireRole)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}

func buildSessionStore(cfg *config.Config) (repository.SessionStore, *redislib.Client, error) {
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		client, err := redisInfra.NewClient(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return redisRepo.NewSessionStore(client, cfg.Session.MaxAge), client, nil
	default:
		return sessionInfra.NewCookieStore(cfg.Session.Secret, cfg.Session.MaxAge, cfg.AppName), nil, nil
	}
}
