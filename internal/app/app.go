package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/worktracker-backend/internal/adapter/postgres"
	employeerepo "github.com/heartmarshall/worktracker-backend/internal/adapter/postgres/employee"
	sessionrepo "github.com/heartmarshall/worktracker-backend/internal/adapter/postgres/session"
	timeentryrepo "github.com/heartmarshall/worktracker-backend/internal/adapter/postgres/timeentry"
	tokenrepo "github.com/heartmarshall/worktracker-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/worktracker-backend/internal/auth"
	"github.com/heartmarshall/worktracker-backend/internal/config"
	authsvc "github.com/heartmarshall/worktracker-backend/internal/service/auth"
	employeesvc "github.com/heartmarshall/worktracker-backend/internal/service/employee"
	reportsvc "github.com/heartmarshall/worktracker-backend/internal/service/report"
	trackingsvc "github.com/heartmarshall/worktracker-backend/internal/service/tracking"
	"github.com/heartmarshall/worktracker-backend/internal/transport/middleware"
	"github.com/heartmarshall/worktracker-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services, and HTTP handlers, and serves
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	// Repositories.
	employeeRepo := employeerepo.New(pool)
	sessionRepo := sessionrepo.New(pool)
	entryRepo := timeentryrepo.New(pool)
	tokenRepo := tokenrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services.
	authService := authsvc.NewService(logger, employeeRepo, tokenRepo, jwtMgr, cfg.Auth)
	trackingService := trackingsvc.NewService(logger, sessionRepo, entryRepo, txm)
	employeeService := employeesvc.NewService(logger, employeeRepo)
	reportService := reportsvc.NewService(logger, entryRepo, employeeRepo, sessionRepo)

	// HTTP handlers and routes.
	mux := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(authService, logger),
		Tracking: rest.NewTrackingHandler(trackingService, logger),
		Admin:    rest.NewAdminHandler(employeeService, trackingService, logger),
		Report:   rest.NewReportHandler(reportService, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(authService),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
