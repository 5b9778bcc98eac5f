package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/asmirnova/circleback/internal/adapter/postgres"
	contactrepo "github.com/asmirnova/circleback/internal/adapter/postgres/contact"
	interactionrepo "github.com/asmirnova/circleback/internal/adapter/postgres/interaction"
	"github.com/asmirnova/circleback/internal/auth"
	"github.com/asmirnova/circleback/internal/config"
	contactsvc "github.com/asmirnova/circleback/internal/service/contact"
	interactionsvc "github.com/asmirnova/circleback/internal/service/interaction"
	statssvc "github.com/asmirnova/circleback/internal/service/stats"
	"github.com/asmirnova/circleback/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, applies migrations, wires repositories, services, and the
// HTTP transport, and serves until ctx is cancelled. Shutdown drains
// in-flight requests within the configured timeout.
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

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	contacts := contactrepo.New(pool)
	interactions := interactionrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	contactService := contactsvc.NewService(logger, contacts)
	interactionService := interactionsvc.NewService(logger, interactions, contacts, txManager)
	statsService := statssvc.NewService(logger, interactions)

	tokens := auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenIssuer, cfg.Auth.TokenTTL)

	router := rest.NewRouter(
		logger,
		cfg.CORS,
		tokens,
		rest.NewContactHandler(contactService, logger),
		rest.NewLogHandler(interactionService, logger),
		rest.NewStatsHandler(statsService, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
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

	logger.Info("shutting down",
		slog.Duration("timeout", cfg.Server.ShutdownTimeout),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
