// @title CaseOpener API
// @version 1.0
// @description Case opening game backend: users, inventories, cases, market and trade-ups.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/CaseOpener_Go/internal/catalog"
	"github.com/osse101/CaseOpener_Go/internal/config"
	"github.com/osse101/CaseOpener_Go/internal/cooldown"
	"github.com/osse101/CaseOpener_Go/internal/database"
	"github.com/osse101/CaseOpener_Go/internal/database/memory"
	"github.com/osse101/CaseOpener_Go/internal/database/postgres"
	"github.com/osse101/CaseOpener_Go/internal/engine"
	"github.com/osse101/CaseOpener_Go/internal/game"
	"github.com/osse101/CaseOpener_Go/internal/metrics"
	"github.com/osse101/CaseOpener_Go/internal/repository"
	"github.com/osse101/CaseOpener_Go/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	initLogger(cfg)

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Warn("Environment validation failed, continuing with loaded defaults", "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn("Configuration warning", "warning", w)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.LoadFile(ctx, cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load case catalog: %w", err)
	}
	slog.Info("Case catalog loaded", "version", cat.Version(), "cases", len(cat.Cases()))

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	recorder := metrics.NewPrometheusRecorder()
	gameService := game.NewService(game.Deps{
		Store:   store,
		Catalog: cat,
		Engine:  engine.New(cat.Tables(), nil),
		Cooldowns: cooldown.NewService(store, cooldown.Config{
			DevMode: cfg.DevMode,
		}),
		Recorder: recorder,
	}, game.Config{
		StartingBalance: cfg.StartingBalance,
		MarketCacheTTL:  cfg.MarketCacheTTL,
		MarketCacheSize: cfg.MarketCacheSize,
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateWindow,
	}, gameService, store)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.Port, "storage", cfg.StorageBackend, "dev_mode", cfg.DevMode)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}

// openStore returns the configured storage backend, migrating Postgres when enabled.
func openStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	if !cfg.UsesPostgres() {
		slog.Info("Using in-memory storage")
		return memory.New(), nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	slog.Info("Connected to PostgreSQL", "host", cfg.DBHost, "database", cfg.DBName)
	return postgres.NewStore(pool), nil
}
