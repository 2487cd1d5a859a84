// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/outfitter/internal/api"
	"github.com/tomtom215/outfitter/internal/catalog"
	"github.com/tomtom215/outfitter/internal/config"
	"github.com/tomtom215/outfitter/internal/logging"
	"github.com/tomtom215/outfitter/internal/metrics"
	"github.com/tomtom215/outfitter/internal/recommend"
	"github.com/tomtom215/outfitter/internal/supervisor"
	"github.com/tomtom215/outfitter/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Outfitter exited with error")
	}
}

//nolint:gocyclo // Sequential startup steps
func run() error {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("version", version).
		Str("catalog_source", cfg.Catalog.Source).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Outfitter with supervisor tree")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openCatalog(ctx, &cfg.Catalog)
	if err != nil {
		return err
	}
	defer closeRepo()

	engine, err := recommend.NewEngine(ctx, repo, cfg.Recommend.EngineConfig(),
		logging.WithComponent("recommend"),
		recommend.WithObserver(metrics.EngineObserver{}),
	)
	if err != nil {
		return fmt.Errorf("create recommendation engine: %w", err)
	}
	engineMetrics := engine.GetMetrics()
	metrics.CatalogVersion.Set(float64(engineMetrics.CatalogVersion))
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
	logging.Info().
		Int("items", engineMetrics.CatalogItems).
		Int("pairs", engineMetrics.MatrixPairs).
		Uint64("catalog_version", engineMetrics.CatalogVersion).
		Msg("Harmony model built")

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	handler := api.NewHandler(engine, repo, version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))

	if cfg.Catalog.RefreshInterval > 0 {
		tree.AddCatalogService(services.NewCatalogRefreshService(engine, services.CatalogRefreshConfig{
			Interval: cfg.Catalog.RefreshInterval,
		}, logging.WithComponent("catalog")))
		logging.Info().Dur("interval", cfg.Catalog.RefreshInterval).Msg("Catalog refresh service added")
	} else {
		logging.Info().Msg("Catalog refresh disabled (CATALOG_REFRESH_INTERVAL=0)")
	}

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
		stop()
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
	return nil
}

// openCatalog builds the configured catalog repository. The returned
// function releases any storage it holds.
func openCatalog(ctx context.Context, cfg *config.CatalogConfig) (catalog.Repository, func(), error) {
	switch cfg.Source {
	case config.CatalogSourceBadger:
		db, err := catalog.OpenBadger(cfg.BadgerPath)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing catalog database")
			}
		}

		repo := catalog.NewBadgerRepository(db)
		if cfg.SeedOnEmpty {
			if err := seedCatalog(ctx, repo, db); err != nil {
				closeDB()
				return nil, nil, err
			}
		}
		logging.Info().Str("path", cfg.BadgerPath).Msg("Badger catalog opened")
		return repo, closeDB, nil

	default:
		repo, err := catalog.NewMemoryRepository(catalog.SeedItems())
		if err != nil {
			return nil, nil, fmt.Errorf("load seed catalog: %w", err)
		}
		logging.Info().Msg("In-memory seed catalog loaded")
		return repo, func() {}, nil
	}
}

func seedCatalog(ctx context.Context, repo *catalog.BadgerRepository, db *badger.DB) error {
	seeded, err := repo.SeedIfEmpty(ctx, catalog.SeedItems())
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if seeded {
		logging.Info().
			Bool("in_memory", db.Opts().InMemory).
			Msg("Empty catalog seeded with default products")
	}
	return nil
}
