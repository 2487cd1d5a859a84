// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/outfitter/internal/metrics"
	"github.com/tomtom215/outfitter/internal/recommend"
)

// CatalogRefresher is the part of recommend.Engine the refresh loop drives.
type CatalogRefresher interface {
	Refresh(ctx context.Context) (bool, error)
	CleanupCache() int
	GetMetrics() recommend.EngineMetrics
}

// CatalogRefreshConfig holds configuration for the refresh service.
type CatalogRefreshConfig struct {
	// Interval between catalog version checks. Default: 30s
	Interval time.Duration

	// Timeout bounds one refresh, including a full model rebuild. Default: 1m
	Timeout time.Duration
}

// CatalogRefreshService polls the catalog version and rebuilds the harmony
// model when it changes. Each tick also drops expired cached results.
type CatalogRefreshService struct {
	engine CatalogRefresher
	config CatalogRefreshConfig
	logger zerolog.Logger
	name   string
}

// NewCatalogRefreshService creates a new refresh service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogRefreshService(engine CatalogRefresher, cfg CatalogRefreshConfig, logger zerolog.Logger) *CatalogRefreshService {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Minute
	}
	return &CatalogRefreshService{
		engine: engine,
		config: cfg,
		logger: logger.With().Str("service", "catalog-refresh").Logger(),
		name:   "catalog-refresh",
	}
}

// Serve implements suture.Service. Refresh errors are logged and retried
// on the next tick; the engine keeps serving its current model.
func (s *CatalogRefreshService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.config.Interval).Msg("catalog refresh service starting")

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog refresh service shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs one refresh and cache cleanup.
func (s *CatalogRefreshService) tick(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	rebuilt, err := s.engine.Refresh(refreshCtx)
	switch {
	case err != nil:
		metrics.RecordCatalogRefresh(metrics.RefreshError, 0)
		s.logger.Warn().Err(err).Msg("catalog refresh failed")
	case rebuilt:
		version := s.engine.GetMetrics().CatalogVersion
		metrics.RecordCatalogRefresh(metrics.RefreshRebuilt, version)
		s.logger.Info().
			Uint64("catalog_version", version).
			Dur("duration", time.Since(start)).
			Msg("catalog changed, harmony model rebuilt")
	default:
		metrics.RecordCatalogRefresh(metrics.RefreshUnchanged, s.engine.GetMetrics().CatalogVersion)
	}

	if removed := s.engine.CleanupCache(); removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("expired cache entries removed")
	}
}

// String returns the service name for logging.
func (s *CatalogRefreshService) String() string {
	return s.name
}
