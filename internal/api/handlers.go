// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package api

import (
	"context"
	"time"

	"github.com/tomtom215/outfitter/internal/cache"
	"github.com/tomtom215/outfitter/internal/catalog"
	"github.com/tomtom215/outfitter/internal/recommend"
)

// RecommendationEngine is the part of recommend.Engine the handlers use.
type RecommendationEngine interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
	GetMetrics() recommend.EngineMetrics
	CacheStats() cache.Stats
	ClearCache()
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response, decoding and validation helpers
//   - handlers_health.go: service info and health probes
//   - handlers_products.go: catalog endpoints
//   - handlers_recommend.go: recommendations, stats and cache control
type Handler struct {
	engine    RecommendationEngine
	repo      catalog.Repository
	version   string
	startTime time.Time

	// requestTimeout bounds one recommendation pipeline run
	requestTimeout time.Duration
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(engine, repo, "1.0.0")
//	router := api.NewRouter(handler, chiMw)
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(engine RecommendationEngine, repo catalog.Repository, version string) *Handler {
	return &Handler{
		engine:         engine,
		repo:           repo,
		version:        version,
		startTime:      time.Now(),
		requestTimeout: 10 * time.Second,
	}
}
