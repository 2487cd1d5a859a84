// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/outfitter/internal/models"
)

// readinessTimeout bounds the catalog check of the readiness probe.
const readinessTimeout = 2 * time.Second

// Root handles GET / with service information.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, models.ServiceInfo{
		Message: "Outfit Recommendation API",
		Version: h.version,
		Endpoints: map[string]string{
			"GET /api/v1/products":         "List all available products",
			"GET /api/v1/products/{id}":    "Get product details",
			"POST /api/v1/recommendations": "Generate outfit recommendations",
			"GET /api/v1/stats":            "Catalog, cache and engine statistics",
			"DELETE /api/v1/cache":         "Clear cached recommendations",
			"GET /health":                  "Health check",
			"GET /metrics":                 "Prometheus metrics",
		},
	})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	m := h.engine.GetMetrics()

	status := "healthy"
	if m.CatalogItems == 0 {
		status = "degraded"
	}

	respondSuccess(w, r, http.StatusOK, models.HealthStatus{
		Status:         status,
		Version:        h.version,
		ProductsCount:  m.CatalogItems,
		CatalogVersion: m.CatalogVersion,
		ModelBuiltAt:   m.ModelBuiltAt,
		Uptime:         time.Since(h.startTime).Seconds(),
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only when the catalog is reachable and the harmony model
// covers at least one item.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	_, repoErr := h.repo.Version(ctx)
	catalogReachable := repoErr == nil
	modelLoaded := h.engine.GetMetrics().CatalogItems > 0
	ready := catalogReachable && modelLoaded

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"catalog_reachable": catalogReachable,
			"model_loaded":      modelLoaded,
			"ready_to_serve":    ready,
			"uptime":            time.Since(h.startTime).Seconds(),
		},
		Metadata: newMetadata(r),
	})
}
