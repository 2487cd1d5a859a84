// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/outfitter/internal/catalog"
	"github.com/tomtom215/outfitter/internal/middleware"
	"github.com/tomtom215/outfitter/internal/models"
	"github.com/tomtom215/outfitter/internal/recommend"
)

// Recommend handles POST /api/v1/recommendations.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendationRequest
	if apiErr := decodeJSONBody(w, r, &req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, req.ToEngineRequest(middleware.GetRequestID(r.Context())))
	if err != nil {
		status, apiErr := engineError(err)
		respondError(w, r, status, apiErr, err)
		return
	}

	meta := newMetadata(r)
	meta.QueryTimeMS = resp.Metadata.LatencyMS
	meta.Cached = resp.Metadata.CacheHit

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     models.NewRecommendationResponse(resp),
		Metadata: meta,
	})
}

// engineError maps a recommendation failure to a status and error body.
func engineError(err error) (int, *models.APIError) {
	var validationErr *recommend.ValidationError
	var insufficientErr *recommend.InsufficientCandidatesError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, &models.APIError{
			Code:    "VALIDATION_ERROR",
			Message: validationErr.Error(),
			Details: map[string]interface{}{"field": validationErr.Field},
		}
	case errors.Is(err, recommend.ErrNotFound):
		return http.StatusNotFound, &models.APIError{
			Code:    "NOT_FOUND",
			Message: "Product not found",
		}
	case errors.As(err, &insufficientErr):
		return http.StatusUnprocessableEntity, &models.APIError{
			Code:    "INSUFFICIENT_CANDIDATES",
			Message: insufficientErr.Error(),
			Details: map[string]interface{}{"category": string(insufficientErr.Category)},
		}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, &models.APIError{
			Code:    "TIMEOUT",
			Message: "Recommendation timed out",
		}
	default:
		return http.StatusInternalServerError, &models.APIError{
			Code:    "INTERNAL_ERROR",
			Message: "Failed to generate recommendations",
		}
	}
}

// Stats handles GET /api/v1/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.All(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError,
			&models.APIError{Code: "INTERNAL_ERROR", Message: "Failed to load catalog"}, err)
		return
	}

	byCategory := make(map[string]int, len(catalog.Categories))
	for category, n := range catalog.CountByCategory(items) {
		byCategory[string(category)] = n
	}

	m := h.engine.GetMetrics()
	cs := h.engine.CacheStats()

	respondSuccess(w, r, http.StatusOK, models.StatsResponse{
		TotalProducts:      len(items),
		ProductsByCategory: byCategory,
		CatalogVersion:     m.CatalogVersion,
		MatrixPairs:        m.MatrixPairs,
		Cache: models.CacheStats{
			Enabled:   cs.Capacity > 0,
			Size:      cs.Size,
			MaxSize:   cs.Capacity,
			Hits:      cs.Hits,
			Misses:    cs.Misses,
			Evictions: cs.Evictions,
			HitRate:   models.Round(cs.HitRate(), 3),
		},
		Engine: models.EngineStats{
			Requests:       m.Requests,
			Errors:         m.Errors,
			PartialResults: m.PartialResults,
			ModelBuiltAt:   m.ModelBuiltAt,
		},
	})
}

// ClearCache handles DELETE /api/v1/cache.
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	before := h.engine.CacheStats().Size
	h.engine.ClearCache()

	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"cleared":    before,
		"cleared_at": time.Now().UTC(),
	})
}
