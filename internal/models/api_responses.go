// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"outfits": [...], "partial": false},
//	  "metadata": {
//	    "timestamp": "2026-05-02T12:00:00Z",
//	    "request_id": "5f0c...",
//	    "query_time_ms": 3
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "NOT_FOUND",
//	    "message": "Product not found",
//	    "details": {"id": "top_999"}
//	  },
//	  "metadata": {"timestamp": "2026-05-02T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id,omitempty"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Error codes:
//   - VALIDATION_ERROR: malformed request body or constraint
//   - NOT_FOUND: unknown product or anchor id
//   - INSUFFICIENT_CANDIDATES: a required category has no eligible item
//   - RATE_LIMITED: too many requests
//   - INTERNAL_ERROR: anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status         string    `json:"status"`
	Version        string    `json:"version"`
	ProductsCount  int       `json:"products_count"`
	CatalogVersion uint64    `json:"catalog_version"`
	ModelBuiltAt   time.Time `json:"model_built_at"`
	Uptime         float64   `json:"uptime"`
}

// ServiceInfo is the body of GET /.
type ServiceInfo struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// StatsResponse is the body of GET /api/v1/stats.
type StatsResponse struct {
	TotalProducts      int            `json:"total_products"`
	ProductsByCategory map[string]int `json:"products_by_category"`
	CatalogVersion     uint64         `json:"catalog_version"`
	MatrixPairs        int            `json:"matrix_pairs"`
	Cache              CacheStats     `json:"cache"`
	Engine             EngineStats    `json:"engine"`
}

// CacheStats reports the recommendation result cache.
type CacheStats struct {
	Enabled   bool    `json:"enabled"`
	Size      int     `json:"cache_size"`
	MaxSize   int     `json:"cache_max_size"`
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Evictions int64   `json:"evictions"`
	HitRate   float64 `json:"hit_rate"`
}

// EngineStats reports engine request counters.
type EngineStats struct {
	Requests       int64     `json:"requests"`
	Errors         int64     `json:"errors"`
	PartialResults int64     `json:"partial_results"`
	ModelBuiltAt   time.Time `json:"model_built_at"`
}
