// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

// Package metrics defines the Prometheus collectors for Outfitter.
//
// Collectors are registered with the default registry at package init via
// promauto and exposed by the API at /metrics. The recommendation engine
// reports through EngineObserver, which satisfies recommend.Observer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_request_duration_seconds",
			Help:    "Recommendation pipeline latency in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"outcome"},
	)

	RecommendOutfitsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_outfits_returned",
			Help:    "Number of outfits returned per request",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20},
		},
	)

	RecommendGenerationAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_generation_attempts",
			Help:    "Assembly attempts used per generated response",
			Buckets: []float64{1, 5, 10, 25, 50, 75, 100},
		},
	)

	// Result Cache Metrics
	RecommendCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_cache_lookups_total",
			Help: "Result cache lookups by result (hit or miss)",
		},
		[]string{"result"},
	)

	RecommendCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_cache_entries",
			Help: "Current number of cached recommendation results",
		},
	)

	// Harmony Model Metrics
	HarmonyModelItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "harmony_model_items",
			Help: "Catalog items covered by the current harmony model",
		},
	)

	HarmonyModelPairs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "harmony_model_pairs",
			Help: "Distinct item pairs in the current harmony model",
		},
	)

	HarmonyModelBuilds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "harmony_model_builds_total",
			Help: "Total harmony model builds",
		},
	)

	HarmonyModelBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "harmony_model_build_duration_seconds",
			Help:    "Time to build the harmony model in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		},
	)

	// Catalog Metrics
	CatalogRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_refresh_total",
			Help: "Catalog refresh checks by result (unchanged, rebuilt, error)",
		},
		[]string{"result"},
	)

	CatalogVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_version",
			Help: "Catalog version the current harmony model was built from",
		},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application information",
		},
		[]string{"version", "go_version"},
	)
)

// Catalog refresh results.
const (
	RefreshUnchanged = "unchanged"
	RefreshRebuilt   = "rebuilt"
	RefreshError     = "error"
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordCatalogRefresh records one refresh check and, when known, the
// catalog version in use afterwards.
func RecordCatalogRefresh(result string, version uint64) {
	CatalogRefreshes.WithLabelValues(result).Inc()
	if result != RefreshError {
		CatalogVersion.Set(float64(version))
	}
}

// EngineObserver records recommendation engine events.
type EngineObserver struct{}

// ObserveRequest records one finished request.
func (EngineObserver) ObserveRequest(outcome string, latency time.Duration, outfits, attempts int) {
	RecommendRequests.WithLabelValues(outcome).Inc()
	RecommendDuration.WithLabelValues(outcome).Observe(latency.Seconds())
	RecommendOutfitsReturned.Observe(float64(outfits))
	if attempts > 0 {
		RecommendGenerationAttempts.Observe(float64(attempts))
	}
}

// ObserveCacheLookup records a result cache hit or miss.
func (EngineObserver) ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	RecommendCacheLookups.WithLabelValues(result).Inc()
}

// ObserveCacheSize records the result cache entry count.
func (EngineObserver) ObserveCacheSize(size int) {
	RecommendCacheEntries.Set(float64(size))
}

// ObserveModelBuild records a harmony model rebuild.
func (EngineObserver) ObserveModelBuild(items, pairs int, duration time.Duration) {
	HarmonyModelBuilds.Inc()
	HarmonyModelBuildDuration.Observe(duration.Seconds())
	HarmonyModelItems.Set(float64(items))
	HarmonyModelPairs.Set(float64(pairs))
}
