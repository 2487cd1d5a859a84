// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/outfitter/internal/recommend"
)

var _ recommend.Observer = EngineObserver{}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/api/v1/test-record", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/api/v1/test-record", "200", 25*time.Millisecond)
	RecordAPIRequest("GET", "/api/v1/test-record", "200", 5*time.Millisecond)

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("api_requests_total delta = %v, want 2", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 2 {
		t.Errorf("after two increments delta = %v, want 2", got)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after decrements = %v, want %v", got, before)
	}
}

func TestRecordRateLimitHit(t *testing.T) {
	counter := APIRateLimitHits.WithLabelValues("/api/v1/test-limit")
	before := testutil.ToFloat64(counter)
	RecordRateLimitHit("/api/v1/test-limit")
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("rate limit delta = %v, want 1", got)
	}
}

func TestRecordCatalogRefresh(t *testing.T) {
	tests := []struct {
		result      string
		version     uint64
		wantVersion float64
	}{
		{RefreshRebuilt, 12, 12},
		{RefreshUnchanged, 12, 12},
		{RefreshError, 99, 12},
	}

	for _, tt := range tests {
		t.Run(tt.result, func(t *testing.T) {
			counter := CatalogRefreshes.WithLabelValues(tt.result)
			before := testutil.ToFloat64(counter)

			RecordCatalogRefresh(tt.result, tt.version)

			if got := testutil.ToFloat64(counter) - before; got != 1 {
				t.Errorf("catalog_refresh_total{%s} delta = %v, want 1", tt.result, got)
			}
			if got := testutil.ToFloat64(CatalogVersion); got != tt.wantVersion {
				t.Errorf("catalog_version = %v, want %v", got, tt.wantVersion)
			}
		})
	}
}

func TestEngineObserver_Requests(t *testing.T) {
	obs := EngineObserver{}

	tests := []struct {
		outcome  string
		outfits  int
		attempts int
	}{
		{recommend.OutcomeSuccess, 5, 40},
		{recommend.OutcomePartial, 2, 100},
		{recommend.OutcomeCacheHit, 5, 0},
		{recommend.OutcomeNotFound, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.outcome, func(t *testing.T) {
			counter := RecommendRequests.WithLabelValues(tt.outcome)
			before := testutil.ToFloat64(counter)

			obs.ObserveRequest(tt.outcome, 3*time.Millisecond, tt.outfits, tt.attempts)

			if got := testutil.ToFloat64(counter) - before; got != 1 {
				t.Errorf("recommend_requests_total{%s} delta = %v, want 1", tt.outcome, got)
			}
		})
	}

	if n := testutil.CollectAndCount(RecommendDuration); n < len(tests) {
		t.Errorf("recommend_request_duration_seconds series = %d, want >= %d", n, len(tests))
	}
}

func TestEngineObserver_Cache(t *testing.T) {
	obs := EngineObserver{}
	hits := RecommendCacheLookups.WithLabelValues("hit")
	misses := RecommendCacheLookups.WithLabelValues("miss")
	hitsBefore, missesBefore := testutil.ToFloat64(hits), testutil.ToFloat64(misses)

	obs.ObserveCacheLookup(true)
	obs.ObserveCacheLookup(false)
	obs.ObserveCacheLookup(false)

	if got := testutil.ToFloat64(hits) - hitsBefore; got != 1 {
		t.Errorf("hit delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(misses) - missesBefore; got != 2 {
		t.Errorf("miss delta = %v, want 2", got)
	}

	obs.ObserveCacheSize(17)
	if got := testutil.ToFloat64(RecommendCacheEntries); got != 17 {
		t.Errorf("recommend_cache_entries = %v, want 17", got)
	}
}

func TestEngineObserver_ModelBuild(t *testing.T) {
	obs := EngineObserver{}
	before := testutil.ToFloat64(HarmonyModelBuilds)

	obs.ObserveModelBuild(34, 561, 2*time.Millisecond)

	if got := testutil.ToFloat64(HarmonyModelBuilds) - before; got != 1 {
		t.Errorf("harmony_model_builds_total delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(HarmonyModelItems); got != 34 {
		t.Errorf("harmony_model_items = %v, want 34", got)
	}
	if got := testutil.ToFloat64(HarmonyModelPairs); got != 561 {
		t.Errorf("harmony_model_pairs = %v, want 561", got)
	}
}
