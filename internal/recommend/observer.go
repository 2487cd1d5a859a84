// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package recommend

import "time"

// Request outcomes reported to an Observer.
const (
	OutcomeSuccess                = "success"
	OutcomePartial                = "partial"
	OutcomeCacheHit               = "cache_hit"
	OutcomeNotFound               = "not_found"
	OutcomeInsufficientCandidates = "insufficient_candidates"
	OutcomeInvalid                = "invalid"
	OutcomeError                  = "error"
)

// Observer receives engine events. Implementations must be safe for
// concurrent use and must not block.
type Observer interface {
	ObserveRequest(outcome string, latency time.Duration, outfits, attempts int)
	ObserveCacheLookup(hit bool)
	ObserveCacheSize(size int)
	ObserveModelBuild(items, pairs int, duration time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveRequest(string, time.Duration, int, int) {}
func (noopObserver) ObserveCacheLookup(bool)                        {}
func (noopObserver) ObserveCacheSize(int)                           {}
func (noopObserver) ObserveModelBuild(int, int, time.Duration)      {}
