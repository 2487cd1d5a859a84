// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

// Package recommend builds ranked outfit bundles around an anchor item.
//
// # Pipeline
//
// Every request runs the same stages:
//
//   - Fingerprint: the normalized request is hashed into a cache key
//   - Cache: a hit returns the stored ranked list unchanged
//   - Filter: each category is narrowed by occasion, season and style
//   - Generate: bounded randomized attempts assemble distinct outfits
//   - Score: five weighted sub-scores plus a reasoning string
//   - Rank: descending score, truncated to the requested count
//
// # Harmony Model
//
// HarmonyModel precomputes a symmetric color compatibility score for
// every pair of catalog items from their HSV hue distance, with a bonus
// when either color is neutral (low saturation). It is built once per
// catalog version and never mutated; the engine swaps in a new one when
// the repository version changes.
//
// # Determinism
//
// Randomness comes from a RandomSource. SeededSource derives each
// request's generator from a fixed seed and the request fingerprint, so a
// pinned seed yields identical output with or without the result cache.
// EntropySource is used when Config.Seed is zero.
//
// # Errors
//
//   - ErrValidation: malformed request, rejected before filtering
//   - ErrNotFound: the anchor id is not in the catalog
//   - ErrInsufficientCandidates: a required category filtered to empty
//
// A response with fewer outfits than requested has Partial set and is not
// an error. Failed requests are never cached.
//
// # Usage
//
//	engine, err := recommend.NewEngine(ctx, repo, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    AnchorID: "top_002",
//	    Occasion: catalog.OccasionWork,
//	    Count:    5,
//	})
package recommend
