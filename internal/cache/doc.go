// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

/*
Package cache provides the in-process result cache used by the recommendation
engine.

LRU is a generic, mutex-guarded least-recently-used cache with a fixed entry
capacity and a per-entry time-to-live. Expired entries are treated as misses
and removed on access; CleanupExpired sweeps them in bulk.

	c := cache.NewLRU[[]Outfit](1000, time.Hour)
	c.Put(key, outfits)
	if v, ok := c.Get(key); ok {
	    // served from cache
	}
	s := c.Stats() // hits, misses, evictions, size, capacity

GenerateKey hashes a JSON-encodable value into a stable "<namespace>:<hex>"
key.

The cache is an accelerator only. Callers must produce identical results
with or without it.
*/
package cache
