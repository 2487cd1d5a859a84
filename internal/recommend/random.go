// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package recommend

import (
	crand "crypto/rand"
	"encoding/binary"
	"hash/fnv"
	"math/rand"
	"time"
)

// RandomSource hands out a random generator for each request. The returned
// *rand.Rand is used by a single goroutine only.
type RandomSource interface {
	ForRequest(fingerprint string) *rand.Rand
}

// SeededSource derives each request's generator from a fixed seed and the
// request fingerprint, so identical requests draw identical sequences.
type SeededSource struct {
	seed int64
}

// NewSeededSource creates a deterministic source.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{seed: seed}
}

// ForRequest returns a generator seeded from seed and fingerprint.
func (s *SeededSource) ForRequest(fingerprint string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fingerprint))
	mixed := s.seed ^ int64(h.Sum64()) //nolint:gosec // bit mixing, overflow is intended
	return rand.New(rand.NewSource(mixed)) //nolint:gosec // math/rand is fine for outfit variety
}

// EntropySource seeds every request from crypto/rand.
type EntropySource struct{}

// ForRequest returns a freshly seeded generator. The fingerprint is ignored.
func (EntropySource) ForRequest(string) *rand.Rand {
	var b [8]byte
	seed := time.Now().UnixNano()
	if _, err := crand.Read(b[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(b[:])) //nolint:gosec // reinterpreting random bits
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // math/rand is fine for outfit variety
}
