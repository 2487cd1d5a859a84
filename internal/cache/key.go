// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package cache

import (
	"crypto/sha256"
	"fmt"

	"github.com/goccy/go-json"
)

// GenerateKey derives a compact cache key from a namespace and a parameter
// value. params is JSON-encoded and hashed with SHA-256; struct field order
// and sorted map keys make the encoding, and therefore the key, stable.
//
// Example:
//
//	key := cache.GenerateKey("outfits", normalizedRequest)
//	// "outfits:3f1a...(32 hex chars)"
func GenerateKey(namespace string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", namespace, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", namespace, hash[:16])
}
