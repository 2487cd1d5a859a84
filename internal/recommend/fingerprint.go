// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package recommend

import (
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/outfitter/internal/cache"
)

// fingerprintNamespace prefixes every request fingerprint.
const fingerprintNamespace = "outfits"

// fingerprintFields is the normalized request the fingerprint hashes.
// Field order is fixed, so the JSON encoding is stable.
type fingerprintFields struct {
	Anchor    string `json:"anchor"`
	Occasion  string `json:"occasion"`
	Season    string `json:"season"`
	Style     string `json:"style"`
	BudgetSet bool   `json:"budget_set"`
	Budget    string `json:"budget"`
	Count     int    `json:"count"`
}

// Fingerprint digests a normalized request. Requests that differ only in
// request id, enum case or sub-cent budget digits share a fingerprint.
// Count must already have defaults and limits applied.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func Fingerprint(req Request) string {
	f := fingerprintFields{
		Anchor:   strings.TrimSpace(req.AnchorID),
		Occasion: strings.ToLower(string(req.Occasion)),
		Season:   strings.ToLower(string(req.Season)),
		Style:    strings.ToLower(string(req.Style)),
		Count:    req.Count,
	}
	if budget, ok := req.Budget(); ok {
		f.BudgetSet = true
		// Formatted rather than converted to integer cents, which
		// overflows int64 for very large budgets.
		f.Budget = strconv.FormatFloat(math.Round(budget*100)/100, 'f', 2, 64)
	}
	return cache.GenerateKey(fingerprintNamespace, f)
}
