// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package recommend

import (
	"sort"

	"github.com/tomtom215/outfitter/internal/catalog"
)

// Eligible reports whether an item passes the hard constraints: occasion
// (when given), season (when given, all-season always passes) and style
// (target style or anchor style).
func Eligible(it *catalog.Item, c *Constraints) bool {
	if c.Occasion != "" && !it.HasOccasion(c.Occasion) {
		return false
	}
	if c.Season != "" && !it.MatchesSeason(c.Season) {
		return false
	}
	if it.Style != c.TargetStyle && it.Style != c.AnchorStyle {
		return false
	}
	return true
}

// WithinCeiling reports whether the item's price fits the advisory
// per-category ceiling. Always true without a budget.
func WithinCeiling(it *catalog.Item, c *Constraints) bool {
	if !c.HasBudget {
		return true
	}
	return it.Price <= c.CategoryCeiling()
}

// FilterCandidates returns the ids of items in category that satisfy the
// constraints, excluding excludeID. The price ceiling never removes an
// item: items within it are ordered first, then by id.
func FilterCandidates(items []catalog.Item, category catalog.Category, c *Constraints, excludeID string) []string {
	type candidate struct {
		id     string
		within bool
	}

	var matched []candidate
	for i := range items {
		it := &items[i]
		if it.Category != category || it.ID == excludeID {
			continue
		}
		if !Eligible(it, c) {
			continue
		}
		matched = append(matched, candidate{id: it.ID, within: WithinCeiling(it, c)})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].within != matched[j].within {
			return matched[i].within
		}
		return matched[i].id < matched[j].id
	})

	ids := make([]string, len(matched))
	for i := range matched {
		ids[i] = matched[i].id
	}
	return ids
}
