// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package recommend

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/outfitter/internal/catalog"
)

// Request asks for outfits built around one anchor item.
type Request struct {
	// RequestID is propagated to logs and metadata; generated when empty.
	RequestID string `json:"request_id,omitempty"`

	// AnchorID is the catalog id of the item every outfit must contain.
	AnchorID string `json:"anchor_id"`

	// Occasion, Season and Style are optional; the zero value means unset.
	Occasion catalog.Occasion `json:"occasion,omitempty"`
	Season   catalog.Season   `json:"season,omitempty"`
	Style    catalog.Style    `json:"style,omitempty"`

	// MaxBudget is optional. When set it must be positive.
	MaxBudget *float64 `json:"max_budget,omitempty"`

	// Count is the number of outfits wanted. Zero selects the default.
	Count int `json:"count,omitempty"`
}

// Budget returns the budget and whether one was given.
func (r *Request) Budget() (float64, bool) {
	if r.MaxBudget == nil {
		return 0, false
	}
	return *r.MaxBudget, true
}

// Constraints is the normalized view of a request used by the filter,
// generator and scorer.
type Constraints struct {
	Occasion catalog.Occasion
	Season   catalog.Season

	// TargetStyle is the requested style preference, or the anchor's style.
	TargetStyle catalog.Style

	// PreferredStyle is the explicit preference, empty when none was given.
	PreferredStyle catalog.Style

	// AnchorStyle is the anchor item's style.
	AnchorStyle catalog.Style

	MaxBudget float64
	HasBudget bool
}

// CategoryCeiling is the advisory per-category price ceiling. Zero without
// a budget.
func (c *Constraints) CategoryCeiling() float64 {
	if !c.HasBudget {
		return 0
	}
	return c.MaxBudget / float64(len(catalog.Categories))
}

// Outfit is one complete bundle: a top, a bottom, footwear and 1-3
// accessories, no id repeated.
type Outfit struct {
	Top         catalog.Item   `json:"top"`
	Bottom      catalog.Item   `json:"bottom"`
	Footwear    catalog.Item   `json:"footwear"`
	Accessories []catalog.Item `json:"accessories"`

	MatchScore float64        `json:"match_score"`
	TotalPrice float64        `json:"total_price"`
	Reasoning  string         `json:"reasoning"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
}

// Members returns every item in slot order: top, bottom, footwear, then
// accessories.
func (o *Outfit) Members() []catalog.Item {
	out := make([]catalog.Item, 0, 3+len(o.Accessories))
	out = append(out, o.Top, o.Bottom, o.Footwear)
	return append(out, o.Accessories...)
}

// IDs returns the sorted member ids.
func (o *Outfit) IDs() []string {
	members := o.Members()
	ids := make([]string, len(members))
	for i := range members {
		ids[i] = members[i].ID
	}
	sort.Strings(ids)
	return ids
}

// Key identifies the outfit by its member set, independent of order.
func (o *Outfit) Key() string {
	return strings.Join(o.IDs(), "|")
}

// sumPrices adds prices in integer cents so totals are exact to the cent.
func sumPrices(items []catalog.Item) float64 {
	var cents int64
	for i := range items {
		cents += int64(math.Round(items[i].Price * 100))
	}
	return float64(cents) / 100
}

func cloneOutfits(in []Outfit) []Outfit {
	if in == nil {
		return nil
	}
	out := make([]Outfit, len(in))
	for i := range in {
		out[i] = in[i]
		out[i].Accessories = append([]catalog.Item(nil), in[i].Accessories...)
		out[i].Breakdown.Schemes = cloneSchemeCounts(in[i].Breakdown.Schemes)
	}
	return out
}

// ScoreBreakdown holds the sub-scores and the facts the reasoning text is
// built from.
type ScoreBreakdown struct {
	Color    float64 `json:"color"`
	Style    float64 `json:"style"`
	Occasion float64 `json:"occasion"`
	Season   float64 `json:"season"`
	Budget   float64 `json:"budget"`

	Members         int            `json:"members"`
	ColorPairs      int            `json:"color_pairs"`
	Schemes         map[Scheme]int `json:"schemes,omitempty"`
	NeutralItems    int            `json:"neutral_items"`
	StyleMatches    int            `json:"style_matches"`
	OccasionMatches int            `json:"occasion_matches"`
	SeasonMatches   int            `json:"season_matches"`
	BudgetUsage     float64        `json:"budget_usage,omitempty"`
}

func cloneSchemeCounts(in map[Scheme]int) map[Scheme]int {
	if in == nil {
		return nil
	}
	out := make(map[Scheme]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Response is the ranked result of a recommendation request.
type Response struct {
	Outfits  []Outfit         `json:"outfits"`
	Partial  bool             `json:"partial"`
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	RequestID      string                   `json:"request_id"`
	AnchorID       string                   `json:"anchor_id"`
	Fingerprint    string                   `json:"fingerprint"`
	Requested      int                      `json:"requested"`
	Returned       int                      `json:"returned"`
	Attempts       int                      `json:"attempts"`
	Candidates     map[catalog.Category]int `json:"candidates,omitempty"`
	CatalogVersion uint64                   `json:"catalog_version"`
	CacheHit       bool                     `json:"cache_hit"`
	LatencyMS      int64                    `json:"latency_ms"`
	Timestamp      time.Time                `json:"timestamp"`
}

// EngineMetrics is a snapshot of engine counters.
type EngineMetrics struct {
	Requests       int64     `json:"requests"`
	CacheHits      int64     `json:"cache_hits"`
	CacheMisses    int64     `json:"cache_misses"`
	Errors         int64     `json:"errors"`
	PartialResults int64     `json:"partial_results"`
	CatalogVersion uint64    `json:"catalog_version"`
	CatalogItems   int       `json:"catalog_items"`
	MatrixPairs    int       `json:"matrix_pairs"`
	ModelBuiltAt   time.Time `json:"model_built_at"`
}
