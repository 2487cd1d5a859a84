// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/outfitter/internal/catalog"
)

// Scorer turns an outfit and its constraints into a match score and a
// reasoning string. Both are pure functions of the outfit, the constraints
// and the harmony model.
type Scorer struct {
	model   *HarmonyModel
	cfg     ScoringConfig
	weights ScoreWeights
}

// NewScorer creates a scorer. Weights are normalized once here.
//
//nolint:gocritic // hugeParam: config copied once at construction
func NewScorer(model *HarmonyModel, cfg ScoringConfig) *Scorer {
	return &Scorer{model: model, cfg: cfg, weights: cfg.Weights.Normalize()}
}

// Score returns the weighted match score in [0,1], the reasoning text and
// the breakdown both were derived from.
func (s *Scorer) Score(o *Outfit, c *Constraints) (float64, string, ScoreBreakdown) {
	members := o.Members()
	b := ScoreBreakdown{Members: len(members)}

	b.Color = s.colorScore(o, &b)
	b.Style = s.styleScore(members, c, &b)
	b.Occasion = s.occasionScore(members, c, &b)
	b.Season = s.seasonScore(members, c, &b)
	b.Budget = s.budgetScore(o.TotalPrice, c, &b)

	total := b.Color*s.weights.Color +
		b.Style*s.weights.Style +
		b.Occasion*s.weights.Occasion +
		b.Season*s.weights.Season +
		b.Budget*s.weights.Budget

	return clamp01(total), s.reasoning(o, c, &b), b
}

// colorScore averages pair compatibility over the outfit. Accessory pairs
// count only when one side is the first accessory. Each neutral member
// adds a flat bonus, capped.
func (s *Scorer) colorScore(o *Outfit, b *ScoreBreakdown) float64 {
	members := o.Members()
	firstAccessory := ""
	if len(o.Accessories) > 0 {
		firstAccessory = o.Accessories[0].ID
	}

	b.Schemes = make(map[Scheme]int)
	var sum float64
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			a, c := &members[i], &members[j]
			if a.Category == catalog.CategoryAccessory && c.Category == catalog.CategoryAccessory &&
				a.ID != firstAccessory && c.ID != firstAccessory {
				continue
			}
			sum += s.model.Compatibility(a.ID, c.ID)
			b.ColorPairs++
			b.Schemes[s.model.Scheme(a.ID, c.ID)]++
		}
	}

	avg := DefaultCompatibility
	if b.ColorPairs > 0 {
		avg = sum / float64(b.ColorPairs)
	}

	for i := range members {
		if s.model.IsNeutral(members[i].ID) {
			b.NeutralItems++
		}
	}
	bonus := math.Min(s.cfg.NeutralBonusCap, float64(b.NeutralItems)*s.cfg.NeutralItemBonus)

	return clamp01(avg + bonus)
}

func (s *Scorer) styleScore(members []catalog.Item, c *Constraints, b *ScoreBreakdown) float64 {
	for i := range members {
		if members[i].Style == c.TargetStyle {
			b.StyleMatches++
		}
	}
	ratio := float64(b.StyleMatches) / float64(len(members))
	switch {
	case ratio >= 1:
		return 1.0
	case ratio >= 0.5:
		return 0.75
	default:
		return 0.55
	}
}

func (s *Scorer) occasionScore(members []catalog.Item, c *Constraints, b *ScoreBreakdown) float64 {
	if c.Occasion == "" {
		return s.cfg.UnsetScore
	}
	for i := range members {
		if members[i].HasOccasion(c.Occasion) {
			b.OccasionMatches++
		}
	}
	return fitScore(float64(b.OccasionMatches) / float64(len(members)))
}

func (s *Scorer) seasonScore(members []catalog.Item, c *Constraints, b *ScoreBreakdown) float64 {
	if c.Season == "" {
		return s.cfg.UnsetScore
	}
	for i := range members {
		if members[i].MatchesSeason(c.Season) {
			b.SeasonMatches++
		}
	}
	return fitScore(float64(b.SeasonMatches) / float64(len(members)))
}

// budgetScore rewards using most of the budget and penalizes overage
// linearly. It never increases as the total grows past the budget.
func (s *Scorer) budgetScore(total float64, c *Constraints, b *ScoreBreakdown) float64 {
	if !c.HasBudget || c.MaxBudget <= 0 {
		return s.cfg.UnsetScore
	}
	usage := total / c.MaxBudget
	b.BudgetUsage = usage
	switch {
	case usage < 0.70:
		return 0.9
	case usage <= 1.0:
		return 1.0
	default:
		return math.Max(0, 1.0-s.cfg.OverBudgetPenalty*(usage-1.0))
	}
}

// fitScore maps a match ratio onto the occasion/season score bands.
func fitScore(ratio float64) float64 {
	switch {
	case ratio >= 0.8:
		return 1.0
	case ratio >= 0.6:
		return 0.8
	case ratio >= 0.4:
		return 0.6
	default:
		return 0.4
	}
}

// reasoning renders the breakdown as text. It reads nothing but its
// arguments.
func (s *Scorer) reasoning(o *Outfit, c *Constraints, b *ScoreBreakdown) string {
	var parts []string

	color := describeSchemes(b.Schemes)
	if b.NeutralItems > 0 {
		color += fmt.Sprintf("; %d neutral item(s) add versatility", b.NeutralItems)
	}
	switch {
	case b.Color >= 0.8:
		parts = append(parts, "Excellent color harmony: "+color)
	case b.Color >= 0.6:
		parts = append(parts, "Good color coordination: "+color)
	default:
		parts = append(parts, "Color harmony: "+color)
	}

	switch {
	case b.Style >= 1:
		parts = append(parts, fmt.Sprintf("Style: All items share %s style", c.TargetStyle))
	case b.Style >= 0.75:
		parts = append(parts, fmt.Sprintf("Style: Mostly %s style with some variation (%d of %d)", c.TargetStyle, b.StyleMatches, b.Members))
	default:
		parts = append(parts, "Style: Mixed styles create an eclectic look")
	}

	if c.Occasion != "" {
		parts = append(parts, fmt.Sprintf("Occasion: %s for %s (%d of %d items)",
			fitLabel(b.Occasion), c.Occasion, b.OccasionMatches, b.Members))
	}
	if c.Season != "" {
		parts = append(parts, fmt.Sprintf("Season: %s for %s (%d of %d items)",
			fitLabel(b.Season), c.Season, b.SeasonMatches, b.Members))
	}

	if c.HasBudget {
		switch {
		case o.TotalPrice > c.MaxBudget:
			parts = append(parts, fmt.Sprintf("Budget: Exceeds budget by $%.2f ($%.2f of $%.2f)",
				o.TotalPrice-c.MaxBudget, o.TotalPrice, c.MaxBudget))
		case b.BudgetUsage >= 0.70:
			parts = append(parts, fmt.Sprintf("Budget: Optimal budget usage ($%.2f of $%.2f)", o.TotalPrice, c.MaxBudget))
		default:
			parts = append(parts, fmt.Sprintf("Budget: Within budget ($%.2f of $%.2f)", o.TotalPrice, c.MaxBudget))
		}
	}

	return strings.Join(parts, ". ")
}

func fitLabel(score float64) string {
	switch {
	case score >= 1.0:
		return "Perfect"
	case score >= 0.8:
		return "Good fit"
	case score >= 0.6:
		return "Moderately suitable"
	default:
		return "May not be ideal"
	}
}

// describeSchemes lists scheme counts, most frequent first.
func describeSchemes(counts map[Scheme]int) string {
	type kv struct {
		scheme Scheme
		n      int
	}
	var list []kv
	for k, v := range counts {
		if k == SchemeNone {
			continue
		}
		list = append(list, kv{k, v})
	}
	if len(list) == 0 {
		return "no strong hue relationships"
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].n != list[j].n {
			return list[i].n > list[j].n
		}
		return list[i].scheme < list[j].scheme
	})

	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, fmt.Sprintf("%d %s", e.n, strings.ReplaceAll(string(e.scheme), "_", "-")))
	}
	return strings.Join(out, ", ") + " pairing(s)"
}
