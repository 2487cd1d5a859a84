// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package recommend

import (
	"math/rand"
	"sort"

	"github.com/tomtom215/outfitter/internal/catalog"
)

// Generator assembles distinct outfits around an anchor with a bounded
// number of randomized attempts.
type Generator struct {
	model *HarmonyModel
	cfg   GeneratorConfig
}

// GenerationResult is the output of one Generate call.
type GenerationResult struct {
	// Outfits are distinct by member set, in discovery order, unscored.
	Outfits []Outfit

	// Attempts is the number of assembly attempts made.
	Attempts int
}

// NewGenerator creates a generator reading compatibility from model.
func NewGenerator(model *HarmonyModel, cfg GeneratorConfig) *Generator {
	return &Generator{model: model, cfg: cfg}
}

// Generate returns up to target distinct outfits containing anchor.
// candidates maps each category to its eligible items. Every category
// other than the anchor's must be non-empty, otherwise an
// *InsufficientCandidatesError is returned before any attempt is made.
// Running out of attempts is not an error: the result is simply shorter.
func (g *Generator) Generate(rng *rand.Rand, anchor *catalog.Item, candidates map[catalog.Category][]catalog.Item, c *Constraints, target int) (GenerationResult, error) {
	for _, cat := range catalog.Categories {
		if cat == anchor.Category {
			continue
		}
		if len(candidates[cat]) == 0 {
			return GenerationResult{}, &InsufficientCandidatesError{AnchorID: anchor.ID, Category: cat}
		}
	}

	var res GenerationResult
	if target <= 0 {
		return res, nil
	}

	ranked := make(map[catalog.Category][]catalog.Item, len(catalog.Categories))
	for _, cat := range catalog.Categories {
		ranked[cat] = g.rank(anchor, candidates[cat], c)
	}

	seen := make(map[string]struct{}, target)
	for res.Attempts < g.cfg.MaxAttempts && len(res.Outfits) < target {
		res.Attempts++

		outfit, ok := g.assemble(rng, anchor, ranked)
		if !ok {
			continue
		}
		key := outfit.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		res.Outfits = append(res.Outfits, outfit)
	}
	return res, nil
}

// rank orders items by compatibility with the anchor plus style and
// budget bonuses, highest first. Ties keep the input order.
func (g *Generator) rank(anchor *catalog.Item, items []catalog.Item, c *Constraints) []catalog.Item {
	type scored struct {
		item  catalog.Item
		score float64
	}

	list := make([]scored, 0, len(items))
	for i := range items {
		s := g.model.Compatibility(anchor.ID, items[i].ID)
		if items[i].Style == c.TargetStyle {
			s += g.cfg.StyleBonus
		}
		if c.HasBudget && WithinCeiling(&items[i], c) {
			s += g.cfg.BudgetFitBonus
		}
		list = append(list, scored{item: items[i], score: s})
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].score > list[j].score })

	out := make([]catalog.Item, len(list))
	for i := range list {
		out[i] = list[i].item
	}
	return out
}

// poolSize is how many of the n best-ranked candidates a random pick may
// choose from.
func (g *Generator) poolSize(n int) int {
	size := int(float64(n) * g.cfg.TopFraction)
	if size < g.cfg.MinPoolSize {
		size = g.cfg.MinPoolSize
	}
	if size > n {
		size = n
	}
	return size
}

func (g *Generator) pick(rng *rand.Rand, ranked []catalog.Item) catalog.Item {
	return ranked[rng.Intn(g.poolSize(len(ranked)))]
}

// sample draws k distinct items from the top of ranked. The pool widens
// when it is smaller than k.
func (g *Generator) sample(rng *rand.Rand, ranked []catalog.Item, k int) []catalog.Item {
	if k > len(ranked) {
		k = len(ranked)
	}
	if k <= 0 {
		return nil
	}
	pool := g.poolSize(len(ranked))
	if pool < k {
		pool = k
	}

	idx := make([]int, pool)
	for i := range idx {
		idx[i] = i
	}
	out := make([]catalog.Item, 0, k)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(pool-i)
		idx[i], idx[j] = idx[j], idx[i]
		out = append(out, ranked[idx[i]])
	}
	return out
}

func (g *Generator) assemble(rng *rand.Rand, anchor *catalog.Item, ranked map[catalog.Category][]catalog.Item) (Outfit, bool) {
	slot := func(cat catalog.Category) catalog.Item {
		if anchor.Category == cat {
			return *anchor
		}
		return g.pick(rng, ranked[cat])
	}

	o := Outfit{
		Top:      slot(catalog.CategoryTop),
		Bottom:   slot(catalog.CategoryBottom),
		Footwear: slot(catalog.CategoryFootwear),
	}

	count := g.cfg.MinAccessories
	if spread := g.cfg.MaxAccessories - g.cfg.MinAccessories; spread > 0 {
		count += rng.Intn(spread + 1)
	}
	if anchor.Category == catalog.CategoryAccessory {
		o.Accessories = append(o.Accessories, *anchor)
		count--
	}
	o.Accessories = append(o.Accessories, g.sample(rng, ranked[catalog.CategoryAccessory], count)...)

	return o, validOutfit(&o)
}

// validOutfit checks slot categories, the accessory count and id
// uniqueness.
func validOutfit(o *Outfit) bool {
	if o.Top.Category != catalog.CategoryTop ||
		o.Bottom.Category != catalog.CategoryBottom ||
		o.Footwear.Category != catalog.CategoryFootwear {
		return false
	}
	if len(o.Accessories) < 1 || len(o.Accessories) > MaxAccessories {
		return false
	}
	seen := make(map[string]struct{}, 3+len(o.Accessories))
	for _, it := range o.Members() {
		if it.ID == "" {
			return false
		}
		if _, dup := seen[it.ID]; dup {
			return false
		}
		seen[it.ID] = struct{}{}
	}
	for i := range o.Accessories {
		if o.Accessories[i].Category != catalog.CategoryAccessory {
			return false
		}
	}
	return true
}
