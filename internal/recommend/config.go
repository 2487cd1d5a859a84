// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package recommend

import (
	"fmt"
	"time"
)

// MaxAccessories is the most accessories an outfit may carry.
const MaxAccessories = 3

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Harmony tunes the pairwise color model.
	Harmony HarmonyConfig `json:"harmony"`

	// Generator bounds and biases outfit assembly.
	Generator GeneratorConfig `json:"generator"`

	// Scoring holds the sub-score weights and budget/neutral parameters.
	Scoring ScoringConfig `json:"scoring"`

	// Limits contains request limits.
	Limits LimitsConfig `json:"limits"`

	// Cache contains result cache parameters.
	Cache CacheConfig `json:"cache"`

	// Seed pins the random source. Zero selects an entropy-seeded source.
	Seed int64 `json:"seed"`
}

// GeneratorConfig bounds and biases outfit assembly.
type GeneratorConfig struct {
	// MaxAttempts caps assembly attempts per request.
	MaxAttempts int `json:"max_attempts"`

	// TopFraction is the share of ranked candidates eligible for random pick.
	TopFraction float64 `json:"top_fraction"`

	// MinPoolSize is the smallest random-pick pool when enough candidates exist.
	MinPoolSize int `json:"min_pool_size"`

	// StyleBonus is added to a candidate's rank when it matches the target style.
	StyleBonus float64 `json:"style_bonus"`

	// BudgetFitBonus is added when a candidate is within the category ceiling.
	BudgetFitBonus float64 `json:"budget_fit_bonus"`

	// MinAccessories and MaxAccessories bound the accessory count.
	MinAccessories int `json:"min_accessories"`
	MaxAccessories int `json:"max_accessories"`
}

// ScoreWeights is the relative contribution of each sub-score.
type ScoreWeights struct {
	Color    float64 `json:"color"`
	Style    float64 `json:"style"`
	Occasion float64 `json:"occasion"`
	Season   float64 `json:"season"`
	Budget   float64 `json:"budget"`
}

// Normalize returns a copy with weights summing to 1.0. All-zero weights
// become equal weights.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w ScoreWeights) Normalize() ScoreWeights {
	sum := w.Color + w.Style + w.Occasion + w.Season + w.Budget
	if sum == 0 {
		return ScoreWeights{Color: 0.2, Style: 0.2, Occasion: 0.2, Season: 0.2, Budget: 0.2}
	}
	return ScoreWeights{
		Color:    w.Color / sum,
		Style:    w.Style / sum,
		Occasion: w.Occasion / sum,
		Season:   w.Season / sum,
		Budget:   w.Budget / sum,
	}
}

// ScoringConfig parameterizes the scorer.
type ScoringConfig struct {
	Weights ScoreWeights `json:"weights"`

	// NeutralItemBonus is added to the color score per neutral member.
	NeutralItemBonus float64 `json:"neutral_item_bonus"`

	// NeutralBonusCap caps the total neutral bonus.
	NeutralBonusCap float64 `json:"neutral_bonus_cap"`

	// OverBudgetPenalty is subtracted per unit of fractional overage.
	OverBudgetPenalty float64 `json:"over_budget_penalty"`

	// UnsetScore is used for occasion, season and budget when no target is given.
	UnsetScore float64 `json:"unset_score"`
}

// LimitsConfig contains request limits.
type LimitsConfig struct {
	DefaultCount int `json:"default_count"`
	MaxCount     int `json:"max_count"`

	// SlowRequest is the latency above which a request is logged at warn.
	SlowRequest time.Duration `json:"slow_request"`
}

// CacheConfig contains result cache parameters.
type CacheConfig struct {
	Enabled    bool          `json:"enabled"`
	TTL        time.Duration `json:"ttl"`
	MaxEntries int           `json:"max_entries"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Harmony: HarmonyConfig{
			NeutralSaturation: 0.2,
			NeutralPairBonus:  0.15,
		},
		Generator: GeneratorConfig{
			MaxAttempts:    100,
			TopFraction:    1.0 / 3.0,
			MinPoolSize:    3,
			StyleBonus:     0.2,
			BudgetFitBonus: 0.05,
			MinAccessories: 1,
			MaxAccessories: 3,
		},
		Scoring: ScoringConfig{
			Weights: ScoreWeights{
				Color:    0.30,
				Style:    0.25,
				Occasion: 0.20,
				Season:   0.15,
				Budget:   0.10,
			},
			NeutralItemBonus:  0.03,
			NeutralBonusCap:   0.1,
			OverBudgetPenalty: 2.0,
			UnsetScore:        0.7,
		},
		Limits: LimitsConfig{
			DefaultCount: 5,
			MaxCount:     20,
			SlowRequest:  time.Second,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        time.Hour,
			MaxEntries: 1000,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Harmony.NeutralSaturation < 0 || c.Harmony.NeutralSaturation > 1 {
		return fmt.Errorf("harmony.neutral_saturation must be in [0, 1], got %f", c.Harmony.NeutralSaturation)
	}
	if c.Harmony.NeutralPairBonus < 0 {
		return fmt.Errorf("harmony.neutral_pair_bonus must be non-negative, got %f", c.Harmony.NeutralPairBonus)
	}

	if c.Generator.MaxAttempts < 1 {
		return fmt.Errorf("generator.max_attempts must be positive, got %d", c.Generator.MaxAttempts)
	}
	if c.Generator.TopFraction <= 0 || c.Generator.TopFraction > 1 {
		return fmt.Errorf("generator.top_fraction must be in (0, 1], got %f", c.Generator.TopFraction)
	}
	if c.Generator.MinPoolSize < 1 {
		return fmt.Errorf("generator.min_pool_size must be positive, got %d", c.Generator.MinPoolSize)
	}
	if c.Generator.MinAccessories < 1 {
		return fmt.Errorf("generator.min_accessories must be positive, got %d", c.Generator.MinAccessories)
	}
	if c.Generator.MaxAccessories > MaxAccessories {
		return fmt.Errorf("generator.max_accessories must be <= %d, got %d", MaxAccessories, c.Generator.MaxAccessories)
	}
	if c.Generator.MaxAccessories < c.Generator.MinAccessories {
		return fmt.Errorf("generator.max_accessories must be >= generator.min_accessories, got %d < %d",
			c.Generator.MaxAccessories, c.Generator.MinAccessories)
	}

	w := c.Scoring.Weights
	if w.Color < 0 || w.Style < 0 || w.Occasion < 0 || w.Season < 0 || w.Budget < 0 {
		return fmt.Errorf("scoring.weights must be non-negative, got %+v", w)
	}
	if c.Scoring.NeutralItemBonus < 0 || c.Scoring.NeutralBonusCap < 0 {
		return fmt.Errorf("scoring.neutral_item_bonus and scoring.neutral_bonus_cap must be non-negative, got %f and %f",
			c.Scoring.NeutralItemBonus, c.Scoring.NeutralBonusCap)
	}
	if c.Scoring.OverBudgetPenalty < 0 {
		return fmt.Errorf("scoring.over_budget_penalty must be non-negative, got %f", c.Scoring.OverBudgetPenalty)
	}
	if c.Scoring.UnsetScore < 0 || c.Scoring.UnsetScore > 1 {
		return fmt.Errorf("scoring.unset_score must be in [0, 1], got %f", c.Scoring.UnsetScore)
	}

	if c.Limits.DefaultCount < 1 {
		return fmt.Errorf("limits.default_count must be positive, got %d", c.Limits.DefaultCount)
	}
	if c.Limits.MaxCount < c.Limits.DefaultCount {
		return fmt.Errorf("limits.max_count must be >= limits.default_count, got %d < %d", c.Limits.MaxCount, c.Limits.DefaultCount)
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
	}

	return nil
}

// Clone returns a copy of the configuration. All nested structs hold value
// types only.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
