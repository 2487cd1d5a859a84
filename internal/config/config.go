// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

// Package config loads Outfitter configuration with Koanf v2.
//
// Sources are layered, later ones overriding earlier ones:
//
//  1. Built-in defaults (defaultConfig)
//  2. An optional YAML file: $CONFIG_PATH, ./config.yaml or /etc/outfitter/config.yaml
//  3. Environment variables, mapped explicitly in envTransformFunc
//
// Example config.yaml:
//
//	server:
//	  port: 8080
//	catalog:
//	  source: badger
//	  badger_path: /data/catalog
//	recommend:
//	  seed: 42
//	  cache:
//	    ttl: 30m
package config

import (
	"time"

	"github.com/tomtom215/outfitter/internal/recommend"
)

// Catalog sources.
const (
	CatalogSourceMemory = "memory"
	CatalogSourceBadger = "badger"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	Caller bool `koanf:"caller"`
}

// CatalogConfig selects and tunes the product catalog store.
type CatalogConfig struct {
	// Source is "memory" (seed catalog only) or "badger".
	Source string `koanf:"source"`

	// BadgerPath is the database directory. Empty runs Badger in memory.
	BadgerPath string `koanf:"badger_path"`

	// SeedOnEmpty loads the seed catalog into an empty Badger store.
	SeedOnEmpty bool `koanf:"seed_on_empty"`

	// RefreshInterval is how often the catalog version is polled. Zero
	// disables the refresh service.
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// Seed pins the random source; zero seeds from entropy.
	Seed int64 `koanf:"seed"`

	MaxAttempts    int     `koanf:"max_attempts"`
	DefaultCount   int     `koanf:"default_count"`
	MaxCount       int     `koanf:"max_count"`
	TopFraction    float64 `koanf:"top_fraction"`
	MinPoolSize    int     `koanf:"min_pool_size"`
	StyleBonus     float64 `koanf:"style_bonus"`
	BudgetFitBonus float64 `koanf:"budget_fit_bonus"`

	NeutralSaturation   float64 `koanf:"neutral_saturation"`
	NeutralBonus        float64 `koanf:"neutral_bonus"`
	NeutralItemBonus    float64 `koanf:"neutral_item_bonus"`
	NeutralItemBonusCap float64 `koanf:"neutral_item_bonus_cap"`
	OverBudgetPenalty   float64 `koanf:"over_budget_penalty"`

	SlowRequest time.Duration `koanf:"slow_request"`

	Weights WeightsConfig `koanf:"weights"`
	Cache   CacheConfig   `koanf:"cache"`
}

// WeightsConfig holds the sub-score weights. They are normalized by the
// scorer and need not sum to one.
type WeightsConfig struct {
	Color    float64 `koanf:"color"`
	Style    float64 `koanf:"style"`
	Occasion float64 `koanf:"occasion"`
	Season   float64 `koanf:"season"`
	Budget   float64 `koanf:"budget"`
}

// CacheConfig holds result cache settings.
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	TTL        time.Duration `koanf:"ttl"`
	MaxEntries int           `koanf:"max_entries"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// EngineConfig converts the recommend section into the engine's own
// configuration, starting from the engine defaults.
func (c *RecommendConfig) EngineConfig() *recommend.Config {
	cfg := recommend.DefaultConfig()

	cfg.Seed = c.Seed
	cfg.Harmony.NeutralSaturation = c.NeutralSaturation
	cfg.Harmony.NeutralPairBonus = c.NeutralBonus

	cfg.Generator.MaxAttempts = c.MaxAttempts
	cfg.Generator.TopFraction = c.TopFraction
	cfg.Generator.MinPoolSize = c.MinPoolSize
	cfg.Generator.StyleBonus = c.StyleBonus
	cfg.Generator.BudgetFitBonus = c.BudgetFitBonus

	cfg.Scoring.Weights = recommend.ScoreWeights{
		Color:    c.Weights.Color,
		Style:    c.Weights.Style,
		Occasion: c.Weights.Occasion,
		Season:   c.Weights.Season,
		Budget:   c.Weights.Budget,
	}
	cfg.Scoring.NeutralItemBonus = c.NeutralItemBonus
	cfg.Scoring.NeutralBonusCap = c.NeutralItemBonusCap
	cfg.Scoring.OverBudgetPenalty = c.OverBudgetPenalty

	cfg.Limits.DefaultCount = c.DefaultCount
	cfg.Limits.MaxCount = c.MaxCount
	cfg.Limits.SlowRequest = c.SlowRequest

	cfg.Cache = recommend.CacheConfig{
		Enabled:    c.Cache.Enabled,
		TTL:        c.Cache.TTL,
		MaxEntries: c.Cache.MaxEntries,
	}
	return cfg
}
