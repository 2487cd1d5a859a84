// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/outfitter/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/outfitter/config.yaml",
	"/etc/outfitter/config.yml",
}

// ConfigPathEnvVar is the environment variable that overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with all default values. Engine defaults
// come from recommend.DefaultConfig so the two never drift apart.
func defaultConfig() *Config {
	engine := recommend.DefaultConfig()

	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Catalog: CatalogConfig{
			Source:          CatalogSourceMemory,
			BadgerPath:      "/data/catalog",
			SeedOnEmpty:     true,
			RefreshInterval: 30 * time.Second,
		},
		Recommend: RecommendConfig{
			Seed:                engine.Seed,
			MaxAttempts:         engine.Generator.MaxAttempts,
			DefaultCount:        engine.Limits.DefaultCount,
			MaxCount:            engine.Limits.MaxCount,
			TopFraction:         engine.Generator.TopFraction,
			MinPoolSize:         engine.Generator.MinPoolSize,
			StyleBonus:          engine.Generator.StyleBonus,
			BudgetFitBonus:      engine.Generator.BudgetFitBonus,
			NeutralSaturation:   engine.Harmony.NeutralSaturation,
			NeutralBonus:        engine.Harmony.NeutralPairBonus,
			NeutralItemBonus:    engine.Scoring.NeutralItemBonus,
			NeutralItemBonusCap: engine.Scoring.NeutralBonusCap,
			OverBudgetPenalty:   engine.Scoring.OverBudgetPenalty,
			SlowRequest:         engine.Limits.SlowRequest,
			Weights: WeightsConfig{
				Color:    engine.Scoring.Weights.Color,
				Style:    engine.Scoring.Weights.Style,
				Occasion: engine.Scoring.Weights.Occasion,
				Season:   engine.Scoring.Weights.Season,
				Budget:   engine.Scoring.Weights.Budget,
			},
			Cache: CacheConfig{
				Enabled:    engine.Cache.Enabled,
				TTL:        engine.Cache.TTL,
				MaxEntries: engine.Cache.MaxEntries,
			},
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
	}
}

// LoadWithKoanf loads configuration from defaults, an optional YAML file
// and environment variables, in that order of precedence, then validates it.
func LoadWithKoanf() (*Config, error) {
	return loadFrom(findConfigFile())
}

// loadFrom loads configuration using configPath as the file layer. An
// empty path skips the file.
func loadFrom(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when they come
// from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	// Server
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Catalog
	"catalog_source":           "catalog.source",
	"catalog_badger_path":      "catalog.badger_path",
	"catalog_seed_on_empty":    "catalog.seed_on_empty",
	"catalog_refresh_interval": "catalog.refresh_interval",

	// Recommendation engine
	"recommend_seed":                   "recommend.seed",
	"recommend_max_attempts":           "recommend.max_attempts",
	"recommend_default_count":          "recommend.default_count",
	"recommend_max_count":              "recommend.max_count",
	"recommend_top_fraction":           "recommend.top_fraction",
	"recommend_min_pool_size":          "recommend.min_pool_size",
	"recommend_style_bonus":            "recommend.style_bonus",
	"recommend_budget_fit_bonus":       "recommend.budget_fit_bonus",
	"recommend_neutral_saturation":     "recommend.neutral_saturation",
	"recommend_neutral_bonus":          "recommend.neutral_bonus",
	"recommend_neutral_item_bonus":     "recommend.neutral_item_bonus",
	"recommend_neutral_item_bonus_cap": "recommend.neutral_item_bonus_cap",
	"recommend_over_budget_penalty":    "recommend.over_budget_penalty",
	"recommend_slow_request":           "recommend.slow_request",
	"recommend_weight_color":           "recommend.weights.color",
	"recommend_weight_style":           "recommend.weights.style",
	"recommend_weight_occasion":        "recommend.weights.occasion",
	"recommend_weight_season":          "recommend.weights.season",
	"recommend_weight_budget":          "recommend.weights.budget",
	"recommend_cache_enabled":          "recommend.cache.enabled",
	"recommend_cache_ttl":              "recommend.cache.ttl",
	"recommend_cache_max_entries":      "recommend.cache.max_entries",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
}

// envTransformFunc maps an environment variable name to a koanf path.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - CATALOG_SOURCE -> catalog.source
//   - RECOMMEND_CACHE_TTL -> recommend.cache.ttl
//
// Unmapped variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
