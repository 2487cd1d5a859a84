// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/outfitter/internal/recommend"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Catalog.Source != CatalogSourceMemory {
		t.Errorf("Catalog.Source = %q, want memory", cfg.Catalog.Source)
	}
	if !cfg.Catalog.SeedOnEmpty {
		t.Error("Catalog.SeedOnEmpty should be true by default")
	}
	if cfg.Recommend.MaxAttempts != 100 {
		t.Errorf("Recommend.MaxAttempts = %d, want 100", cfg.Recommend.MaxAttempts)
	}
	if cfg.Recommend.Cache.TTL != time.Hour || cfg.Recommend.Cache.MaxEntries != 1000 {
		t.Errorf("Recommend.Cache = %+v, want 1h / 1000", cfg.Recommend.Cache)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestEngineConfig_MatchesEngineDefaults(t *testing.T) {
	got := defaultConfig().Recommend.EngineConfig()
	want := recommend.DefaultConfig()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EngineConfig() from defaults = %+v\nwant %+v", got, want)
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	chdir(t, t.TempDir())

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Logging.Level != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadWithKoanf_FileAndEnvLayers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "outfitter.yaml")
	content := `
server:
  port: 9090
catalog:
  source: badger
  badger_path: /tmp/catalog
  refresh_interval: 1m
recommend:
  seed: 7
  max_count: 10
  weights:
    color: 0.5
  cache:
    ttl: 15m
security:
  cors_origins:
    - https://shop.example.com
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RECOMMEND_CACHE_MAX_ENTRIES", "50")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("env should override file: port = %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if cfg.Catalog.Source != CatalogSourceBadger || cfg.Catalog.BadgerPath != "/tmp/catalog" {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.Catalog.RefreshInterval != time.Minute {
		t.Errorf("RefreshInterval = %v", cfg.Catalog.RefreshInterval)
	}
	if cfg.Recommend.Seed != 7 || cfg.Recommend.MaxCount != 10 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Recommend.Weights.Color != 0.5 || cfg.Recommend.Weights.Style != 0.25 {
		t.Errorf("partial weights override = %+v", cfg.Recommend.Weights)
	}
	if cfg.Recommend.Cache.TTL != 15*time.Minute || cfg.Recommend.Cache.MaxEntries != 50 {
		t.Errorf("Cache = %+v", cfg.Recommend.Cache)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"https://shop.example.com"}) {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}

	engine := cfg.Recommend.EngineConfig()
	if engine.Seed != 7 || engine.Limits.MaxCount != 10 || engine.Cache.MaxEntries != 50 {
		t.Errorf("EngineConfig() = %+v", engine)
	}
}

func TestLoadWithKoanf_CommaSeparatedOrigins(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	chdir(t, t.TempDir())
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error: %v", err)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
}

func TestLoadWithKoanf_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"bad port", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"bad source", map[string]string{"CATALOG_SOURCE": "postgres"}, "CATALOG_SOURCE"},
		{"zero attempts", map[string]string{"RECOMMEND_MAX_ATTEMPTS": "0"}, "generator.max_attempts"},
		{"max below default", map[string]string{"RECOMMEND_MAX_COUNT": "2"}, "limits.max_count"},
		{"bad rate limit", map[string]string{"RATE_LIMIT_REQUESTS": "0"}, "RATE_LIMIT_REQUESTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigPathEnvVar, "")
			chdir(t, t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadWithKoanf_RateLimitDisabledSkipsChecks(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	chdir(t, t.TempDir())
	t.Setenv("DISABLE_RATE_LIMIT", "true")
	t.Setenv("RATE_LIMIT_REQUESTS", "0")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error: %v", err)
	}
	if !cfg.Security.RateLimitDisabled {
		t.Error("RateLimitDisabled should be true")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"LOG_FORMAT", "logging.format"},
		{"CATALOG_BADGER_PATH", "catalog.badger_path"},
		{"RECOMMEND_WEIGHT_BUDGET", "recommend.weights.budget"},
		{"RECOMMEND_CACHE_ENABLED", "recommend.cache.enabled"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"PATH", ""},
		{"HOME", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

// chdir switches to dir for the duration of the test so the default
// config paths do not pick up a stray file.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}
