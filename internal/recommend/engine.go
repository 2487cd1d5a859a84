// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/outfitter/internal/cache"
	"github.com/tomtom215/outfitter/internal/catalog"
)

// Engine runs the recommendation pipeline: fingerprint, cache lookup,
// candidate filtering, generation, scoring and ranking.
// It is safe for concurrent use.
type Engine struct {
	config   *Config
	logger   zerolog.Logger
	repo     catalog.Repository
	random   RandomSource
	observer Observer

	// results is nil when caching is disabled
	results *cache.LRU[[]Outfit]

	// current is swapped wholesale on rebuild; readers never lock
	current   atomic.Pointer[snapshot]
	rebuildMu sync.Mutex

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	errorCount   atomic.Int64
	partialCount atomic.Int64
}

// snapshot is one immutable catalog load and everything derived from it.
type snapshot struct {
	version   uint64
	builtAt   time.Time
	items     map[string]catalog.Item
	all       []catalog.Item
	model     *HarmonyModel
	generator *Generator
	scorer    *Scorer
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRandomSource overrides the random source chosen from Config.Seed.
func WithRandomSource(rs RandomSource) Option {
	return func(e *Engine) {
		if rs != nil {
			e.random = rs
		}
	}
}

// WithObserver registers an event observer, such as a metrics recorder.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// NewEngine creates an engine over repo and builds the initial harmony
// model from its catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(ctx context.Context, repo catalog.Repository, cfg *Config, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if repo == nil {
		return nil, errors.New("catalog repository is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config:   cfg.Clone(),
		logger:   logger.With().Str("component", "recommend").Logger(),
		repo:     repo,
		observer: noopObserver{},
	}
	if cfg.Seed != 0 {
		e.random = NewSeededSource(cfg.Seed)
	} else {
		e.random = EntropySource{}
	}
	if cfg.Cache.Enabled {
		e.results = cache.NewLRU[[]Outfit](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.Rebuild(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// Recommend returns up to req.Count ranked outfits containing the anchor.
//
// Errors wrap ErrValidation, ErrNotFound or ErrInsufficientCandidates.
// A response with fewer outfits than requested is marked Partial and is
// not an error.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(req)
	logger := e.createRequestLogger(req)

	if err := e.validateRequest(&req); err != nil {
		e.fail(OutcomeInvalid, start)
		logger.Debug().Err(err).Msg("request rejected")
		return nil, err
	}

	snap := e.current.Load()
	fingerprint := Fingerprint(req)
	key := cacheKey(fingerprint, snap.version)

	if resp := e.tryGetCachedResponse(req, key, fingerprint, snap, start, logger); resp != nil {
		return resp, nil
	}

	anchor, ok := snap.items[req.AnchorID]
	if !ok {
		e.fail(OutcomeNotFound, start)
		return nil, fmt.Errorf("%w: %s", ErrNotFound, req.AnchorID)
	}

	constraints := buildConstraints(req, &anchor)
	candidates, counts := snap.candidates(&anchor, &constraints)

	if err := ctx.Err(); err != nil {
		e.fail(OutcomeError, start)
		return nil, err
	}

	gen, err := snap.generator.Generate(e.random.ForRequest(fingerprint), &anchor, candidates, &constraints, req.Count)
	if err != nil {
		e.fail(OutcomeInsufficientCandidates, start)
		logger.Debug().Err(err).Msg("no eligible candidates")
		return nil, err
	}

	outfits := snap.scoreAndRank(gen.Outfits, &constraints)
	e.cacheResponse(key, outfits)

	resp := &Response{
		Outfits:  outfits,
		Partial:  len(outfits) < req.Count,
		Metadata: e.buildResponseMetadata(req, fingerprint, snap, start, false),
	}
	resp.Metadata.Returned = len(outfits)
	resp.Metadata.Attempts = gen.Attempts
	resp.Metadata.Candidates = counts

	outcome := OutcomeSuccess
	if resp.Partial {
		outcome = OutcomePartial
		e.partialCount.Add(1)
	}
	latency := time.Since(start)
	e.observer.ObserveRequest(outcome, latency, len(outfits), gen.Attempts)

	event := logger.Debug()
	if latency > e.config.Limits.SlowRequest {
		event = logger.Warn()
	}
	event.
		Int("attempts", gen.Attempts).
		Int("returned", len(outfits)).
		Bool("partial", resp.Partial).
		Dur("latency", latency).
		Msg("recommendation complete")

	return resp, nil
}

// prepareRequest normalizes fields and applies the count default.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	req.AnchorID = strings.TrimSpace(req.AnchorID)
	req.Occasion = catalog.Occasion(strings.ToLower(strings.TrimSpace(string(req.Occasion))))
	req.Season = catalog.Season(strings.ToLower(strings.TrimSpace(string(req.Season))))
	req.Style = catalog.Style(strings.ToLower(strings.TrimSpace(string(req.Style))))

	if req.MaxBudget != nil {
		budget := math.Round(*req.MaxBudget*100) / 100
		req.MaxBudget = &budget
	}

	if req.Count == 0 {
		req.Count = e.config.Limits.DefaultCount
	}
	return req
}

// validateRequest rejects malformed constraints before any filtering.
func (e *Engine) validateRequest(req *Request) error {
	if req.AnchorID == "" {
		return invalid("anchor_id", "is required")
	}
	if req.Count < 0 {
		return invalid("count", "must be positive, got %d", req.Count)
	}
	if req.Count > e.config.Limits.MaxCount {
		return invalid("count", "must be at most %d, got %d", e.config.Limits.MaxCount, req.Count)
	}
	if req.Occasion != "" && !req.Occasion.Valid() {
		return invalid("occasion", "unknown occasion %q", req.Occasion)
	}
	if req.Season != "" && !req.Season.Valid() {
		return invalid("season", "unknown season %q", req.Season)
	}
	if req.Style != "" && !req.Style.Valid() {
		return invalid("style", "unknown style %q", req.Style)
	}
	if budget, ok := req.Budget(); ok {
		if math.IsNaN(budget) || math.IsInf(budget, 0) || budget <= 0 {
			return invalid("max_budget", "must be a positive number, got %v", budget)
		}
	}
	return nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("anchor_id", req.AnchorID).
		Int("count", req.Count).
		Logger()
}

// tryGetCachedResponse returns a response built from the result cache, or
// nil on a miss.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) tryGetCachedResponse(req Request, key, fingerprint string, snap *snapshot, start time.Time, logger zerolog.Logger) *Response {
	if e.results == nil {
		return nil
	}

	outfits, ok := e.results.Get(key)
	e.observer.ObserveCacheLookup(ok)
	if !ok {
		e.cacheMisses.Add(1)
		return nil
	}

	e.cacheHits.Add(1)
	outfits = cloneOutfits(outfits)
	resp := &Response{
		Outfits:  outfits,
		Partial:  len(outfits) < req.Count,
		Metadata: e.buildResponseMetadata(req, fingerprint, snap, start, true),
	}
	resp.Metadata.Returned = len(outfits)
	e.observer.ObserveRequest(OutcomeCacheHit, time.Since(start), len(outfits), 0)
	logger.Debug().Msg("cache hit")
	return resp
}

func (e *Engine) cacheResponse(key string, outfits []Outfit) {
	if e.results == nil {
		return
	}
	e.results.Put(key, cloneOutfits(outfits))
	e.observer.ObserveCacheSize(e.results.Len())
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponseMetadata(req Request, fingerprint string, snap *snapshot, start time.Time, cacheHit bool) ResponseMetadata {
	return ResponseMetadata{
		RequestID:      req.RequestID,
		AnchorID:       req.AnchorID,
		Fingerprint:    fingerprint,
		Requested:      req.Count,
		CatalogVersion: snap.version,
		CacheHit:       cacheHit,
		LatencyMS:      time.Since(start).Milliseconds(),
		Timestamp:      time.Now(),
	}
}

func (e *Engine) fail(outcome string, start time.Time) {
	e.errorCount.Add(1)
	e.observer.ObserveRequest(outcome, time.Since(start), 0, 0)
}

// cacheKey scopes a fingerprint to one catalog version so results from a
// previous catalog are never served.
func cacheKey(fingerprint string, version uint64) string {
	return fingerprint + "@" + strconv.FormatUint(version, 10)
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func buildConstraints(req Request, anchor *catalog.Item) Constraints {
	c := Constraints{
		Occasion:       req.Occasion,
		Season:         req.Season,
		PreferredStyle: req.Style,
		AnchorStyle:    anchor.Style,
		TargetStyle:    anchor.Style,
	}
	if req.Style != "" {
		c.TargetStyle = req.Style
	}
	if budget, ok := req.Budget(); ok {
		c.MaxBudget = budget
		c.HasBudget = true
	}
	return c
}

// candidates filters every category for the request. The anchor is
// excluded from its own category.
func (s *snapshot) candidates(anchor *catalog.Item, c *Constraints) (map[catalog.Category][]catalog.Item, map[catalog.Category]int) {
	out := make(map[catalog.Category][]catalog.Item, len(catalog.Categories))
	counts := make(map[catalog.Category]int, len(catalog.Categories))
	for _, cat := range catalog.Categories {
		ids := FilterCandidates(s.all, cat, c, anchor.ID)
		items := make([]catalog.Item, 0, len(ids))
		for _, id := range ids {
			items = append(items, s.items[id])
		}
		out[cat] = items
		counts[cat] = len(items)
	}
	return out, counts
}

// scoreAndRank scores outfits and sorts them by score, highest first.
// Equal scores are ordered by member set for a stable ranking.
func (s *snapshot) scoreAndRank(outfits []Outfit, c *Constraints) []Outfit {
	for i := range outfits {
		o := &outfits[i]
		o.TotalPrice = sumPrices(o.Members())
		o.MatchScore, o.Reasoning, o.Breakdown = s.scorer.Score(o, c)
	}
	sort.SliceStable(outfits, func(i, j int) bool {
		if outfits[i].MatchScore != outfits[j].MatchScore {
			return outfits[i].MatchScore > outfits[j].MatchScore
		}
		return outfits[i].Key() < outfits[j].Key()
	})
	if outfits == nil {
		outfits = []Outfit{}
	}
	return outfits
}

// Rebuild reloads the catalog, recomputes the harmony model and clears
// the result cache.
func (e *Engine) Rebuild(ctx context.Context) error {
	e.rebuildMu.Lock()
	defer e.rebuildMu.Unlock()
	return e.rebuildLocked(ctx)
}

// Refresh rebuilds only when the repository version differs from the
// loaded one. It reports whether a rebuild happened.
func (e *Engine) Refresh(ctx context.Context) (bool, error) {
	e.rebuildMu.Lock()
	defer e.rebuildMu.Unlock()

	version, err := e.repo.Version(ctx)
	if err != nil {
		return false, fmt.Errorf("read catalog version: %w", err)
	}
	if cur := e.current.Load(); cur != nil && cur.version == version {
		return false, nil
	}
	if err := e.rebuildLocked(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (e *Engine) rebuildLocked(ctx context.Context) error {
	start := time.Now()

	version, err := e.repo.Version(ctx)
	if err != nil {
		return fmt.Errorf("read catalog version: %w", err)
	}
	all, err := e.repo.All(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	items := make(map[string]catalog.Item, len(all))
	for i := range all {
		items[all[i].ID] = all[i]
	}
	model := NewHarmonyModel(all, e.config.Harmony)

	e.current.Store(&snapshot{
		version:   version,
		builtAt:   time.Now(),
		items:     items,
		all:       all,
		model:     model,
		generator: NewGenerator(model, e.config.Generator),
		scorer:    NewScorer(model, e.config.Scoring),
	})
	e.ClearCache()

	elapsed := time.Since(start)
	e.observer.ObserveModelBuild(model.Size(), model.Pairs(), elapsed)
	e.logger.Info().
		Uint64("catalog_version", version).
		Int("items", model.Size()).
		Int("pairs", model.Pairs()).
		Dur("duration", elapsed).
		Msg("harmony model built")
	return nil
}

// Model returns the harmony model currently in use.
func (e *Engine) Model() *HarmonyModel {
	return e.current.Load().model
}

// CacheStats returns result cache counters. All zero when caching is off.
func (e *Engine) CacheStats() cache.Stats {
	if e.results == nil {
		return cache.Stats{}
	}
	return e.results.Stats()
}

// ClearCache drops every cached result.
func (e *Engine) ClearCache() {
	if e.results != nil {
		e.results.Clear()
		e.observer.ObserveCacheSize(0)
	}
}

// CleanupCache removes expired results and returns how many were dropped.
func (e *Engine) CleanupCache() int {
	if e.results == nil {
		return 0
	}
	return e.results.CleanupExpired()
}

// GetMetrics returns a snapshot of engine counters.
func (e *Engine) GetMetrics() EngineMetrics {
	snap := e.current.Load()
	return EngineMetrics{
		Requests:       e.requestCount.Load(),
		CacheHits:      e.cacheHits.Load(),
		CacheMisses:    e.cacheMisses.Load(),
		Errors:         e.errorCount.Load(),
		PartialResults: e.partialCount.Load(),
		CatalogVersion: snap.version,
		CatalogItems:   snap.model.Size(),
		MatrixPairs:    snap.model.Pairs(),
		ModelBuiltAt:   snap.builtAt,
	}
}
