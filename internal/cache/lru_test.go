// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package cache

import (
	"strconv"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

func TestLRU_BasicOperations(t *testing.T) {
	c := NewLRU[string](3, time.Minute)

	c.Put("a", "alpha")
	c.Put("b", "bravo")
	c.Put("c", "charlie")

	for key, want := range map[string]string{"a": "alpha", "b": "bravo", "c": "charlie"} {
		got, ok := c.Get(key)
		if !ok {
			t.Errorf("expected to find key %q", key)
			continue
		}
		if got != want {
			t.Errorf("Get(%q) = %q, want %q", key, got, want)
		}
	}

	if c.Len() != 3 {
		t.Errorf("expected len 3, got %d", c.Len())
	}
}

func TestLRU_Eviction(t *testing.T) {
	c := NewLRU[int](3, time.Minute)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	// Touch 'a' so 'b' becomes least recently used.
	c.Get("a")
	c.Put("d", 4)

	if _, ok := c.Get("b"); ok {
		t.Error("expected 'b' to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("expected %q to be present", key)
		}
	}

	if s := c.Stats(); s.Evictions != 1 {
		t.Errorf("expected 1 eviction, got %d", s.Evictions)
	}
}

func TestLRU_TTLExpiration(t *testing.T) {
	clock := newFakeClock()
	c := NewLRU[int](10, time.Minute).WithClock(clock.Now)

	c.Put("a", 1)
	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected to find key 'a' immediately")
	}

	clock.Advance(61 * time.Second)

	if _, ok := c.Get("a"); ok {
		t.Error("expected key 'a' to be expired")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be removed on access, len = %d", c.Len())
	}
}

func TestLRU_PutRefreshesTTL(t *testing.T) {
	clock := newFakeClock()
	c := NewLRU[int](10, time.Minute).WithClock(clock.Now)

	c.Put("a", 1)
	clock.Advance(50 * time.Second)
	c.Put("a", 2)
	clock.Advance(50 * time.Second)

	v, ok := c.Get("a")
	if !ok {
		t.Fatal("re-put entry should still be live")
	}
	if v != 2 {
		t.Errorf("expected updated value 2, got %d", v)
	}
}

func TestLRU_StatsAndClear(t *testing.T) {
	c := NewLRU[int](10, time.Minute)

	c.Put("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 || s.Size != 1 || s.Capacity != 10 {
		t.Errorf("unexpected stats: %+v", s)
	}
	if rate := s.HitRate(); rate < 0.66 || rate > 0.67 {
		t.Errorf("HitRate() = %v, want ~0.667", rate)
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Clear() left %d entries", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("cleared entry still returned")
	}
	if s := c.Stats(); s.Hits != 2 {
		t.Errorf("Clear() should keep counters, hits = %d", s.Hits)
	}
}

func TestLRU_Peek(t *testing.T) {
	c := NewLRU[int](2, time.Minute)
	c.Put("a", 1)
	c.Put("b", 2)

	if v, created, ok := c.Peek("a"); !ok || v != 1 || created.IsZero() {
		t.Errorf("Peek(a) = %v, %v, %v", v, created, ok)
	}
	// Peek must not refresh recency: 'a' is still the eviction candidate.
	c.Put("c", 3)
	if _, _, ok := c.Peek("a"); ok {
		t.Error("expected 'a' to be evicted after Peek")
	}

	if s := c.Stats(); s.Hits != 0 || s.Misses != 0 {
		t.Errorf("Peek should not touch counters: %+v", s)
	}
}

func TestLRU_Remove(t *testing.T) {
	c := NewLRU[int](2, time.Minute)
	c.Put("a", 1)

	if !c.Remove("a") {
		t.Error("expected Remove to report true")
	}
	if c.Remove("a") {
		t.Error("expected second Remove to report false")
	}
}

func TestLRU_CleanupExpired(t *testing.T) {
	clock := newFakeClock()
	c := NewLRU[int](10, time.Minute).WithClock(clock.Now)

	c.Put("old1", 1)
	c.Put("old2", 2)
	clock.Advance(45 * time.Second)
	c.Put("fresh", 3)
	clock.Advance(30 * time.Second)

	if removed := c.CleanupExpired(); removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 remaining, got %d", c.Len())
	}
}

func TestLRU_Defaults(t *testing.T) {
	c := NewLRU[int](0, 0)
	if c.Capacity() != DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", c.Capacity(), DefaultCapacity)
	}
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := NewLRU[int](100, time.Minute)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := strconv.Itoa((g*31 + i) % 150)
				c.Put(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 100 {
		t.Errorf("capacity exceeded: %d", c.Len())
	}
}

func TestGenerateKey(t *testing.T) {
	type params struct {
		Anchor string
		Count  int
	}

	k1 := GenerateKey("outfits", params{"top_001", 5})
	k2 := GenerateKey("outfits", params{"top_001", 5})
	k3 := GenerateKey("outfits", params{"top_001", 6})

	if k1 != k2 {
		t.Errorf("same params produced different keys: %s vs %s", k1, k2)
	}
	if k1 == k3 {
		t.Error("different params produced the same key")
	}
	// namespace + ':' + 32 hex chars
	if len(k1) != len("outfits:")+32 {
		t.Errorf("unexpected key length %d: %s", len(k1), k1)
	}
}
