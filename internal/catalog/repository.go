// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Sentinel errors returned by repositories.
var (
	ErrItemNotFound = errors.New("item not found")
	ErrInvalidItem  = errors.New("invalid item")
	ErrDuplicateID  = errors.New("duplicate item id")
)

// Repository is the read side of the product catalog.
//
// All returns items in a stable order (ascending id) so that anything
// derived from it is reproducible. Version changes whenever the catalog
// contents change; callers use it to decide when derived state is stale.
type Repository interface {
	GetByID(ctx context.Context, id string) (Item, error)
	GetByCategory(ctx context.Context, category Category) ([]Item, error)
	All(ctx context.Context) ([]Item, error)
	Version(ctx context.Context) (uint64, error)
}

// Writer is implemented by repositories that accept catalog mutations.
type Writer interface {
	Put(ctx context.Context, items ...Item) error
	Delete(ctx context.Context, id string) error
}

// MemoryRepository is a thread-safe in-memory catalog.
type MemoryRepository struct {
	mu      sync.RWMutex
	items   map[string]Item
	sorted  []Item
	version uint64
}

// NewMemoryRepository creates a repository holding items.
func NewMemoryRepository(items []Item) (*MemoryRepository, error) {
	r := &MemoryRepository{items: make(map[string]Item, len(items))}
	seen := make(map[string]struct{}, len(items))
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[items[i].ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, items[i].ID)
		}
		seen[items[i].ID] = struct{}{}
		r.items[items[i].ID] = cloneItem(items[i])
	}
	r.rebuild()
	r.version = 1
	return r, nil
}

// GetByID returns the item with the given id.
func (r *MemoryRepository) GetByID(_ context.Context, id string) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return cloneItem(it), nil
}

// GetByCategory returns the items in category, ordered by id.
func (r *MemoryRepository) GetByCategory(_ context.Context, category Category) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Item
	for i := range r.sorted {
		if r.sorted[i].Category == category {
			out = append(out, cloneItem(r.sorted[i]))
		}
	}
	return out, nil
}

// All returns every item ordered by id.
func (r *MemoryRepository) All(_ context.Context) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, len(r.sorted))
	for i := range r.sorted {
		out[i] = cloneItem(r.sorted[i])
	}
	return out, nil
}

// Version returns the mutation counter.
func (r *MemoryRepository) Version(_ context.Context) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version, nil
}

// Put inserts or replaces items.
func (r *MemoryRepository) Put(_ context.Context, items ...Item) error {
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range items {
		r.items[items[i].ID] = cloneItem(items[i])
	}
	r.rebuild()
	r.version++
	return nil
}

// Delete removes an item.
func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	delete(r.items, id)
	r.rebuild()
	r.version++
	return nil
}

// rebuild must be called with the write lock held.
func (r *MemoryRepository) rebuild() {
	r.sorted = r.sorted[:0]
	for _, it := range r.items {
		r.sorted = append(r.sorted, it)
	}
	sort.Slice(r.sorted, func(i, j int) bool { return r.sorted[i].ID < r.sorted[j].ID })
}

func cloneItem(it Item) Item {
	if it.Occasions != nil {
		it.Occasions = append([]Occasion(nil), it.Occasions...)
	}
	return it
}

// CountByCategory tallies items per category.
func CountByCategory(items []Item) map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		counts[c] = 0
	}
	for i := range items {
		counts[items[i].Category]++
	}
	return counts
}
