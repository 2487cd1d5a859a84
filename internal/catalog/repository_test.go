// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package catalog

import (
	"context"
	"errors"
	"sort"
	"testing"
)

func TestSeedItems_Valid(t *testing.T) {
	items := SeedItems()
	if len(items) != 34 {
		t.Fatalf("expected 34 seed items, got %d", len(items))
	}

	counts := CountByCategory(items)
	want := map[Category]int{
		CategoryTop:       8,
		CategoryBottom:    8,
		CategoryFootwear:  8,
		CategoryAccessory: 10,
	}
	for c, n := range want {
		if counts[c] != n {
			t.Errorf("category %s: expected %d items, got %d", c, n, counts[c])
		}
	}

	seen := make(map[string]bool)
	for i := range items {
		if err := items[i].Validate(); err != nil {
			t.Errorf("seed item %s invalid: %v", items[i].ID, err)
		}
		if seen[items[i].ID] {
			t.Errorf("duplicate seed id %s", items[i].ID)
		}
		seen[items[i].ID] = true
	}
}

func TestItem_Validate(t *testing.T) {
	base := SeedItems()[0]

	tests := []struct {
		name    string
		mutate  func(it *Item)
		wantErr bool
	}{
		{"valid", func(it *Item) {}, false},
		{"missing id", func(it *Item) { it.ID = "" }, true},
		{"bad category", func(it *Item) { it.Category = "hat" }, true},
		{"bad style", func(it *Item) { it.Style = "goth" }, true},
		{"bad season", func(it *Item) { it.Season = "monsoon" }, true},
		{"negative price", func(it *Item) { it.Price = -1 }, true},
		{"bad occasion", func(it *Item) { it.Occasions = []Occasion{"funeral"} }, true},
		{"free item", func(it *Item) { it.Price = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := cloneItem(base)
			tt.mutate(&it)
			err := it.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidItem) {
				t.Errorf("expected ErrInvalidItem, got %v", err)
			}
		})
	}
}

func TestItem_MatchesSeason(t *testing.T) {
	allSeason := Item{Season: SeasonAll}
	fall := Item{Season: SeasonFall}

	if !allSeason.MatchesSeason(SeasonWinter) {
		t.Error("all-season item should match winter")
	}
	if !fall.MatchesSeason(SeasonFall) {
		t.Error("fall item should match fall")
	}
	if fall.MatchesSeason(SeasonSummer) {
		t.Error("fall item should not match summer")
	}
}

func TestColor_Hex(t *testing.T) {
	if got := RGB(0, 32, 96).Hex(); got != "#002060" {
		t.Errorf("Hex() = %s, want #002060", got)
	}
}

func TestMemoryRepository_Lookups(t *testing.T) {
	ctx := context.Background()
	repo, err := NewMemoryRepository(SeedItems())
	if err != nil {
		t.Fatalf("NewMemoryRepository: %v", err)
	}

	it, err := repo.GetByID(ctx, "top_002")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if it.Name != "Navy Blue Blazer" {
		t.Errorf("expected Navy Blue Blazer, got %s", it.Name)
	}

	if _, err := repo.GetByID(ctx, "nope"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}

	acc, _ := repo.GetByCategory(ctx, CategoryAccessory)
	if len(acc) != 10 {
		t.Errorf("expected 10 accessories, got %d", len(acc))
	}

	all, _ := repo.All(ctx)
	if !sort.SliceIsSorted(all, func(i, j int) bool { return all[i].ID < all[j].ID }) {
		t.Error("All() must be ordered by id")
	}
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo, _ := NewMemoryRepository(SeedItems())

	it, _ := repo.GetByID(ctx, "top_001")
	it.Occasions[0] = OccasionParty

	again, _ := repo.GetByID(ctx, "top_001")
	if again.Occasions[0] != OccasionEveryday {
		t.Error("caller mutation leaked into repository")
	}
}

func TestMemoryRepository_Mutations(t *testing.T) {
	ctx := context.Background()
	repo, _ := NewMemoryRepository(SeedItems())

	v1, _ := repo.Version(ctx)

	extra := Item{ID: "top_999", Category: CategoryTop, Style: StyleVintage, Season: SeasonAll, Price: 10}
	if err := repo.Put(ctx, extra); err != nil {
		t.Fatalf("Put: %v", err)
	}
	v2, _ := repo.Version(ctx)
	if v2 <= v1 {
		t.Errorf("version did not advance on Put: %d -> %d", v1, v2)
	}

	if err := repo.Delete(ctx, "top_999"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	v3, _ := repo.Version(ctx)
	if v3 <= v2 {
		t.Errorf("version did not advance on Delete: %d -> %d", v2, v3)
	}

	if err := repo.Delete(ctx, "top_999"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound on second delete, got %v", err)
	}

	if err := repo.Put(ctx, Item{ID: "bad"}); !errors.Is(err, ErrInvalidItem) {
		t.Errorf("expected ErrInvalidItem, got %v", err)
	}
}

func TestNewMemoryRepository_DuplicateID(t *testing.T) {
	items := SeedItems()
	items = append(items, items[0])
	if _, err := NewMemoryRepository(items); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}
