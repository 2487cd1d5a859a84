// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package catalog

import (
	"context"
	"errors"
	"testing"
)

func newTestBadgerRepo(t *testing.T) *BadgerRepository {
	t.Helper()
	db, err := OpenBadger("")
	if err != nil {
		t.Fatalf("OpenBadger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewBadgerRepository(db)
}

func TestBadgerRepository_SeedAndRead(t *testing.T) {
	ctx := context.Background()
	repo := newTestBadgerRepo(t)

	v0, err := repo.Version(ctx)
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if v0 != 0 {
		t.Errorf("empty store version = %d, want 0", v0)
	}

	seeded, err := repo.SeedIfEmpty(ctx, SeedItems())
	if err != nil {
		t.Fatalf("SeedIfEmpty: %v", err)
	}
	if !seeded {
		t.Fatal("expected empty store to be seeded")
	}

	seeded, err = repo.SeedIfEmpty(ctx, SeedItems())
	if err != nil {
		t.Fatalf("SeedIfEmpty (second): %v", err)
	}
	if seeded {
		t.Error("non-empty store must not be reseeded")
	}

	n, _ := repo.Count(ctx)
	if n != 34 {
		t.Errorf("Count() = %d, want 34", n)
	}

	it, err := repo.GetByID(ctx, "footwear_003")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if it.Color != RGB(139, 69, 19) || it.Season != SeasonFall {
		t.Errorf("round trip mismatch: %+v", it)
	}

	bottoms, err := repo.GetByCategory(ctx, CategoryBottom)
	if err != nil {
		t.Fatalf("GetByCategory: %v", err)
	}
	if len(bottoms) != 8 {
		t.Errorf("expected 8 bottoms, got %d", len(bottoms))
	}

	all, _ := repo.All(ctx)
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("All() not ordered: %s before %s", all[i-1].ID, all[i].ID)
		}
	}
}

func TestBadgerRepository_DeleteBumpsVersion(t *testing.T) {
	ctx := context.Background()
	repo := newTestBadgerRepo(t)

	if err := repo.Put(ctx, SeedItems()...); err != nil {
		t.Fatalf("Put: %v", err)
	}
	before, _ := repo.Version(ctx)

	if err := repo.Delete(ctx, "acc_010"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	after, _ := repo.Version(ctx)
	if after != before+1 {
		t.Errorf("version = %d, want %d", after, before+1)
	}

	if _, err := repo.GetByID(ctx, "acc_010"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "acc_010"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound on repeat delete, got %v", err)
	}
}

func TestBadgerRepository_RejectsInvalid(t *testing.T) {
	repo := newTestBadgerRepo(t)
	err := repo.Put(context.Background(), Item{ID: "x", Category: "hat"})
	if !errors.Is(err, ErrInvalidItem) {
		t.Errorf("expected ErrInvalidItem, got %v", err)
	}
}
