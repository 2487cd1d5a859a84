// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package catalog

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// Key layout inside BadgerDB.
const (
	itemKeyPrefix = "item:"
	versionKey    = "meta:version"
)

// BadgerRepository persists the catalog in BadgerDB. Items are stored as
// JSON under "item:<id>" and every write bumps a version counter in the
// same transaction.
type BadgerRepository struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a Badger database at path. An empty path
// opens an in-memory database.
func OpenBadger(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", path, err)
	}
	return db, nil
}

// NewBadgerRepository wraps an open database. The caller owns db.
func NewBadgerRepository(db *badger.DB) *BadgerRepository {
	return &BadgerRepository{db: db}
}

// GetByID retrieves a single item.
func (r *BadgerRepository) GetByID(_ context.Context, id string) (Item, error) {
	var it Item
	err := r.db.View(func(txn *badger.Txn) error {
		entry, err := txn.Get([]byte(itemKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrItemNotFound, id)
		}
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		return entry.Value(func(val []byte) error {
			return json.Unmarshal(val, &it)
		})
	})
	if err != nil {
		return Item{}, err
	}
	return it, nil
}

// GetByCategory scans the catalog and returns items in category.
func (r *BadgerRepository) GetByCategory(ctx context.Context, category Category) ([]Item, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []Item
	for i := range all {
		if all[i].Category == category {
			out = append(out, all[i])
		}
	}
	return out, nil
}

// All returns every item. Badger iterates keys in byte order, so items
// come back sorted by id.
func (r *BadgerRepository) All(ctx context.Context) ([]Item, error) {
	var items []Item
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(itemKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var item Item
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &item)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Version returns the stored mutation counter, zero for an empty store.
func (r *BadgerRepository) Version(_ context.Context) (uint64, error) {
	var v uint64
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		v, err = readVersion(txn)
		return err
	})
	return v, err
}

// Put writes items and bumps the version atomically.
func (r *BadgerRepository) Put(_ context.Context, items ...Item) error {
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return err
		}
	}
	return r.db.Update(func(txn *badger.Txn) error {
		for i := range items {
			data, err := json.Marshal(items[i])
			if err != nil {
				return fmt.Errorf("marshal item %s: %w", items[i].ID, err)
			}
			if err := txn.Set([]byte(itemKeyPrefix+items[i].ID), data); err != nil {
				return fmt.Errorf("set item %s: %w", items[i].ID, err)
			}
		}
		return bumpVersion(txn)
	})
}

// Delete removes an item.
func (r *BadgerRepository) Delete(_ context.Context, id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(itemKeyPrefix + id)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrItemNotFound, id)
		} else if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if err := txn.Delete(key); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		return bumpVersion(txn)
	})
}

// Count returns the number of stored items.
func (r *BadgerRepository) Count(_ context.Context) (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(itemKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// SeedIfEmpty writes items when the store holds none. It reports whether
// anything was written.
func (r *BadgerRepository) SeedIfEmpty(ctx context.Context, items []Item) (bool, error) {
	n, err := r.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := r.Put(ctx, items...); err != nil {
		return false, fmt.Errorf("seed catalog: %w", err)
	}
	return true, nil
}

func readVersion(txn *badger.Txn) (uint64, error) {
	entry, err := txn.Get([]byte(versionKey))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get version: %w", err)
	}
	var v uint64
	err = entry.Value(func(val []byte) error {
		if len(val) != 8 {
			return fmt.Errorf("corrupt version value (%d bytes)", len(val))
		}
		v = binary.BigEndian.Uint64(val)
		return nil
	})
	return v, err
}

func bumpVersion(txn *badger.Txn) error {
	v, err := readVersion(txn)
	if err != nil {
		return err
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v+1)
	return txn.Set([]byte(versionKey), buf)
}
