// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

/*
Package catalog holds the product data model and the repositories that serve it.

Items carry a category (top, bottom, footwear, accessory), a style tag, an RGB
color, a price, a season and a set of occasions. The vocabularies are closed;
Item.Validate rejects anything outside them.

Two Repository implementations are provided:

  - MemoryRepository: map-backed, used for tests and the default "memory" source
  - BadgerRepository: BadgerDB-backed, items stored as JSON under "item:<id>"

Both return items ordered by id and expose a Version counter that changes on
every mutation. The recommendation engine compares versions to know when its
precomputed color model must be rebuilt.

SeedItems returns the built-in demonstration catalog.
*/
package catalog
