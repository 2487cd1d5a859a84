// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

/*
Package services provides suture.Service wrappers for Outfitter components.

Each wrapper implements Serve(ctx context.Context) error and fmt.Stringer:

  - HTTPServerService: runs an *http.Server, shuts it down gracefully on
    cancellation
  - CatalogRefreshService: polls the catalog version on an interval,
    rebuilds the harmony model on change and drops expired cached results

Serve returns ctx.Err() on shutdown and a non-nil error on failure, which
tells the supervisor to restart the service.
*/
package services
