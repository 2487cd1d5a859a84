// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

/*
Package main is the entry point for the Outfitter server application.

Outfitter recommends complete outfits (top, bottom, footwear and an optional
accessory) around a base product, scored on color harmony, style, occasion,
season and budget fit.

# Application Architecture

Services run under a Suture v4 supervisor tree:

	RootSupervisor ("outfitter")
	├── CatalogSupervisor ("catalog-layer")
	│   └── Catalog refresh (rebuilds the harmony model on catalog change)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Catalog: in-memory seed catalog or BadgerDB
 4. Recommendation engine: harmony matrix, generator, scorer, result cache
 5. Supervisor tree and HTTP server

# Configuration

Common environment variables:

	HTTP_PORT=8080
	LOG_LEVEL=info
	LOG_FORMAT=json
	CATALOG_SOURCE=badger
	CATALOG_BADGER_PATH=/data/catalog
	CATALOG_REFRESH_INTERVAL=30s
	RECOMMEND_CACHE_TTL=1h
	RECOMMEND_SEED=42

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests within HTTP_SHUTDOWN_TIMEOUT and the catalog database is closed.
*/
package main
