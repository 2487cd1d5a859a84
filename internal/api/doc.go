// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

/*
Package api provides the HTTP REST API layer for Outfitter.

Routes are served by a chi router. Every response uses the models.APIResponse
envelope and is encoded with goccy/go-json.

Endpoints:

  - GET /                          service info and endpoint list
  - GET /health                    health with product count and model state
  - GET /health/live               liveness probe
  - GET /health/ready              readiness probe (catalog reachable)
  - GET /metrics                   Prometheus metrics
  - GET /api/v1/products           list products, optional ?category=
  - GET /api/v1/products/{id}      one product, 404 when absent
  - POST /api/v1/recommendations   outfit recommendations for an anchor product
  - GET /api/v1/stats              catalog, cache and engine counters
  - DELETE /api/v1/cache           drop every cached recommendation

Middleware stack (global): request id, real ip, panic recovery, access log,
CORS. The /api/v1 group adds rate limiting (go-chi/httprate), security
headers and Prometheus instrumentation.

Error mapping for recommendations:

  - recommend.ErrValidation             400 VALIDATION_ERROR
  - recommend.ErrNotFound               404 NOT_FOUND
  - recommend.ErrInsufficientCandidates 422 INSUFFICIENT_CANDIDATES
  - anything else                       500 INTERNAL_ERROR

Usage:

	handler := api.NewHandler(engine, repo, version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
	srv := &http.Server{Addr: addr, Handler: router.SetupChi()}
*/
package api
