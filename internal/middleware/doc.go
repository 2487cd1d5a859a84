// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

/*
Package middleware provides HTTP middleware shared by the API router.

All middleware use the standard func(http.Handler) http.Handler shape and
can be passed straight to chi's Use:

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)

RequestID must run first: AccessLog and the handlers read the id it stores
in the request context.
*/
package middleware
