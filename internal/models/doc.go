// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

/*
Package models defines the JSON shapes of the HTTP API.

Every endpoint answers with an APIResponse envelope. Domain values from the
catalog and recommend packages are converted to view types here so the
wire format stays stable when internal types change:

  - ProductView: one catalog item, color as r/g/b plus hex
  - OutfitView: one recommended outfit, match_score rounded to 3 decimals
    and total_price to 2
  - RecommendationRequest: the POST /api/v1/recommendations body, carrying
    validator tags checked by the validation package

Rounding happens only in the views. The engine keeps exact values.
*/
package models
