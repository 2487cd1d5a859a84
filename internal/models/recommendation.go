// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package models

import (
	"math"
	"strings"

	"github.com/tomtom215/outfitter/internal/catalog"
	"github.com/tomtom215/outfitter/internal/recommend"
)

// RecommendationRequest is the body of POST /api/v1/recommendations.
// Enum fields are case-insensitive; empty means unset.
type RecommendationRequest struct {
	BaseProductID      string   `json:"base_product_id" validate:"required,max=128"`
	Occasion           string   `json:"occasion,omitempty" validate:"omitempty,occasion"`
	Season             string   `json:"season,omitempty" validate:"omitempty,season"`
	StylePreference    string   `json:"style_preference,omitempty" validate:"omitempty,style"`
	MaxBudget          *float64 `json:"max_budget,omitempty" validate:"omitempty,gt=0"`
	NumRecommendations int      `json:"num_recommendations,omitempty" validate:"gte=0,lte=100"`
}

// ToEngineRequest builds the engine request. The engine normalizes case,
// applies the count default and rejects counts above its configured limit.
func (r *RecommendationRequest) ToEngineRequest(requestID string) recommend.Request {
	return recommend.Request{
		RequestID: requestID,
		AnchorID:  strings.TrimSpace(r.BaseProductID),
		Occasion:  catalog.Occasion(r.Occasion),
		Season:    catalog.Season(r.Season),
		Style:     catalog.Style(r.StylePreference),
		MaxBudget: r.MaxBudget,
		Count:     r.NumRecommendations,
	}
}

// OutfitView is the API form of a recommended outfit.
type OutfitView struct {
	Top         ProductView   `json:"top"`
	Bottom      ProductView   `json:"bottom"`
	Footwear    ProductView   `json:"footwear"`
	Accessories []ProductView `json:"accessories"`
	MatchScore  float64       `json:"match_score"`
	Reasoning   string        `json:"reasoning"`
	TotalPrice  float64       `json:"total_price"`
}

// NewOutfitView converts an outfit, rounding the score and the total.
func NewOutfitView(o *recommend.Outfit) OutfitView {
	return OutfitView{
		Top:         NewProductView(&o.Top),
		Bottom:      NewProductView(&o.Bottom),
		Footwear:    NewProductView(&o.Footwear),
		Accessories: NewProductViews(o.Accessories),
		MatchScore:  Round(o.MatchScore, 3),
		Reasoning:   o.Reasoning,
		TotalPrice:  Round(o.TotalPrice, 2),
	}
}

// RecommendationResponse is the data of a successful recommendation.
type RecommendationResponse struct {
	Outfits        []OutfitView `json:"outfits"`
	Partial        bool         `json:"partial"`
	Requested      int          `json:"requested"`
	Returned       int          `json:"returned"`
	Fingerprint    string       `json:"fingerprint"`
	CatalogVersion uint64       `json:"catalog_version"`
	Attempts       int          `json:"attempts,omitempty"`
}

// NewRecommendationResponse converts an engine response.
func NewRecommendationResponse(resp *recommend.Response) RecommendationResponse {
	outfits := make([]OutfitView, len(resp.Outfits))
	for i := range resp.Outfits {
		outfits[i] = NewOutfitView(&resp.Outfits[i])
	}
	return RecommendationResponse{
		Outfits:        outfits,
		Partial:        resp.Partial,
		Requested:      resp.Metadata.Requested,
		Returned:       resp.Metadata.Returned,
		Fingerprint:    resp.Metadata.Fingerprint,
		CatalogVersion: resp.Metadata.CatalogVersion,
		Attempts:       resp.Metadata.Attempts,
	}
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
