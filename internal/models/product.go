// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package models

import (
	"github.com/tomtom215/outfitter/internal/catalog"
)

// ColorView is an RGB color with its hex form.
type ColorView struct {
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
	Hex string `json:"hex"`
}

// ProductView is the API form of a catalog item.
type ProductView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Style       string    `json:"style"`
	Color       ColorView `json:"color"`
	Price       float64   `json:"price"`
	Season      string    `json:"season"`
	Occasion    []string  `json:"occasion"`
	Brand       string    `json:"brand,omitempty"`
	Description string    `json:"description,omitempty"`
}

// NewProductView converts a catalog item.
func NewProductView(it *catalog.Item) ProductView {
	occasions := make([]string, len(it.Occasions))
	for i, o := range it.Occasions {
		occasions[i] = string(o)
	}
	return ProductView{
		ID:       it.ID,
		Name:     it.Name,
		Category: string(it.Category),
		Style:    string(it.Style),
		Color: ColorView{
			R:   it.Color.R,
			G:   it.Color.G,
			B:   it.Color.B,
			Hex: it.Color.Hex(),
		},
		Price:       Round(it.Price, 2),
		Season:      string(it.Season),
		Occasion:    occasions,
		Brand:       it.Brand,
		Description: it.Description,
	}
}

// NewProductViews converts items, preserving order.
func NewProductViews(items []catalog.Item) []ProductView {
	out := make([]ProductView, len(items))
	for i := range items {
		out[i] = NewProductView(&items[i])
	}
	return out
}

// ProductList is the body of GET /api/v1/products.
type ProductList struct {
	Products []ProductView `json:"products"`
	Total    int           `json:"total"`
}
