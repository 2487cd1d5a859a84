// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/outfitter/internal/catalog"
	"github.com/tomtom215/outfitter/internal/models"
)

// productListQuery holds the GET /api/v1/products query parameters.
type productListQuery struct {
	Category string `json:"category" validate:"omitempty,category"`
}

// ListProducts handles GET /api/v1/products, optionally filtered by
// ?category=top|bottom|footwear|accessory.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := productListQuery{Category: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("category")))}
	if apiErr := validateRequest(&query); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	var (
		items []catalog.Item
		err   error
	)
	if query.Category != "" {
		items, err = h.repo.GetByCategory(r.Context(), catalog.Category(query.Category))
	} else {
		items, err = h.repo.All(r.Context())
	}
	if err != nil {
		respondError(w, r, http.StatusInternalServerError,
			&models.APIError{Code: "INTERNAL_ERROR", Message: "Failed to load products"}, err)
		return
	}

	respondSuccess(w, r, http.StatusOK, models.ProductList{
		Products: models.NewProductViews(items),
		Total:    len(items),
	})
}

// GetProduct handles GET /api/v1/products/{id}.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			respondError(w, r, http.StatusNotFound, &models.APIError{
				Code:    "NOT_FOUND",
				Message: "Product not found",
				Details: map[string]interface{}{"id": sanitizeLogValue(id)},
			}, nil)
			return
		}
		respondError(w, r, http.StatusInternalServerError,
			&models.APIError{Code: "INTERNAL_ERROR", Message: "Failed to load product"}, err)
		return
	}

	respondSuccess(w, r, http.StatusOK, models.NewProductView(&item))
}
