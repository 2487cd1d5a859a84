// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package recommend

import (
	"errors"
	"fmt"

	"github.com/tomtom215/outfitter/internal/catalog"
)

// Sentinel errors. Use errors.Is to classify engine failures.
var (
	// ErrNotFound means the anchor id does not resolve in the catalog.
	ErrNotFound = errors.New("anchor item not found")

	// ErrInsufficientCandidates means a required category filtered to empty.
	ErrInsufficientCandidates = errors.New("insufficient candidates")

	// ErrValidation means the request carried malformed constraints.
	ErrValidation = errors.New("invalid request")
)

// InsufficientCandidatesError names the category that had no eligible items.
type InsufficientCandidatesError struct {
	AnchorID string
	Category catalog.Category
}

func (e *InsufficientCandidatesError) Error() string {
	return fmt.Sprintf("no eligible %s items for anchor %s", e.Category, e.AnchorID)
}

// Unwrap lets errors.Is match ErrInsufficientCandidates.
func (e *InsufficientCandidatesError) Unwrap() error {
	return ErrInsufficientCandidates
}

// ValidationError describes a single rejected request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
