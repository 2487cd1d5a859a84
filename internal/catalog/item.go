// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package catalog

import (
	"errors"
	"fmt"
)

// Category is the garment slot an item fills in an outfit.
type Category string

// Catalog categories.
const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryFootwear  Category = "footwear"
	CategoryAccessory Category = "accessory"
)

// Categories lists every category in outfit slot order.
var Categories = []Category{CategoryTop, CategoryBottom, CategoryFootwear, CategoryAccessory}

// Style is the closed style vocabulary.
type Style string

// Supported styles.
const (
	StyleCasual     Style = "casual"
	StyleFormal     Style = "formal"
	StyleSporty     Style = "sporty"
	StyleBohemian   Style = "bohemian"
	StyleMinimalist Style = "minimalist"
	StyleVintage    Style = "vintage"
	StyleStreetwear Style = "streetwear"
	StyleBusiness   Style = "business"
)

// Styles lists the full style vocabulary.
var Styles = []Style{
	StyleCasual, StyleFormal, StyleSporty, StyleBohemian,
	StyleMinimalist, StyleVintage, StyleStreetwear, StyleBusiness,
}

// Season is the closed season vocabulary. SeasonAll matches any season.
type Season string

// Supported seasons.
const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
	SeasonAll    Season = "all_season"
)

// Seasons lists the full season vocabulary.
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter, SeasonAll}

// Occasion is the closed occasion vocabulary.
type Occasion string

// Supported occasions.
const (
	OccasionEveryday    Occasion = "everyday"
	OccasionWork        Occasion = "work"
	OccasionParty       Occasion = "party"
	OccasionDate        Occasion = "date"
	OccasionSports      Occasion = "sports"
	OccasionFormalEvent Occasion = "formal_event"
	OccasionTravel      Occasion = "travel"
)

// Occasions lists the full occasion vocabulary.
var Occasions = []Occasion{
	OccasionEveryday, OccasionWork, OccasionParty, OccasionDate,
	OccasionSports, OccasionFormalEvent, OccasionTravel,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Valid reports whether s is a known style.
func (s Style) Valid() bool {
	for _, v := range Styles {
		if s == v {
			return true
		}
	}
	return false
}

// Valid reports whether s is a known season.
func (s Season) Valid() bool {
	for _, v := range Seasons {
		if s == v {
			return true
		}
	}
	return false
}

// Valid reports whether o is a known occasion.
func (o Occasion) Valid() bool {
	for _, v := range Occasions {
		if o == v {
			return true
		}
	}
	return false
}

// Color is an 8-bit-per-channel RGB color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex renders the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Item is a single catalog product. Items are treated as immutable once loaded.
type Item struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    Category   `json:"category"`
	Style       Style      `json:"style"`
	Color       Color      `json:"color"`
	Price       float64    `json:"price"`
	Season      Season     `json:"season"`
	Occasions   []Occasion `json:"occasions"`
	Brand       string     `json:"brand"`
	Description string     `json:"description,omitempty"`
}

// HasOccasion reports whether the item is suitable for o.
func (it *Item) HasOccasion(o Occasion) bool {
	for _, v := range it.Occasions {
		if v == o {
			return true
		}
	}
	return false
}

// MatchesSeason reports whether the item can be worn in s.
// All-season items match any season.
func (it *Item) MatchesSeason(s Season) bool {
	return it.Season == SeasonAll || it.Season == s
}

// Validate checks the item against the catalog vocabulary.
func (it *Item) Validate() error {
	var errs []error
	if it.ID == "" {
		errs = append(errs, errors.New("id is required"))
	}
	if !it.Category.Valid() {
		errs = append(errs, fmt.Errorf("unknown category %q", it.Category))
	}
	if !it.Style.Valid() {
		errs = append(errs, fmt.Errorf("unknown style %q", it.Style))
	}
	if !it.Season.Valid() {
		errs = append(errs, fmt.Errorf("unknown season %q", it.Season))
	}
	if it.Price < 0 {
		errs = append(errs, fmt.Errorf("price must be >= 0, got %v", it.Price))
	}
	for _, o := range it.Occasions {
		if !o.Valid() {
			errs = append(errs, fmt.Errorf("unknown occasion %q", o))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w %s: %w", ErrInvalidItem, it.ID, errors.Join(errs...))
	}
	return nil
}
