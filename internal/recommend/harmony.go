// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package recommend

import (
	"math"

	"github.com/tomtom215/outfitter/internal/catalog"
)

// DefaultCompatibility is returned for pairs the model has no entry for.
const DefaultCompatibility = 0.5

// Scheme is a named hue relationship between two colors.
type Scheme string

// Harmony schemes, ordered from closest to farthest hue.
const (
	SchemeMonochromatic      Scheme = "monochromatic"
	SchemeAnalogous          Scheme = "analogous"
	SchemeSplitComplementary Scheme = "split_complementary"
	SchemeTriadic            Scheme = "triadic"
	SchemeComplementary      Scheme = "complementary"
	SchemeNone               Scheme = "none"
)

// HSV is a color in hue (degrees, [0,360)), saturation and value ([0,1]).
type HSV struct {
	H float64
	S float64
	V float64
}

// ToHSV converts an 8-bit RGB color.
func ToHSV(c catalog.Color) HSV {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	var h float64
	switch {
	case delta == 0:
		h = 0
	case maxC == r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case maxC == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	var s float64
	if maxC > 0 {
		s = delta / maxC
	}
	return HSV{H: h, S: s, V: maxC}
}

// HueDistance returns the circular distance between two hues, in [0,180].
func HueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	d = math.Mod(d, 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// ClassifyHue maps a hue distance to its scheme and base score.
//
//	[0,15)    monochromatic        0.95
//	[15,30)   analogous            0.85
//	[30,60)   split-complementary  0.70
//	[115,125] triadic              0.75
//	[150,180] complementary        0.80
//	otherwise none                 0.50
func ClassifyHue(dh float64) (Scheme, float64) {
	switch {
	case dh < 15:
		return SchemeMonochromatic, 0.95
	case dh < 30:
		return SchemeAnalogous, 0.85
	case dh < 60:
		return SchemeSplitComplementary, 0.70
	case dh >= 115 && dh <= 125:
		return SchemeTriadic, 0.75
	case dh >= 150:
		return SchemeComplementary, 0.80
	default:
		return SchemeNone, 0.50
	}
}

// HarmonyConfig tunes the pairwise color model.
type HarmonyConfig struct {
	// NeutralSaturation is the saturation below which a color is neutral.
	NeutralSaturation float64 `json:"neutral_saturation"`

	// NeutralPairBonus is added when either color of a pair is neutral.
	NeutralPairBonus float64 `json:"neutral_pair_bonus"`
}

// PairScore scores two colors. The result is in [0,1].
func PairScore(a, b HSV, cfg HarmonyConfig) (float64, Scheme) {
	scheme, score := ClassifyHue(HueDistance(a.H, b.H))
	if a.S < cfg.NeutralSaturation || b.S < cfg.NeutralSaturation {
		score += cfg.NeutralPairBonus
	}
	return clamp01(score), scheme
}

// HarmonyModel is the precomputed, immutable pairwise compatibility matrix
// for one catalog load. It is safe for concurrent reads without locking.
type HarmonyModel struct {
	index   map[string]int
	ids     []string
	hsv     []HSV
	neutral []bool

	// scores and schemes are n*n row-major, mirrored across the diagonal
	scores  []float64
	schemes []Scheme
}

// NewHarmonyModel computes the compatibility of every unordered pair of
// items. Cost is O(n²) in time and memory. Items with duplicate ids keep
// the first occurrence.
func NewHarmonyModel(items []catalog.Item, cfg HarmonyConfig) *HarmonyModel {
	m := &HarmonyModel{
		index: make(map[string]int, len(items)),
	}
	for i := range items {
		if _, dup := m.index[items[i].ID]; dup {
			continue
		}
		hsv := ToHSV(items[i].Color)
		m.index[items[i].ID] = len(m.ids)
		m.ids = append(m.ids, items[i].ID)
		m.hsv = append(m.hsv, hsv)
		m.neutral = append(m.neutral, hsv.S < cfg.NeutralSaturation)
	}

	n := len(m.ids)
	m.scores = make([]float64, n*n)
	m.schemes = make([]Scheme, n*n)
	for i := 0; i < n; i++ {
		m.scores[i*n+i] = 1
		m.schemes[i*n+i] = SchemeMonochromatic
		for j := i + 1; j < n; j++ {
			score, scheme := PairScore(m.hsv[i], m.hsv[j], cfg)
			m.scores[i*n+j], m.scores[j*n+i] = score, score
			m.schemes[i*n+j], m.schemes[j*n+i] = scheme, scheme
		}
	}
	return m
}

// Compatibility returns the precomputed score for a pair. Unknown ids
// yield DefaultCompatibility.
func (m *HarmonyModel) Compatibility(a, b string) float64 {
	i, j, ok := m.lookup(a, b)
	if !ok {
		return DefaultCompatibility
	}
	return m.scores[i*len(m.ids)+j]
}

// Scheme returns the hue relationship recorded for a pair.
func (m *HarmonyModel) Scheme(a, b string) Scheme {
	i, j, ok := m.lookup(a, b)
	if !ok {
		return SchemeNone
	}
	return m.schemes[i*len(m.ids)+j]
}

// IsNeutral reports whether the item's color is below the neutral
// saturation threshold.
func (m *HarmonyModel) IsNeutral(id string) bool {
	i, ok := m.index[id]
	return ok && m.neutral[i]
}

// Contains reports whether id was part of the catalog the model was built from.
func (m *HarmonyModel) Contains(id string) bool {
	_, ok := m.index[id]
	return ok
}

// Size returns the number of items in the model.
func (m *HarmonyModel) Size() int {
	return len(m.ids)
}

// Pairs returns the number of distinct unordered pairs scored.
func (m *HarmonyModel) Pairs() int {
	n := len(m.ids)
	return n * (n - 1) / 2
}

func (m *HarmonyModel) lookup(a, b string) (int, int, bool) {
	i, ok := m.index[a]
	if !ok {
		return 0, 0, false
	}
	j, ok := m.index[b]
	if !ok {
		return 0, 0, false
	}
	return i, j, true
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
