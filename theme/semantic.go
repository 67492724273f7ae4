// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme derives semantic role colors and multi-step tonal
// palettes from a single seed color. Everything here is pure: the
// same seed and options always produce the same output.
package theme

import (
	"image/color"

	"github.com/seedtone/seedtone/colors"
)

// Semantic holds one color per UI role, all derived from the seed
// (which becomes Primary).
type Semantic struct {
	Primary color.RGBA
	Success color.RGBA
	Warning color.RGBA
	Danger  color.RGBA
	Info    color.RGBA
	Gray    color.RGBA
}

// SemanticOptions control role derivation.
type SemanticOptions struct {

	// MixGray tints the gray role with the seed hue instead of a
	// pure neutral.
	MixGray bool

	// GrayMixRatio scales how much seed saturation bleeds into the
	// gray role when MixGray is set. Typical values are 0-1.
	GrayMixRatio float32
}

// hueBucket maps a disjoint seed-hue range [Lo, Hi) to a fixed
// target hue. Keep means the seed hue is already in the role's
// natural band and passes through unchanged.
type hueBucket struct {
	lo, hi float32
	target float32
	keep   bool
}

// Per-role hue tables. Each table covers [0, 360) with disjoint
// buckets; the wrap-around band (h < 25 or h >= 335) is the red zone.
var (
	successHues = []hueBucket{
		{0, 25, 120, false},
		{25, 75, 80, false},
		{75, 150, 0, true},
		{150, 210, 90, false},
		{210, 285, 100, false},
		{285, 335, 130, false},
		{335, 360, 120, false},
	}
	warningHues = []hueBucket{
		{0, 25, 35, false},
		{25, 75, 0, true},
		{75, 150, 45, false},
		{150, 210, 40, false},
		{210, 285, 38, false},
		{285, 335, 30, false},
		{335, 360, 35, false},
	}
	dangerHues = []hueBucket{
		{0, 25, 0, true},
		{25, 75, 10, false},
		{75, 150, 0, false},
		{150, 210, 5, false},
		{210, 285, 4, false},
		{285, 335, 352, false},
		{335, 360, 0, true},
	}
	infoHues = []hueBucket{
		{0, 25, 215, false},
		{25, 75, 210, false},
		{75, 150, 205, false},
		{150, 210, 200, false},
		{210, 285, 0, true},
		{285, 335, 220, false},
		{335, 360, 215, false},
	}
)

// roleBounds are the additive saturation/lightness offsets applied to
// the seed's own values, and the bounds they are clamped into.
type roleBounds struct {
	sOffset, lOffset float32
	sMin, sMax       float32
	lMin, lMax       float32
}

var (
	successBounds = roleBounds{-10, 5, 55, 70, 45, 60}
	warningBounds = roleBounds{10, 8, 80, 100, 55, 65}
	dangerBounds  = roleBounds{5, 0, 75, 85, 45, 55}
	infoBounds    = roleBounds{0, 2, 60, 80, 50, 60}
)

// DeriveSemantic maps the seed to the full set of role colors. The
// role hues come from fixed per-role bucket tables over the seed hue;
// saturation and lightness start from the seed's own values, shifted
// by a per-role offset and clamped into per-role bounds.
func DeriveSemantic(seed color.RGBA, opts SemanticOptions) Semantic {
	hsl := colors.ToHSL(seed)
	return Semantic{
		Primary: seed,
		Success: deriveRole(hsl.H, hsl.S, hsl.L, successHues, successBounds),
		Warning: deriveRole(hsl.H, hsl.S, hsl.L, warningHues, warningBounds),
		Danger:  deriveRole(hsl.H, hsl.S, hsl.L, dangerHues, dangerBounds),
		Info:    deriveRole(hsl.H, hsl.S, hsl.L, infoHues, infoBounds),
		Gray:    deriveGray(hsl.H, hsl.S, opts),
	}
}

func deriveRole(h, s, l float32, hues []hueBucket, b roleBounds) color.RGBA {
	target := h
	for _, bk := range hues {
		if h >= bk.lo && h < bk.hi {
			if !bk.keep {
				target = bk.target
			}
			break
		}
	}
	rs := clampf(s+b.sOffset, b.sMin, b.sMax)
	rl := clampf(l+b.lOffset, b.lMin, b.lMax)
	return colors.FromHSL(target, rs, rl)
}

// deriveGray produces a pure neutral, or with MixGray a barely
// tinted neutral that still reads as brand-aligned: the seed hue at
// a saturation of seed.S x ratio x 0.3 clamped into 3-8, lightness
// fixed at 50.
func deriveGray(h, s float32, opts SemanticOptions) color.RGBA {
	if !opts.MixGray {
		return colors.FromHSL(0, 0, 50)
	}
	return colors.FromHSL(h, clampf(s*opts.GrayMixRatio*0.3, 3, 8), 50)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
