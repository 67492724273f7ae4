// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsx

import "image/color"

// shared helpers for the hue-based spaces.

func wrapHue(h float32) float32 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

func clampPct(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func maxMin(r, g, b float32) (max, min float32) {
	max, min = r, r
	if g > max {
		max = g
	}
	if g < min {
		min = g
	}
	if b > max {
		max = b
	}
	if b < min {
		min = b
	}
	return
}

// hueOf selects the hue branch by which channel equals max and wraps
// the result into [0, 360). d is max-min and must be nonzero.
func hueOf(r, g, b, max, d float32) float32 {
	var h float32
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return wrapHue(h * 60)
}

func premul(r, g, b, a float32) (ur, ug, ub, ua uint32) {
	ur = uint32(clamp01(r)*a*65535 + 0.5)
	ug = uint32(clamp01(g)*a*65535 + 0.5)
	ub = uint32(clamp01(b)*a*65535 + 0.5)
	ua = uint32(a*65535 + 0.5)
	return
}

func unpremul(r, g, b, a uint32) (fr, fg, fb, fa float32) {
	if a == 0 {
		return 0, 0, 0, 0
	}
	fa = float32(a) / 65535
	fr = float32(r) / 65535 / fa
	fg = float32(g) / 65535 / fa
	fb = float32(b) / 65535 / fa
	return
}

func asRGBA(r, g, b, a float32) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(r)*255 + 0.5),
		G: uint8(clamp01(g)*255 + 0.5),
		B: uint8(clamp01(b)*255 + 0.5),
		A: uint8(clamp01(a)*255 + 0.5),
	}
}
