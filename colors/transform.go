// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Lighten returns a color that is lighter by the given absolute
// HSL lightness amount (0-100, ranges enforced).
func Lighten(c color.RGBA, amount float32) color.RGBA {
	h := ToHSL(c)
	h.L = math32.Min(math32.Max(h.L+amount, 0), 100)
	return h.AsRGBA()
}

// Darken returns a color that is darker by the given absolute
// HSL lightness amount (0-100, ranges enforced).
func Darken(c color.RGBA, amount float32) color.RGBA {
	return Lighten(c, -amount)
}

// Saturate returns a color that is more saturated by the given
// absolute HSL saturation amount (0-100, ranges enforced).
func Saturate(c color.RGBA, amount float32) color.RGBA {
	h := ToHSL(c)
	h.S = math32.Min(math32.Max(h.S+amount, 0), 100)
	return h.AsRGBA()
}

// Desaturate returns a color that is less saturated by the given
// absolute HSL saturation amount (0-100, ranges enforced).
func Desaturate(c color.RGBA, amount float32) color.RGBA {
	return Saturate(c, -amount)
}

// Spin returns a color with the hue rotated by the given amount
// in degrees, wrapped into [0, 360).
func Spin(c color.RGBA, amount float32) color.RGBA {
	h := ToHSL(c)
	h.H = math32.Mod(h.H+amount, 360)
	if h.H < 0 {
		h.H += 360
	}
	return h.AsRGBA()
}

// IsLight returns whether the given color is light (has a CIE LAB
// lightness greater than or equal to 60). LAB lightness tracks
// luminance, so high-chroma brights like pure yellow (HSL lightness
// 50, LAB lightness ~97) count as light.
func IsLight(c color.RGBA) bool {
	l, _, _ := ToLAB(c)
	return l >= 60
}

// IsDark returns whether the given color is dark
// (has a CIE LAB lightness less than 60).
func IsDark(c color.RGBA) bool {
	return !IsLight(c)
}

// ContrastColor returns the color that should be used to contrast
// this color (white or black), based on the result of [IsLight].
func ContrastColor(c color.RGBA) color.RGBA {
	if IsLight(c) {
		return color.RGBA{0, 0, 0, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}
