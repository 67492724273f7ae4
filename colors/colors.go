// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the canonical color value used throughout
// seedtone and the parsing of heterogeneous color inputs into it.
//
// The canonical representation is [color.RGBA]: 8-bit non-premultiplied
// channels with alpha 255 meaning fully opaque. All operations are pure
// and return new values.
package colors

import (
	"image/color"

	"github.com/seedtone/seedtone/colors/cie"
	"github.com/seedtone/seedtone/colors/hsx"
	"github.com/seedtone/seedtone/colors/oklab"
)

// FromRGB makes a new opaque RGBA color from the given
// 8-bit RGB values.
func FromRGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// FromNRGBA makes a new RGBA color from the given
// 8-bit non-premultiplied RGBA values.
func FromNRGBA(r, g, b, a uint8) color.RGBA {
	return color.RGBA{r, g, b, a}
}

// WithAlphaF returns the color with the alpha set to the given
// 0-1 fraction, clamped.
func WithAlphaF(c color.RGBA, a float32) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(a*255 + 0.5)
	return c
}

// AsRGBA converts any [color.Color] to the canonical
// non-premultiplied [color.RGBA], short-circuiting values that
// already are one.
func AsRGBA(c color.Color) color.RGBA {
	if r, ok := c.(color.RGBA); ok {
		return r
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{n.R, n.G, n.B, n.A}
}

// Floats returns the color's RGB channels as normalized
// 0-1 floats, ignoring alpha.
func Floats(c color.RGBA) (r, g, b float32) {
	return cie.SRGBUint8ToFloat(c.R, c.G, c.B)
}

// ToHSL returns the color in HSL space.
func ToHSL(c color.RGBA) hsx.HSL {
	h := hsx.HSL{A: float32(c.A) / 255}
	h.H, h.S, h.L = hsx.RGBToHSL(Floats(c))
	return h
}

// ToHSV returns the color in HSV space.
func ToHSV(c color.RGBA) hsx.HSV {
	h := hsx.HSV{A: float32(c.A) / 255}
	h.H, h.S, h.V = hsx.RGBToHSV(Floats(c))
	return h
}

// ToHWB returns the color in HWB space.
func ToHWB(c color.RGBA) hsx.HWB {
	h := hsx.HWB{A: float32(c.A) / 255}
	h.H, h.W, h.B = hsx.RGBToHWB(Floats(c))
	return h
}

// ToXYZ returns the color's CIE XYZ coordinates on the 0-100
// scale, D65 illuminant.
func ToXYZ(c color.RGBA) (x, y, z float32) {
	r, g, b := Floats(c)
	return cie.SRGBToXYZ100(r, g, b)
}

// ToLAB returns the color's CIE LAB coordinates.
func ToLAB(c color.RGBA) (l, a, b float32) {
	r, g, bb := Floats(c)
	return cie.SRGBToLAB(r, g, bb)
}

// ToLCH returns the color's CIE LCH coordinates.
func ToLCH(c color.RGBA) (l, ch, h float32) {
	return cie.LABToLCH(ToLAB(c))
}

// ToOKLAB returns the color's OKLAB coordinates.
func ToOKLAB(c color.RGBA) (l, a, b float32) {
	r, g, bb := Floats(c)
	return oklab.SRGBToOKLAB(r, g, bb)
}

// ToOKLCH returns the color's OKLCH coordinates.
func ToOKLCH(c color.RGBA) (l, ch, h float32) {
	return oklab.OKLABToOKLCH(ToOKLAB(c))
}

// FromHSL returns the canonical color for the given HSL values,
// fully opaque.
func FromHSL(h, s, l float32) color.RGBA {
	return hsx.NewHSL(h, s, l).AsRGBA()
}

// FromHSV returns the canonical color for the given HSV values,
// fully opaque.
func FromHSV(h, s, v float32) color.RGBA {
	return hsx.NewHSV(h, s, v).AsRGBA()
}

// FromXYZ returns the canonical color for the given CIE XYZ
// coordinates (0-100 scale, D65), clamped into the sRGB gamut.
func FromXYZ(x, y, z float32) color.RGBA {
	r, g, b := cie.XYZ100ToSRGB(x, y, z)
	ur, ug, ub := cie.SRGBFloatToUint8(r, g, b)
	return color.RGBA{ur, ug, ub, 255}
}

// FromLAB returns the canonical color for the given CIE LAB values,
// clamped into the sRGB gamut.
func FromLAB(l, a, b float32) color.RGBA {
	r, g, bb := cie.LABToSRGB(l, a, b)
	ur, ug, ub := cie.SRGBFloatToUint8(r, g, bb)
	return color.RGBA{ur, ug, ub, 255}
}

// FromLCH returns the canonical color for the given CIE LCH values,
// clamped into the sRGB gamut.
func FromLCH(l, c, h float32) color.RGBA {
	return FromLAB(cie.LCHToLAB(l, c, h))
}

// FromOKLAB returns the canonical color for the given OKLAB values,
// clamped into the sRGB gamut.
func FromOKLAB(l, a, b float32) color.RGBA {
	r, g, bb := oklab.OKLABToSRGB(l, a, b)
	ur, ug, ub := cie.SRGBFloatToUint8(r, g, bb)
	return color.RGBA{ur, ug, ub, 255}
}

// FromOKLCH returns the canonical color for the given OKLCH values,
// clamped into the sRGB gamut.
func FromOKLCH(l, c, h float32) color.RGBA {
	return FromOKLAB(oklab.OKLCHToOKLAB(l, c, h))
}
