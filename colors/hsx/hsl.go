// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsx implements the hue-based color spaces HSL, HSV, and HWB
// as [color.Color] value types. Hue is in degrees [0, 360); saturation,
// lightness, value, whiteness, and blackness are percentages in 0-100;
// alpha is 0-1. Achromatic colors always have hue 0 and saturation 0.
package hsx

import (
	"fmt"
	"image/color"
)

// HSL represents a color in the hue, saturation, lightness space.
type HSL struct {

	// H is the hue in degrees, 0-360
	H float32

	// S is the saturation as a percentage, 0-100
	S float32

	// L is the lightness as a percentage, 0-100
	L float32

	// A is the alpha, 0-1
	A float32
}

// NewHSL returns a new HSL color with alpha 1, with values
// clamped into range and the hue wrapped into [0, 360).
func NewHSL(h, s, l float32) HSL {
	return HSL{wrapHue(h), clampPct(s), clampPct(l), 1}
}

// HSLModel is the standard [color.Model] that converts colors to HSL.
var HSLModel = color.ModelFunc(hslModel)

func hslModel(c color.Color) color.Color {
	if h, ok := c.(HSL); ok {
		return h
	}
	h := HSL{}
	h.SetUint32(c.RGBA())
	return h
}

// HSLFromColor constructs an HSL value from a standard [color.Color].
func HSLFromColor(c color.Color) HSL {
	h := HSL{}
	h.SetUint32(c.RGBA())
	return h
}

// RGBA implements the [color.Color] interface, premultiplying the
// channels by alpha.
func (h HSL) RGBA() (r, g, b, a uint32) {
	fr, fg, fb := HSLToRGB(h.H, h.S, h.L)
	return premul(fr, fg, fb, h.A)
}

// AsRGBA returns the color as a non-alpha-premultiplied [color.RGBA].
func (h HSL) AsRGBA() color.RGBA {
	fr, fg, fb := HSLToRGB(h.H, h.S, h.L)
	return asRGBA(fr, fg, fb, h.A)
}

// SetUint32 sets the value from alpha-premultiplied uint32 channels,
// as returned by [color.Color.RGBA].
func (h *HSL) SetUint32(r, g, b, a uint32) {
	fr, fg, fb, fa := unpremul(r, g, b, a)
	h.H, h.S, h.L = RGBToHSL(fr, fg, fb)
	h.A = fa
}

func (h HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", h.H, h.S, h.L)
}

// RGBToHSL converts normalized sRGB values (0-1) to hue (0-360),
// saturation (0-100), and lightness (0-100). Achromatic input yields
// hue 0 and saturation 0.
func RGBToHSL(r, g, b float32) (h, s, l float32) {
	max, min := maxMin(r, g, b)
	l = (max + min) / 2 * 100
	if max == min {
		return 0, 0, l
	}
	d := max - min
	if l > 50 {
		s = d / (2 - max - min) * 100
	} else {
		s = d / (max + min) * 100
	}
	h = hueOf(r, g, b, max, d)
	return
}

// HSLToRGB converts hue (0-360), saturation (0-100), and lightness
// (0-100) to normalized sRGB values (0-1).
func HSLToRGB(h, s, l float32) (r, g, b float32) {
	h = wrapHue(h)
	s = clampPct(s) / 100
	l = clampPct(l) / 100
	if s == 0 {
		return l, l, l
	}
	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hn := h / 360
	r = hueToRGB(p, q, hn+1.0/3)
	g = hueToRGB(p, q, hn)
	b = hueToRGB(p, q, hn-1.0/3)
	return
}

func hueToRGB(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
