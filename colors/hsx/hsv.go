// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsx

import (
	"fmt"
	"image/color"
)

// HSV represents a color in the hue, saturation, value space.
type HSV struct {

	// H is the hue in degrees, 0-360
	H float32

	// S is the saturation as a percentage, 0-100
	S float32

	// V is the value (brightness) as a percentage, 0-100
	V float32

	// A is the alpha, 0-1
	A float32
}

// NewHSV returns a new HSV color with alpha 1, with values
// clamped into range and the hue wrapped into [0, 360).
func NewHSV(h, s, v float32) HSV {
	return HSV{wrapHue(h), clampPct(s), clampPct(v), 1}
}

// HSVModel is the standard [color.Model] that converts colors to HSV.
var HSVModel = color.ModelFunc(hsvModel)

func hsvModel(c color.Color) color.Color {
	if h, ok := c.(HSV); ok {
		return h
	}
	h := HSV{}
	h.SetUint32(c.RGBA())
	return h
}

// HSVFromColor constructs an HSV value from a standard [color.Color].
func HSVFromColor(c color.Color) HSV {
	h := HSV{}
	h.SetUint32(c.RGBA())
	return h
}

// RGBA implements the [color.Color] interface, premultiplying the
// channels by alpha.
func (h HSV) RGBA() (r, g, b, a uint32) {
	fr, fg, fb := HSVToRGB(h.H, h.S, h.V)
	return premul(fr, fg, fb, h.A)
}

// AsRGBA returns the color as a non-alpha-premultiplied [color.RGBA].
func (h HSV) AsRGBA() color.RGBA {
	fr, fg, fb := HSVToRGB(h.H, h.S, h.V)
	return asRGBA(fr, fg, fb, h.A)
}

// SetUint32 sets the value from alpha-premultiplied uint32 channels,
// as returned by [color.Color.RGBA].
func (h *HSV) SetUint32(r, g, b, a uint32) {
	fr, fg, fb, fa := unpremul(r, g, b, a)
	h.H, h.S, h.V = RGBToHSV(fr, fg, fb)
	h.A = fa
}

func (h HSV) String() string {
	return fmt.Sprintf("hsv(%g, %g%%, %g%%)", h.H, h.S, h.V)
}

// RGBToHSV converts normalized sRGB values (0-1) to hue (0-360),
// saturation (0-100), and value (0-100). Achromatic input yields
// hue 0 and saturation 0.
func RGBToHSV(r, g, b float32) (h, s, v float32) {
	max, min := maxMin(r, g, b)
	v = max * 100
	if max == min {
		return 0, 0, v
	}
	d := max - min
	s = d / max * 100
	h = hueOf(r, g, b, max, d)
	return
}

// HSVToRGB converts hue (0-360), saturation (0-100), and value
// (0-100) to normalized sRGB values (0-1).
func HSVToRGB(h, s, v float32) (r, g, b float32) {
	h = wrapHue(h)
	s = clampPct(s) / 100
	v = clampPct(v) / 100
	if s == 0 {
		return v, v, v
	}
	h /= 60
	i := int(h)
	f := h - float32(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch i {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	}
	return v, p, q
}
