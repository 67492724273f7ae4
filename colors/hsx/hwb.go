// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsx

import (
	"fmt"
	"image/color"
)

// HWB represents a color in the hue, whiteness, blackness space.
type HWB struct {

	// H is the hue in degrees, 0-360
	H float32

	// W is the whiteness as a percentage, 0-100
	W float32

	// B is the blackness as a percentage, 0-100
	B float32

	// A is the alpha, 0-1
	A float32
}

// NewHWB returns a new HWB color with alpha 1, with values
// clamped into range and the hue wrapped into [0, 360).
func NewHWB(h, w, b float32) HWB {
	return HWB{wrapHue(h), clampPct(w), clampPct(b), 1}
}

// HWBModel is the standard [color.Model] that converts colors to HWB.
var HWBModel = color.ModelFunc(hwbModel)

func hwbModel(c color.Color) color.Color {
	if h, ok := c.(HWB); ok {
		return h
	}
	h := HWB{}
	h.SetUint32(c.RGBA())
	return h
}

// HWBFromColor constructs an HWB value from a standard [color.Color].
func HWBFromColor(c color.Color) HWB {
	h := HWB{}
	h.SetUint32(c.RGBA())
	return h
}

// RGBA implements the [color.Color] interface, premultiplying the
// channels by alpha.
func (h HWB) RGBA() (r, g, b, a uint32) {
	fr, fg, fb := HWBToRGB(h.H, h.W, h.B)
	return premul(fr, fg, fb, h.A)
}

// AsRGBA returns the color as a non-alpha-premultiplied [color.RGBA].
func (h HWB) AsRGBA() color.RGBA {
	fr, fg, fb := HWBToRGB(h.H, h.W, h.B)
	return asRGBA(fr, fg, fb, h.A)
}

// SetUint32 sets the value from alpha-premultiplied uint32 channels,
// as returned by [color.Color.RGBA].
func (h *HWB) SetUint32(r, g, b, a uint32) {
	fr, fg, fb, fa := unpremul(r, g, b, a)
	h.H, h.W, h.B = RGBToHWB(fr, fg, fb)
	h.A = fa
}

func (h HWB) String() string {
	return fmt.Sprintf("hwb(%g, %g%%, %g%%)", h.H, h.W, h.B)
}

// RGBToHWB converts normalized sRGB values (0-1) to hue (0-360),
// whiteness (0-100), and blackness (0-100). Achromatic input yields
// hue 0.
func RGBToHWB(r, g, b float32) (h, w, bb float32) {
	max, min := maxMin(r, g, b)
	w = min * 100
	bb = (1 - max) * 100
	if max == min {
		return 0, w, bb
	}
	h = hueOf(r, g, b, max, max-min)
	return
}

// HWBToRGB converts hue (0-360), whiteness (0-100), and blackness
// (0-100) to normalized sRGB values (0-1). When whiteness plus
// blackness reaches 100 the result is the achromatic gray w/(w+b).
func HWBToRGB(h, w, b float32) (r, g, bb float32) {
	w = clampPct(w) / 100
	b = clampPct(b) / 100
	if w+b >= 1 {
		gray := w / (w + b)
		return gray, gray, gray
	}
	v := 1 - b
	s := 1 - w/v
	return HSVToRGB(h, s*100, v*100)
}
