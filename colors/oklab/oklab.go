// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklab implements Björn Ottosson's OKLAB perceptual color
// space and its cylindrical form OKLCH. L is unitless in roughly 0-1;
// a and b are roughly -0.4..0.4.
package oklab

import (
	"github.com/chewxy/math32"

	"github.com/seedtone/seedtone/colors/cie"
)

// LinearToOKLAB converts linear-light sRGB values (0-1) to OKLAB,
// via the LMS cone matrices with cube-root nonlinearity.
func LinearToOKLAB(rl, gl, bl float32) (l, a, b float32) {
	lm := 0.4122214708*rl + 0.5363325363*gl + 0.0514459929*bl
	mm := 0.2119034982*rl + 0.6806995451*gl + 0.1073969566*bl
	sm := 0.0883024619*rl + 0.2817188376*gl + 0.6299787005*bl

	lp := math32.Cbrt(lm)
	mp := math32.Cbrt(mm)
	sp := math32.Cbrt(sm)

	l = 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	a = 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	b = 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp
	return
}

// OKLABToLinear converts OKLAB values to linear-light sRGB.
// Out-of-gamut results are not clamped.
func OKLABToLinear(l, a, b float32) (rl, gl, bl float32) {
	lp := l + 0.3963377774*a + 0.2158037573*b
	mp := l - 0.1055613458*a - 0.0638541728*b
	sp := l - 0.0894841775*a - 1.2914855480*b

	lm := lp * lp * lp
	mm := mp * mp * mp
	sm := sp * sp * sp

	rl = 4.0767416621*lm - 3.3077115913*mm + 0.2309699292*sm
	gl = -1.2684380046*lm + 2.6097574011*mm - 0.3413193965*sm
	bl = -0.0041960863*lm - 0.7034186147*mm + 1.7076147010*sm
	return
}

// SRGBToOKLAB converts gamma-corrected sRGB values (0-1) to OKLAB.
func SRGBToOKLAB(r, g, b float32) (l, aa, bb float32) {
	return LinearToOKLAB(cie.SRGBToLinear(r, g, b))
}

// OKLABToSRGB converts OKLAB values to gamma-corrected sRGB values
// (0-1), clamped into gamut.
func OKLABToSRGB(l, a, b float32) (r, gg, bb float32) {
	rl, gl, bl := OKLABToLinear(l, a, b)
	rl = math32.Min(math32.Max(rl, 0), 1)
	gl = math32.Min(math32.Max(gl, 0), 1)
	bl = math32.Min(math32.Max(bl, 0), 1)
	return cie.SRGBFromLinear(rl, gl, bl)
}

// OKLABToOKLCH converts OKLAB to its cylindrical form, with the hue
// angle normalized into [0, 360).
func OKLABToOKLCH(l, a, b float32) (ll, c, h float32) {
	ll = l
	c = math32.Hypot(a, b)
	h = math32.Atan2(b, a) * 180 / math32.Pi
	if h < 0 {
		h += 360
	}
	return
}

// OKLCHToOKLAB converts cylindrical OKLCH back to OKLAB.
func OKLCHToOKLAB(l, c, h float32) (ll, a, b float32) {
	hr := h * math32.Pi / 180
	return l, c * math32.Cos(hr), c * math32.Sin(hr)
}
