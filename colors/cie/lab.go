// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "github.com/chewxy/math32"

// D65 reference white on the 0-100 XYZ scale.
const (
	WhiteX float32 = 95.047
	WhiteY float32 = 100.0
	WhiteZ float32 = 108.883
)

// CIE LAB constants: epsilon = (6/29)^3, kappa = (29/3)^3.
const (
	labEpsilon float32 = 216.0 / 24389.0
	labKappa   float32 = 24389.0 / 27.0
)

// LABCompress applies the CIE f(t) piecewise cube-root / linear
// function to a normalized tristimulus ratio.
func LABCompress(t float32) float32 {
	if t > labEpsilon {
		return math32.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress inverts [LABCompress].
func LABUncompress(ft float32) float32 {
	t := ft * ft * ft
	if t > labEpsilon {
		return t
	}
	return (116*ft - 16) / labKappa
}

// XYZToLAB converts XYZ coordinates on the 0-100 scale (D65) to
// CIE LAB, with L in 0-100 and a, b roughly in -128..127.
func XYZToLAB(x, y, z float32) (l, a, b float32) {
	fx := LABCompress(x / WhiteX)
	fy := LABCompress(y / WhiteY)
	fz := LABCompress(z / WhiteZ)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts CIE LAB values to XYZ coordinates on the
// 0-100 scale, D65 illuminant.
func LABToXYZ(l, a, b float32) (x, y, z float32) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteX
	y = LABUncompress(fy) * WhiteY
	z = LABUncompress(fz) * WhiteZ
	return
}

// SRGBToLAB converts gamma-corrected sRGB values (0-1) to CIE LAB.
func SRGBToLAB(r, g, b float32) (l, aa, bb float32) {
	return XYZToLAB(SRGBToXYZ100(r, g, b))
}

// LABToSRGB converts CIE LAB values to gamma-corrected sRGB values
// (0-1), clamped into gamut.
func LABToSRGB(l, a, b float32) (r, gg, bb float32) {
	return XYZ100ToSRGB(LABToXYZ(l, a, b))
}

// LABToLCH converts CIE LAB to its cylindrical form LCH, with the
// hue angle normalized into [0, 360).
func LABToLCH(l, a, b float32) (ll, c, h float32) {
	ll = l
	c = math32.Hypot(a, b)
	h = math32.Atan2(b, a) * 180 / math32.Pi
	if h < 0 {
		h += 360
	}
	return
}

// LCHToLAB converts cylindrical LCH back to CIE LAB.
func LCHToLAB(l, c, h float32) (ll, a, b float32) {
	hr := h * math32.Pi / 180
	return l, c * math32.Cos(hr), c * math32.Sin(hr)
}
