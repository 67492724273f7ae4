// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie implements the CIE color spaces used as the reference
// backbone for perceptual color math: gamma-corrected sRGB, linear sRGB,
// XYZ (D65, 0-100), LAB, and its polar form LCH.
package cie

import "github.com/chewxy/math32"

// SRGBToLinearComp converts an sRGB gamma-corrected component (0-1)
// to linear light, using the standard piecewise function with a
// threshold of 0.04045 and gamma 2.4.
func SRGBToLinearComp(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear-light component (0-1) to the
// sRGB gamma-corrected form, using the standard piecewise function
// with a threshold of 0.0031308 and gamma 2.4.
func SRGBFromLinearComp(v float32) float32 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math32.Pow(v, 1/2.4) - 0.055
}

// SRGBToLinear converts sRGB gamma-corrected R, G, B values (0-1)
// to linear-light values (0-1).
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts linear-light R, G, B values (0-1) to
// sRGB gamma-corrected values (0-1).
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// SRGBUint8ToFloat converts 8-bit sRGB channel values to
// normalized 0-1 floats.
func SRGBUint8ToFloat(r, g, b uint8) (fr, fg, fb float32) {
	fr = float32(r) / 255
	fg = float32(g) / 255
	fb = float32(b) / 255
	return
}

// SRGBFloatToUint8 converts normalized 0-1 sRGB floats to 8-bit
// channel values, clamping and rounding.
func SRGBFloatToUint8(fr, fg, fb float32) (r, g, b uint8) {
	r = uint8(clamp01(fr)*255 + 0.5)
	g = uint8(clamp01(fg)*255 + 0.5)
	b = uint8(clamp01(fb)*255 + 0.5)
	return
}

func clamp01(v float32) float32 {
	return math32.Min(math32.Max(v, 0), 1)
}
