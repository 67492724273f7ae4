// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// sRGB to XYZ D65 matrix and its inverse (IEC 61966-2-1).

// SRGBLinToXYZ converts linear-light sRGB values (0-1) to XYZ
// coordinates on the 0-1 scale, D65 illuminant.
func SRGBLinToXYZ(rl, gl, bl float32) (x, y, z float32) {
	x = 0.4124564*rl + 0.3575761*gl + 0.1804375*bl
	y = 0.2126729*rl + 0.7151522*gl + 0.0721750*bl
	z = 0.0193339*rl + 0.1191920*gl + 0.9503041*bl
	return
}

// XYZToSRGBLin converts XYZ coordinates on the 0-1 scale (D65) to
// linear-light sRGB values. Out-of-gamut results are not clamped.
func XYZToSRGBLin(x, y, z float32) (rl, gl, bl float32) {
	rl = 3.2404542*x - 1.5371385*y - 0.4985314*z
	gl = -0.9692660*x + 1.8760108*y + 0.0415560*z
	bl = 0.0556434*x - 0.2040259*y + 1.0572252*z
	return
}

// SRGBToXYZ100 converts gamma-corrected sRGB values (0-1) to XYZ
// coordinates on the standard 0-100 scale, D65 illuminant.
func SRGBToXYZ100(r, g, b float32) (x, y, z float32) {
	x, y, z = SRGBLinToXYZ(SRGBToLinear(r, g, b))
	return 100 * x, 100 * y, 100 * z
}

// XYZ100ToSRGB converts XYZ coordinates on the 0-100 scale (D65) to
// gamma-corrected sRGB values (0-1), clamped into gamut.
func XYZ100ToSRGB(x, y, z float32) (r, g, b float32) {
	rl, gl, bl := XYZToSRGBLin(x/100, y/100, z/100)
	return SRGBFromLinear(clamp01(rl), clamp01(gl), clamp01(bl))
}
