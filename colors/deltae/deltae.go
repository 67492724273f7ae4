// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deltae quantifies perceptual difference between colors.
// It implements the CIE ΔE76, ΔE94, CIEDE2000, and CMC(l:c) color
// difference formulas, plus Euclidean distance in OKLAB, and
// palette-level analytics built on them.
//
// Interpretation bands for all ΔE values: 0 identical; <1
// imperceptible; 1-2 barely perceptible; 2-10 visible at a glance;
// >10 distinct colors.
package deltae

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/seedtone/seedtone/colors"
)

// JND is the default just-noticeable-difference threshold for
// CIEDE2000, below which two colors read as the same.
const JND float32 = 2.3

// Application selects the parametric weighting profile for [CIE94].
type Application int

const (
	// GraphicArts uses kL=1, K1=0.045, K2=0.015.
	GraphicArts Application = iota

	// Textiles uses kL=2, K1=0.048, K2=0.014.
	Textiles
)

// CIE76 returns the ΔE76 difference: Euclidean distance in LAB.
func CIE76(c1, c2 color.RGBA) float32 {
	l1, a1, b1 := colors.ToLAB(c1)
	l2, a2, b2 := colors.ToLAB(c2)
	return CIE76Lab(l1, a1, b1, l2, a2, b2)
}

// CIE76Lab is [CIE76] on raw LAB coordinates.
func CIE76Lab(l1, a1, b1, l2, a2, b2 float32) float32 {
	dl := l1 - l2
	da := a1 - a2
	db := b1 - b2
	return math32.Sqrt(dl*dl + da*da + db*db)
}

// CIE94 returns the ΔE94 difference: a weighted Euclidean distance
// in LAB with tuning constants selected by the application profile.
func CIE94(c1, c2 color.RGBA, app Application) float32 {
	l1, a1, b1 := colors.ToLAB(c1)
	l2, a2, b2 := colors.ToLAB(c2)
	return CIE94Lab(l1, a1, b1, l2, a2, b2, app)
}

// CIE94Lab is [CIE94] on raw LAB coordinates.
func CIE94Lab(l1, a1, b1, l2, a2, b2 float32, app Application) float32 {
	kl, k1, k2 := float32(1), float32(0.045), float32(0.015)
	if app == Textiles {
		kl, k1, k2 = 2, 0.048, 0.014
	}
	dl := l1 - l2
	cc1 := math32.Hypot(a1, b1)
	cc2 := math32.Hypot(a2, b2)
	dc := cc1 - cc2
	da := a1 - a2
	db := b1 - b2
	dh2 := da*da + db*db - dc*dc
	if dh2 < 0 {
		dh2 = 0
	}
	sc := 1 + k1*cc1
	sh := 1 + k2*cc1
	tl := dl / kl
	tc := dc / sc
	return math32.Sqrt(tl*tl + tc*tc + dh2/(sh*sh))
}

// CIEDE2000 returns the CIEDE2000 difference, the most accurate of
// the CIE formulas. It is symmetric in its two arguments.
func CIEDE2000(c1, c2 color.RGBA) float32 {
	l1, a1, b1 := colors.ToLAB(c1)
	l2, a2, b2 := colors.ToLAB(c2)
	return CIEDE2000Lab(l1, a1, b1, l2, a2, b2)
}

// pow25to7 is 25^7, used by the CIEDE2000 chroma compensation.
const pow25to7 float32 = 6103515625

// CIEDE2000Lab is [CIEDE2000] on raw LAB coordinates, following
// the Sharma, Wu & Dalal formulation.
func CIEDE2000Lab(l1, a1, b1, l2, a2, b2 float32) float32 {
	cc1 := math32.Hypot(a1, b1)
	cc2 := math32.Hypot(a2, b2)
	cm := (cc1 + cc2) / 2
	cm7 := pow7(cm)
	g := 0.5 * (1 - math32.Sqrt(cm7/(cm7+pow25to7)))

	a1p := (1 + g) * a1
	a2p := (1 + g) * a2
	c1p := math32.Hypot(a1p, b1)
	c2p := math32.Hypot(a2p, b2)
	h1p := hueDeg(b1, a1p)
	h2p := hueDeg(b2, a2p)

	dl := l2 - l1
	dc := c2p - c1p
	var dhp float32
	if c1p*c2p != 0 {
		dhp = h2p - h1p
		if dhp > 180 {
			dhp -= 360
		} else if dhp < -180 {
			dhp += 360
		}
	}
	dh := 2 * math32.Sqrt(c1p*c2p) * math32.Sin(rad(dhp/2))

	lm := (l1 + l2) / 2
	cmp := (c1p + c2p) / 2
	var hm float32
	switch {
	case c1p*c2p == 0:
		hm = h1p + h2p
	case math32.Abs(h1p-h2p) <= 180:
		hm = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hm = (h1p+h2p)/2 + 180
	default:
		hm = (h1p+h2p)/2 - 180
	}

	t := 1 - 0.17*math32.Cos(rad(hm-30)) + 0.24*math32.Cos(rad(2*hm)) +
		0.32*math32.Cos(rad(3*hm+6)) - 0.20*math32.Cos(rad(4*hm-63))
	dTheta := 30 * math32.Exp(-sq((hm-275)/25))
	cmp7 := pow7(cmp)
	rc := 2 * math32.Sqrt(cmp7/(cmp7+pow25to7))
	lm50 := sq(lm - 50)
	sl := 1 + 0.015*lm50/math32.Sqrt(20+lm50)
	sc := 1 + 0.045*cmp
	sh := 1 + 0.015*cmp*t
	rt := -math32.Sin(rad(2*dTheta)) * rc

	tl := dl / sl
	tc := dc / sc
	th := dh / sh
	return math32.Sqrt(tl*tl + tc*tc + th*th + rt*tc*th)
}

// CMC returns the CMC(l:c) difference with the given lightness and
// chroma weights (2:1 is typical for acceptability, 1:1 for
// perceptibility). Unlike the CIE formulas it is asymmetric: ref is
// the reference color the S weights are computed from.
func CMC(ref, sample color.RGBA, l, c float32) float32 {
	l1, a1, b1 := colors.ToLAB(ref)
	l2, a2, b2 := colors.ToLAB(sample)
	return CMCLab(l1, a1, b1, l2, a2, b2, l, c)
}

// CMCLab is [CMC] on raw LAB coordinates.
func CMCLab(l1, a1, b1, l2, a2, b2, l, c float32) float32 {
	cc1 := math32.Hypot(a1, b1)
	cc2 := math32.Hypot(a2, b2)
	dl := l1 - l2
	dc := cc1 - cc2
	da := a1 - a2
	db := b1 - b2
	dh2 := da*da + db*db - dc*dc
	if dh2 < 0 {
		dh2 = 0
	}
	h1 := hueDeg(b1, a1)
	var t float32
	if h1 >= 164 && h1 <= 345 {
		t = 0.56 + math32.Abs(0.2*math32.Cos(rad(h1+168)))
	} else {
		t = 0.36 + math32.Abs(0.4*math32.Cos(rad(h1+35)))
	}
	c14 := sq(sq(cc1))
	f := math32.Sqrt(c14 / (c14 + 1900))
	var sl float32
	if l1 < 16 {
		sl = 0.511
	} else {
		sl = 0.040975 * l1 / (1 + 0.01765*l1)
	}
	sc := 0.0638*cc1/(1+0.0131*cc1) + 0.638
	sh := sc * (f*t + 1 - f)

	tl := dl / (l * sl)
	tc := dc / (c * sc)
	return math32.Sqrt(tl*tl + tc*tc + dh2/(sh*sh))
}

// OKLAB returns the Euclidean distance between two colors in OKLAB.
// OKLAB coordinates are unitless (~0-1), so values are roughly two
// orders of magnitude smaller than the LAB-based ΔE formulas.
func OKLAB(c1, c2 color.RGBA) float32 {
	l1, a1, b1 := colors.ToOKLAB(c1)
	l2, a2, b2 := colors.ToOKLAB(c2)
	dl := l1 - l2
	da := a1 - a2
	db := b1 - b2
	return math32.Sqrt(dl*dl + da*da + db*db)
}

// Distinguishable reports whether two colors differ by more than the
// default [JND] threshold under CIEDE2000.
func Distinguishable(c1, c2 color.RGBA) bool {
	return DistinguishableAt(c1, c2, JND)
}

// DistinguishableAt reports whether two colors differ by more than
// the given CIEDE2000 threshold.
func DistinguishableAt(c1, c2 color.RGBA, threshold float32) bool {
	return CIEDE2000(c1, c2) > threshold
}

func pow7(v float32) float32 {
	v3 := v * v * v
	return v3 * v3 * v
}

func sq(v float32) float32 {
	return v * v
}

func rad(deg float32) float32 {
	return deg * math32.Pi / 180
}

// hueDeg is atan2 in degrees normalized into [0, 360).
func hueDeg(b, a float32) float32 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math32.Atan2(b, a) * 180 / math32.Pi
	if h < 0 {
		h += 360
	}
	return h
}
