// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Reference pairs and expected CIEDE2000 values from Sharma, Wu &
// Dalal, "The CIEDE2000 Color-Difference Formula: Implementation
// Notes, Supplementary Test Data, and Mathematical Observations".
var sharmaPairs = []struct {
	l1, a1, b1 float32
	l2, a2, b2 float32
	want       float32
}{
	{50, 2.6772, -79.7751, 50, 0, -82.7485, 2.0425},
	{50, 3.1571, -77.2803, 50, 0, -82.7485, 2.8615},
	{50, 2.8361, -74.0200, 50, 0, -82.7485, 3.4412},
	{50, -1.3802, -84.2814, 50, 0, -82.7485, 1.0000},
	{50, -1.1848, -84.8006, 50, 0, -82.7485, 1.0000},
	{50, -0.9009, -85.5211, 50, 0, -82.7485, 1.0000},
	{50, 0, 0, 50, -1, 2, 2.3669},
	{50, -1, 2, 50, 0, 0, 2.3669},
	{50, 2.49, -0.001, 50, -2.49, 0.0009, 7.1792},
	{50, 2.49, -0.001, 50, -2.49, 0.0010, 7.1792},
	{50, 2.49, -0.001, 50, -2.49, 0.0011, 7.2195},
	{50, 2.49, -0.001, 50, -2.49, 0.0012, 7.2195},
	{50, -0.001, 2.49, 50, 0.0009, -2.49, 4.8045},
	{50, -0.001, 2.49, 50, 0.0010, -2.49, 4.8045},
	{50, -0.001, 2.49, 50, 0.0011, -2.49, 4.7461},
	{50, 2.5, 0, 50, 0, -2.5, 4.3065},
	{50, 2.5, 0, 73, 25, -18, 27.1492},
	{50, 2.5, 0, 61, -5, 29, 22.8977},
	{50, 2.5, 0, 56, -27, -3, 31.9030},
	{50, 2.5, 0, 58, 24, 15, 19.4535},
	{50, 2.5, 0, 50, 3.1736, 0.5854, 1.0000},
	{50, 2.5, 0, 50, 3.2972, 0, 1.0000},
	{50, 2.5, 0, 50, 1.8634, 0.5757, 1.0000},
	{50, 2.5, 0, 50, 3.2592, 0.3350, 1.0000},
	{60.2574, -34.0099, 36.2677, 60.4626, -34.1751, 39.4387, 1.2644},
	{63.0109, -31.0961, -5.8663, 62.8187, -29.7946, -4.0864, 1.2630},
	{61.2901, 3.7196, -5.3901, 61.4292, 2.2480, -4.9620, 1.8731},
	{35.0831, -44.1164, 3.7933, 35.0232, -40.0716, 1.5901, 1.8645},
	{22.7233, 20.0904, -46.6940, 23.0331, 14.9730, -42.5619, 2.0373},
	{36.4612, 47.8580, 18.3852, 36.2715, 50.5065, 21.2231, 1.4146},
	{90.8027, -2.0831, 1.4410, 91.1528, -1.6435, 0.0447, 1.4441},
	{90.9257, -0.5406, -0.9208, 88.6381, -0.8985, -0.7239, 1.5381},
	{6.7747, -0.2908, -2.4247, 5.8714, -0.0985, -2.2286, 0.6377},
	{2.0776, 0.0795, -1.1350, 0.9033, -0.0636, -0.5514, 0.9082},
}

func TestCIEDE2000LabSharma(t *testing.T) {
	for i, p := range sharmaPairs {
		got := CIEDE2000Lab(p.l1, p.a1, p.b1, p.l2, p.a2, p.b2)
		assert.InDelta(t, p.want, got, 0.01, "pair %d", i+1)
	}
}

func TestCIEDE2000Symmetric(t *testing.T) {
	for _, p := range sharmaPairs {
		ab := CIEDE2000Lab(p.l1, p.a1, p.b1, p.l2, p.a2, p.b2)
		ba := CIEDE2000Lab(p.l2, p.a2, p.b2, p.l1, p.a1, p.b1)
		assert.InDelta(t, ab, ba, 1e-4)
	}
}

func TestIdenticalColorsAreZero(t *testing.T) {
	c := color.RGBA{24, 144, 255, 255}
	assert.Zero(t, CIE76(c, c))
	assert.Zero(t, CIE94(c, c, GraphicArts))
	assert.Zero(t, CIE94(c, c, Textiles))
	assert.Zero(t, CIEDE2000(c, c))
	assert.Zero(t, CMC(c, c, 2, 1))
	assert.Zero(t, OKLAB(c, c))
}

func TestCIE76Lab(t *testing.T) {
	assert.InDelta(t, 5, CIE76Lab(50, 0, 0, 53, 4, 0), 1e-4)
	assert.InDelta(t, 1, CIE76Lab(50, 0, 0, 50, 0, 1), 1e-4)
}

func TestCIE94Lab(t *testing.T) {
	// hand-computed GraphicArts value for the first Sharma pair
	got := CIE94Lab(50, 2.6772, -79.7751, 50, 0, -82.7485, GraphicArts)
	assert.InDelta(t, 1.39504, got, 0.001)

	// Textiles halves the lightness contribution
	ga := CIE94Lab(40, 10, 10, 60, 10, 10, GraphicArts)
	tx := CIE94Lab(40, 10, 10, 60, 10, 10, Textiles)
	assert.InDelta(t, ga/2, tx, 1e-4)

	// ΔE94 never exceeds ΔE76 for the GraphicArts weights
	for _, p := range sharmaPairs {
		e94 := CIE94Lab(p.l1, p.a1, p.b1, p.l2, p.a2, p.b2, GraphicArts)
		e76 := CIE76Lab(p.l1, p.a1, p.b1, p.l2, p.a2, p.b2)
		assert.LessOrEqual(t, e94, e76+1e-4)
	}
}

func TestCMC(t *testing.T) {
	// asymmetric: the reference drives the S weights
	ref := color.RGBA{245, 34, 45, 255}
	smp := color.RGBA{82, 196, 26, 255}
	assert.NotEqual(t, CMC(ref, smp, 2, 1), CMC(smp, ref, 2, 1))

	// a 2:1 lightness weight shrinks pure lightness differences
	// relative to 1:1
	d21 := CMCLab(40, 10, 10, 60, 10, 10, 2, 1)
	d11 := CMCLab(40, 10, 10, 60, 10, 10, 1, 1)
	assert.Less(t, d21, d11)
	assert.InDelta(t, d11/2, d21, 1e-4)

	assert.Positive(t, CMC(ref, smp, 2, 1))
}

func TestOKLABScale(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}

	// the full lightness axis spans ~1
	assert.InDelta(t, 1, OKLAB(white, black), 0.01)

	d := OKLAB(red, blue)
	assert.Greater(t, d, float32(0.2))
	assert.Less(t, d, float32(1.0))
}

func TestDistinguishable(t *testing.T) {
	c := color.RGBA{24, 144, 255, 255}
	assert.False(t, Distinguishable(c, c))
	assert.False(t, Distinguishable(c, color.RGBA{25, 144, 255, 255}))
	assert.True(t, Distinguishable(c, color.RGBA{245, 34, 45, 255}))

	assert.True(t, DistinguishableAt(c, color.RGBA{25, 144, 255, 255}, 0))
}

func TestInterpretationBands(t *testing.T) {
	// neighboring 8-bit values are near-imperceptible
	small := CIEDE2000(color.RGBA{100, 100, 100, 255}, color.RGBA{101, 101, 101, 255})
	assert.Less(t, small, float32(1))

	// complementary hues are distinct
	big := CIEDE2000(color.RGBA{255, 0, 0, 255}, color.RGBA{0, 255, 255, 255})
	assert.Greater(t, big, float32(10))
}
