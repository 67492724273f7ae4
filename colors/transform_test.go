// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLightenDarken(t *testing.T) {
	c := color.RGBA{24, 144, 255, 255}

	l := ToHSL(Lighten(c, 10))
	assert.InDelta(t, 64.7, l.L, 1)

	d := ToHSL(Darken(c, 10))
	assert.InDelta(t, 44.7, d.L, 1)

	// clamped at the ends
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Lighten(c, 100))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, Darken(c, 100))
}

func TestSaturateDesaturate(t *testing.T) {
	c := FromHSL(200, 50, 50)

	s := ToHSL(Saturate(c, 20))
	assert.InDelta(t, 70, s.S, 1)

	d := ToHSL(Desaturate(c, 20))
	assert.InDelta(t, 30, d.S, 1)

	// fully desaturating yields a gray
	g := Desaturate(c, 100)
	assert.Equal(t, g.R, g.G)
	assert.Equal(t, g.G, g.B)
}

func TestSpin(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}

	assert.InDelta(t, 120, ToHSL(Spin(red, 120)).H, 1)
	assert.InDelta(t, 240, ToHSL(Spin(red, -120)).H, 1)
	assert.Equal(t, red, Spin(red, 360))
}

func TestIsLightContrast(t *testing.T) {
	assert.True(t, IsLight(color.RGBA{255, 255, 255, 255}))
	assert.False(t, IsLight(color.RGBA{0, 0, 0, 255}))
	assert.True(t, IsDark(color.RGBA{0, 0, 128, 255}))

	// high-chroma brights read as light despite HSL lightness 50
	assert.True(t, IsLight(color.RGBA{255, 255, 0, 255}))
	assert.True(t, IsLight(color.RGBA{0, 255, 255, 255}))
	assert.False(t, IsLight(color.RGBA{0, 0, 255, 255}))

	assert.Equal(t, color.RGBA{0, 0, 0, 255}, ContrastColor(color.RGBA{255, 255, 0, 255}))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, ContrastColor(color.RGBA{128, 0, 0, 255}))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, ContrastColor(color.RGBA{0, 0, 255, 255}))
}
