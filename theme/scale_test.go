// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedtone/seedtone/colors"
)

func TestChromaticDefaults(t *testing.T) {
	p, err := Chromatic(seedBlue, ScaleOptions{})
	require.NoError(t, err)
	require.Len(t, p, 12)

	for i, s := range p {
		assert.Equal(t, strconv.Itoa(i+1), s.Label)
		assert.Equal(t, uint8(255), s.Color.A)
	}
}

func TestChromaticStepCount(t *testing.T) {
	for _, n := range []int{2, 5, 9, 16} {
		p, err := Chromatic(seedBlue, ScaleOptions{Steps: n})
		require.NoError(t, err)
		assert.Len(t, p, n)
	}

	_, err := Chromatic(seedBlue, ScaleOptions{Steps: 1})
	assert.ErrorIs(t, err, ErrStepCount)
	_, err = Chromatic(seedBlue, ScaleOptions{Steps: -3})
	assert.ErrorIs(t, err, ErrStepCount)
}

func TestChromaticCenterIsSeed(t *testing.T) {
	p, err := Chromatic(seedBlue, ScaleOptions{})
	require.NoError(t, err)

	// the center step (7 of 12) carries the seed's own HSV values
	c, ok := p.Get("7")
	require.True(t, ok)
	assert.InDelta(t, seedBlue.R, c.R, 1)
	assert.InDelta(t, seedBlue.G, c.G, 1)
	assert.InDelta(t, seedBlue.B, c.B, 1)
}

func TestChromaticLightOrder(t *testing.T) {
	p, err := Chromatic(seedBlue, ScaleOptions{})
	require.NoError(t, err)

	// lightness decreases monotonically from step 1 to step 12
	prev := colors.ToHSL(p[0].Color).L
	for _, s := range p[1:] {
		l := colors.ToHSL(s.Color).L
		assert.Less(t, l, prev, "step %s", s.Label)
		prev = l
	}
}

func TestChromaticHoldsHue(t *testing.T) {
	p, err := Chromatic(seedBlue, ScaleOptions{})
	require.NoError(t, err)

	seedH := colors.ToHSV(seedBlue).H
	for _, s := range p {
		h := colors.ToHSV(s.Color)
		if h.S < 5 {
			continue // hue is unstable near the neutral axis
		}
		assert.InDelta(t, seedH, h.H, 2, "step %s", s.Label)
	}
}

func TestChromaticPreserveSeed(t *testing.T) {
	p, err := Chromatic(seedBlue, ScaleOptions{PreserveSeed: true})
	require.NoError(t, err)

	found := 0
	for _, s := range p {
		if s.Color == seedBlue {
			found++
			assert.Equal(t, "7", s.Label)
		}
	}
	assert.Equal(t, 1, found)
}

func TestChromaticDarkReversal(t *testing.T) {
	light, err := Chromatic(seedBlue, ScaleOptions{})
	require.NoError(t, err)
	dark, err := Chromatic(seedBlue, ScaleOptions{Dark: true})
	require.NoError(t, err)
	require.Len(t, dark, 12)

	// after reversal the seed-valued center sits at step 6
	seedH := colors.ToHSV(seedBlue)
	c, ok := dark.Get("6")
	require.True(t, ok)
	got := colors.ToHSV(c)
	assert.InDelta(t, seedH.H, got.H, 1)
	assert.InDelta(t, seedH.S, got.S, 1)
	assert.InDelta(t, seedH.V, got.V, 1)

	// the order is reversed: step 1 sits at the dim end
	assert.Less(t, colors.ToHSL(dark[0].Color).L, colors.ToHSL(dark[11].Color).L)

	// dark-mode highlights stay dimmer than light-mode ones
	assert.Less(t,
		colors.ToHSL(dark[11].Color).L,
		colors.ToHSL(light[0].Color).L)
	assert.NotEqual(t, light[0].Color, dark[0].Color)
}

func TestPaletteHelpers(t *testing.T) {
	p, err := Chromatic(seedBlue, ScaleOptions{PreserveSeed: true})
	require.NoError(t, err)

	hexes := p.Hex()
	require.Len(t, hexes, 12)
	assert.Equal(t, "#1890ff", hexes[6])

	_, ok := p.Get("13")
	assert.False(t, ok)
}
