// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedtone/seedtone/colors"
)

func TestTailwindLabels(t *testing.T) {
	p := Tailwind(seedBlue, false)
	require.Len(t, p, 12)

	want := []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950", "1000"}
	for i, s := range p {
		assert.Equal(t, want[i], s.Label)
	}
}

func TestTailwindCurve(t *testing.T) {
	p := Tailwind(seedBlue, false)
	hsl := colors.ToHSL(seedBlue)

	// every step holds the seed hue and saturation at the table
	// lightness
	c, ok := p.Get("50")
	require.True(t, ok)
	got := colors.ToHSL(c)
	assert.InDelta(t, 98, got.L, 1)

	c, ok = p.Get("1000")
	require.True(t, ok)
	got = colors.ToHSL(c)
	assert.InDelta(t, 9, got.L, 1)

	c, ok = p.Get("500")
	require.True(t, ok)
	got = colors.ToHSL(c)
	assert.InDelta(t, hsl.H, got.H, 1)
	assert.InDelta(t, hsl.S, got.S, 1)
	assert.InDelta(t, 60, got.L, 1)
}

func TestTailwindPreserveSeed(t *testing.T) {
	p := Tailwind(seedBlue, true)

	// the seed's lightness (~55) is closest to the 500 step (60)
	c, ok := p.Get("500")
	require.True(t, ok)
	assert.Equal(t, seedBlue, c)

	found := 0
	for _, s := range p {
		if s.Color == seedBlue {
			found++
		}
	}
	assert.Equal(t, 1, found)
}

func TestTailwindDarkSeed(t *testing.T) {
	// a near-black seed preserves at the bottom of the table
	seed := colors.FromHSL(209, 80, 10)
	p := Tailwind(seed, true)
	c, ok := p.Get("1000")
	require.True(t, ok)
	assert.Equal(t, seed, c)
}
