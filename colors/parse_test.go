// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedtone/seedtone/colors/hsx"
)

func TestFromHex(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#1890ff", color.RGBA{24, 144, 255, 255}},
		{"#1890FF", color.RGBA{24, 144, 255, 255}},
		{"1890ff", color.RGBA{24, 144, 255, 255}},
		{"#18f", color.RGBA{17, 136, 255, 255}},
		{"#18f8", color.RGBA{17, 136, 255, 136}},
		{"#1890ff80", color.RGBA{24, 144, 255, 128}},
		{" #1890ff ", color.RGBA{24, 144, 255, 255}},
	}
	for _, c := range cases {
		got, err := FromHex(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	for _, bad := range []string{"", "#12345", "#1890fg", "#1890ff8", "zzz"} {
		_, err := FromHex(bad)
		assert.ErrorIs(t, err, ErrInvalidColor, bad)
	}
}

func TestFromString(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#1890ff", color.RGBA{24, 144, 255, 255}},
		{"rgb(24, 144, 255)", color.RGBA{24, 144, 255, 255}},
		{"rgb(24 144 255)", color.RGBA{24, 144, 255, 255}},
		{"rgba(24, 144, 255, 0.5)", color.RGBA{24, 144, 255, 128}},
		{"rgba(24, 144, 255, 50%)", color.RGBA{24, 144, 255, 128}},
		{"rgb(50%, 0%, 100%)", color.RGBA{128, 0, 255, 255}},
		{"rgb(300, -20, 255)", color.RGBA{255, 0, 255, 255}},
		{"dodgerblue", color.RGBA{30, 144, 255, 255}},
		{"DodgerBlue", color.RGBA{30, 144, 255, 255}},
		{"transparent", color.RGBA{0, 0, 0, 0}},
		{"hsl(0, 0%, 100%)", color.RGBA{255, 255, 255, 255}},
		{"hsl(240, 100%, 50%)", color.RGBA{0, 0, 255, 255}},
		{"hsla(240, 100%, 50%, 0.5)", color.RGBA{0, 0, 255, 128}},
	}
	for _, c := range cases {
		got, err := FromString(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestFromStringHSLRoundTrip(t *testing.T) {
	got, err := FromString("hsl(209, 91%, 55%)")
	require.NoError(t, err)
	h := ToHSL(got)
	assert.InDelta(t, 209, h.H, 1)
	assert.InDelta(t, 91, h.S, 1)
	assert.InDelta(t, 55, h.L, 1)
}

func TestFromStringErrors(t *testing.T) {
	bad := []string{
		"",
		"   ",
		"notacolor",
		"rgb(1, 2)",
		"rgb(1, 2, 3, 4, 5)",
		"rgba(1, 2, 3)",
		"hsl(1, 2%, 3%, 4%, 5%)",
		"rgb(a, b, c)",
		"rgb(1, 2, 3",
		"hsv(1, 2%, 3%)",
	}
	for _, s := range bad {
		_, err := FromString(s)
		assert.ErrorIs(t, err, ErrInvalidColor, s)
	}
}

func TestFromAny(t *testing.T) {
	want := color.RGBA{24, 144, 255, 255}

	got, err := FromAny("#1890ff")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = FromAny(want)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = FromAny([]int{24, 144, 255})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = FromAny([]float64{24, 144, 255, 0.5})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{24, 144, 255, 128}, got)

	got, err = FromAny([]float32{300, -5, 255})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 255, 255}, got)

	// the RGB record clamps and is always opaque
	got, err = FromAny(RGB{R: 300, G: 144, B: 255})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 144, 255, 255}, got)

	// HSL/HSV/HWB records resolve through color.Color
	got, err = FromAny(hsx.NewHSV(240, 100, 100))
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, got)

	got, err = FromAny(hsx.NewHWB(240, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, got)

	got, err = FromAny(color.NRGBA{24, 144, 255, 255})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFromAnyErrors(t *testing.T) {
	for _, v := range []any{
		nil,
		42,
		[]int{1, 2},
		[]float64{1, 2, 3, 4, 5},
		struct{ X int }{1},
	} {
		_, err := FromAny(v)
		assert.ErrorIs(t, err, ErrInvalidColor)
	}
}
