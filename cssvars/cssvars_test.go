// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cssvars

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedtone/seedtone/theme"
)

func testTheme(t *testing.T) theme.Theme {
	t.Helper()
	th, err := theme.New(color.RGBA{24, 144, 255, 255}, theme.Options{PreserveSeed: true})
	require.NoError(t, err)
	return th
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"css": CSS, "CSS": CSS, "": CSS,
		"scss": SCSS, "less": Less,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("sass")
	assert.Error(t, err)
}

func TestEmitCSS(t *testing.T) {
	out := Emit(testTheme(t), Options{})

	assert.True(t, strings.HasPrefix(out, ":root {\n"))
	assert.Contains(t, out, "\n.dark {\n")
	assert.Contains(t, out, "  --color-primary-7: #1890ff;\n")
	assert.Contains(t, out, "--color-gray-14: ")
	assert.NotContains(t, out, "-info-")

	// light and dark blocks both carry a full primary run
	assert.Equal(t, 2, strings.Count(out, "--color-primary-1: "))
}

func TestEmitCSSCustomization(t *testing.T) {
	out := Emit(testTheme(t), Options{Prefix: "st", DarkSelector: "[data-theme=dark]"})
	assert.Contains(t, out, "--st-primary-7: #1890ff;")
	assert.Contains(t, out, "[data-theme=dark] {\n")
	assert.NotContains(t, out, "--color-")
}

func TestEmitSCSS(t *testing.T) {
	out := Emit(testTheme(t), Options{Format: SCSS})
	assert.Contains(t, out, "$color-primary-7: #1890ff;\n")
	assert.Contains(t, out, "$color-dark-primary-1: ")
	assert.NotContains(t, out, ":root")
	assert.NotContains(t, out, "--")
}

func TestEmitLess(t *testing.T) {
	out := Emit(testTheme(t), Options{Format: Less})
	assert.Contains(t, out, "@color-primary-7: #1890ff;\n")
	assert.Contains(t, out, "@color-dark-primary-1: ")
	assert.NotContains(t, out, "$")
}

func TestEmitWithInfo(t *testing.T) {
	th, err := theme.New(color.RGBA{24, 144, 255, 255}, theme.Options{WithInfo: true})
	require.NoError(t, err)
	out := Emit(th, Options{})
	assert.Contains(t, out, "--color-info-1: ")
}
