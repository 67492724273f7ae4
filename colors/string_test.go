// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#1890ff", AsHex(color.RGBA{24, 144, 255, 255}))
	assert.Equal(t, "#1890ff80", AsHex(color.RGBA{24, 144, 255, 128}))
	assert.Equal(t, "#000000", AsHex(color.RGBA{0, 0, 0, 255}))
}

func TestAsRGBString(t *testing.T) {
	assert.Equal(t, "rgb(24, 144, 255)", AsRGBString(color.RGBA{24, 144, 255, 255}))
	assert.Equal(t, "rgba(24, 144, 255, 0.502)", AsRGBString(color.RGBA{24, 144, 255, 128}))
}

func TestAsHSLString(t *testing.T) {
	assert.Equal(t, "hsl(209, 100%, 55%)", AsHSLString(color.RGBA{24, 144, 255, 255}))
	assert.Equal(t, "hsl(0, 0%, 100%)", AsHSLString(color.RGBA{255, 255, 255, 255}))
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#1890ff", "#f5222d", "#52c41a", "#000000", "#ffffff", "#1890ff80"} {
		c, err := FromHex(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, AsHex(c))
	}
}
