// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
)

// AsHex returns the color as a lowercase hex string: #rrggbb, or
// #rrggbbaa when the color is not fully opaque.
func AsHex(c color.RGBA) string {
	if c.A < 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// AsRGBString returns the color as a functional rgb() string, or
// rgba() when the color is not fully opaque.
func AsRGBString(c color.RGBA) string {
	if c.A < 255 {
		return fmt.Sprintf("rgba(%d, %d, %d, %.3g)", c.R, c.G, c.B, float32(c.A)/255)
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// AsHSLString returns the color as a functional hsl() string with
// hue, saturation, and lightness rounded to integers, or hsla()
// when the color is not fully opaque.
func AsHSLString(c color.RGBA) string {
	h := ToHSL(c)
	if c.A < 255 {
		return fmt.Sprintf("hsla(%.0f, %.0f%%, %.0f%%, %.3g)", h.H, h.S, h.L, h.A)
	}
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h.H, h.S, h.L)
}
