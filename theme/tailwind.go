// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"image/color"

	"github.com/seedtone/seedtone/colors"
)

// tailwindSteps is the fixed, hand-tuned lightness table for the
// Tailwind-style scale, from the near-white 50 step down to the
// near-black 1000 step.
var tailwindSteps = []struct {
	label     string
	lightness float32
}{
	{"50", 98},
	{"100", 95},
	{"200", 90},
	{"300", 82},
	{"400", 70},
	{"500", 60},
	{"600", 49},
	{"700", 39},
	{"800", 29},
	{"900", 21},
	{"950", 14},
	{"1000", 9},
}

// Tailwind produces the fixed-curve Tailwind-style palette: the seed's
// hue and saturation at each step's hand-tuned lightness. With
// preserveSeed the step whose table lightness is closest to the
// seed's own lightness is overwritten with the exact seed.
func Tailwind(seed color.RGBA, preserveSeed bool) Palette {
	hsl := colors.ToHSL(seed)

	p := make(Palette, len(tailwindSteps))
	for i, st := range tailwindSteps {
		p[i] = Step{
			Label: st.label,
			Color: colors.FromHSL(hsl.H, hsl.S, st.lightness),
		}
	}

	if preserveSeed {
		best := 0
		bestD := float32(-1)
		for i, st := range tailwindSteps {
			d := st.lightness - hsl.L
			if d < 0 {
				d = -d
			}
			if bestD < 0 || d < bestD {
				best = i
				bestD = d
			}
		}
		p[best].Color = seed
	}
	return p
}
