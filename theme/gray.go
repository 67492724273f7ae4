// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"fmt"
	"image/color"

	"github.com/seedtone/seedtone/colors"
)

// grayCurve anchors the gray family's lightness sweep: the center
// step sits at center, with the sides running linearly to max and min.
type grayCurve struct {
	max, center, min float32
}

var (
	lightGray = grayCurve{max: 98, center: 50, min: 15}
	darkGray  = grayCurve{max: 85, center: 35, min: 12}
)

// GrayOptions control gray-family palette generation.
type GrayOptions struct {

	// Steps is the palette length; 0 uses 14.
	Steps int

	// Dark selects the dark-mode lightness curve.
	Dark bool

	// MixRatio scales how much of the seed's saturation tints the
	// grays; 0 produces pure neutrals.
	MixRatio float32

	// PreserveSeed overwrites the step whose target lightness is
	// closest to the seed's own lightness with the exact seed value.
	PreserveSeed bool
}

// Gray produces the N-step gray family for the seed. Lightness
// follows a fixed curve independent of the seed (anchored at the
// center step, steps/2+1, which is 8 for the common 14-step scale);
// saturation is a triangular falloff peaking at the center with a
// magnitude scaled by MixRatio, so the grays carry a faint brand
// tint that fades toward both ends.
func Gray(seed color.RGBA, opts GrayOptions) (Palette, error) {
	n := opts.Steps
	if n == 0 {
		n = 14
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrStepCount, n)
	}
	curve := lightGray
	if opts.Dark {
		curve = darkGray
	}
	center := n/2 + 1
	hsl := colors.ToHSL(seed)
	peak := clampf(hsl.S*opts.MixRatio*0.3, 3, 8)
	if opts.MixRatio <= 0 {
		peak = 0
	}
	maxDist := float32(center - 1)
	if d := float32(n - center); d > maxDist {
		maxDist = d
	}

	cs := make([]color.RGBA, n)
	for i := 1; i <= n; i++ {
		l := curve.center
		switch {
		case i < center:
			l += (curve.max - curve.center) * float32(center-i) / float32(center-1)
		case i > center:
			l += (curve.min - curve.center) * float32(i-center) / float32(n-center)
		}
		dist := float32(i - center)
		if dist < 0 {
			dist = -dist
		}
		s := peak * (1 - dist/maxDist)
		cs[i-1] = colors.FromHSL(hsl.H, s, l)
	}

	if opts.PreserveSeed {
		preserveSeed(cs, seed)
	}
	return numbered(cs), nil
}
