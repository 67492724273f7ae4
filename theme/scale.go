// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"

	"github.com/chewxy/math32"

	"github.com/seedtone/seedtone/colors"
)

// ErrStepCount is returned when a palette is requested with fewer
// than two steps.
var ErrStepCount = errors.New("palette step count must be at least 2")

// Step is one palette entry: a label ("1".."12", or "50".."1000"
// for the Tailwind variant) and its color.
type Step struct {
	Label string
	Color color.RGBA
}

// Palette is an ordered sequence of steps from lightest to darkest
// within its mode.
type Palette []Step

// Hex returns the palette colors as hex strings in step order.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, s := range p {
		out[i] = colors.AsHex(s.Color)
	}
	return out
}

// Get returns the color for the given step label.
func (p Palette) Get(label string) (color.RGBA, bool) {
	for _, s := range p {
		if s.Label == label {
			return s.Color, true
		}
	}
	return color.RGBA{}, false
}

// scaleBounds are the saturation/value endpoints the chromatic sweep
// interpolates toward on each side of the center step.
type scaleBounds struct {
	satFloor float32 // lightest step saturation
	valCeil  float32 // lightest step value
	satCeil  float32 // darkest step saturation
	valFloor float32 // darkest step value
}

// Dark-mode bounds are compressed versions of the light-mode bounds,
// not an inversion: highlights stay dimmer and shadows stay deeper.
var (
	lightScale = scaleBounds{satFloor: 3, valCeil: 98, satCeil: 95, valFloor: 18}
	darkScale  = scaleBounds{satFloor: 3, valCeil: 85, satCeil: 90, valFloor: 12}
)

// ScaleOptions control chromatic palette generation.
type ScaleOptions struct {

	// Steps is the palette length; 0 uses 12.
	Steps int

	// Dark selects the dark-mode bounds and reverses the step order
	// so low steps sit at the dim end, mirroring how the palette is
	// consumed in a dark UI.
	Dark bool

	// PreserveSeed overwrites the step whose target lightness is
	// closest to the seed's own lightness with the exact seed value.
	PreserveSeed bool
}

// Chromatic produces an ordered N-step palette from the seed by
// holding hue constant and sweeping saturation and value away from a
// center step that represents the seed itself. The center step is
// steps/2+1 (7 for the common 12-step scale).
func Chromatic(seed color.RGBA, opts ScaleOptions) (Palette, error) {
	n := opts.Steps
	if n == 0 {
		n = 12
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrStepCount, n)
	}
	bounds := lightScale
	if opts.Dark {
		bounds = darkScale
	}
	center := n/2 + 1
	hsv := colors.ToHSV(seed)

	cs := make([]color.RGBA, n)
	for i := 1; i <= n; i++ {
		s, v := hsv.S, hsv.V
		switch {
		case i < center:
			t := float32(center-i) / float32(center-1)
			s += (bounds.satFloor - hsv.S) * t
			v += (bounds.valCeil - hsv.V) * t
		case i > center:
			t := float32(i-center) / float32(n-center)
			s += (bounds.satCeil - hsv.S) * t
			v += (bounds.valFloor - hsv.V) * t
		}
		cs[i-1] = colors.FromHSV(hsv.H, s, v)
	}

	if opts.PreserveSeed {
		preserveSeed(cs, seed)
	}
	if opts.Dark {
		reverse(cs)
	}
	return numbered(cs), nil
}

// preserveSeed overwrites the step whose generated lightness is
// numerically closest to the seed's own lightness with the exact
// seed, guaranteeing the seed is reproducible at one index.
func preserveSeed(cs []color.RGBA, seed color.RGBA) {
	seedL := colors.ToHSL(seed).L
	best := 0
	bestD := float32(math32.MaxFloat32)
	for i, c := range cs {
		if d := math32.Abs(colors.ToHSL(c).L - seedL); d < bestD {
			best = i
			bestD = d
		}
	}
	cs[best] = seed
}

func reverse(cs []color.RGBA) {
	for i, j := 0, len(cs)-1; i < j; i, j = i+1, j-1 {
		cs[i], cs[j] = cs[j], cs[i]
	}
}

func numbered(cs []color.RGBA) Palette {
	p := make(Palette, len(cs))
	for i, c := range cs {
		p[i] = Step{Label: strconv.Itoa(i + 1), Color: c}
	}
	return p
}
