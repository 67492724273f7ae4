// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import "image/color"

// Scheme is the set of role palettes for one mode (light or dark).
// Info is empty unless [Options.WithInfo] is set.
type Scheme struct {
	Primary Palette
	Success Palette
	Warning Palette
	Danger  Palette
	Info    Palette
	Gray    Palette
}

// Theme pairs the light and dark schemes derived from one seed.
type Theme struct {
	Light Scheme
	Dark  Scheme
}

// Options control full theme generation.
type Options struct {

	// Steps is the chromatic palette length; 0 uses 12.
	Steps int

	// GraySteps is the gray palette length; 0 uses 14.
	GraySteps int

	// GrayMixRatio scales the brand tint of the gray family and the
	// gray role; 0 keeps grays pure neutral.
	GrayMixRatio float32

	// PreserveSeed guarantees the seed appears exactly at one step
	// of each light-mode primary palette.
	PreserveSeed bool

	// WithInfo adds the optional info role palettes.
	WithInfo bool
}

// New derives the complete light and dark theme from one seed color:
// semantic role colors first, then one scale per role per mode.
func New(seed color.RGBA, opts Options) (Theme, error) {
	sem := DeriveSemantic(seed, SemanticOptions{
		MixGray:      opts.GrayMixRatio > 0,
		GrayMixRatio: opts.GrayMixRatio,
	})

	var t Theme
	var err error
	if t.Light, err = newScheme(sem, seed, opts, false); err != nil {
		return Theme{}, err
	}
	if t.Dark, err = newScheme(sem, seed, opts, true); err != nil {
		return Theme{}, err
	}
	return t, nil
}

func newScheme(sem Semantic, seed color.RGBA, opts Options, dark bool) (Scheme, error) {
	chrom := func(c color.RGBA, preserve bool) (Palette, error) {
		return Chromatic(c, ScaleOptions{
			Steps:        opts.Steps,
			Dark:         dark,
			PreserveSeed: preserve,
		})
	}

	var s Scheme
	var err error
	if s.Primary, err = chrom(sem.Primary, opts.PreserveSeed && !dark); err != nil {
		return Scheme{}, err
	}
	if s.Success, err = chrom(sem.Success, false); err != nil {
		return Scheme{}, err
	}
	if s.Warning, err = chrom(sem.Warning, false); err != nil {
		return Scheme{}, err
	}
	if s.Danger, err = chrom(sem.Danger, false); err != nil {
		return Scheme{}, err
	}
	if opts.WithInfo {
		if s.Info, err = chrom(sem.Info, false); err != nil {
			return Scheme{}, err
		}
	}
	s.Gray, err = Gray(seed, GrayOptions{
		Steps:    opts.GraySteps,
		Dark:     dark,
		MixRatio: opts.GrayMixRatio,
	})
	if err != nil {
		return Scheme{}, err
	}
	return s, nil
}
