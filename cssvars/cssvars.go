// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cssvars serializes a [theme.Theme] into CSS, SCSS, or Less
// variable declarations. It is a pure adapter over the theme data;
// injecting the output into a document is the caller's concern.
package cssvars

import (
	"fmt"
	"strings"

	"github.com/seedtone/seedtone/colors"
	"github.com/seedtone/seedtone/theme"
)

// Format selects the output dialect.
type Format int

const (
	CSS Format = iota
	SCSS
	Less
)

// ParseFormat maps a format name to its [Format].
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "css", "":
		return CSS, nil
	case "scss":
		return SCSS, nil
	case "less":
		return Less, nil
	}
	return CSS, fmt.Errorf("unknown variable format %q", s)
}

// Options control emission.
type Options struct {

	// Prefix is prepended to every variable name; empty uses "color".
	Prefix string

	// Format is the output dialect.
	Format Format

	// DarkSelector wraps the dark-mode CSS block; empty uses ".dark".
	// Ignored for SCSS and Less, which infix "-dark" instead.
	DarkSelector string
}

// Emit renders the theme as variable declarations: CSS custom
// properties in :root plus a dark-mode selector block, or flat
// SCSS/Less variables with a -dark infix.
func Emit(t theme.Theme, opts Options) string {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "color"
	}

	var b strings.Builder
	switch opts.Format {
	case CSS:
		sel := opts.DarkSelector
		if sel == "" {
			sel = ".dark"
		}
		b.WriteString(":root {\n")
		emitScheme(&b, t.Light, "  --"+prefix, ": ", ";\n")
		b.WriteString("}\n\n")
		b.WriteString(sel + " {\n")
		emitScheme(&b, t.Dark, "  --"+prefix, ": ", ";\n")
		b.WriteString("}\n")
	case SCSS:
		emitScheme(&b, t.Light, "$"+prefix, ": ", ";\n")
		emitScheme(&b, t.Dark, "$"+prefix+"-dark", ": ", ";\n")
	case Less:
		emitScheme(&b, t.Light, "@"+prefix, ": ", ";\n")
		emitScheme(&b, t.Dark, "@"+prefix+"-dark", ": ", ";\n")
	}
	return b.String()
}

func emitScheme(b *strings.Builder, s theme.Scheme, prefix, sep, term string) {
	emitPalette(b, s.Primary, prefix+"-primary", sep, term)
	emitPalette(b, s.Success, prefix+"-success", sep, term)
	emitPalette(b, s.Warning, prefix+"-warning", sep, term)
	emitPalette(b, s.Danger, prefix+"-danger", sep, term)
	emitPalette(b, s.Info, prefix+"-info", sep, term)
	emitPalette(b, s.Gray, prefix+"-gray", sep, term)
}

func emitPalette(b *strings.Builder, p theme.Palette, prefix, sep, term string) {
	for _, st := range p {
		b.WriteString(prefix + "-" + st.Label + sep + colors.AsHex(st.Color) + term)
	}
}
