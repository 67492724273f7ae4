// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/seedtone/seedtone/colors/hsx"
)

// ErrInvalidColor is returned when an input cannot be structurally
// matched to any recognized color encoding. Out-of-range channel
// values never produce it; they are clamped instead.
var ErrInvalidColor = errors.New("invalid color input")

// RGB is the structured record input shape with channels in 0-255.
// It always resolves to a fully opaque color; use string or tuple
// inputs to carry alpha.
type RGB struct {
	R, G, B float32
}

// FromString parses a color from a string: hex (#RGB, #RGBA,
// #RRGGBB, #RRGGBBAA, leading # optional), functional (rgb(), rgba(),
// hsl(), hsla()), or a CSS named keyword. Parsing is lenient on
// magnitude (out-of-range values clamp) and strict on shape.
func FromString(str string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(str))
	switch {
	case s == "":
		return color.RGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	case strings.HasPrefix(s, "#"):
		return FromHex(s)
	case strings.HasPrefix(s, "rgb"):
		return fromRGBFunc(s)
	case strings.HasPrefix(s, "hsl"):
		return fromHSLFunc(s)
	}
	if c, ok := Map[s]; ok {
		return c, nil
	}
	if isHexDigits(s) {
		return FromHex(s)
	}
	return color.RGBA{}, fmt.Errorf("%w: unrecognized string %q", ErrInvalidColor, str)
}

// FromHex parses a hex color in #RGB, #RGBA, #RRGGBB, or #RRGGBBAA
// form; the leading # is optional.
func FromHex(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(hex)), "#")
	switch len(s) {
	case 3, 4:
		var exp strings.Builder
		for _, r := range s {
			exp.WriteRune(r)
			exp.WriteRune(r)
		}
		s = exp.String()
	case 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("%w: hex string %q has length %d", ErrInvalidColor, hex, len(s))
	}
	var ch [4]uint8
	ch[3] = 255
	for i := 0; i*2 < len(s); i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: bad hex digits in %q", ErrInvalidColor, hex)
		}
		ch[i] = uint8(v)
	}
	return color.RGBA{ch[0], ch[1], ch[2], ch[3]}, nil
}

// FromAny resolves any supported input shape to the canonical color:
// strings (see [FromString]), [color.Color] values (including the
// [hsx.HSL], [hsx.HSV], and [hsx.HWB] records), the [RGB] record,
// and numeric tuples of length 3 or 4 ([]float32, []float64, or
// []int, channels 0-255 plus alpha 0-1).
func FromAny(v any) (color.RGBA, error) {
	switch x := v.(type) {
	case nil:
		return color.RGBA{}, fmt.Errorf("%w: nil", ErrInvalidColor)
	case string:
		return FromString(x)
	case color.RGBA:
		return x, nil
	case RGB:
		return color.RGBA{clampChan(x.R), clampChan(x.G), clampChan(x.B), 255}, nil
	case color.Color:
		return AsRGBA(x), nil
	case []float32:
		return fromTuple(x)
	case []float64:
		t := make([]float32, len(x))
		for i, f := range x {
			t[i] = float32(f)
		}
		return fromTuple(t)
	case []int:
		t := make([]float32, len(x))
		for i, n := range x {
			t[i] = float32(n)
		}
		return fromTuple(t)
	}
	return color.RGBA{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidColor, v)
}

func fromTuple(t []float32) (color.RGBA, error) {
	if len(t) != 3 && len(t) != 4 {
		return color.RGBA{}, fmt.Errorf("%w: tuple length %d", ErrInvalidColor, len(t))
	}
	c := color.RGBA{clampChan(t[0]), clampChan(t[1]), clampChan(t[2]), 255}
	if len(t) == 4 {
		c = WithAlphaF(c, t[3])
	}
	return c, nil
}

// fromRGBFunc parses rgb(r, g, b) and rgba(r, g, b, a). Channels may
// be numbers (0-255) or percentages; alpha is 0-1 or a percentage.
func fromRGBFunc(s string) (color.RGBA, error) {
	name, args, err := funcArgs(s)
	if err != nil {
		return color.RGBA{}, err
	}
	want := 3
	if name == "rgba" {
		want = 4
	} else if name != "rgb" {
		return color.RGBA{}, fmt.Errorf("%w: unrecognized function %q", ErrInvalidColor, name)
	}
	if len(args) != want {
		return color.RGBA{}, fmt.Errorf("%w: %s() takes %d arguments, got %d", ErrInvalidColor, name, want, len(args))
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, pct, err := parseNum(args[i])
		if err != nil {
			return color.RGBA{}, err
		}
		if pct {
			v = v * 255 / 100
		}
		ch[i] = clampChan(v)
	}
	c := color.RGBA{ch[0], ch[1], ch[2], 255}
	if want == 4 {
		a, pct, err := parseNum(args[3])
		if err != nil {
			return color.RGBA{}, err
		}
		if pct {
			a /= 100
		}
		c = WithAlphaF(c, a)
	}
	return c, nil
}

// fromHSLFunc parses hsl(h, s%, l%) and hsla(h, s%, l%, a). The
// percent signs on saturation and lightness are optional.
func fromHSLFunc(s string) (color.RGBA, error) {
	name, args, err := funcArgs(s)
	if err != nil {
		return color.RGBA{}, err
	}
	want := 3
	if name == "hsla" {
		want = 4
	} else if name != "hsl" {
		return color.RGBA{}, fmt.Errorf("%w: unrecognized function %q", ErrInvalidColor, name)
	}
	if len(args) != want {
		return color.RGBA{}, fmt.Errorf("%w: %s() takes %d arguments, got %d", ErrInvalidColor, name, want, len(args))
	}
	h, _, err := parseNum(strings.TrimSuffix(args[0], "deg"))
	if err != nil {
		return color.RGBA{}, err
	}
	sat, _, err := parseNum(args[1])
	if err != nil {
		return color.RGBA{}, err
	}
	l, _, err := parseNum(args[2])
	if err != nil {
		return color.RGBA{}, err
	}
	c := hsx.NewHSL(h, sat, l).AsRGBA()
	if want == 4 {
		a, pct, err := parseNum(args[3])
		if err != nil {
			return color.RGBA{}, err
		}
		if pct {
			a /= 100
		}
		c = WithAlphaF(c, a)
	}
	return c, nil
}

// funcArgs splits "name(a, b, c)" into the function name and its
// trimmed arguments, accepting commas, spaces, or slashes as
// separators.
func funcArgs(s string) (name string, args []string, err error) {
	open := strings.IndexByte(s, '(')
	close := strings.LastIndexByte(s, ')')
	if open < 0 || close < open {
		return "", nil, fmt.Errorf("%w: malformed function %q", ErrInvalidColor, s)
	}
	name = strings.TrimSpace(s[:open])
	fields := strings.FieldsFunc(s[open+1:close], func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '/'
	})
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			args = append(args, f)
		}
	}
	return name, args, nil
}

func parseNum(s string) (v float32, pct bool, err error) {
	if strings.HasSuffix(s, "%") {
		pct = true
		s = strings.TrimSuffix(s, "%")
	}
	f, perr := strconv.ParseFloat(s, 32)
	if perr != nil {
		return 0, false, fmt.Errorf("%w: bad number %q", ErrInvalidColor, s)
	}
	return float32(f), pct, nil
}

func clampChan(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func isHexDigits(s string) bool {
	if len(s) != 3 && len(s) != 4 && len(s) != 6 && len(s) != 8 {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
