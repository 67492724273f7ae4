// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seedtone/seedtone/colors"
)

func newConvertCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "Convert a color between spaces",
		Long: `Convert parses a color (hex, rgb()/hsl() functional string, or CSS
named keyword) and prints it in the requested color space, or in all
spaces when --to is omitted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colors.FromString(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if to == "" {
				fmt.Fprintf(out, "hex    %s\n", colors.AsHex(c))
				fmt.Fprintf(out, "rgb    %s\n", colors.AsRGBString(c))
				fmt.Fprintf(out, "hsl    %s\n", colors.AsHSLString(c))
				hsv := colors.ToHSV(c)
				fmt.Fprintf(out, "hsv    %.1f %.1f %.1f\n", hsv.H, hsv.S, hsv.V)
				hwb := colors.ToHWB(c)
				fmt.Fprintf(out, "hwb    %.1f %.1f %.1f\n", hwb.H, hwb.W, hwb.B)
				l, a, b := colors.ToLAB(c)
				fmt.Fprintf(out, "lab    %.2f %.2f %.2f\n", l, a, b)
				l, ch, h := colors.ToLCH(c)
				fmt.Fprintf(out, "lch    %.2f %.2f %.2f\n", l, ch, h)
				l, a, b = colors.ToOKLAB(c)
				fmt.Fprintf(out, "oklab  %.4f %.4f %.4f\n", l, a, b)
				l, ch, h = colors.ToOKLCH(c)
				fmt.Fprintf(out, "oklch  %.4f %.4f %.2f\n", l, ch, h)
				x, y, z := colors.ToXYZ(c)
				fmt.Fprintf(out, "xyz    %.2f %.2f %.2f\n", x, y, z)
				return nil
			}
			s, err := formatIn(c, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, s)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Target space: hex, rgb, hsl, hsv, hwb, lab, lch, oklab, oklch, xyz")
	return cmd
}

func formatIn(rgba color.RGBA, to string) (string, error) {
	switch strings.ToLower(to) {
	case "hex":
		return colors.AsHex(rgba), nil
	case "rgb":
		return colors.AsRGBString(rgba), nil
	case "hsl":
		return colors.AsHSLString(rgba), nil
	case "hsv":
		h := colors.ToHSV(rgba)
		return fmt.Sprintf("%.1f %.1f %.1f", h.H, h.S, h.V), nil
	case "hwb":
		h := colors.ToHWB(rgba)
		return fmt.Sprintf("%.1f %.1f %.1f", h.H, h.W, h.B), nil
	case "lab":
		l, a, b := colors.ToLAB(rgba)
		return fmt.Sprintf("%.2f %.2f %.2f", l, a, b), nil
	case "lch":
		l, ch, h := colors.ToLCH(rgba)
		return fmt.Sprintf("%.2f %.2f %.2f", l, ch, h), nil
	case "oklab":
		l, a, b := colors.ToOKLAB(rgba)
		return fmt.Sprintf("%.4f %.4f %.4f", l, a, b), nil
	case "oklch":
		l, ch, h := colors.ToOKLCH(rgba)
		return fmt.Sprintf("%.4f %.4f %.2f", l, ch, h), nil
	case "xyz":
		x, y, z := colors.ToXYZ(rgba)
		return fmt.Sprintf("%.2f %.2f %.2f", x, y, z), nil
	}
	return "", fmt.Errorf("unknown color space %q", to)
}
