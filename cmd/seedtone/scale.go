// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/seedtone/seedtone/colors"
	"github.com/seedtone/seedtone/theme"
)

func newScaleCmd() *cobra.Command {
	var steps int
	var dark, gray, tailwind, preserve bool
	var mixRatio float32

	cmd := &cobra.Command{
		Use:   "scale <seed>",
		Short: "Generate an N-step palette from a seed color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := colors.FromString(args[0])
			if err != nil {
				return err
			}

			var p theme.Palette
			switch {
			case tailwind:
				p = theme.Tailwind(seed, preserve)
			case gray:
				p, err = theme.Gray(seed, theme.GrayOptions{
					Steps:        steps,
					Dark:         dark,
					MixRatio:     mixRatio,
					PreserveSeed: preserve,
				})
			default:
				p, err = theme.Chromatic(seed, theme.ScaleOptions{
					Steps:        steps,
					Dark:         dark,
					PreserveSeed: preserve,
				})
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, st := range p {
				fmt.Fprintf(out, "%-5s %s %s\n", st.Label, colors.AsHex(st.Color), swatch(st.Color))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 0, "Step count (default 12, 14 for --gray)")
	cmd.Flags().BoolVar(&dark, "dark", false, "Generate the dark-mode palette")
	cmd.Flags().BoolVar(&gray, "gray", false, "Generate the gray family instead of a chromatic scale")
	cmd.Flags().BoolVar(&tailwind, "tailwind", false, "Use the fixed Tailwind-style lightness table")
	cmd.Flags().BoolVar(&preserve, "preserve-seed", false, "Keep the exact seed at its closest step")
	cmd.Flags().Float32Var(&mixRatio, "gray-mix-ratio", 0.2, "Brand tint of the gray family (0-1)")
	return cmd
}

func swatch(c color.RGBA) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(colors.AsHex(c))).
		Render("      ")
}
