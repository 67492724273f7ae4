// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seedtone/seedtone/colors"
	"github.com/seedtone/seedtone/colors/deltae"
)

func newDeltaCmd() *cobra.Command {
	var method string
	var application string

	cmd := &cobra.Command{
		Use:   "delta <color1> <color2>",
		Short: "Measure the perceptual difference between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c1, err := colors.FromString(args[0])
			if err != nil {
				return err
			}
			c2, err := colors.FromString(args[1])
			if err != nil {
				return err
			}

			var d float32
			switch strings.ToLower(method) {
			case "76":
				d = deltae.CIE76(c1, c2)
			case "94":
				app := deltae.GraphicArts
				if strings.ToLower(application) == "textiles" {
					app = deltae.Textiles
				}
				d = deltae.CIE94(c1, c2, app)
			case "2000", "":
				d = deltae.CIEDE2000(c1, c2)
			case "cmc":
				d = deltae.CMC(c1, c2, 2, 1)
			case "oklab":
				d = deltae.OKLAB(c1, c2)
			default:
				return fmt.Errorf("unknown method %q (want 76, 94, 2000, cmc, or oklab)", method)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%.4f\n", d)
			if strings.ToLower(method) != "oklab" {
				fmt.Fprintf(out, "%s\n", interpret(d))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "2000", "Difference formula: 76, 94, 2000, cmc, oklab")
	cmd.Flags().StringVar(&application, "application", "graphic-arts", "CIE94 profile: graphic-arts or textiles")
	return cmd
}

func interpret(d float32) string {
	switch {
	case d == 0:
		return "identical"
	case d < 1:
		return "imperceptible"
	case d < 2:
		return "barely perceptible"
	case d <= 10:
		return "visible at a glance"
	}
	return "distinct colors"
}
