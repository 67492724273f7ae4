// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/seedtone/seedtone/colors"
	"github.com/seedtone/seedtone/cssvars"
	"github.com/seedtone/seedtone/internal/config"
	"github.com/seedtone/seedtone/internal/logger"
	"github.com/seedtone/seedtone/theme"
)

func newThemeCmd(log *logger.Logger) *cobra.Command {
	var configPath string
	var format string
	var preview bool

	cmd := &cobra.Command{
		Use:   "theme <seed>",
		Short: "Derive full light and dark theme palettes from a seed color",
		Long: `Theme derives semantic role colors (success, warning, danger, info,
gray) from the seed, generates a multi-step palette for each role in
both light and dark mode, and emits them as CSS, SCSS, or Less
variable declarations.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := colors.FromString(args[0])
			if err != nil {
				return err
			}

			cfg := config.Default()
			if configPath != "" {
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
				log.WithFields(map[string]any{"path": configPath}).Debug("loaded config")
			}
			if format != "" {
				cfg.Format = format
			}

			t, err := theme.New(seed, theme.Options{
				Steps:        cfg.Steps,
				GraySteps:    cfg.GraySteps,
				GrayMixRatio: cfg.GrayMixRatio,
				PreserveSeed: cfg.PreserveSeed,
				WithInfo:     cfg.WithInfo,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if preview {
				printScheme(out, "light", t.Light)
				printScheme(out, "dark", t.Dark)
				return nil
			}

			f, err := cssvars.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}
			fmt.Fprint(out, cssvars.Emit(t, cssvars.Options{Prefix: cfg.Prefix, Format: f}))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a TOML config file")
	cmd.Flags().StringVar(&format, "format", "", "Output dialect: css, scss, or less (overrides config)")
	cmd.Flags().BoolVar(&preview, "preview", false, "Render swatches instead of variable declarations")
	return cmd
}

func printScheme(out io.Writer, mode string, s theme.Scheme) {
	rows := []struct {
		name string
		p    theme.Palette
	}{
		{"primary", s.Primary},
		{"success", s.Success},
		{"warning", s.Warning},
		{"danger", s.Danger},
		{"info", s.Info},
		{"gray", s.Gray},
	}
	for _, row := range rows {
		if len(row.p) == 0 {
			continue
		}
		line := fmt.Sprintf("%-5s %-8s", mode, row.name)
		for _, st := range row.p {
			line += swatch(st.Color)
		}
		fmt.Fprintln(out, line)
	}
}
