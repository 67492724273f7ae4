// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/seedtone/seedtone/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "seedtone",
		Short:         "Seedtone derives themes, palettes, and dominant colors from seed colors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !flags.verbose {
				return nil
			}
			dbg, err := logger.New(logger.Options{Level: "debug", HumanReadable: true})
			if err != nil {
				return err
			}
			*log = *dbg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newDeltaCmd())
	cmd.AddCommand(newThemeCmd(log))
	cmd.AddCommand(newScaleCmd())
	cmd.AddCommand(newExtractCmd(log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
