// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/seedtone/seedtone/colors"
	"github.com/seedtone/seedtone/colors/cluster"
	"github.com/seedtone/seedtone/internal/logger"
)

func newExtractCmd(log *logger.Logger) *cobra.Command {
	var count int
	var maxDim int

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract the dominant colors of an image",
		Long: `Extract decodes an image (png, jpeg, gif, bmp, tiff, or webp),
samples its pixels, and clusters them into the most dominant colors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			img, format, err := image.Decode(f)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", args[0], err)
			}
			log.WithFields(map[string]any{
				"format": format,
				"bounds": img.Bounds().String(),
			}).Debug("decoded image")

			opts := cluster.DefaultSampleOptions()
			if maxDim > 0 {
				opts.MaxDimension = maxDim
			}
			pixels := cluster.Sample(img, opts)
			if len(pixels) == 0 {
				return fmt.Errorf("no opaque pixels to sample in %s", args[0])
			}

			out := cmd.OutOrStdout()
			total := 0
			clusters := cluster.Dominant(pixels, count)
			for _, c := range clusters {
				total += c.Count
			}
			for _, c := range clusters {
				fmt.Fprintf(out, "%s %s %5.1f%%\n",
					colors.AsHex(c.Center), swatch(c.Center),
					float64(c.Count)/float64(total)*100)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 5, "Number of dominant colors to extract")
	cmd.Flags().IntVar(&maxDim, "max-dimension", 0, "Downscale bound before sampling (default 220)")
	return cmd
}
