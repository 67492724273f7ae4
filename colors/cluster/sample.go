// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
)

// SampleOptions controls pixel sampling from an image.
type SampleOptions struct {

	// MaxDimension is the longest side the image is scaled down to
	// before sampling. 0 uses the default of 220; the image is never
	// scaled up.
	MaxDimension int

	// Stride samples every Nth pixel in both axes. 0 or 1 samples
	// every pixel of the (downscaled) image.
	Stride int

	// AlphaThreshold drops pixels with 8-bit alpha at or below it.
	AlphaThreshold uint8
}

// DefaultSampleOptions are suitable for dominant-color extraction:
// a 220px bound with every other pixel sampled and nearly
// transparent pixels skipped.
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{MaxDimension: 220, Stride: 2, AlphaThreshold: 16}
}

// Sample downscales the image and collects its pixels as
// non-premultiplied RGBA values for [Dominant]. Decoding the image
// is the caller's responsibility.
func Sample(img image.Image, opts SampleOptions) []color.RGBA {
	if img == nil {
		return nil
	}
	maxDim := opts.MaxDimension
	if maxDim <= 0 {
		maxDim = 220
	}
	stride := opts.Stride
	if stride < 1 {
		stride = 1
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	if w > maxDim || h > maxDim {
		if w >= h {
			h = h * maxDim / w
			w = maxDim
		} else {
			w = w * maxDim / h
			h = maxDim
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		img = transform.Resize(img, w, h, transform.Linear)
		b = img.Bounds()
	}

	out := make([]color.RGBA, 0, (w/stride+1)*(h/stride+1))
	for y := b.Min.Y; y < b.Max.Y; y += stride {
		for x := b.Min.X; x < b.Max.X; x += stride {
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if n.A <= opts.AlphaThreshold {
				continue
			}
			out = append(out, color.RGBA{n.R, n.G, n.B, 255})
		}
	}
	return out
}
