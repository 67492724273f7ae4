// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cluster extracts dominant colors from sampled pixels using
// K-means++ clustering under a perceptually weighted RGB distance.
package cluster

import (
	"image/color"
	"math/rand"
	"sort"

	"github.com/chewxy/math32"
)

const (
	// maxIterations bounds the refinement loop, guaranteeing
	// termination regardless of convergence.
	maxIterations = 30

	// convergenceEpsilon is the maximum center movement below which
	// iteration stops early.
	convergenceEpsilon float32 = 1
)

// Cluster is one dominant color with the number of sampled pixels
// assigned to it.
type Cluster struct {
	Center color.RGBA
	Count  int
}

// Option configures [Dominant].
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand sets the random source used for K-means++ seeding,
// making extraction deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

type point struct {
	r, g, b float32
}

// Dominant clusters the sampled pixels into at most k dominant
// colors. Empty input returns nil; k >= len(pixels) returns one
// singleton cluster per sample. Centers that end up with no members
// are dropped, so fewer than k clusters may come back. The result is
// sorted by member count, largest first. Runtime is bounded by
// samples x k x 30 iterations.
func Dominant(pixels []color.RGBA, k int, opts ...Option) []Cluster {
	if len(pixels) == 0 || k < 1 {
		return nil
	}
	if k >= len(pixels) {
		out := make([]Cluster, len(pixels))
		for i, p := range pixels {
			out[i] = Cluster{Center: p, Count: 1}
		}
		return out
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	pts := make([]point, len(pixels))
	for i, p := range pixels {
		pts[i] = point{float32(p.R), float32(p.G), float32(p.B)}
	}

	centers := seedCenters(pts, k, rng)
	assign := make([]int, len(pts))

	for iter := 0; iter < maxIterations; iter++ {
		for i, p := range pts {
			assign[i] = nearest(centers, p)
		}

		sums := make([]point, len(centers))
		counts := make([]int, len(centers))
		for i, p := range pts {
			a := assign[i]
			sums[a].r += p.r
			sums[a].g += p.g
			sums[a].b += p.b
			counts[a]++
		}

		moved := float32(0)
		for ci := range centers {
			if counts[ci] == 0 {
				// stranded center; leave it in place
				continue
			}
			n := float32(counts[ci])
			next := point{sums[ci].r / n, sums[ci].g / n, sums[ci].b / n}
			if d := euclidean(centers[ci], next); d > moved {
				moved = d
			}
			centers[ci] = next
		}
		if moved < convergenceEpsilon {
			break
		}
	}

	// final assignment against the settled centers
	counts := make([]int, len(centers))
	for _, p := range pts {
		counts[nearest(centers, p)]++
	}

	out := make([]Cluster, 0, len(centers))
	for ci, c := range centers {
		if counts[ci] == 0 {
			continue
		}
		out = append(out, Cluster{
			Center: color.RGBA{
				R: uint8(math32.Round(c.r)),
				G: uint8(math32.Round(c.g)),
				B: uint8(math32.Round(c.b)),
				A: 255,
			},
			Count: counts[ci],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// seedCenters implements K-means++ initialization: the first center
// is uniform over the samples; each subsequent center is drawn with
// probability proportional to its squared distance from the nearest
// center chosen so far.
func seedCenters(pts []point, k int, rng *rand.Rand) []point {
	centers := make([]point, 0, k)
	centers = append(centers, pts[rng.Intn(len(pts))])

	dists := make([]float32, len(pts))
	for len(centers) < k {
		var total float64
		for i, p := range pts {
			d := distSq(centers[0], p)
			for _, c := range centers[1:] {
				if d2 := distSq(c, p); d2 < d {
					d = d2
				}
			}
			dists[i] = d
			total += float64(d)
		}
		if total == 0 {
			// all samples coincide with a center
			centers = append(centers, pts[rng.Intn(len(pts))])
			continue
		}
		target := rng.Float64() * total
		idx := len(pts) - 1
		var cum float64
		for i, d := range dists {
			cum += float64(d)
			if cum >= target {
				idx = i
				break
			}
		}
		centers = append(centers, pts[idx])
	}
	return centers
}

func nearest(centers []point, p point) int {
	best := 0
	bestD := distSq(centers[0], p)
	for i := 1; i < len(centers); i++ {
		if d := distSq(centers[i], p); d < bestD {
			best = i
			bestD = d
		}
	}
	return best
}

// distSq is the squared red-mean weighted distance. The red channel
// weight grows and the blue weight shrinks with the mean red value
// of the two points, approximating perceptual sensitivity across
// the RGB cube; green carries a fixed weight of 4.
func distSq(a, b point) float32 {
	rMean := (a.r + b.r) / 2
	wr := 2 + rMean/256
	wb := 2 + (255-rMean)/256
	dr := a.r - b.r
	dg := a.g - b.g
	db := a.b - b.b
	return wr*dr*dr + 4*dg*dg + wb*db*db
}

func euclidean(a, b point) float32 {
	dr := a.r - b.r
	dg := a.g - b.g
	db := a.b - b.b
	return math32.Sqrt(dr*dr + dg*dg + db*db)
}
