// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Matrix returns the symmetric NxN matrix of pairwise CIEDE2000
// distances over the given colors. The diagonal is zero.
func Matrix(cs []color.RGBA) [][]float32 {
	n := len(cs)
	m := make([][]float32, n)
	for i := range m {
		m[i] = make([]float32, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := CIEDE2000(cs[i], cs[j])
			m[i][j] = d
			m[j][i] = d
		}
	}
	return m
}

// Diversity summarizes how perceptually spread out a palette is.
type Diversity struct {

	// Average, Min, Max, and StdDev are statistics over all pairwise
	// CIEDE2000 distances.
	Average float32
	Min     float32
	Max     float32
	StdDev  float32

	// DistinguishablePct is the percentage of pairs whose distance
	// exceeds the JND threshold.
	DistinguishablePct float32

	// Clusters is the number of connected components when colors
	// within 1.5x the threshold of each other are considered linked.
	Clusters int

	// Score is the combined diversity score in 0-1.
	Score float32
}

// AnalyzeDiversity computes pairwise-distance statistics, the share
// of distinguishable pairs, and a perceptual cluster count for the
// given palette. A threshold <= 0 uses the default [JND]. Fewer than
// two colors yields a zeroed result (with one cluster for a single
// color).
//
// The score blends three normalized signals: 0.4 x average distance
// (normalized over 0-50), 0.3 x standard deviation (over 0-30), and
// 0.3 x the distinguishable fraction, capped at 1.
func AnalyzeDiversity(cs []color.RGBA, threshold float32) Diversity {
	if threshold <= 0 {
		threshold = JND
	}
	n := len(cs)
	if n < 2 {
		d := Diversity{}
		if n == 1 {
			d.Clusters = 1
		}
		return d
	}

	m := Matrix(cs)
	var sum, min, max float32
	min = math32.MaxFloat32
	pairs := 0
	distinct := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := m[i][j]
			sum += d
			if d < min {
				min = d
			}
			if d > max {
				max = d
			}
			if d > threshold {
				distinct++
			}
			pairs++
		}
	}
	avg := sum / float32(pairs)

	var varSum float32
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dev := m[i][j] - avg
			varSum += dev * dev
		}
	}
	std := math32.Sqrt(varSum / float32(pairs))
	pct := float32(distinct) / float32(pairs) * 100

	score := 0.4*normalize(avg, 50) + 0.3*normalize(std, 30) + 0.3*(pct/100)
	if score > 1 {
		score = 1
	}

	return Diversity{
		Average:            avg,
		Min:                min,
		Max:                max,
		StdDev:             std,
		DistinguishablePct: pct,
		Clusters:           clusterCount(m, threshold*1.5),
		Score:              score,
	}
}

// clusterCount counts connected components of the distance graph by
// breadth-first search, linking colors closer than cutoff.
func clusterCount(m [][]float32, cutoff float32) int {
	n := len(m)
	visited := make([]bool, n)
	count := 0
	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		count++
		visited[i] = true
		queue = append(queue[:0], i)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for j := 0; j < n; j++ {
				if !visited[j] && m[cur][j] < cutoff {
					visited[j] = true
					queue = append(queue, j)
				}
			}
		}
	}
	return count
}

func normalize(v, max float32) float32 {
	if v <= 0 {
		return 0
	}
	if v >= max {
		return 1
	}
	return v / max
}
