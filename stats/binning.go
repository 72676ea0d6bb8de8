// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Binning describes how to bin a sample into a histogram.
//
// If Edges is non-nil, it gives the bin edges directly and must be
// strictly increasing with at least two elements. Otherwise, the
// histogram has Bins equal-width bins spanning [Min, Max]. If Min
// and Max are both 0, the range of the data is used instead.
//
// The zero value of Binning is 10 equal-width bins over the data.
type Binning struct {
	Bins     int
	Min, Max float64
	Edges    []float64
}

// DefaultBins is the number of bins used when Binning.Bins is 0.
const DefaultBins = 10

// EdgesFor returns the bin edges b produces for sample s.
func (b *Binning) EdgesFor(s Sample) []float64 {
	if b.Edges != nil {
		if len(b.Edges) < 2 {
			panic("Binning.Edges must have at least two elements")
		}
		for i := 1; i < len(b.Edges); i++ {
			if !(b.Edges[i-1] < b.Edges[i]) {
				panic(fmt.Sprintf("Binning.Edges not strictly increasing at %d", i))
			}
		}
		return append([]float64(nil), b.Edges...)
	}

	n := b.Bins
	if n == 0 {
		n = DefaultBins
	} else if n < 0 {
		panic(fmt.Sprintf("Binning.Bins must be positive, got %d", n))
	}

	lo, hi := b.Min, b.Max
	if lo == 0 && hi == 0 {
		lo, hi = s.Bounds()
		if math.IsNaN(lo) {
			lo, hi = 0, 1
		}
	}
	if lo > hi {
		panic(fmt.Sprintf("Binning range [%v, %v] is inverted", lo, hi))
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	return floats.Span(make([]float64, n+1), lo, hi)
}

// Hist returns the (weighted) number of samples from s that fall in
// each bin defined by edges. Bin i covers [edges[i], edges[i+1]),
// except the last bin, which also includes its upper edge. Samples
// outside [edges[0], edges[len(edges)-1]] are not counted.
func Hist(s Sample, edges []float64) []float64 {
	if len(edges) < 2 {
		panic("Hist requires at least two edges")
	}
	lo, hi := edges[0], edges[len(edges)-1]

	xs := make([]float64, 0, len(s.Xs))
	var ws []float64
	if s.Weights != nil {
		if len(s.Weights) != len(s.Xs) {
			panic("len(xs) != len(weights)")
		}
		ws = make([]float64, 0, len(s.Xs))
	}
	for i, x := range s.Xs {
		if x < lo || x > hi {
			continue
		}
		xs = append(xs, x)
		if ws != nil {
			ws = append(ws, s.Weights[i])
		}
	}

	count := make([]float64, len(edges)-1)
	if len(xs) == 0 {
		return count
	}

	// stat.Histogram requires sorted data.
	inds := make([]int, len(xs))
	floats.Argsort(xs, inds)
	if ws != nil {
		sorted := make([]float64, len(ws))
		for i, j := range inds {
			sorted[i] = ws[j]
		}
		ws = sorted
	}

	// stat.Histogram treats the last divider as exclusive; nudge
	// it so the last bin is closed.
	dividers := append([]float64(nil), edges...)
	dividers[len(dividers)-1] = math.Nextafter(hi, inf)
	return stat.Histogram(count, dividers, xs, ws)
}

// Centers returns the midpoints of the bins defined by edges.
func Centers(edges []float64) []float64 {
	cs := make([]float64, len(edges)-1)
	for i := range cs {
		cs[i] = (edges[i] + edges[i+1]) / 2
	}
	return cs
}
