// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of possibly weighted data points.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all Xs have weight 1. Weights must have the same
	// length of Xs and all values must be non-negative.
	Weights []float64
}

// Weight returns the total weight of the Sample.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	return floats.Sum(s.Weights)
}

// Sum returns the (possibly weighted) sum of the Sample.
func (s Sample) Sum() float64 {
	if s.Weights == nil {
		return floats.Sum(s.Xs)
	}
	return floats.Dot(s.Xs, s.Weights)
}

// Mean returns the arithmetic mean of the Sample.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, s.Weights)
}

// StdDev returns the sample standard deviation of the Sample.
func (s Sample) StdDev() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	return stat.StdDev(s.Xs, s.Weights)
}

// Bounds returns the minimum and maximum values of the Sample.
//
// If the Sample is empty, Bounds returns NaN, NaN.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Quantile returns the weighted empirical q-quantile of the Sample,
// for q in [0, 1]. It returns NaN if the Sample is empty.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	xs := append([]float64(nil), s.Xs...)
	inds := make([]int, len(xs))
	floats.Argsort(xs, inds)
	var ws []float64
	if s.Weights != nil {
		ws = make([]float64, len(inds))
		for i, j := range inds {
			ws[i] = s.Weights[j]
		}
	}
	return stat.Quantile(q, stat.Empirical, xs, ws)
}

// WeightsOrOnes returns s.Weights, or a slice of 1s the length of
// s.Xs if s is unweighted.
func (s Sample) WeightsOrOnes() []float64 {
	if s.Weights != nil {
		return s.Weights
	}
	ws := make([]float64, len(s.Xs))
	for i := range ws {
		ws[i] = 1
	}
	return ws
}
