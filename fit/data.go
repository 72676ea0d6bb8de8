// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"

	"github.com/hepstat/go-mlfit/stats"
	"gonum.org/v1/gonum/floats"
)

// A Dataset holds the data of a fit: one sample per distribution.
type Dataset struct {
	// Samples holds the data of each distribution, in the order
	// the distributions were given to the Fitter. Unweighted
	// samples have weight 1 per observation.
	Samples []stats.Sample

	// Expected is the expected number of events of each
	// distribution, which is scaled by the Fitter's normalization
	// to give the mean of the Poisson term of the extended
	// likelihood. If nil, the observed total weight of each
	// sample is used; with the default normalization, the Poisson
	// term is then constant and the fit reduces to an ordinary
	// (non-extended) maximum likelihood fit.
	Expected []float64
}

// Values returns an unweighted Dataset with one sample per xs.
func Values(xs ...[]float64) Dataset {
	ds := Dataset{Samples: make([]stats.Sample, len(xs))}
	for i, x := range xs {
		ds.Samples[i] = stats.Sample{Xs: x}
	}
	return ds
}

// WithExpected returns a copy of ds with the given expected number of
// events per distribution.
func (ds Dataset) WithExpected(n ...float64) Dataset {
	ds.Expected = n
	return ds
}

// canonical is a Dataset prepared for the loss: weights are filled
// in, expected counts defaulted, and binned distributions replaced
// by their histograms.
type canonical struct {
	data     [][]float64
	weights  [][]float64
	expected []float64

	// edges[i] is nil for unbinned distributions.
	edges [][]float64
}

func (f *Fitter) prepare(ds Dataset) (*canonical, error) {
	n := len(f.families)
	if len(ds.Samples) != n {
		return nil, fmt.Errorf("%w: %d samples for %d distributions", ErrDataShape, len(ds.Samples), n)
	}
	if ds.Expected != nil && len(ds.Expected) != n {
		return nil, fmt.Errorf("%w: %d expected counts for %d distributions", ErrDataShape, len(ds.Expected), n)
	}

	c := &canonical{
		data:     make([][]float64, n),
		weights:  make([][]float64, n),
		expected: make([]float64, n),
		edges:    make([][]float64, n),
	}
	for i, s := range ds.Samples {
		if s.Weights != nil && len(s.Weights) != len(s.Xs) {
			return nil, fmt.Errorf("%w: sample %d has %d values but %d weights", ErrDataShape, i, len(s.Xs), len(s.Weights))
		}
		ws := s.WeightsOrOnes()
		if ds.Expected != nil {
			c.expected[i] = ds.Expected[i]
		} else {
			c.expected[i] = floats.Sum(ws)
		}

		b := f.binnings[i]
		if b == nil {
			c.data[i], c.weights[i] = s.Xs, ws
			continue
		}
		if f.edges[i] == nil {
			f.edges[i] = b.EdgesFor(s)
		}
		c.edges[i] = f.edges[i]
		c.data[i] = stats.Hist(stats.Sample{Xs: s.Xs, Weights: ws}, c.edges[i])
		c.weights[i] = stats.Sample{Xs: c.data[i]}.WeightsOrOnes()
	}
	return c, nil
}
