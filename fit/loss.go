// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"math"

	"github.com/hepstat/go-mlfit/stats"
	"gonum.org/v1/gonum/floats"
)

// loss returns the negative log likelihood of the prepared data c at
// free parameters x.
//
// For an unbinned distribution with total weight N and expected
// count ν = norm(p)·expected, the loss is the extended likelihood
//
//	-N log ν + ν - Σ w_i log ƒ(x_i; p)
//
// For a binned distribution with bin contents n_j and expected bin
// contents μ_j = (F(e_{j+1}) - F(e_j))·expected·norm(p), it is the
// Poisson likelihood
//
//	-Σ w_j (n_j log μ_j - μ_j)
//
// The prior, if any, contributes -log(prior(ps)).
//
// The densities must be positive at every data point; loss does not
// guard the logarithms.
func (f *Fitter) loss(x []float64, c *canonical, mapping func([]float64) []stats.Params) float64 {
	f.metrics.observeLoss()

	ps := mapping(x)
	if len(ps) != len(f.families) {
		panic(fmt.Sprintf("mapping returned %d parameter sets for %d distributions", len(ps), len(f.families)))
	}

	loss := 0.0
	for i, p := range ps {
		d := f.families[i].Dist(p)
		xs, ws := c.data[i], c.weights[i]
		scale := f.norm(p) * c.expected[i]

		edges := c.edges[i]
		if edges == nil {
			loss += scale
			if n := floats.Sum(ws); n != 0 {
				loss -= n * math.Log(scale)
			}
			for j, x := range xs {
				loss -= ws[j] * math.Log(d.PDF(x))
			}
			continue
		}

		cdfs := d.CDFEach(edges)
		for j, n := range xs {
			mu := (cdfs[j+1] - cdfs[j]) * scale
			if n == 0 {
				// n log μ → 0, even for μ = 0.
				loss += ws[j] * mu
				continue
			}
			loss -= ws[j] * (n*math.Log(mu) - mu)
		}
	}
	if f.prior != nil {
		loss -= math.Log(f.prior(ps))
	}
	return loss
}
