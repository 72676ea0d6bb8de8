// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// PoissonDist is a Poisson distribution with mean Lambda.
//
// Since the distribution is discrete, PDF returns the probability
// mass at x, which is zero unless x is a non-negative integer.
type PoissonDist struct {
	Lambda float64
}

func (d PoissonDist) dist() distuv.Poisson {
	return distuv.Poisson{Lambda: d.Lambda}
}

func (d PoissonDist) PDF(x float64) float64 {
	if x < 0 || x != math.Floor(x) {
		return 0
	}
	return d.dist().Prob(x)
}

func (d PoissonDist) PDFEach(xs []float64) []float64 {
	return pdfEach(d, xs)
}

func (d PoissonDist) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.dist().CDF(math.Floor(x))
}

func (d PoissonDist) CDFEach(xs []float64) []float64 {
	return cdfEach(d, xs)
}

// InvCDF returns the smallest integer k such that CDF(k) >= y.
func (d PoissonDist) InvCDF(y float64) float64 {
	if y <= 0 {
		return 0
	} else if y >= 1 {
		return inf
	}
	// Walk the PMF upward from 0, accumulating probability. Start
	// from the normal approximation for large means.
	k := 0.0
	if d.Lambda > 100 {
		k = math.Max(0, math.Floor(d.Lambda+math.Sqrt(d.Lambda)*NormalDist{0, 1}.InvCDF(y))-1)
		for k > 0 && d.CDF(k) >= y {
			k--
		}
	}
	for d.CDF(k) < y {
		k++
	}
	return k
}

func (d PoissonDist) Bounds() (float64, float64) {
	return 0, math.Ceil(d.Lambda + 5*math.Sqrt(d.Lambda) + 5)
}

// PoissonFamily is the family of Poisson distributions. Its shape
// parameter is "lambda" (default 1).
type PoissonFamily struct{}

func (PoissonFamily) Dist(p Params) Dist {
	return PoissonDist{Lambda: p.Get("lambda", 1)}
}
