// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"github.com/hepstat/go-mlfit/mathx"
)

// ChebyshevDist is a distribution on [Min, Max] whose density is
// proportional to a Chebyshev series
//
//	ƒ(x) ∝ T_0(t) + Σ Coeffs[k-1]·T_k(t)
//
// where t maps [Min, Max] linearly onto [-1, 1]. The constant term
// is fixed to 1 so the coefficients are identifiable under
// normalization. Such series are the customary description of
// smooth backgrounds in invariant-mass fits.
//
// The coefficients must keep the series non-negative over [-1, 1];
// otherwise PDF returns negative values.
type ChebyshevDist struct {
	Coeffs   []float64
	Min, Max float64
}

func (c ChebyshevDist) t(x float64) float64 {
	return (2*x - c.Min - c.Max) / (c.Max - c.Min)
}

func (c ChebyshevDist) series(t float64) float64 {
	y := 1.0
	for k, a := range c.Coeffs {
		y += a * mathx.Chebyshev(k+1, t)
	}
	return y
}

func (c ChebyshevDist) integral(t float64) float64 {
	y := mathx.ChebyshevIntegral(0, t)
	for k, a := range c.Coeffs {
		y += a * mathx.ChebyshevIntegral(k+1, t)
	}
	return y
}

// norm returns the integral of the series over t in [-1, 1].
func (c ChebyshevDist) norm() float64 {
	if c.Min >= c.Max {
		panic(fmt.Sprintf("ChebyshevDist: empty support [%v, %v]", c.Min, c.Max))
	}
	return c.integral(1) - c.integral(-1)
}

func (c ChebyshevDist) PDF(x float64) float64 {
	if x < c.Min || x > c.Max {
		return 0
	}
	// dt/dx = 2/(Max-Min)
	return c.series(c.t(x)) / c.norm() * 2 / (c.Max - c.Min)
}

func (c ChebyshevDist) PDFEach(xs []float64) []float64 {
	return pdfEach(c, xs)
}

func (c ChebyshevDist) CDF(x float64) float64 {
	if x <= c.Min {
		return 0
	} else if x >= c.Max {
		return 1
	}
	return (c.integral(c.t(x)) - c.integral(-1)) / c.norm()
}

func (c ChebyshevDist) CDFEach(xs []float64) []float64 {
	return cdfEach(c, xs)
}

func (c ChebyshevDist) InvCDF(y float64) float64 {
	if y <= 0 {
		return c.Min
	} else if y >= 1 {
		return c.Max
	}
	const tolerance = 1e-12
	x, err := mathx.Brent(func(x float64) float64 { return c.CDF(x) - y }, c.Min, c.Max, tolerance*(c.Max-c.Min))
	if err != nil {
		// The CDF is only non-monotonic if the density goes
		// negative somewhere.
		return nan
	}
	return x
}

func (c ChebyshevDist) Bounds() (float64, float64) {
	return c.Min, c.Max
}

// ChebyshevFamily is the family of Chebyshev series distributions of
// the given Degree on [Min, Max]. Its shape parameters are "c1"
// through "c<Degree>", each defaulting to 0.
type ChebyshevFamily struct {
	Degree   int
	Min, Max float64
}

func (f ChebyshevFamily) Dist(p Params) Dist {
	coeffs := make([]float64, f.Degree)
	for k := range coeffs {
		coeffs[k] = p.Get(fmt.Sprintf("c%d", k+1), 0)
	}
	return ChebyshevDist{Coeffs: coeffs, Min: f.Min, Max: f.Max}
}
