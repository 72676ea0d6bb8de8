// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math/rand/v2"

// A Dist is a statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x. For discrete distributions,
	// this is the probability mass at x.
	PDF(x float64) float64

	// PDFEach returns PDF(xs[i]) for each i.
	PDFEach(xs []float64) []float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x.
	CDF(x float64) float64

	// CDFEach returns CDF(xs[i]) for each i.
	CDFEach(xs []float64) []float64

	// InvCDF returns the inverse of the CDF for y. That is,
	// InvCDF(CDF(x)) = x. The value of y must be in [0, 1].
	InvCDF(y float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// Params is a set of named shape parameters of a distribution.
type Params map[string]float64

// Get returns the parameter called name, or def if p does not
// contain it.
func (p Params) Get(name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}

// A Family is a parametric family of distributions. Dist returns
// the member of the family with shape parameters p.
type Family interface {
	Dist(p Params) Dist
}

// FamilyFunc adapts an ordinary function to a Family.
type FamilyFunc func(p Params) Dist

func (f FamilyFunc) Dist(p Params) Dist {
	return f(p)
}

// Rand draws n random values from d by inverse transform sampling.
// If src is nil, Rand uses the global source of math/rand/v2.
func Rand(d Dist, n int, src rand.Source) []float64 {
	uniform := rand.Float64
	if src != nil {
		uniform = rand.New(src).Float64
	}
	xs := make([]float64, n)
	for i := range xs {
		u := uniform()
		for u == 0 {
			// InvCDF(0) is the infimum of the support, which
			// may be infinite.
			u = uniform()
		}
		xs[i] = d.InvCDF(u)
	}
	return xs
}

func pdfEach(d Dist, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.PDF(x)
	}
	return res
}

func cdfEach(d Dist, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.CDF(x)
	}
	return res
}
