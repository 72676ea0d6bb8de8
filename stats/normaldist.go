// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

func (n NormalDist) dist() distuv.Normal {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}
}

func (n NormalDist) PDF(x float64) float64 {
	return n.dist().Prob(x)
}

func (n NormalDist) PDFEach(xs []float64) []float64 {
	return pdfEach(n, xs)
}

func (n NormalDist) CDF(x float64) float64 {
	return n.dist().CDF(x)
}

func (n NormalDist) CDFEach(xs []float64) []float64 {
	return cdfEach(n, xs)
}

func (n NormalDist) InvCDF(y float64) float64 {
	if y <= 0 {
		return -inf
	} else if y >= 1 {
		return inf
	}
	return n.dist().Quantile(y)
}

func (n NormalDist) Bounds() (float64, float64) {
	const stddevs = 4
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}

// NormalFamily is the family of normal distributions. Its shape
// parameters are "mu" (default 0) and "sigma" (default 1).
type NormalFamily struct{}

func (NormalFamily) Dist(p Params) Dist {
	return NormalDist{Mu: p.Get("mu", 0), Sigma: p.Get("sigma", 1)}
}
