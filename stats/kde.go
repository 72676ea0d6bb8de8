// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"

	"github.com/hepstat/go-mlfit/mathx"
)

// KDE represents options for constructing a kernel density estimate
// with a Gaussian kernel.
//
// A kernel density estimate is a smooth, non-parametric estimate of
// the distribution a sample was drawn from. In fits it serves as a
// template: a shape taken from a simulated or control sample that
// has no closed form.
//
// The default (zero) value of KDE is a reasonable default
// configuration.
type KDE struct {
	// Bandwidth is the standard deviation of the kernel.
	//
	// If this is zero, the bandwidth is computed from the
	// provided data using BandwidthScott.
	Bandwidth float64

	// [BoundaryMin, BoundaryMax] specify a bounded support for
	// the KDE. The estimate is reflected at finite boundaries so
	// no weight leaks outside the support. If both are 0 (their
	// default values), they are treated as -/+inf.
	//
	// To specify a half-bounded support, set Min to math.Inf(-1)
	// or Max to math.Inf(1).
	BoundaryMin float64
	BoundaryMax float64
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(data interface {
	StdDev() float64
	Weight() float64
}) float64 {
	return 1.06 * data.StdDev() * math.Pow(data.Weight(), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and an robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(data interface {
	StdDev() float64
	Weight() float64
	Quantile(float64) float64
}) float64 {
	iqr := data.Quantile(0.75) - data.Quantile(0.25)
	hScale := 1.06 * math.Pow(data.Weight(), -1.0/5)
	stdDev := data.StdDev()
	if iqr == 0 || stdDev < iqr/1.349 {
		return hScale * stdDev
	}
	// IQR/1.349 estimates the standard deviation of a Gaussian.
	return hScale * (iqr / 1.349)
}

// From returns the kernel density estimate for the sample s.
//
// It panics if s is weighted with a different number of weights than
// values, or if the bandwidth is not positive.
func (k KDE) From(s Sample) Dist {
	if s.Weights != nil && len(s.Xs) != len(s.Weights) {
		panic("len(xs) != len(weights)")
	}

	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(s)
	}
	if !(h > 0) {
		panic("KDE bandwidth must be positive")
	}

	min, max := k.BoundaryMin, k.BoundaryMax
	if min == 0 && max == 0 {
		min, max = math.Inf(-1), math.Inf(1)
	}
	return &kdeDist{
		kernel:  NormalDist{0, h},
		xs:      s.Xs,
		weights: s.Weights,
		total:   s.Weight(),
		min:     min,
		max:     max,
	}
}

type kdeDist struct {
	kernel      NormalDist
	xs, weights []float64
	total       float64
	min, max    float64 // Support bounds
}

// mean returns the weighted mean of f(x - xs[i]). Evaluating kernels
// shifted by kde.xs all at x is equivalent to evaluating one
// unshifted kernel at x - kde.xs.
func (kde *kdeDist) mean(f func(float64) float64, x float64) float64 {
	s := 0.0
	for i, xi := range kde.xs {
		w := 1.0
		if kde.weights != nil {
			w = kde.weights[i]
		}
		s += w * f(x-xi)
	}
	return s / kde.total
}

// images sums g(k) over all integers k, stopping once the terms
// stop contributing.
func images(g func(k float64) float64) float64 {
	const maxImages = 1000
	s := g(0)
	for k := 1.0; k < maxImages; k++ {
		t := g(k) + g(-k)
		s += t
		if math.Abs(t) <= 1e-16*math.Abs(s) {
			break
		}
	}
	return s
}

func (kde *kdeDist) PDF(x float64) float64 {
	if x < kde.min || x > kde.max {
		return 0
	}
	y := func(x float64) float64 { return kde.mean(kde.kernel.PDF, x) }
	lo, hi := !math.IsInf(kde.min, -1), !math.IsInf(kde.max, 1)
	switch {
	case lo && hi:
		d := 2 * (kde.max - kde.min)
		return images(func(k float64) float64 {
			return y(x+k*d) + y(2*kde.min-x+k*d)
		})
	case lo:
		return y(x) + y(2*kde.min-x)
	case hi:
		return y(x) + y(2*kde.max-x)
	}
	return y(x)
}

func (kde *kdeDist) PDFEach(xs []float64) []float64 {
	return pdfEach(kde, xs)
}

func (kde *kdeDist) CDF(x float64) float64 {
	if x < kde.min {
		return 0
	} else if x >= kde.max {
		return 1
	}
	y := func(x float64) float64 { return kde.mean(kde.kernel.CDF, x) }
	lo, hi := !math.IsInf(kde.min, -1), !math.IsInf(kde.max, 1)
	switch {
	case lo && hi:
		d := 2 * (kde.max - kde.min)
		return images(func(k float64) float64 {
			return y(x+k*d) - y(2*kde.min-x+k*d)
		})
	case lo:
		return y(x) - y(2*kde.min-x)
	case hi:
		return y(x) + (1 - y(2*kde.max-x))
	}
	return y(x)
}

func (kde *kdeDist) CDFEach(xs []float64) []float64 {
	return cdfEach(kde, xs)
}

// bracket returns an interval containing the points where the CDF
// crosses lowY and highY.
func (kde *kdeDist) bracket(lowY, highY float64) (float64, float64) {
	lowX, highX := Sample{Xs: kde.xs, Weights: kde.weights}.Bounds()
	if lowX == highX {
		lowX -= 1
		highX += 1
	}
	for kde.CDF(lowX) > lowY {
		lowX -= highX - lowX
	}
	for kde.CDF(highX) < highY {
		highX += highX - lowX
	}
	return math.Max(lowX, kde.min), math.Min(highX, kde.max)
}

func (kde *kdeDist) InvCDF(y float64) float64 {
	if y <= 0 {
		return kde.min
	} else if y >= 1 {
		return kde.max
	}
	lo, hi := kde.bracket(y, y)
	x, err := mathx.Brent(func(x float64) float64 { return kde.CDF(x) - y }, lo, hi, 1e-12)
	if err != nil {
		return nan
	}
	return x
}

// crossing returns the point in [lo, hi] where the CDF crosses y, or
// fallback if the CDF does not cross y there (for example because it
// is NaN for a sample of zero total weight).
func (kde *kdeDist) crossing(y, lo, hi, tol, fallback float64) float64 {
	x, err := mathx.Brent(func(x float64) float64 { return kde.CDF(x) - y }, lo, hi, tol)
	if errors.Is(err, mathx.ErrNotBracketed) {
		return fallback
	}
	return x
}

func (kde *kdeDist) Bounds() (low float64, high float64) {
	// Find the end points that contain 99% of the CDF's weight.
	const (
		lowY      = 0.005
		highY     = 0.995
		tolerance = 0.001
	)
	lowX, highX := kde.bracket(lowY, highY)
	low = kde.crossing(lowY, lowX, highX, tolerance, lowX)
	high = kde.crossing(highY, lowX, highX, tolerance, highX)

	// Expand width by 20% to give some margins
	width := high - low
	low, high = low-0.1*width, high+0.1*width

	// Limit to bounds
	low, high = math.Max(low, kde.min), math.Min(high, kde.max)
	return
}
