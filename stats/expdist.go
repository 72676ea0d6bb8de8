// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/hepstat/go-mlfit/mathx"
	"gonum.org/v1/gonum/stat/distuv"
)

// ExpDist is an exponential distribution with rate Lambda,
// optionally truncated to [Min, Max].
//
// If Min == Max, the distribution is not truncated and has support
// [0, ∞); Lambda must then be positive. A truncated distribution
// may have any Lambda, including zero (uniform) and negative values
// (rising exponentials), which is common for background shapes.
type ExpDist struct {
	Lambda   float64
	Min, Max float64
}

func (e ExpDist) truncated() bool {
	return e.Min != e.Max
}

func (e ExpDist) PDF(x float64) float64 {
	return mathx.ExpDensity(x, e.Lambda, e.Min, e.Max)
}

func (e ExpDist) PDFEach(xs []float64) []float64 {
	return pdfEach(e, xs)
}

func (e ExpDist) CDF(x float64) float64 {
	if !e.truncated() {
		return distuv.Exponential{Rate: e.Lambda}.CDF(x)
	}
	if x <= e.Min {
		return 0
	} else if x >= e.Max {
		return 1
	}
	if e.Lambda == 0 {
		return (x - e.Min) / (e.Max - e.Min)
	}
	return math.Expm1(-e.Lambda*(x-e.Min)) / math.Expm1(-e.Lambda*(e.Max-e.Min))
}

func (e ExpDist) CDFEach(xs []float64) []float64 {
	return cdfEach(e, xs)
}

func (e ExpDist) InvCDF(y float64) float64 {
	if !e.truncated() {
		if y >= 1 {
			return inf
		}
		return distuv.Exponential{Rate: e.Lambda}.Quantile(math.Max(y, 0))
	}
	if y <= 0 {
		return e.Min
	} else if y >= 1 {
		return e.Max
	}
	if e.Lambda == 0 {
		return e.Min + y*(e.Max-e.Min)
	}
	return e.Min - math.Log1p(y*math.Expm1(-e.Lambda*(e.Max-e.Min)))/e.Lambda
}

func (e ExpDist) Bounds() (float64, float64) {
	if e.truncated() {
		return e.Min, e.Max
	}
	return 0, e.InvCDF(0.999)
}

// ExpFamily is the family of exponential distributions truncated to
// [Min, Max] (untruncated if Min == Max). Its shape parameter is
// "lambda" (default 1).
type ExpFamily struct {
	Min, Max float64
}

func (f ExpFamily) Dist(p Params) Dist {
	return ExpDist{Lambda: p.Get("lambda", 1), Min: f.Min, Max: f.Max}
}
