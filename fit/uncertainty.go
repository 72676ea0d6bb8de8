// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"errors"
	"fmt"
	"math"

	"github.com/hepstat/go-mlfit/mathx"
	"go.uber.org/zap"
)

// rootTolerance is the absolute tolerance of the search for the
// Δloss = 0.5 crossings.
const rootTolerance = 2e-12

// An Interval is a closed interval [Lo, Hi].
type Interval struct {
	Lo, Hi float64
}

// Uncertainties returns the one standard deviation confidence
// interval of each free parameter of the last fit of ds, found where
// the profile likelihood rises 0.5 above its minimum.
//
// bounds has one entry per free parameter and limits the search for
// each crossing: the lower crossing of parameter i is searched in
// [bounds[i].Lo, X[i]] and the upper one in [X[i], bounds[i].Hi]. If
// bounds[i] is nil, parameter i is not searched and its interval is
// {NaN, NaN}; likewise a NaN side is not searched. If a side does
// not contain a crossing, the bound itself is reported and a warning
// is logged.
func (f *Fitter) Uncertainties(bounds []*Interval, ds Dataset) ([]Interval, error) {
	return f.UncertaintiesAt(f.result, bounds, ds)
}

// UncertaintiesAt is like Uncertainties, but computes the intervals
// around the fit result ref rather than around the result of the last
// fit. ref must be a fit of ds by f.
func (f *Fitter) UncertaintiesAt(ref *Result, bounds []*Interval, ds Dataset) ([]Interval, error) {
	if ref == nil {
		return nil, ErrNotFitted
	}
	if len(bounds) != len(ref.X) {
		return nil, fmt.Errorf("%w: %d bounds for %d parameters", ErrParameterCount, len(bounds), len(ref.X))
	}
	c, err := f.prepare(ds)
	if err != nil {
		return nil, err
	}
	return f.uncertainties(ref, bounds, c)
}

func (f *Fitter) uncertainties(ref *Result, bounds []*Interval, c *canonical) ([]Interval, error) {
	target := ref.Loss + 0.5
	out := make([]Interval, len(ref.X))
	for i, b := range bounds {
		out[i] = Interval{nan, nan}
		if b == nil {
			continue
		}
		profile := f.profileFunc(ref.X, []int{i}, c)
		var perr error
		g := func(v float64) float64 {
			l, err := profile([]float64{v})
			if err != nil {
				if perr == nil {
					perr = err
				}
				return nan
			}
			return l - target
		}

		best := ref.X[i]
		if !math.IsNaN(b.Lo) {
			out[i].Lo = f.crossing(g, b.Lo, best, i, "lower")
		}
		if !math.IsNaN(b.Hi) {
			out[i].Hi = f.crossing(g, best, b.Hi, i, "upper")
		}
		if perr != nil {
			return nil, perr
		}
	}
	return out, nil
}

// crossing returns the root of g in [a, b]. If [a, b] does not
// bracket a root, it returns whichever of a and b is the supplied
// bound for this side.
func (f *Fitter) crossing(g func(float64) float64, a, b float64, param int, side string) float64 {
	bound := a
	if side == "upper" {
		bound = b
	}
	x, err := mathx.Brent(g, a, b, rootTolerance)
	switch {
	case errors.Is(err, mathx.ErrNotBracketed):
		f.metrics.observeFallback()
		f.log.Warn("uncertainty not bracketed, using the search boundary",
			zap.Int("param", param), zap.String("side", side), zap.Float64("boundary", bound))
		return bound
	case errors.Is(err, mathx.ErrNoConvergence):
		f.log.Warn("uncertainty search did not converge",
			zap.Int("param", param), zap.String("side", side), zap.Float64("estimate", x))
	}
	return x
}
