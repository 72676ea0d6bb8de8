// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"math"

	"github.com/hepstat/go-mlfit/stats"
	"go.uber.org/zap"
)

// profileFunc returns the profile likelihood of c around the best fit
// parameters best, as a function of the values of the parameters at
// positions fixed (which must be ascending).
//
// In fast mode the remaining parameters stay at their best fit
// values. Otherwise they are minimized again, starting from their
// best fit values.
func (f *Fitter) profileFunc(best []float64, fixed []int, c *canonical) func(vals []float64) (float64, error) {
	free := make([]float64, 0, len(best))
	for i, x := range best {
		if !contains(fixed, i) {
			free = append(free, x)
		}
	}

	if f.fast {
		return func(vals []float64) (float64, error) {
			return f.loss(insertFixed(free, fixed, vals), c, f.mapping), nil
		}
	}
	return func(vals []float64) (float64, error) {
		mapping := func(y []float64) []stats.Params {
			return f.mapping(insertFixed(y, fixed, vals))
		}
		r, err := f.minimize(free, func(y []float64) float64 {
			return f.loss(y, c, mapping)
		})
		if err != nil {
			return nan, err
		}
		return r.Loss, nil
	}
}

// insertFixed returns the full parameter vector with vals at the
// positions fixed and the values of free, in order, everywhere else.
func insertFixed(free []float64, fixed []int, vals []float64) []float64 {
	x := make([]float64, len(free)+len(fixed))
	fi, vi := 0, 0
	for i := range x {
		if vi < len(fixed) && fixed[vi] == i {
			x[i] = vals[vi]
			vi++
		} else {
			x[i] = free[fi]
			fi++
		}
	}
	return x
}

func contains(xs []int, x int) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}
	return false
}

// Profile returns the profile likelihood of ds along a path through
// parameter space.
//
// values has one entry per free parameter. Parameters with a nil
// entry are minimized at each point (or held at their best fit values
// in fast mode); the others are fixed, point k of the path using
// values[i][k]. All non-nil entries must have the same length, which
// is the length of the result. If every entry is nil, the path is
// empty.
func (f *Fitter) Profile(values [][]float64, ds Dataset) ([]float64, error) {
	if f.result == nil {
		return nil, ErrNotFitted
	}
	if len(values) != len(f.result.X) {
		return nil, fmt.Errorf("%w: %d profile values for %d parameters", ErrParameterCount, len(values), len(f.result.X))
	}
	var fixed []int
	n := 0
	for i, v := range values {
		if v == nil {
			continue
		}
		if len(fixed) == 0 {
			n = len(v)
		} else if len(v) != n {
			return nil, fmt.Errorf("%w: parameter %d has %d values, want %d", ErrProfileLength, i, len(v), n)
		}
		fixed = append(fixed, i)
	}

	c, err := f.prepare(ds)
	if err != nil {
		return nil, err
	}
	profile := f.profileFunc(f.result.X, fixed, c)
	out := make([]float64, n)
	vals := make([]float64, len(fixed))
	for k := range out {
		for j, i := range fixed {
			vals[j] = values[i][k]
		}
		if out[k], err = profile(vals); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Significance returns the significance, in Gaussian standard
// deviations, of the best fit against a null hypothesis. null has one
// entry per free parameter: the value of that parameter under the
// null hypothesis, or NaN if the parameter is profiled.
//
// By Wilks' theorem, the significance is sqrt(2·(L₀ - L)), where L is
// the best fit loss and L₀ is the profile loss under the null
// hypothesis.
func (f *Fitter) Significance(null []float64, ds Dataset) (float64, error) {
	if f.result == nil {
		return nan, ErrNotFitted
	}
	if len(null) != len(f.result.X) {
		return nan, fmt.Errorf("%w: %d null values for %d parameters", ErrParameterCount, len(null), len(f.result.X))
	}
	var fixed []int
	var vals []float64
	for i, v := range null {
		if !math.IsNaN(v) {
			fixed = append(fixed, i)
			vals = append(vals, v)
		}
	}

	c, err := f.prepare(ds)
	if err != nil {
		return nan, err
	}
	l0, err := f.profileFunc(f.result.X, fixed, c)(vals)
	if err != nil {
		return nan, err
	}
	d := l0 - f.result.Loss
	if d < 0 {
		// The null hypothesis fit beat the best fit, so the best
		// fit did not fully converge.
		f.log.Warn("null hypothesis loss below best fit loss, reporting zero significance",
			zap.Float64("null_loss", l0), zap.Float64("best_loss", f.result.Loss))
		d = 0
	}
	return math.Sqrt(2 * d), nil
}
