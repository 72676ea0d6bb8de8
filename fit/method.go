// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"
)

// newMethod returns a fresh minimizer for the named method.
func newMethod(name string) (optimize.Method, error) {
	switch strings.ToLower(name) {
	case "", "nelder-mead", "neldermead":
		return &optimize.NelderMead{}, nil
	case "bfgs":
		return &optimize.BFGS{}, nil
	case "lbfgs", "l-bfgs":
		return &optimize.LBFGS{}, nil
	case "cg":
		return &optimize.CG{}, nil
	case "gradient-descent":
		return &optimize.GradientDescent{}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownMethod, name)
}

// minimize minimizes loss starting at x0 with the named method.
//
// If x0 is empty there is nothing to minimize and the loss is simply
// evaluated; this happens when every parameter of a profile is fixed.
func minimize(method string, settings *optimize.Settings, x0 []float64, loss func(x []float64) float64) (*Result, error) {
	if len(x0) == 0 {
		return &Result{X: []float64{}, Loss: loss(nil), Status: optimize.Success, FuncEvaluations: 1}, nil
	}
	m, err := newMethod(method)
	if err != nil {
		return nil, err
	}
	p := optimize.Problem{
		Func: loss,
		Grad: func(grad, x []float64) {
			fd.Gradient(grad, loss, x, &fd.Settings{Formula: fd.Central})
		},
	}
	r, err := optimize.Minimize(p, append([]float64(nil), x0...), settings, m)
	if err != nil {
		return nil, fmt.Errorf("fit: minimization failed: %w", err)
	}
	return &Result{
		X:               r.X,
		Loss:            r.F,
		Status:          r.Status,
		FuncEvaluations: r.Stats.FuncEvaluations,
	}, nil
}

func (f *Fitter) minimize(x0 []float64, loss func(x []float64) float64) (*Result, error) {
	return minimize(f.method, nil, x0, loss)
}
