// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"math"

	"github.com/hepstat/go-mlfit/mathx"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

// BinLikOptions holds the optional settings of MaxBinLikelihood.
type BinLikOptions struct {
	// Method names the minimization method, as Config.Method.
	Method string

	// Tolerance, if positive, stops the minimization once the
	// loss improves by less than Tolerance.
	Tolerance float64

	// Bounds, if non-nil, gives an allowed interval for each
	// parameter. Outside these intervals the loss is +Inf.
	Bounds []Interval

	// Logger receives the result. If nil, the result is written
	// to standard output.
	Logger *zap.Logger
}

// BinLikResult is the result of MaxBinLikelihood.
type BinLikResult struct {
	// X holds the fitted parameters.
	X []float64

	// Norm is the integral of the fitted function over the bin
	// centers, which maps it to a unit area density.
	Norm float64

	// Loss is the negative log likelihood at X.
	Loss float64

	Status optimize.Status
}

// MaxBinLikelihood fits the function f(x, args) to a histogram with
// bin centers centers and contents counts by maximizing the binned
// Poisson likelihood.
//
// Both the histogram and f are scaled to unit area, the latter
// numerically by summing f over the bin centers. The bins must be of
// equal width. The fitted parameters start at x0.
func MaxBinLikelihood(f func(x float64, args []float64) float64, centers, counts, x0 []float64, opts BinLikOptions) (BinLikResult, error) {
	if len(centers) < 2 || len(counts) != len(centers) {
		return BinLikResult{}, fmt.Errorf("%w: %d bin centers and %d counts", ErrDataShape, len(centers), len(counts))
	}
	if opts.Bounds != nil && len(opts.Bounds) != len(x0) {
		return BinLikResult{}, fmt.Errorf("%w: %d bounds for %d parameters", ErrParameterCount, len(opts.Bounds), len(x0))
	}

	dx := centers[1] - centers[0]
	density := make([]float64, len(counts))
	floats.ScaleTo(density, dx/floats.Sum(counts), counts)

	norm := func(args []float64) float64 {
		s := 0.0
		for _, x := range centers {
			s += f(x, args)
		}
		return s * dx
	}
	loss := func(args []float64) float64 {
		for i, b := range opts.Bounds {
			if args[i] < b.Lo || args[i] > b.Hi {
				return math.Inf(1)
			}
		}
		nf := norm(args)
		l := 0.0
		for i, x := range centers {
			l -= mathx.PoissonLogPMF(f(x, args)/nf, density[i])
		}
		return l
	}

	var settings *optimize.Settings
	if opts.Tolerance > 0 {
		settings = &optimize.Settings{
			Converger: &optimize.FunctionConverge{Absolute: opts.Tolerance, Iterations: 100},
		}
	}
	r, err := minimize(opts.Method, settings, x0, loss)
	if err != nil {
		return BinLikResult{}, err
	}
	res := BinLikResult{X: r.X, Norm: norm(r.X), Loss: r.Loss, Status: r.Status}

	log := opts.Logger
	if log == nil {
		log = defaultLogger()
	}
	log.Info("binned likelihood fit",
		zap.Float64s("x", res.X),
		zap.Float64("norm", res.Norm),
		zap.Float64("loss", res.Loss),
		zap.Stringer("status", res.Status))
	return res, nil
}

// HistNorm returns the area of a histogram with bin edges edges and
// contents counts. The bins must be of equal width.
func HistNorm(counts, edges []float64) float64 {
	return (edges[1] - edges[0]) * floats.Sum(counts)
}
