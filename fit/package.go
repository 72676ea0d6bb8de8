// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fit implements generalized maximum likelihood fits of
// parametric distributions to (possibly weighted) data.
//
// A Fitter maps a vector of free parameters to the shape parameters
// of one or more distributions and minimizes the (extended) negative
// log likelihood of the data. Fits may be unbinned or binned, may
// include a normalization (yield) function and a prior, and support
// profile likelihood uncertainties, significance tests against a null
// hypothesis, and toy Monte Carlo studies.
//
// A Fitter is not safe for concurrent use. To run toy studies in
// parallel, use one Fitter per goroutine, as ParallelToy does.
package fit // import "github.com/hepstat/go-mlfit/fit"

import (
	"errors"
	"math"
)

var (
	// ErrNotFitted is returned by operations that require a fit
	// result when Fit has not succeeded yet.
	ErrNotFitted = errors.New("fit: no fit result, call Fit first")

	// ErrParameterCount is returned when a per-parameter argument
	// does not have one entry per fitted parameter.
	ErrParameterCount = errors.New("fit: wrong number of parameters")

	// ErrDataShape is returned when a Dataset or configuration
	// does not have one entry per distribution of the Fitter.
	ErrDataShape = errors.New("fit: data does not match the fitted distributions")

	// ErrProfileLength is returned by Profile when the fixed
	// parameter value slices differ in length.
	ErrProfileLength = errors.New("fit: profile value slices differ in length")

	// ErrUnknownMethod is returned for an unrecognized
	// minimization method name.
	ErrUnknownMethod = errors.New("fit: unknown minimization method")
)

var nan = math.NaN()
