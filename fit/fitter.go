// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hepstat/go-mlfit/stats"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/optimize"
)

// Mode distinguishes fits of a single distribution from
// simultaneous fits of several distributions.
type Mode int

const (
	// Single fits one distribution to one sample.
	Single Mode = iota

	// Multi fits several distributions, each to its own sample,
	// with shared free parameters.
	Multi
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "Single"
	case Multi:
		return "Multi"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Config holds the optional settings of a Fitter. The zero value is
// an unbinned, unnormalized fit without prior, minimized with the
// Nelder-Mead simplex method.
type Config struct {
	// Normalization maps the shape parameters of a distribution
	// to its overall normalization. The expected number of events
	// for a distribution is Normalization(p) times the Dataset's
	// expected count. If nil, the normalization is 1.
	Normalization func(p stats.Params) float64

	// Binnings gives a binning for each distribution. If nil, or
	// for nil entries, the corresponding distribution is fitted
	// unbinned. Otherwise it must have one entry per
	// distribution.
	//
	// Bin edges are computed from the first data a Fitter bins
	// and reused for all later operations.
	Binnings []*stats.Binning

	// Prior returns the prior density of the shape parameters of
	// all distributions (in Single mode, a slice of one). The
	// loss is penalized by -log(Prior(ps)).
	Prior func(ps []stats.Params) float64

	// Method names the minimization method: "nelder-mead"
	// (the default), "bfgs", "lbfgs", "cg" or
	// "gradient-descent". Gradient based methods use finite
	// difference gradients.
	Method string

	// Fast selects fast, approximate profile likelihoods: instead
	// of minimizing over the remaining free parameters, the loss
	// is evaluated with them held at their best fit values. This
	// slightly underestimates uncertainties and overestimates
	// significances.
	Fast bool

	// Logger receives diagnostics. If nil, diagnostics at Info
	// level and above are written to standard output.
	Logger *zap.Logger

	// Metrics, if non-nil, is updated by fits.
	Metrics *Metrics

	// Src is the source of randomness for toy studies. If nil,
	// the global source of math/rand/v2 is used.
	Src rand.Source
}

// A Fitter performs maximum likelihood fits of a set of parametric
// distributions.
type Fitter struct {
	mode     Mode
	mapping  func(x []float64) []stats.Params
	families []stats.Family

	norm     func(p stats.Params) float64
	binnings []*stats.Binning
	prior    func(ps []stats.Params) float64
	method   string
	fast     bool
	log      *zap.Logger
	metrics  *Metrics
	src      rand.Source

	// result is the result of the last successful Fit.
	result *Result

	// edges caches the bin edges of each binned distribution.
	edges [][]float64
}

// Result is the result of a minimization.
type Result struct {
	// X is the optimized free parameter vector.
	X []float64

	// Loss is the negative log likelihood at X.
	Loss float64

	// Status is the termination status reported by the
	// minimizer.
	Status optimize.Status

	// FuncEvaluations is the number of loss evaluations.
	FuncEvaluations int
}

// NewFitter returns a Fitter of a single distribution from family
// fam. mapping maps the free parameters to fam's shape parameters.
func NewFitter(mapping func(x []float64) stats.Params, fam stats.Family, cfg Config) (*Fitter, error) {
	multi := func(x []float64) []stats.Params {
		return []stats.Params{mapping(x)}
	}
	return newFitter(Single, multi, []stats.Family{fam}, cfg)
}

// NewMultiFitter returns a Fitter of several distributions, one from
// each of fams. mapping maps the free parameters to the shape
// parameters of each distribution, in the order of fams.
func NewMultiFitter(mapping func(x []float64) []stats.Params, fams []stats.Family, cfg Config) (*Fitter, error) {
	return newFitter(Multi, mapping, fams, cfg)
}

func newFitter(mode Mode, mapping func(x []float64) []stats.Params, fams []stats.Family, cfg Config) (*Fitter, error) {
	if len(fams) == 0 {
		return nil, fmt.Errorf("%w: no distributions", ErrDataShape)
	}
	if _, err := newMethod(cfg.Method); err != nil {
		return nil, err
	}
	binnings := cfg.Binnings
	if binnings == nil {
		binnings = make([]*stats.Binning, len(fams))
	} else if len(binnings) != len(fams) {
		return nil, fmt.Errorf("%w: %d binnings for %d distributions", ErrDataShape, len(binnings), len(fams))
	}
	norm := cfg.Normalization
	if norm == nil {
		norm = func(stats.Params) float64 { return 1 }
	}
	log := cfg.Logger
	if log == nil {
		log = defaultLogger()
	}
	return &Fitter{
		mode:     mode,
		mapping:  mapping,
		families: fams,
		norm:     norm,
		binnings: binnings,
		prior:    cfg.Prior,
		method:   cfg.Method,
		fast:     cfg.Fast,
		log:      log,
		metrics:  cfg.Metrics,
		src:      cfg.Src,
		edges:    make([][]float64, len(fams)),
	}, nil
}

// Mode returns whether f fits a single or several distributions.
func (f *Fitter) Mode() Mode {
	return f.mode
}

// Result returns the result of the last successful call to Fit, or
// nil if there has been none. The caller must not modify it.
func (f *Fitter) Result() *Result {
	return f.result
}

// Fit fits the distributions to ds, starting the minimization at
// the free parameters x0. On success, the result is also retained
// by f for later calls to Uncertainties, Profile and Significance.
func (f *Fitter) Fit(x0 []float64, ds Dataset) (*Result, error) {
	c, err := f.prepare(ds)
	if err != nil {
		return nil, err
	}
	r, err := f.fit(x0, c)
	if err != nil {
		return nil, err
	}
	f.result = r
	return r, nil
}

// fit minimizes the loss over prepared data without touching f.result.
func (f *Fitter) fit(x0 []float64, c *canonical) (*Result, error) {
	start := time.Now()
	r, err := f.minimize(x0, func(x []float64) float64 {
		return f.loss(x, c, f.mapping)
	})
	f.metrics.observeFit(time.Since(start), err)
	if err != nil {
		return nil, err
	}
	f.log.Debug("fit finished",
		zap.Float64s("x", r.X),
		zap.Float64("loss", r.Loss),
		zap.Stringer("status", r.Status),
		zap.Int("evaluations", r.FuncEvaluations))
	return r, nil
}
