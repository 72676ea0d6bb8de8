// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"

	"github.com/hepstat/go-mlfit/stats"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/distuv"
)

// A ToyResult is the outcome of one toy experiment.
type ToyResult struct {
	// Truth is the free parameter vector the toy data was
	// generated from.
	Truth []float64

	// Result is the fit of the toy data.
	Result *Result

	// Uncertainties holds the confidence intervals of the fit, or
	// nil if no bounds were requested.
	Uncertainties []Interval
}

// Toy runs one toy experiment per entry of truths. For each truth, it
// generates a data set from the distributions at those free
// parameters, with the size of sample i drawn from a Poisson
// distribution of mean sizes[i], fits it starting from x0 and, if
// bounds is non-nil, computes uncertainties as Uncertainties does.
//
// The expected count of each toy sample is sizes[i]. Toy does not
// change the result retained by the last Fit.
func (f *Fitter) Toy(x0 []float64, truths [][]float64, sizes []float64, bounds []*Interval) ([]ToyResult, error) {
	if err := f.checkToy(x0, sizes, bounds); err != nil {
		return nil, err
	}
	out := make([]ToyResult, 0, len(truths))
	for k, truth := range truths {
		tr, err := f.toy(k, x0, truth, sizes, bounds)
		if err != nil {
			return nil, fmt.Errorf("toy %d: %w", k, err)
		}
		out = append(out, tr)
	}
	return out, nil
}

func (f *Fitter) checkToy(x0, sizes []float64, bounds []*Interval) error {
	if len(sizes) != len(f.families) {
		return fmt.Errorf("%w: %d sample sizes for %d distributions", ErrDataShape, len(sizes), len(f.families))
	}
	if bounds != nil && len(bounds) != len(x0) {
		return fmt.Errorf("%w: %d bounds for %d parameters", ErrParameterCount, len(bounds), len(x0))
	}
	return nil
}

// toy runs toy experiment k at free parameters truth.
func (f *Fitter) toy(k int, x0, truth, sizes []float64, bounds []*Interval) (ToyResult, error) {
	c, err := f.prepare(f.generate(truth, sizes))
	if err != nil {
		return ToyResult{}, err
	}
	r, err := f.fit(x0, c)
	if err != nil {
		return ToyResult{}, err
	}
	tr := ToyResult{Truth: truth, Result: r}
	if bounds != nil {
		if tr.Uncertainties, err = f.uncertainties(r, bounds, c); err != nil {
			return ToyResult{}, err
		}
	}
	f.metrics.observeToy()
	f.log.Debug("toy finished", zap.Int("toy", k), zap.Float64s("truth", truth), zap.Float64s("x", r.X))
	return tr, nil
}

// generate draws a toy Dataset from the distributions at free
// parameters truth.
func (f *Fitter) generate(truth []float64, sizes []float64) Dataset {
	ps := f.mapping(truth)
	ds := Dataset{
		Samples:  make([]stats.Sample, len(f.families)),
		Expected: append([]float64(nil), sizes...),
	}
	for i, fam := range f.families {
		n := distuv.Poisson{Lambda: sizes[i], Src: f.src}.Rand()
		ds.Samples[i] = stats.Sample{Xs: stats.Rand(fam.Dist(ps[i]), int(n), f.src)}
	}
	return ds
}
