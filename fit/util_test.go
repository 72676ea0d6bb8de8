// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/hepstat/go-mlfit/stats"
	"go.uber.org/zap"
)

func near(want, got, tol float64) bool {
	return math.Abs(want-got) <= tol
}

// gaussData returns n values drawn from a normal distribution with
// the given mean and unit standard deviation.
func gaussData(n int, mu float64, seed uint64) []float64 {
	return stats.Rand(stats.NormalDist{Mu: mu, Sigma: 1}, n, rand.NewPCG(seed, 1))
}

func meanMapping(x []float64) stats.Params {
	return stats.Params{"mu": x[0], "sigma": 1}
}

func meanSigmaMapping(x []float64) stats.Params {
	return stats.Params{"mu": x[0], "sigma": x[1]}
}

// meanFitter returns a Fitter of the mean of a unit normal
// distribution. A nil cfg.Logger is replaced by a no-op logger.
func meanFitter(t *testing.T, cfg Config) *Fitter {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	f, err := NewFitter(meanMapping, stats.NormalFamily{}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func mustFit(t *testing.T, f *Fitter, x0 []float64, ds Dataset) *Result {
	t.Helper()
	r, err := f.Fit(x0, ds)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	return r
}
