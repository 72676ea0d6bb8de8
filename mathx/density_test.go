// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"
)

func TestGaussian(t *testing.T) {
	testFunc(t, "Gaussian(x, 1, 2)", func(x float64) float64 {
		return Gaussian(x, 1, 2)
	}, map[float64]float64{
		1:  1 / math.Sqrt(8*math.Pi),
		2:  math.Exp(-1.0/8) / math.Sqrt(8*math.Pi),
		-1: math.Exp(-0.5) / math.Sqrt(8*math.Pi),
	})
}

func TestPoissonPMF(t *testing.T) {
	testFunc(t, "PoissonPMF(2, n)", func(n float64) float64 {
		return PoissonPMF(2, n)
	}, map[float64]float64{
		-1: 0,
		0:  math.Exp(-2),
		1:  2 * math.Exp(-2),
		2:  2 * math.Exp(-2),
		3:  8 * math.Exp(-2) / 6,
		10: math.Pow(2, 10) * math.Exp(-2) / 3628800,
	})
	if got := PoissonPMF(0, 0); got != 1 {
		t.Errorf("want PoissonPMF(0, 0)=1, got %v", got)
	}
	if got := PoissonPMF(0, 3); got != 0 {
		t.Errorf("want PoissonPMF(0, 3)=0, got %v", got)
	}
}

func TestFactorial(t *testing.T) {
	for n, want := range []float64{1, 1, 2, 6, 24, 120, 720} {
		if got := Factorial(n); got != want {
			t.Errorf("want %d!=%v, got %v", n, want, got)
		}
	}
	if got := Factorial(171); !math.IsInf(got, 1) {
		t.Errorf("want 171! to overflow, got %v", got)
	}
}

func TestHeaviside(t *testing.T) {
	testFunc(t, "Heaviside(x, 0)", func(x float64) float64 {
		return Heaviside(x, 0)
	}, map[float64]float64{
		-1: 0,
		0:  1,
		1:  1,
	})
	testFunc(t, "StepLog", StepLog, map[float64]float64{
		-2:     0,
		0:      0,
		1:      0,
		math.E: 1,
	})
}

func TestExpDensity(t *testing.T) {
	testFunc(t, "ExpDensity(x, 2, 0, 0)", func(x float64) float64 {
		return ExpDensity(x, 2, 0, 0)
	}, map[float64]float64{
		-1: 0,
		0:  2,
		1:  2 * math.Exp(-2),
	})

	// Truncated densities integrate to one over their support.
	for _, lambda := range []float64{-1.5, 0, 0.5, 3} {
		const n = 2000
		a, b := 1.0, 4.0
		h := (b - a) / n
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += ExpDensity(a+(float64(i)+0.5)*h, lambda, a, b) * h
		}
		if math.Abs(sum-1) > 1e-5 {
			t.Errorf("want ExpDensity(·, %v, %v, %v) to integrate to 1, got %v", lambda, a, b, sum)
		}
		if got := ExpDensity(b+0.1, lambda, a, b); got != 0 {
			t.Errorf("want 0 outside support, got %v", got)
		}
	}
}

func TestPoissonLogPMF(t *testing.T) {
	// Far beyond where PoissonPMF underflows.
	got := PoissonLogPMF(1000, 2000)
	lg, _ := math.Lgamma(2001)
	if want := 2000*math.Log(1000) - 1000 - lg; !aeq(want, got) {
		t.Errorf("want PoissonLogPMF(1000, 2000)=%v, got %v", want, got)
	}
	if got := PoissonLogPMF(1, -1); !math.IsInf(got, -1) {
		t.Errorf("want -Inf for negative n, got %v", got)
	}
}
