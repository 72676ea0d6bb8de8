// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/hepstat/go-mlfit/mathx"
)

func TestNormalDist(t *testing.T) {
	d := NormalFamily{}.Dist(Params{"mu": 1, "sigma": 2})
	if d != (NormalDist{1, 2}) {
		t.Fatalf("want NormalDist{1, 2}, got %+v", d)
	}
	testFunc(t, "NormalDist{1, 2}.PDF", d.PDF, map[float64]float64{
		-3: mathx.Gaussian(-3, 1, 2),
		1:  mathx.Gaussian(1, 1, 2),
		4:  mathx.Gaussian(4, 1, 2),
	})
	testFunc(t, "NormalDist{1, 2}.CDF", d.CDF, map[float64]float64{
		-inf: 0,
		1:    0.5,
		3:    0.8413447460685429,
		inf:  1,
	})
	testInvCDF(t, "NormalDist", d)
	testPDFIntegral(t, "NormalDist", d)

	if got := (NormalFamily{}).Dist(nil); got != (NormalDist{0, 1}) {
		t.Errorf("want standard normal by default, got %+v", got)
	}
}

func TestExpDist(t *testing.T) {
	d := ExpDist{Lambda: 2}
	testFunc(t, "ExpDist{2}.CDF", d.CDF, map[float64]float64{
		-1: 0,
		0:  0,
		1:  1 - math.Exp(-2),
	})
	testInvCDF(t, "ExpDist{2}", d)
	testPDFIntegral(t, "ExpDist{2}", d)

	for _, lambda := range []float64{-0.8, 0, 0.5, 3} {
		d := ExpFamily{Min: 1, Max: 4}.Dist(Params{"lambda": lambda})
		name := fmt.Sprintf("ExpDist{%v, 1, 4}", lambda)
		testInvCDF(t, name, d)
		testPDFIntegral(t, name, d)
		testFunc(t, name+".CDF", d.CDF, map[float64]float64{0: 0, 1: 0, 4: 1, 5: 1})
	}
}

func TestPoissonDist(t *testing.T) {
	d := PoissonFamily{}.Dist(Params{"lambda": 3})
	testFunc(t, "PoissonDist{3}.PDF", d.PDF, map[float64]float64{
		-1:  0,
		0:   math.Exp(-3),
		1.5: 0,
		2:   mathx.PoissonPMF(3, 2),
		7:   mathx.PoissonPMF(3, 7),
	})
	testFunc(t, "PoissonDist{3}.CDF", d.CDF, map[float64]float64{
		-1:  0,
		0:   math.Exp(-3),
		1.5: 4 * math.Exp(-3),
	})
	for _, lambda := range []float64{0.5, 3, 250} {
		d := PoissonDist{lambda}
		for _, y := range []float64{0.01, 0.3, 0.5, 0.9, 0.999} {
			k := d.InvCDF(y)
			if d.CDF(k) < y || (k > 0 && d.CDF(k-1) >= y) {
				t.Errorf("PoissonDist{%v}.InvCDF(%v)=%v is not the smallest k with CDF(k) >= y", lambda, y, k)
			}
		}
	}
}

func TestChebyshevDist(t *testing.T) {
	fam := ChebyshevFamily{Degree: 3, Min: 2, Max: 3}
	for _, p := range []Params{
		nil,
		{"c1": 0.3},
		{"c1": -0.2, "c2": 0.1, "c3": 0.05},
	} {
		d := fam.Dist(p)
		name := fmt.Sprintf("ChebyshevDist%v", p)
		testPDFIntegral(t, name, d)
		testInvCDF(t, name, d)
		testFunc(t, name+".CDF", d.CDF, map[float64]float64{2: 0, 3: 1})
	}

	// With no coefficients, the distribution is uniform.
	testFunc(t, "uniform ChebyshevDist.PDF", fam.Dist(nil).PDF, map[float64]float64{
		1.9: 0,
		2:   1,
		2.7: 1,
		3.1: 0,
	})

	// A linear series: ƒ(x) ∝ 1 + 0.5t with t ∈ [-1, 1], norm 2.
	d := ChebyshevDist{Coeffs: []float64{0.5}, Min: -1, Max: 1}
	testFunc(t, "linear ChebyshevDist.PDF", d.PDF, map[float64]float64{
		-1: 0.25,
		0:  0.5,
		1:  0.75,
	})
}

func TestRand(t *testing.T) {
	src := rand.NewPCG(1, 2)
	const n = 20000
	s := Sample{Xs: Rand(NormalDist{5, 2}, n, src)}
	if mean := s.Mean(); math.Abs(mean-5) > 0.05 {
		t.Errorf("want mean ≅ 5, got %v", mean)
	}
	if sd := s.StdDev(); math.Abs(sd-2) > 0.05 {
		t.Errorf("want stddev ≅ 2, got %v", sd)
	}

	s = Sample{Xs: Rand(ExpDist{Lambda: 1, Min: 0, Max: 2}, n, src)}
	lo, hi := s.Bounds()
	if lo < 0 || hi > 2 {
		t.Errorf("want samples in [0, 2], got [%v, %v]", lo, hi)
	}

	// The same seed reproduces the same draws.
	a := Rand(NormalDist{0, 1}, 5, rand.NewPCG(7, 7))
	b := Rand(NormalDist{0, 1}, 5, rand.NewPCG(7, 7))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("want reproducible draws, got %v and %v", a, b)
		}
	}
}
