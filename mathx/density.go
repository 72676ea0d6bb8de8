// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"fmt"
	"math"
)

// Gaussian returns the density of the normal distribution with mean
// mu and standard deviation sigma at x.
func Gaussian(x, mu, sigma float64) float64 {
	s2 := sigma * sigma
	d := x - mu
	return math.Exp(-d*d/(2*s2)) / math.Sqrt(2*math.Pi*s2)
}

// PoissonPMF returns the probability of observing n events given an
// expected count lambda, e^-λ λ^n / n!.
//
// n need not be integral; the factorial is generalized through the
// gamma function. PoissonPMF returns 0 for n < 0.
func PoissonPMF(lambda, n float64) float64 {
	return math.Exp(PoissonLogPMF(lambda, n))
}

// PoissonLogPMF returns the natural logarithm of PoissonPMF(lambda, n).
// It does not underflow for large n or lambda.
func PoissonLogPMF(lambda, n float64) float64 {
	if n < 0 {
		return math.Inf(-1)
	}
	if lambda == 0 {
		if n == 0 {
			return 0
		}
		return math.Inf(-1)
	}
	lg, _ := math.Lgamma(n + 1)
	return n*math.Log(lambda) - lambda - lg
}

// Factorial returns n!. It panics if n < 0.
//
// The result overflows to +Inf for n > 170.
func Factorial(n int) float64 {
	if n < 0 {
		panic(fmt.Sprintf("Factorial: negative argument %d", n))
	}
	r := 1.0
	for i := 2; i <= n; i++ {
		r *= float64(i)
	}
	return r
}

// Heaviside returns the unit step at d: 1 if x >= d, otherwise 0.
func Heaviside(x, d float64) float64 {
	if x >= d {
		return 1
	}
	return 0
}

// StepLog returns log(x) for x > 0 and 0 otherwise. It is useful
// for likelihood terms whose density vanishes outside its support.
func StepLog(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log(x)
}

// ExpDensity returns the density of the exponential distribution
// with rate lambda at x, truncated to [a, b].
//
// If a == b, the distribution is not truncated and has support
// [0, ∞). Outside the support, ExpDensity returns 0.
func ExpDensity(x, lambda, a, b float64) float64 {
	if a == b {
		if x < 0 {
			return 0
		}
		return lambda * math.Exp(-lambda*x)
	}
	if x < a || x > b {
		return 0
	}
	if lambda == 0 {
		return 1 / (b - a)
	}
	// Shift by a so large supports do not underflow.
	return lambda * math.Exp(-lambda*(x-a)) / -math.Expm1(-lambda*(b-a))
}
