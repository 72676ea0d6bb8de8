// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "fmt"

// Chebyshev returns T_n(x), the Chebyshev polynomial of the first
// kind of degree n, evaluated at x.
//
// It is computed with the three-term recurrence
//
//	T_0(x) = 1
//	T_1(x) = x
//	T_n(x) = 2x T_{n-1}(x) - T_{n-2}(x)
//
// which is stable for x in [-1, 1] and exact for any degree. It
// panics if n < 0.
func Chebyshev(n int, x float64) float64 {
	if n < 0 {
		panic(fmt.Sprintf("Chebyshev: negative degree %d", n))
	}
	if n == 0 {
		return 1
	}
	t0, t1 := 1.0, x
	for k := 2; k <= n; k++ {
		t0, t1 = t1, 2*x*t1-t0
	}
	return t1
}

// ChebyshevIntegral returns an antiderivative of T_n at x. The
// integration constant is chosen so that
//
//	F_0(x) = x
//	F_1(x) = x²/2
//	F_n(x) = (T_{n+1}(x)/(n+1) - T_{n-1}(x)/(n-1)) / 2
//
// It panics if n < 0.
func ChebyshevIntegral(n int, x float64) float64 {
	switch {
	case n < 0:
		panic(fmt.Sprintf("ChebyshevIntegral: negative degree %d", n))
	case n == 0:
		return x
	case n == 1:
		return x * x / 2
	}
	return (Chebyshev(n+1, x)/float64(n+1) - Chebyshev(n-1, x)/float64(n-1)) / 2
}

// ChebyshevNorm returns the integral of T_n over [a, b].
//
// As a convenience for callers that do not normalize, a == b
// returns 1 rather than 0.
func ChebyshevNorm(n int, a, b float64) float64 {
	if a == b {
		return 1
	}
	return ChebyshevIntegral(n, b) - ChebyshevIntegral(n, a)
}

// NormChebyshev returns T_n(x) normalized to unit area over [a, b].
// If a == b, it returns T_n(x) unnormalized.
func NormChebyshev(n int, x, a, b float64) float64 {
	return Chebyshev(n, x) / ChebyshevNorm(n, a, b)
}
