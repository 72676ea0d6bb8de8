// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"errors"
	"math"
)

var (
	// ErrNotBracketed is returned by Brent when f(a) and f(b) do
	// not differ in sign.
	ErrNotBracketed = errors.New("root is not bracketed")

	// ErrNoConvergence is returned by Brent when the iteration
	// limit is exhausted before the bracket shrinks below the
	// tolerance.
	ErrNoConvergence = errors.New("root search did not converge")
)

// brentMaxIter bounds the number of iterations of Brent.
const brentMaxIter = 100

// Brent finds a root of f in the interval bracketed by a and b using
// Brent's method, which combines bisection, the secant method and
// inverse quadratic interpolation. a and b may be given in either
// order, but f(a) and f(b) must have opposite signs (or one of them
// must be zero).
//
// The search stops once the bracket is narrower than
// 2*eps*|x| + tol/2.
//
// Brent, R. P. (1973) Algorithms for Minimization without
// Derivatives, chapter 4.
func Brent(f func(float64) float64, a, b, tol float64) (float64, error) {
	const eps = 0x1p-52

	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if math.IsNaN(fa) || math.IsNaN(fb) || math.Signbit(fa) == math.Signbit(fb) {
		return nan, ErrNotBracketed
	}

	c, fc := a, fa
	d := b - a
	e := d
	for i := 0; i < brentMaxIter; i++ {
		if math.Signbit(fb) == math.Signbit(fc) {
			// Keep the root between b and c.
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol1 := 2*eps*math.Abs(b) + tol/2
		m := (c - b) / 2
		if math.Abs(m) <= tol1 || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Attempt interpolation.
			var p, q float64
			s := fb / fa
			if a == c {
				// Secant.
				p = 2 * m * s
				q = 1 - s
			} else {
				// Inverse quadratic.
				q = fa / fc
				r := fb / fc
				p = s * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-math.Abs(tol1*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d, e = m, m
			}
		} else {
			// Bisect.
			d, e = m, m
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else if m > 0 {
			b += tol1
		} else {
			b -= tol1
		}
		fb = f(b)
	}
	return b, ErrNoConvergence
}
