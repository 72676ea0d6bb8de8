// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements closed-form special functions used to
// build probability densities, and a bracketed scalar root finder.
package mathx // import "github.com/hepstat/go-mlfit/mathx"

import "math"

var nan = math.NaN()
