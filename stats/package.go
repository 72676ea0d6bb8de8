// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements parametric probability distributions,
// weighted samples, and histogram binning for likelihood fits.
package stats // import "github.com/hepstat/go-mlfit/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
