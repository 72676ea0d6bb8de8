// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// ScaledDist is the distribution of Shift + Scale·X, where X is
// distributed as D. Scale must be positive.
type ScaledDist struct {
	D            Dist
	Shift, Scale float64
}

func (s ScaledDist) PDF(x float64) float64 {
	return s.D.PDF((x-s.Shift)/s.Scale) / s.Scale
}

func (s ScaledDist) PDFEach(xs []float64) []float64 {
	return pdfEach(s, xs)
}

func (s ScaledDist) CDF(x float64) float64 {
	return s.D.CDF((x - s.Shift) / s.Scale)
}

func (s ScaledDist) CDFEach(xs []float64) []float64 {
	return cdfEach(s, xs)
}

func (s ScaledDist) InvCDF(y float64) float64 {
	return s.Shift + s.Scale*s.D.InvCDF(y)
}

func (s ScaledDist) Bounds() (float64, float64) {
	lo, hi := s.D.Bounds()
	return s.Shift + s.Scale*lo, s.Shift + s.Scale*hi
}

// TemplateFamily is the family of shifted and scaled copies of a
// fixed template distribution, typically a KDE of a simulated
// sample. Its shape parameters are "shift" (default 0) and "scale"
// (default 1).
type TemplateFamily struct {
	Template Dist
}

func (f TemplateFamily) Dist(p Params) Dist {
	return ScaledDist{D: f.Template, Shift: p.Get("shift", 0), Scale: p.Get("scale", 1)}
}
