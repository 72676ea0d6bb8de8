// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"gonum.org/v1/gonum/stat"
)

func TestToyPulls(t *testing.T) {
	const toys = 50
	m := NewMetrics(prometheus.NewRegistry())
	f := meanFitter(t, Config{Src: rand.NewPCG(30, 1), Metrics: m})
	ds := Values(gaussData(500, 5, 31))
	stored := mustFit(t, f, []float64{4}, ds)
	x := stored.X[0]

	truths := make([][]float64, toys)
	for i := range truths {
		truths[i] = []float64{5}
	}
	rs, err := f.Toy([]float64{4.5}, truths, []float64{500}, []*Interval{{4, 6}})
	if err != nil {
		t.Fatal(err)
	}
	if len(rs) != toys {
		t.Fatalf("want %d results, got %d", toys, len(rs))
	}

	pulls := make([]float64, toys)
	for i, r := range rs {
		if r.Truth[0] != 5 {
			t.Errorf("toy %d: want truth 5, got %v", i, r.Truth[0])
		}
		iv := r.Uncertainties[0]
		pulls[i] = (r.Result.X[0] - r.Truth[0]) / ((iv.Hi - iv.Lo) / 2)
	}
	// About 68% of one standard deviation intervals cover the
	// truth; 24 to 44 of 50 is a three sigma band.
	covered := 0
	for _, r := range rs {
		if iv := r.Uncertainties[0]; iv.Lo <= r.Truth[0] && r.Truth[0] <= iv.Hi {
			covered++
		}
	}
	if covered < 24 || covered > 44 {
		t.Errorf("want about 34 of %d intervals to cover the truth, got %d", toys, covered)
	}

	mean, sd := stat.MeanStdDev(pulls, nil)
	if !near(0, mean, 0.5) {
		t.Errorf("want pull mean near 0, got %v", mean)
	}
	if !near(1, sd, 0.3) {
		t.Errorf("want pull width near 1, got %v", sd)
	}

	if f.Result() != stored || stored.X[0] != x {
		t.Errorf("Toy changed the stored fit result")
	}
	if got := testutil.ToFloat64(m.Toys); got != toys {
		t.Errorf("want %d toys counted, got %v", toys, got)
	}
}

func TestToyNoBounds(t *testing.T) {
	f := meanFitter(t, Config{Src: rand.NewPCG(32, 1)})
	rs, err := f.Toy([]float64{0}, [][]float64{{1}, {-1}}, []float64{200}, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range rs {
		if r.Uncertainties != nil {
			t.Errorf("toy %d: want no uncertainties, got %v", i, r.Uncertainties)
		}
		if !near(r.Truth[0], r.Result.X[0], 0.3) {
			t.Errorf("toy %d: want fit near %v, got %v", i, r.Truth[0], r.Result.X[0])
		}
	}
}

func TestToyErrors(t *testing.T) {
	f := meanFitter(t, Config{})
	if _, err := f.Toy([]float64{0}, [][]float64{{1}}, []float64{10, 10}, nil); !errors.Is(err, ErrDataShape) {
		t.Errorf("two sizes: want ErrDataShape, got %v", err)
	}
	if _, err := f.Toy([]float64{0}, [][]float64{{1}}, []float64{10}, []*Interval{nil, nil}); !errors.Is(err, ErrParameterCount) {
		t.Errorf("two bounds: want ErrParameterCount, got %v", err)
	}
}

func TestParallelToy(t *testing.T) {
	truths := make([][]float64, 10)
	for i := range truths {
		truths[i] = []float64{float64(i)}
	}
	newFitter := func(w int) (*Fitter, error) {
		return meanFitter(t, Config{Src: rand.NewPCG(uint64(w), 40)}), nil
	}
	rs, err := ParallelToy(context.Background(), newFitter, 4, []float64{4.5}, truths, []float64{500}, []*Interval{{-5, 15}})
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range rs {
		if r.Truth[0] != float64(i) {
			t.Errorf("result %d: want truth %d, got %v", i, i, r.Truth[0])
		}
		if !near(r.Truth[0], r.Result.X[0], 0.3) {
			t.Errorf("result %d: want fit near %v, got %v", i, r.Truth[0], r.Result.X[0])
		}
		if iv := r.Uncertainties[0]; iv.Lo >= r.Result.X[0] || iv.Hi <= r.Result.X[0] {
			t.Errorf("result %d: interval %v does not contain %v", i, iv, r.Result.X[0])
		}
	}
}

func TestParallelToyError(t *testing.T) {
	boom := errors.New("boom")
	newFitter := func(w int) (*Fitter, error) {
		return nil, boom
	}
	_, err := ParallelToy(context.Background(), newFitter, 2, []float64{0}, [][]float64{{1}, {2}}, []float64{10}, nil)
	if !errors.Is(err, boom) {
		t.Errorf("want %v, got %v", boom, err)
	}
}

func TestToyErrorIndex(t *testing.T) {
	// A failing toy is reported once, with its own index.
	newFitter := func(w int) (*Fitter, error) {
		f := meanFitter(t, Config{Src: rand.NewPCG(uint64(w), 41)})
		f.method = "bogus"
		return f, nil
	}
	truths := [][]float64{{1}, {2}, {3}}
	_, err := ParallelToy(context.Background(), newFitter, 1, []float64{0}, truths, []float64{50}, nil)
	if !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("want ErrUnknownMethod, got %v", err)
	}
	if n := strings.Count(err.Error(), "toy "); n != 1 {
		t.Errorf("want the toy index once, got %q", err)
	}

	f, _ := newFitter(0)
	_, err = f.Toy([]float64{0}, truths, []float64{50}, nil)
	if !errors.Is(err, ErrUnknownMethod) || !strings.HasPrefix(err.Error(), "toy 0: ") || strings.Count(err.Error(), "toy ") != 1 {
		t.Errorf("want a single toy 0 prefix, got %v", err)
	}
}
