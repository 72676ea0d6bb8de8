// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ParallelToy runs the toy experiments of Fitter.Toy on workers
// goroutines. Since a Fitter is not safe for concurrent use,
// newFitter is called once per worker, with the worker index, to
// create that worker's Fitter. The Fitters should be configured
// identically, apart from their sources of randomness.
//
// Results are returned in the order of truths. The first error
// cancels the remaining experiments.
func ParallelToy(ctx context.Context, newFitter func(worker int) (*Fitter, error), workers int, x0 []float64, truths [][]float64, sizes []float64, bounds []*Interval) ([]ToyResult, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]ToyResult, len(truths))
	jobs := make(chan int)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for k := range truths {
			select {
			case jobs <- k:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			f, err := newFitter(w)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			if err := f.checkToy(x0, sizes, bounds); err != nil {
				return err
			}
			for k := range jobs {
				tr, err := f.toy(k, x0, truths[k], sizes, bounds)
				if err != nil {
					return fmt.Errorf("toy %d: %w", k, err)
				}
				out[k] = tr
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
