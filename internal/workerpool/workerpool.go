// Package workerpool runs bounded, order-preserving fan-out over a slice.
package workerpool

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Map calls fn for every item with at most limit calls in flight and returns
// the results in input order. fn receives ctx unchanged: a failing item does
// not cancel the others, Map waits for all of them and returns the error of
// the lowest failing index.
func Map[T, R any](ctx context.Context, limit int, items []T, fn func(ctx context.Context, i int, item T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	if len(items) == 0 {
		return out, nil
	}
	if limit <= 0 {
		limit = 1
	}

	errs := make([]error, len(items))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, item := range items {
		g.Go(func() error {
			r, err := fn(ctx, i, item)
			if err != nil {
				errs[i] = fmt.Errorf("item %d: %w", i, err)
				return errs[i]
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, e := range errs {
			if e != nil {
				return nil, e
			}
		}
		return nil, err
	}
	return out, nil
}
