// Package workerpool provides bounded concurrent processing utilities.
package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Ordered pulls items from next and processes up to workerCount of them
// concurrently, passing results to emit in the order the items were produced.
// An item occupies a slot from the moment it is pulled until its result has
// been emitted, so next is only called when a slot is free.
//
// The first error from process or emit cancels the remaining work and is
// returned. Results of items after a failed one are never emitted.
func Ordered[T, R any](
	ctx context.Context,
	workerCount int,
	next func() (T, bool),
	process func(context.Context, T) (R, error),
	emit func(context.Context, R) error,
) error {
	if workerCount < 1 {
		workerCount = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	slots := make(chan struct{}, workerCount)
	pending := make(chan chan R, workerCount)

	g.Go(func() error {
		defer close(pending)
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case slots <- struct{}{}:
			}

			item, ok := next()
			if !ok {
				return nil
			}

			result := make(chan R, 1)
			pending <- result
			g.Go(func() error {
				r, err := process(ctx, item)
				if err != nil {
					return err
				}
				result <- r
				return nil
			})
		}
	})

	g.Go(func() error {
		for result := range pending {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case r := <-result:
				if err := emit(ctx, r); err != nil {
					return err
				}
			}
			<-slots
		}
		return nil
	})

	return g.Wait()
}
