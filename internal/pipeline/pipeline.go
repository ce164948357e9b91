package pipeline

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Task processes one item. A returned error is collected and does not stop
// the remaining items.
type Task[T any] func(ctx context.Context, item T) error

// Run applies fn to every item with at most workers goroutines in flight and
// returns every error in completion order. workers <= 0 uses one per CPU.
// Items not yet started when ctx is cancelled report ctx.Err().
func Run[T any](ctx context.Context, items []T, workers int, fn Task[T]) []error {
	if len(items) == 0 || fn == nil {
		return nil
	}
	if workers <= 0 {
		workers = max(runtime.NumCPU(), 1)
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	collect := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for _, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				collect(err)
				return nil
			}
			if err := fn(ctx, item); err != nil {
				collect(err)
			}
			return nil
		})
	}
	_ = g.Wait()
	return errs
}
