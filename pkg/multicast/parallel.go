package multicast

import (
	"context"
	"sync"

	"go.uber.org/multierr"

	"github.com/notifykit/multicast/pkg/multicast/pool"
)

// Parallel produces a single-entry list whose callback dispatches every
// elementary callback of the input as an independent unit of work on the
// shared pool, with identical (source, data) arguments, and blocks the
// raiser until all of them have finished (fan-out/fan-in). There is no
// ordering guarantee among the concurrently executing callbacks.
//
// Parallel does not isolate faults: if one or more callbacks fail, the
// raiser observes a single aggregated error carrying every individual fault,
// collected after all units have finished rather than fail-fast. Panics in
// workers are recovered into *CallbackPanicError entries. Apply Resilient
// first to suppress per-callback faults before parallelizing.
//
// The nil list stays nil.
func Parallel[T any](list List[T]) List[T] {
	if list == nil {
		return nil
	}
	inner := Combine(list)
	fan := Callback[T](func(ctx context.Context, source any, data T) error {
		var wg sync.WaitGroup
		errs := make([]error, len(inner))
		for i, cb := range inner {
			wg.Add(1)
			pool.Go(func() {
				defer wg.Done()
				errs[i] = invoke(ctx, cb, source, data)
			})
		}
		wg.Wait()
		return multierr.Combine(errs...)
	})
	return List[T]{fan}
}
