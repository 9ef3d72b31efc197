package multicast

import (
	"context"
	"log/slog"

	"github.com/notifykit/multicast/pkg/multicast/future"
	"github.com/notifykit/multicast/pkg/multicast/observability"
	"github.com/notifykit/multicast/pkg/multicast/pool"
)

// Background produces a single-entry list whose callback schedules the
// underlying list on the shared pool and returns to the raiser immediately.
// The continuation runs once the background raise completes, successfully or
// with a fault. A nil continuation defaults to DiscardContinuation, which
// marks the fault observed so it cannot escalate to a process-level failure.
//
// Use RaiseAsync instead when the caller wants to own fault handling through
// a completion handle.
//
// The nil list stays nil.
func Background[T any](list List[T], cont Continuation) List[T] {
	if list == nil {
		return nil
	}
	if cont == nil {
		cont = DiscardContinuation
	}
	inner := Combine(list)
	schedule := Callback[T](func(ctx context.Context, source any, data T) error {
		pool.Go(func() {
			cont(raiseRecovered(ctx, inner, source, data))
		})
		return nil
	})
	return List[T]{schedule}
}

// DiscardContinuation observes and discards the outcome of a background
// raise. It exists so a background fault is always considered handled.
func DiscardContinuation(error) {}

// LogContinuation returns a Continuation that logs background faults through
// the given logger. Successful completions are not logged.
func LogContinuation(logger *slog.Logger) Continuation {
	return func(err error) {
		if err != nil {
			observability.LogBackgroundFault(logger, err)
		}
	}
}

// RaiseAsync schedules a synchronous raise of the list on the shared pool
// and returns a completion handle the caller may use to observe success or
// fault. No default continuation is attached and faults are not suppressed:
// the caller owns fault handling via the handle.
//
// Raising the nil list schedules a no-op; the handle still resolves
// successfully.
func RaiseAsync[T any](ctx context.Context, list List[T], source any, data T) *future.Future {
	f := future.New()
	inner := Combine(list)
	pool.Go(func() {
		f.Complete(raiseRecovered(ctx, inner, source, data))
	})
	return f
}
