package multicast

import (
	"context"
	"log/slog"

	"github.com/notifykit/multicast/pkg/multicast/observability"
)

// Resilient wraps every elementary callback in the list so that a fault
// raised during its execution is caught and delivered to the handler instead
// of propagating to the raiser. The handler receives the original elementary
// callback and the fault; a nil handler discards faults.
//
// Within one raise of the resulting list, every elementary callback is
// attempted exactly once, in order, regardless of whether earlier ones
// failed. This is the key difference from an unwrapped raise, which stops at
// the first fault. Panics are caught alongside returned errors and delivered
// as *CallbackPanicError.
//
// The result has the same length as the input; the nil list stays nil.
func Resilient[T any](list List[T], handler ExceptionHandler[T]) List[T] {
	if list == nil {
		return nil
	}
	if handler == nil {
		handler = func(Callback[T], error) {}
	}
	out := make(List[T], len(list))
	for i, cb := range list {
		out[i] = isolate(cb, handler)
	}
	return out
}

// isolate wraps one callback with fault suppression.
func isolate[T any](cb Callback[T], handler ExceptionHandler[T]) Callback[T] {
	return func(ctx context.Context, source any, data T) error {
		if err := invoke(ctx, cb, source, data); err != nil {
			handler(cb, err)
		}
		return nil
	}
}

// LoggingHandler returns an ExceptionHandler that logs suppressed faults
// through the given logger instead of discarding them silently.
func LoggingHandler[T any](logger *slog.Logger) ExceptionHandler[T] {
	return func(_ Callback[T], err error) {
		observability.LogFaultSuppressed(logger, err)
	}
}
