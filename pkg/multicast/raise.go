package multicast

import "context"

// Raise invokes every callback in the list, in order, on the calling
// goroutine with identical (source, data) arguments. The first callback to
// return an error stops further invocation in that call and the error is
// returned to the raiser (unless the list was produced by Resilient, which
// suppresses per-callback faults). Raising the nil list is a no-op.
func Raise[T any](ctx context.Context, list List[T], source any, data T) error {
	for _, cb := range list {
		if err := cb(ctx, source, data); err != nil {
			return err
		}
	}
	return nil
}

// invoke runs one callback, converting a panic into *CallbackPanicError so
// decorators can treat panics and returned errors uniformly.
func invoke[T any](ctx context.Context, cb Callback[T], source any, data T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &CallbackPanicError{Value: r}
		}
	}()
	return cb(ctx, source, data)
}

// raiseRecovered is Raise with panic recovery, for pool workers where an
// escaping panic would take down the process.
func raiseRecovered[T any](ctx context.Context, list List[T], source any, data T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &CallbackPanicError{Value: r}
		}
	}()
	return Raise(ctx, list, source, data)
}
