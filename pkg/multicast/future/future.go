// Package future provides the completion handle returned by asynchronous
// raises. A Future resolves exactly once; its result never changes after
// resolution, and any number of goroutines may observe it.
package future

import (
	"context"
	"sync"
)

// Future is a one-shot completion handle for a background unit of work.
// The zero value is not usable; create one with New.
type Future struct {
	done chan struct{}
	once sync.Once
	err  error
}

// New returns an unresolved Future.
func New() *Future {
	return &Future{done: make(chan struct{})}
}

// Complete resolves the future with the outcome of the work. Only the first
// call has any effect.
func (f *Future) Complete(err error) {
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}

// Done returns a channel that is closed once the future resolves.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Err returns the fault the work resolved with, or nil if the work succeeded
// or has not resolved yet. Use Done or Wait to distinguish the two.
func (f *Future) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}

// Wait blocks until the future resolves and returns its fault, if any.
// The context bounds only the wait: the underlying work is never cancelled
// and keeps running to completion even if Wait returns early with ctx.Err().
func (f *Future) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Resolved reports whether the future has completed.
func (f *Future) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
