// Package pool provides the shared concurrent-execution pool that backs the
// Parallel and Background decorators and RaiseAsync. Submission never blocks
// the caller, and a unit of work is never cancelled once submitted: it always
// runs to completion.
package pool

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/notifykit/multicast/pkg/multicast/config"
)

// Pool schedules independent units of concurrent work. A Pool with a size
// limit admits at most that many units at once; further units wait on a
// worker goroutine without blocking the submitter.
type Pool struct {
	sem *semaphore.Weighted
}

// New creates a pool admitting at most size concurrent units of work.
// size 0 (or negative) means unbounded.
func New(size int) *Pool {
	p := &Pool{}
	if size > 0 {
		p.sem = semaphore.NewWeighted(int64(size))
	}
	return p
}

// FromConfig creates a pool sized by the settings' pool_size.
func FromConfig(s config.Settings) *Pool {
	return New(s.PoolSize)
}

// Submit schedules fn as an independent unit of work and returns
// immediately. fn runs to completion; there is no cancellation.
func (p *Pool) Submit(fn func()) {
	go func() {
		if p.sem != nil {
			// Background context: admission is never cancelled.
			_ = p.sem.Acquire(context.Background(), 1)
			defer p.sem.Release(1)
		}
		fn()
	}()
}

var defaultPool atomic.Pointer[Pool]

func init() {
	defaultPool.Store(New(0))
}

// Default returns the shared pool used by the multicast decorators.
func Default() *Pool {
	return defaultPool.Load()
}

// SetDefault replaces the shared pool. Units of work already submitted to
// the previous pool run to completion there. A nil pool is ignored.
func SetDefault(p *Pool) {
	if p != nil {
		defaultPool.Store(p)
	}
}

// Go schedules fn on the shared pool.
func Go(fn func()) {
	Default().Submit(fn)
}
