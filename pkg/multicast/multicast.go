package multicast

import "context"

// Callback is one registered notification function. It receives the raising
// source and the event payload, and reports a fault by returning an error.
//
// Callbacks must not retain or mutate the payload after returning.
type Callback[T any] func(ctx context.Context, source any, data T) error

// List is an ordered sequence of callbacks sharing one payload type.
//
// The nil list is the distinct "no callback registered" state and is the
// identity element of Combine. Order is significant and preserved by every
// operation in this package; duplicate entries are preserved, not
// deduplicated. A List is never mutated after construction.
type List[T any] []Callback[T]

// ExceptionHandler receives faults suppressed by the Resilient decorator.
// It is called with the original elementary callback that failed and the
// error it produced (or the *CallbackPanicError it panicked with).
type ExceptionHandler[T any] func(cb Callback[T], err error)

// Continuation observes the outcome of a background raise scheduled by the
// Background decorator. A nil error means the raise completed successfully.
type Continuation func(err error)
