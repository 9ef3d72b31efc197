/*
Package multicast provides combinators for multicast notification callbacks.

# Overview

A multicast callback is an ordered list of independently registered
notification functions that are all invoked from a single logical call.
This package lets the owner of such a callback list convert, compose, and
decorate it with cross-cutting execution policies without touching the
registration mechanism itself:

  - Adapt and Convert normalize function values into typed callback lists,
    verifying parameter compatibility (including contravariant substitution).
  - Combine concatenates lists into one ordered list.
  - Resilient isolates per-callback faults so one failing callback cannot
    prevent the rest of the list from running.
  - Parallel fans every callback out onto the shared pool and joins,
    aggregating every individual fault.
  - Background schedules the whole list on the shared pool and returns
    immediately, delivering the outcome to a continuation.
  - Raise and RaiseAsync invoke a (possibly decorated) list synchronously or
    through a completion handle.

# Basic Usage

Build a list from registered functions, decorate it, and raise:

	onSaved, err := multicast.Adapt[*SavedEvent](handleSaved)
	if err != nil {
	    return err
	}

	list := multicast.Combine(onSaved, auditCallbacks)
	list = multicast.Resilient(list, multicast.LoggingHandler[*SavedEvent](logger))

	_ = multicast.Raise(ctx, list, store, &SavedEvent{Path: path})

# No-Callback State

The nil list is a distinct "no callback registered" value, not an empty
collection. Every combinator propagates it unchanged: combining nil with a
list yields that list, decorating nil yields nil, and raising nil is a no-op.

# Immutability

Lists are never mutated after construction. Every combinator allocates a new
list, so a caller holding a reference to an input list never observes a
change, and concurrent raises of the same list from multiple goroutines are
always safe.

# Execution Policies

Raise runs callbacks strictly left to right on the calling goroutine and
stops at the first error. Parallel runs them concurrently with no ordering
guarantee and never fails fast: the caller sees an aggregated error after
all callbacks finish. Background and RaiseAsync schedule work on the shared
pool (see the pool subpackage) and never block the caller; scheduled work is
never cancelled.
*/
package multicast
