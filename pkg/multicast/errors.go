package multicast

import (
	"fmt"
	"reflect"
)

// SignatureMismatchError reports that an input could not be adapted into a
// callback list because its shape is incompatible with the target payload
// type. Adaptation fails fast: no partial list is ever returned alongside
// this error.
type SignatureMismatchError struct {
	Target reflect.Type // payload type the caller asked for
	Got    reflect.Type // type of the rejected input, if known
	Reason string
}

// Error implements the error interface.
func (e *SignatureMismatchError) Error() string {
	if e.Got != nil {
		return fmt.Sprintf("signature mismatch: cannot adapt %s to callback for %s: %s", e.Got, e.Target, e.Reason)
	}
	return fmt.Sprintf("signature mismatch: cannot adapt input to callback for %s: %s", e.Target, e.Reason)
}

// CallbackPanicError wraps a panic recovered from an elementary callback by
// the Resilient decorator or by a pool worker.
type CallbackPanicError struct {
	Value any // value passed to panic
}

// Error implements the error interface.
func (e *CallbackPanicError) Error() string {
	return fmt.Sprintf("callback panicked: %v", e.Value)
}
