package multicast

import (
	"context"
	"reflect"
)

var (
	ctxType = reflect.TypeFor[context.Context]()
	errType = reflect.TypeFor[error]()
)

// Adapt converts any structurally compatible function value into a List[T].
//
// Accepted inputs:
//   - a Callback[T] or a func(context.Context, any, D) error where T is
//     assignable to D (contravariant substitution: a callback accepting a
//     supertype payload is safe wherever a subtype is produced)
//   - a List[T], List[S], or any slice of such functions; each elementary
//     entry is adapted independently and recombined in original order
//   - nil, which adapts to the nil "no callback" list without error
//
// Any other input fails with *SignatureMismatchError naming the target
// payload type. On failure no partial list is returned.
func Adapt[T any](fn any) (List[T], error) {
	if fn == nil {
		return nil, nil
	}

	// Fast paths for inputs that already have the exact shape.
	switch v := fn.(type) {
	case List[T]:
		if len(v) == 0 {
			return nil, nil
		}
		for _, cb := range v {
			if cb == nil {
				return nil, &SignatureMismatchError{
					Target: reflect.TypeFor[T](),
					Got:    reflect.TypeFor[List[T]](),
					Reason: "callback list contains a nil entry",
				}
			}
		}
		return Combine(v), nil
	case Callback[T]:
		if v == nil {
			return nil, nil
		}
		return List[T]{v}, nil
	case func(context.Context, any, T) error:
		if v == nil {
			return nil, nil
		}
		return List[T]{v}, nil
	}

	rv := reflect.ValueOf(fn)
	switch rv.Kind() {
	case reflect.Func:
		if rv.IsNil() {
			return nil, nil
		}
		cb, err := adaptFunc[T](rv)
		if err != nil {
			return nil, err
		}
		return List[T]{cb}, nil

	case reflect.Slice:
		if rv.Type().Elem().Kind() != reflect.Func {
			return nil, &SignatureMismatchError{
				Target: reflect.TypeFor[T](),
				Got:    rv.Type(),
				Reason: "not a callback function or callback list",
			}
		}
		if rv.Len() == 0 {
			return nil, nil
		}
		out := make(List[T], 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i)
			if elem.IsNil() {
				return nil, &SignatureMismatchError{
					Target: reflect.TypeFor[T](),
					Got:    rv.Type(),
					Reason: "callback list contains a nil entry",
				}
			}
			cb, err := adaptFunc[T](elem)
			if err != nil {
				return nil, err
			}
			out = append(out, cb)
		}
		return out, nil

	default:
		return nil, &SignatureMismatchError{
			Target: reflect.TypeFor[T](),
			Got:    rv.Type(),
			Reason: "not a callback function or callback list",
		}
	}
}

// Convert re-types a callback list accepting the payload supertype S into a
// list typed for the subtype T, by re-adapting each elementary callback
// through the generic path. It succeeds whenever T is assignable to S and
// fails with *SignatureMismatchError otherwise. A nil list converts to nil.
func Convert[S, T any](list List[S]) (List[T], error) {
	if list == nil {
		return nil, nil
	}
	out := make(List[T], 0, len(list))
	for _, cb := range list {
		if cb == nil {
			return nil, &SignatureMismatchError{
				Target: reflect.TypeFor[T](),
				Got:    reflect.TypeFor[List[S]](),
				Reason: "callback list contains a nil entry",
			}
		}
		adapted, err := adaptFunc[T](reflect.ValueOf(cb))
		if err != nil {
			return nil, err
		}
		out = append(out, adapted)
	}
	return out, nil
}

// adaptFunc verifies that rv has the notification shape
// func(context.Context, any, D) error with T assignable to D, and wraps it
// as a Callback[T].
func adaptFunc[T any](rv reflect.Value) (Callback[T], error) {
	target := reflect.TypeFor[T]()
	t := rv.Type()

	if t.NumIn() != 3 || t.IsVariadic() {
		return nil, &SignatureMismatchError{
			Target: target,
			Got:    t,
			Reason: "callback must take exactly (context.Context, source, data)",
		}
	}
	if t.NumOut() != 1 || t.Out(0) != errType {
		return nil, &SignatureMismatchError{
			Target: target,
			Got:    t,
			Reason: "callback must return exactly one error",
		}
	}
	if t.In(0) != ctxType {
		return nil, &SignatureMismatchError{
			Target: target,
			Got:    t,
			Reason: "first parameter must be context.Context",
		}
	}
	if src := t.In(1); src.Kind() != reflect.Interface || src.NumMethod() != 0 {
		return nil, &SignatureMismatchError{
			Target: target,
			Got:    t,
			Reason: "source parameter must be any",
		}
	}
	if dataParam := t.In(2); !target.AssignableTo(dataParam) {
		return nil, &SignatureMismatchError{
			Target: target,
			Got:    t,
			Reason: target.String() + " is not assignable to data parameter " + dataParam.String(),
		}
	}

	// Identical underlying signature: a direct conversion avoids the
	// reflective call on every raise.
	if cbType := reflect.TypeFor[Callback[T]](); t.ConvertibleTo(cbType) {
		return rv.Convert(cbType).Interface().(Callback[T]), nil
	}

	return func(ctx context.Context, source any, data T) error {
		if ctx == nil {
			ctx = context.Background()
		}
		// Addressable copies keep nil interface values valid for Call.
		in := []reflect.Value{
			reflect.ValueOf(ctx),
			reflect.ValueOf(&source).Elem(),
			reflect.ValueOf(&data).Elem(),
		}
		out := rv.Call(in)
		if e := out[0].Interface(); e != nil {
			return e.(error)
		}
		return nil
	}, nil
}
