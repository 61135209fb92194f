package argassert

import "reflect"

// True returns an error if cond is false.
func True(cond bool, label string) error {
	if !cond {
		return newError(label, KeyFalse, label+" is false")
	}
	return nil
}

// NotNil returns v unless it is nil. Pointers, maps, slices, channels,
// functions and interfaces are nil-able; values of any other type always pass.
func NotNil[T any](v T, label string) (T, error) {
	if isNil(v) {
		var zero T
		return zero, newError(label, KeyNull, label+" is null")
	}
	return v, nil
}

// Must returns v, or panics with err when the check failed.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
