package argassert

import "fmt"

// Integer is satisfied by every signed and unsigned integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// LessThan returns v if v < bound.
func LessThan[T Integer](v, bound T, label string) (T, error) {
	if v < bound {
		return v, nil
	}
	return 0, boundError(label, KeyNotLessThan, "is not less than", v, bound)
}

// LessThanOrEqual returns v if v <= bound.
func LessThanOrEqual[T Integer](v, bound T, label string) (T, error) {
	if v <= bound {
		return v, nil
	}
	return 0, boundError(label, KeyGreaterThan, "is greater than", v, bound)
}

// GreaterThan returns v if v > bound.
func GreaterThan[T Integer](v, bound T, label string) (T, error) {
	if v > bound {
		return v, nil
	}
	return 0, boundError(label, KeyNotGreaterThan, "is not greater than", v, bound)
}

// GreaterThanOrEqual returns v if v >= bound.
func GreaterThanOrEqual[T Integer](v, bound T, label string) (T, error) {
	if v >= bound {
		return v, nil
	}
	return 0, boundError(label, KeyLessThan, "is less than", v, bound)
}

// NotNegative returns v if v >= 0.
func NotNegative[T Integer](v T, label string) (T, error) {
	return GreaterThanOrEqual(v, 0, label)
}

// boundError renders "{label} ({v}) {relation} {bound}". Values are always
// printed in base 10, even for types that implement fmt.Stringer.
func boundError[T Integer](label, key, relation string, v, bound T) *Error {
	value := fmt.Sprintf("%d", v)
	limit := fmt.Sprintf("%d", bound)
	return newBoundError(label, key,
		fmt.Sprintf("%s (%s) %s %s", label, value, relation, limit),
		value, limit)
}
