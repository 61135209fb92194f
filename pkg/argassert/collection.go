package argassert

// NotEmptySlice returns s if it is non-nil and holds at least one element.
// A nil slice fails with "is null", an empty one with "is empty".
func NotEmptySlice[S ~[]E, E any](s S, label string) (S, error) {
	if _, err := NotNil(s, label); err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return nil, emptyError(label)
	}
	return s, nil
}

// NotEmptyMap returns m if it is non-nil and holds at least one entry.
// A nil map fails with "is null", an empty one with "is empty".
func NotEmptyMap[M ~map[K]V, K comparable, V any](m M, label string) (M, error) {
	if _, err := NotNil(m, label); err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return nil, emptyError(label)
	}
	return m, nil
}

// NotEmptyString returns s if it has at least one byte.
func NotEmptyString[S ~string](s S, label string) (S, error) {
	if len(s) == 0 {
		return "", emptyError(label)
	}
	return s, nil
}

func emptyError(label string) *Error {
	return newError(label, KeyEmpty, label+" is empty")
}
