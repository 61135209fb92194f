// Package argassert provides small, generic precondition checks for function
// arguments: truth, presence, non-emptiness, integer comparisons and
// non-negativity.
//
// Every check takes the value under test together with a human-readable label
// and either returns the value unchanged or an *Error describing the violated
// rule. Returning the value lets a call site validate and bind in a single
// statement:
//
//	limit, err := argassert.NotNegative(limit, "limit")
//	if err != nil {
//	    return nil, err
//	}
//
// # Error Handling
//
// All failures share one kind: invalid argument. Use errors.Is with
// ErrInvalidArgument (or IsInvalidArgument) to detect them. The message of an
// *Error follows a fixed pattern per rule, for example
//
//	n is false
//	items is null
//	items is empty
//	n (3) is not less than 3
//	n (4) is greater than 3
//	n (3) is not greater than 3
//	n (-7) is less than 0
//
// Emptiness checks test for nil first, so a nil slice or map reports
// "is null" rather than "is empty". Go strings cannot be nil, therefore
// NotEmptyString only ever reports "is empty".
//
// An *Error also carries a translation key and values (see Translations for
// the bundled message catalogs) and implements slog.LogValuer, so it renders
// as a structured group when passed to a slog logger.
//
// # Programmer Errors
//
// When a failed precondition can only mean a bug, wrap the check with Must:
//
//	cache := newCache(argassert.Must(argassert.GreaterThan(size, 0, "size")))
//
// # Concurrency
//
// The package holds no state. All functions are safe for concurrent use.
package argassert
