package argassert

import (
	"errors"
	"log/slog"
	"maps"
)

// ErrInvalidArgument is matched by every error returned from a failed check.
var ErrInvalidArgument = errors.New("invalid argument")

// Translation keys of the bundled message catalogs.
const (
	KeyFalse          = "argassert.false"
	KeyNull           = "argassert.null"
	KeyEmpty          = "argassert.empty"
	KeyNotLessThan    = "argassert.not_less_than"
	KeyGreaterThan    = "argassert.greater_than"
	KeyNotGreaterThan = "argassert.not_greater_than"
	KeyLessThan       = "argassert.less_than"
)

// Error describes a failed check.
type Error struct {
	// Label is the display name of the checked argument.
	Label string

	message string
	key     string
	values  map[string]any
}

func newError(label, key, message string) *Error {
	return &Error{
		Label:   label,
		message: message,
		key:     key,
		values:  map[string]any{"label": label},
	}
}

func newBoundError(label, key, message, value, bound string) *Error {
	e := newError(label, key, message)
	e.values["value"] = value
	e.values["bound"] = bound
	return e
}

func (e *Error) Error() string {
	return e.message
}

// Is reports whether target is ErrInvalidArgument.
func (e *Error) Is(target error) bool {
	return target == ErrInvalidArgument
}

// TranslationKey returns the catalog key of the violated rule.
func (e *Error) TranslationKey() string {
	return e.key
}

// TranslationValues returns the placeholder values for the catalog message.
// The returned map is a copy.
func (e *Error) TranslationValues() map[string]any {
	return maps.Clone(e.values)
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("label", e.Label),
		slog.String("message", e.message),
	}
	if v, ok := e.values["value"]; ok {
		attrs = append(attrs, slog.Any("value", v))
	}
	if b, ok := e.values["bound"]; ok {
		attrs = append(attrs, slog.Any("bound", b))
	}
	return slog.GroupValue(attrs...)
}

// IsInvalidArgument reports whether err, or any error it wraps, is a failed check.
func IsInvalidArgument(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrInvalidArgument)
}

// AsError extracts the first *Error from err's chain.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
