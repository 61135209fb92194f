package logger

import (
	"log/slog"

	"github.com/dmitrymomot/argassert/pkg/argassert"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// InvalidArgument records an argument-check failure under the key
// "invalid_argument". Other errors are recorded with Error.
func InvalidArgument(err error) slog.Attr {
	e, ok := argassert.AsError(err)
	if !ok {
		return Error(err)
	}
	return slog.Any("invalid_argument", e)
}

// Label records an argument label under the key "label".
func Label(label string) slog.Attr {
	return slog.String("label", label)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
