package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Code records an error code under the key "code".
func Code(code string) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("code", code)
}

// CallContext records the caller-supplied call context label.
func CallContext(label string) slog.Attr {
	if label == "" {
		return slog.Attr{}
	}
	return slog.String("call_context", label)
}

// Argument records a positional argument index. Negative indexes are dropped.
func Argument(index int) slog.Attr {
	if index < 0 {
		return slog.Attr{}
	}
	return slog.Int("argument", index)
}

// Contract records a human-readable contract description.
func Contract(desc string) slog.Attr {
	return slog.String("contract", desc)
}

// TypeName records a custom type name.
func TypeName(name string) slog.Attr {
	return slog.String("type_name", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
