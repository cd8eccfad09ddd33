package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Document records the name of the validated input under the key "document".
func Document(name string) slog.Attr {
	return slog.String("document", name)
}

// Valid records the outcome of a validation run under the key "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// ErrorPaths records how many paths reported errors under the key "error_paths".
func ErrorPaths(n int) slog.Attr {
	return slog.Int("error_paths", n)
}

// Path records a value path under the key "path"; the root path is logged as "(root)".
func Path(p string) slog.Attr {
	if p == "" {
		p = "(root)"
	}
	return slog.String("path", p)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
