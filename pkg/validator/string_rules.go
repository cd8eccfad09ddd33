package validator

import (
	"fmt"
	"unicode/utf8"
)

// MinLen requires at least min characters.
func MinLen(min int) Step[string] {
	return Step[string]{
		Kind:    "min_length",
		Message: fmt.Sprintf("must be at least %d characters long", min),
		Values:  map[string]any{"min": min},
		Check: func(v string) bool {
			return utf8.RuneCountInString(v) >= min
		},
	}
}

// MaxLen allows at most max characters.
func MaxLen(max int) Step[string] {
	return Step[string]{
		Kind:    "max_length",
		Message: fmt.Sprintf("must be at most %d characters long", max),
		Values:  map[string]any{"max": max},
		Check: func(v string) bool {
			return utf8.RuneCountInString(v) <= max
		},
	}
}

// Len requires exactly n characters.
func Len(n int) Step[string] {
	return Step[string]{
		Kind:    "exact_length",
		Message: fmt.Sprintf("must be exactly %d characters long", n),
		Values:  map[string]any{"length": n},
		Check: func(v string) bool {
			return utf8.RuneCountInString(v) == n
		},
	}
}
