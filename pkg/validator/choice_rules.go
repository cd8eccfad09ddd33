package validator

import (
	"fmt"
	"slices"
	"strings"
)

// OneOf validates that the value is one of options.
func OneOf[T comparable](options ...T) Step[T] {
	return Step[T]{
		Kind:    "in_list",
		Message: fmt.Sprintf("must be one of: %v", options),
		Values:  map[string]any{"allowed_values": options},
		Check:   func(v T) bool { return slices.Contains(options, v) },
	}
}

// NoneOf validates that the value is not one of options.
func NoneOf[T comparable](options ...T) Step[T] {
	return Step[T]{
		Kind:    "not_in_list",
		Message: fmt.Sprintf("must not be one of: %v", options),
		Values:  map[string]any{"forbidden_values": options},
		Check:   func(v T) bool { return !slices.Contains(options, v) },
	}
}

// OneOfFold is OneOf for strings, ignoring case.
func OneOfFold(options ...string) Step[string] {
	return Step[string]{
		Kind:    "in_list",
		Message: fmt.Sprintf("must be one of: %s", strings.Join(options, ", ")),
		Values:  map[string]any{"allowed_values": strings.Join(options, ", ")},
		Check: func(v string) bool {
			return slices.ContainsFunc(options, func(o string) bool { return strings.EqualFold(o, v) })
		},
	}
}
