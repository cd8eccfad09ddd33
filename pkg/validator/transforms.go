package validator

import "github.com/dmitrymomot/rulekit/pkg/sanitizer"

// Sanitize turns string cleaners into a transform for Chain[string].Transform.
func Sanitize(fns ...func(string) string) func(string) (string, error) {
	clean := sanitizer.Compose(fns...)
	return func(s string) (string, error) {
		return clean(s), nil
	}
}

// Trim is a Transform dropping surrounding whitespace.
func Trim(s string) (string, error) {
	return sanitizer.Trim(s), nil
}

// Lower is a Transform lowercasing the value.
func Lower(s string) (string, error) {
	return sanitizer.ToLower(s), nil
}

// Clamp is a Transform pinning numbers into [min, max].
func Clamp[T Numeric](min, max T) func(T) (T, error) {
	return func(v T) (T, error) {
		return sanitizer.Clamp(v, min, max), nil
	}
}

// Round is a Transform rounding floats to the given decimal places.
func Round(places int) func(float64) (float64, error) {
	return func(v float64) (float64, error) {
		return sanitizer.RoundToDecimalPlaces(v, places), nil
	}
}

func Upper(s string) (string, error) {
	return sanitizer.ToUpper(s), nil
}

// Title is a Transform capitalizing every word.
func Title(s string) (string, error) {
	return sanitizer.ToTitle(s), nil
}
