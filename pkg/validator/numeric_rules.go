package validator

import "fmt"

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min validates that a number is greater than or equal to min.
func Min[T Numeric](min T) Step[T] {
	return Step[T]{
		Kind:    "min",
		Message: fmt.Sprintf("must be at least %v", min),
		Values:  map[string]any{"min": min},
		Check:   func(v T) bool { return v >= min },
	}
}

// Max validates that a number is less than or equal to max.
func Max[T Numeric](max T) Step[T] {
	return Step[T]{
		Kind:    "max",
		Message: fmt.Sprintf("must be at most %v", max),
		Values:  map[string]any{"max": max},
		Check:   func(v T) bool { return v <= max },
	}
}

// Between validates that a number lies within [min, max].
func Between[T Numeric](min, max T) Step[T] {
	return Step[T]{
		Kind:    "between",
		Message: fmt.Sprintf("must be between %v and %v", min, max),
		Values:  map[string]any{"min": min, "max": max},
		Check:   func(v T) bool { return v >= min && v <= max },
	}
}

func Positive[T Numeric]() Step[T] {
	var zero T
	return Step[T]{
		Kind:    "positive",
		Message: "must be positive",
		Check:   func(v T) bool { return v > zero },
	}
}

func Negative[T Numeric]() Step[T] {
	var zero T
	return Step[T]{
		Kind:    "negative",
		Message: "must be negative",
		Check:   func(v T) bool { return v < zero },
	}
}

func NonZero[T Numeric]() Step[T] {
	var zero T
	return Step[T]{
		Kind:    "non_zero",
		Message: "must not be zero",
		Check:   func(v T) bool { return v != zero },
	}
}
