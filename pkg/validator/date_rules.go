package validator

import (
	"fmt"
	"time"
)

// NotBefore requires a time equal to or after t.
func NotBefore(t time.Time) Step[time.Time] {
	return Step[time.Time]{
		Kind:    "date_after",
		Message: fmt.Sprintf("must not be before %s", t.Format(time.RFC3339)),
		Values:  map[string]any{"date": t.Format(time.RFC3339)},
		Check:   func(v time.Time) bool { return !v.Before(t) },
	}
}

func NotAfter(t time.Time) Step[time.Time] {
	return Step[time.Time]{
		Kind:    "date_before",
		Message: fmt.Sprintf("must not be after %s", t.Format(time.RFC3339)),
		Values:  map[string]any{"date": t.Format(time.RFC3339)},
		Check:   func(v time.Time) bool { return !v.After(t) },
	}
}

// PastDate requires a time before now, evaluated at validation time.
func PastDate() Step[time.Time] {
	return Step[time.Time]{
		Kind:    "date_past",
		Message: "date must be in the past",
		Check:   func(v time.Time) bool { return v.Before(time.Now()) },
	}
}

func FutureDate() Step[time.Time] {
	return Step[time.Time]{
		Kind:    "date_future",
		Message: "date must be in the future",
		Check:   func(v time.Time) bool { return v.After(time.Now()) },
	}
}
