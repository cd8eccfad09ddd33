package validator

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Any starts a chain without a type check.
func Any() Chain[any] {
	return Chain[any]{stop: true}
}

// String starts a chain accepting string values only.
func String(opts ...Option) Chain[string] {
	return Convert(KindString, coerceString, opts...)
}

// Number starts a chain converting Go numbers and numeric strings to float64.
func Number(opts ...Option) Chain[float64] {
	return Convert(KindNumber, coerceNumber, opts...)
}

// Integer starts a chain converting whole numbers and integer strings to int64.
func Integer(opts ...Option) Chain[int64] {
	return Convert(KindInteger, coerceInteger, opts...)
}

// Bool starts a chain accepting booleans and their strconv spellings.
func Bool(opts ...Option) Chain[bool] {
	return Convert(KindBool, coerceBool, opts...)
}

// UUID starts a chain converting canonical UUID strings to uuid.UUID.
func UUID(opts ...Option) Chain[uuid.UUID] {
	return Convert(KindUUID, coerceUUID, opts...)
}

// Time starts a chain converting strings in the given layout to time.Time.
func Time(layout string, opts ...Option) Chain[time.Time] {
	return Convert(KindTime, func(v any) (time.Time, bool) {
		switch t := v.(type) {
		case time.Time:
			return t, true
		case string:
			parsed, err := time.Parse(layout, strings.TrimSpace(t))
			return parsed, err == nil
		}
		return time.Time{}, false
	}, opts...)
}

// Convert starts a chain with a conversion step: coerce turns the input into
// a T during parsing, and the step fails validation when it could not.
// kind selects the default message.
func Convert[T any](kind string, coerce func(value any) (T, bool), opts ...Option) Chain[T] {
	if coerce == nil {
		panic(ErrNilRule)
	}
	s := newStep(kind, applyOptions(opts), nil)
	s.verify = func(_ *Context, value, _, _ any, done func(bool)) {
		done(rejectsOwnFailure(s)(value, nil, nil))
	}
	s.parse = func(value, _, _ any) (out any) {
		if value == nil || isInvalid(value) {
			return value
		}
		defer func() {
			if r := recover(); r != nil {
				out = &invalid{origin: s, value: value, err: recoverError(r)}
			}
		}()
		if v, ok := coerce(value); ok {
			return v
		}
		return &invalid{origin: s, value: value}
	}
	return Chain[T]{rules: []Rule{s}, stop: true}
}

func coerceString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), !math.IsNaN(float64(n))
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil && !math.IsNaN(f)
	}
	return 0, false
}

func coerceInteger(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), uint64(n) <= math.MaxInt64
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), n <= math.MaxInt64
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	f, ok := coerceNumber(v)
	if !ok || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func coerceBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return parsed, err == nil
	}
	return false, false
}

func coerceUUID(v any) (uuid.UUID, bool) {
	switch id := v.(type) {
	case uuid.UUID:
		return id, true
	case string:
		parsed, err := uuid.Parse(strings.TrimSpace(id))
		return parsed, err == nil
	}
	return uuid.Nil, false
}
