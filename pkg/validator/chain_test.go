package validator_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestChainOrdering(t *testing.T) {
	t.Parallel()

	t.Run("failing step stops the chain by default", func(t *testing.T) {
		rule := validator.String().With(validator.MinLen(5)).With(validator.Alpha())

		res := run(t, "a1", rule)
		require.False(t, res.Valid)
		assert.Equal(t, validator.Errors{"": {"must be at least 5 characters long"}}, res.Errors)
	})

	t.Run("continue lets later steps report", func(t *testing.T) {
		rule := validator.String().
			With(validator.MinLen(5), validator.Continue()).
			With(validator.Alpha())

		res := run(t, "a1", rule)
		require.False(t, res.Valid)
		assert.Equal(t, []string{
			"must be at least 5 characters long",
			"must contain only letters",
		}, res.Errors.Get(""))
	})

	t.Run("required runs first wherever it is added", func(t *testing.T) {
		rule := validator.Any().
			Must(func(any) bool { return false }, validator.Message("never"), validator.Continue()).
			Required(validator.Continue())

		res := run(t, map[string]any(nil), rule)
		require.False(t, res.Valid)
		assert.Equal(t, []string{"Value is required", "never"}, res.Errors.Get(""))
	})

	t.Run("absent values pass everything but required", func(t *testing.T) {
		rule := validator.String().With(validator.MinLen(3)).With(validator.Email()).NotEmpty()

		res := run(t, nil, rule)
		assert.True(t, res.Valid)
		assert.Nil(t, res.Value)

		res = run(t, nil, rule.Required(validator.Message("name is required")))
		assert.Equal(t, validator.Errors{"": {"name is required"}}, res.Errors)
	})

	t.Run("not empty rejects empty values", func(t *testing.T) {
		res := run(t, "", validator.String().NotEmpty())
		assert.Equal(t, validator.Errors{"": {"Value must not be empty"}}, res.Errors)

		res = run(t, []any{}, validator.Any().NotEmpty(validator.Message("no items")))
		assert.Equal(t, validator.Errors{"": {"no items"}}, res.Errors)
	})
}

func TestChainIsPersistent(t *testing.T) {
	t.Parallel()

	base := validator.String().Required()
	short := base.With(validator.MaxLen(1))
	long := base.With(validator.MinLen(3))

	res := run(t, "ab", short)
	assert.Equal(t, validator.Errors{"": {"must be at most 1 characters long"}}, res.Errors)

	res = run(t, "ab", long)
	assert.Equal(t, validator.Errors{"": {"must be at least 3 characters long"}}, res.Errors)

	res = run(t, "ab", base)
	assert.True(t, res.Valid)
}

func TestChainTransform(t *testing.T) {
	t.Parallel()

	t.Run("converted value reaches the result", func(t *testing.T) {
		rule := validator.String().
			Transform(validator.Trim).
			Transform(validator.Sanitize(strings.ToUpper)).
			With(validator.Len(2))

		res := run(t, "  hi ", rule)
		require.True(t, res.Valid)
		assert.Equal(t, "HI", res.Value)
	})

	t.Run("error becomes a failure of the transform step", func(t *testing.T) {
		rule := validator.String().
			Transform(func(string) (string, error) { return "", errors.New("boom") }).
			With(validator.MinLen(10))

		res := run(t, "abc", rule)
		assert.Equal(t, validator.Errors{"": {"Value could not be converted"}}, res.Errors)
	})

	t.Run("panic becomes a failure with a custom message", func(t *testing.T) {
		rule := validator.String().Transform(func(string) (string, error) {
			panic("unexpected")
		}, validator.Message("cannot normalize"))

		res := run(t, "abc", rule)
		assert.Equal(t, validator.Errors{"": {"cannot normalize"}}, res.Errors)
	})

	t.Run("numbers can be clamped and rounded", func(t *testing.T) {
		rule := validator.Number().Transform(validator.Clamp(0.0, 10.0)).Transform(validator.Round(1))

		assert.Equal(t, 10.0, run(t, 42, rule).Value)
		assert.Equal(t, 3.1, run(t, "3.14", rule).Value)
	})
}

func TestChainRefine(t *testing.T) {
	t.Parallel()

	rule := validator.Object(
		validator.Prop("password", validator.String()),
		validator.Prop("confirm", validator.String().Refine(func(v string, enclosing, _ any) bool {
			obj, ok := enclosing.(map[string]any)
			return ok && obj["password"] == v
		}, validator.Message("passwords do not match"))),
	)

	res := run(t, map[string]any{"password": "secret", "confirm": "secret"}, rule)
	assert.True(t, res.Valid)

	res = run(t, map[string]any{"password": "secret", "confirm": "other"}, rule)
	assert.Equal(t, validator.Errors{"confirm": {"passwords do not match"}}, res.Errors)
}

func TestChainConfiguration(t *testing.T) {
	t.Parallel()

	t.Run("must without a message panics", func(t *testing.T) {
		assert.PanicsWithError(t, `validator: no error message for rule: kind "must"`, func() {
			validator.Integer().Must(func(int64) bool { return true })
		})
	})

	t.Run("step without a check panics", func(t *testing.T) {
		assert.PanicsWithValue(t, validator.ErrNilRule, func() {
			validator.String().With(validator.Step[string]{Kind: "x", Message: "x"})
		})
	})

	t.Run("explicit message wins over the step message", func(t *testing.T) {
		res := run(t, "x", validator.String().With(validator.MinLen(2), validator.Message("too short")))
		assert.Equal(t, validator.Errors{"": {"too short"}}, res.Errors)
	})

	t.Run("custom step without any message panics", func(t *testing.T) {
		assert.Panics(t, func() {
			validator.String().With(validator.Step[string]{Kind: "custom", Check: func(string) bool { return true }})
		})
	})
}

func TestScalarConversions(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name     string
		rule     validator.Rule
		input    any
		expected any
		errors   validator.Errors
	}{
		{"string", validator.String(), "abc", "abc", nil},
		{"string rejects numbers", validator.String(), 5, nil, validator.Errors{"": {"Value is not a valid string"}}},
		{"number from int", validator.Number(), 3, 3.0, nil},
		{"number from string", validator.Number(), " 12.5 ", 12.5, nil},
		{"number rejects text", validator.Number(), "sad", nil, validator.Errors{"": {"Value is not a valid number"}}},
		{"number rejects empty string", validator.Number(), "", nil, validator.Errors{"": {"Value is not a valid number"}}},
		{"integer from float", validator.Integer(), 42.0, int64(42), nil},
		{"integer from string", validator.Integer(), "42", int64(42), nil},
		{"integer rejects fractions", validator.Integer(), 2.5, nil, validator.Errors{"": {"Value is not a valid integer"}}},
		{"bool", validator.Bool(), "true", true, nil},
		{"bool rejects text", validator.Bool(), "maybe", nil, validator.Errors{"": {"Value is not a valid boolean"}}},
		{"uuid", validator.UUID(), id.String(), id, nil},
		{"uuid rejects text", validator.UUID(), "nope", nil, validator.Errors{"": {"Value is not a valid UUID"}}},
		{
			"time", validator.Time(time.DateOnly), "2024-02-29",
			time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), nil,
		},
		{"time rejects bad dates", validator.Time(time.DateOnly), "2023-02-29", nil, validator.Errors{"": {"Value is not a valid time"}}},
		{"custom message", validator.Number(validator.Message("age must be a number")), "x", nil, validator.Errors{"": {"age must be a number"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.input, tt.rule)
			assert.Equal(t, tt.errors == nil, res.Valid)
			assert.Equal(t, tt.expected, res.Value)
			assert.Equal(t, tt.errors, res.Errors)
		})
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()

	type level int
	levels := map[string]level{"low": 1, "high": 2}

	rule := validator.Convert("level", func(v any) (level, bool) {
		s, _ := v.(string)
		l, ok := levels[s]
		return l, ok
	}, validator.Message("unknown level")).With(validator.Min[level](2))

	assert.Equal(t, level(2), run(t, "high", rule).Value)
	assert.Equal(t, validator.Errors{"": {"unknown level"}}, run(t, "mid", rule).Errors)
	assert.Equal(t, validator.Errors{"": {"must be at least 2"}}, run(t, "low", rule).Errors)
}
