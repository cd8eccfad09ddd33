package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestObject(t *testing.T) {
	t.Parallel()

	t.Run("before checks report at the object path", func(t *testing.T) {
		rule := validator.Object(
			validator.Prop("id", validator.Number().Must(func(v float64) bool { return v > 0 }, validator.Message("> 0"))),
		).
			Before(func(o map[string]any) bool { return o["id"].(float64) > 50 }, validator.Message("> 50"), validator.Continue()).
			Before(func(o map[string]any) bool { return o["id"].(float64) > 100 }, validator.Message("> 100"), validator.Continue())

		res := run(t, map[string]any{"id": -5}, rule)
		require.False(t, res.Valid)
		assert.Equal(t, validator.Errors{
			"":   {"> 50", "> 100"},
			"id": {"> 0"},
		}, res.Errors)
	})

	t.Run("failing before check stops the object by default", func(t *testing.T) {
		rule := validator.Object(
			validator.Prop("id", validator.Number().Must(func(v float64) bool { return v > 0 }, validator.Message("> 0"))),
		).Before(func(o map[string]any) bool { return len(o) > 1 }, validator.Message("too few fields"))

		res := run(t, map[string]any{"id": -5}, rule)
		assert.Equal(t, validator.Errors{"": {"too few fields"}}, res.Errors)
	})

	t.Run("every property is validated", func(t *testing.T) {
		rule := validator.Object(
			validator.Prop("name", validator.String().Required()),
			validator.Prop("email", validator.String().With(validator.Email())),
			validator.Prop("age", validator.Integer().With(validator.Min[int64](18))),
		)

		res := run(t, map[string]any{"email": "nope", "age": "12"}, rule)
		assert.Equal(t, validator.Errors{
			"name":  {"Value is required"},
			"email": {"must be a valid email address"},
			"age":   {"must be at least 18"},
		}, res.Errors)
	})

	t.Run("parsed value holds converted declared properties", func(t *testing.T) {
		rule := validator.Object(
			validator.Prop("id", validator.Integer()),
			validator.Prop("name", validator.String().Transform(validator.Trim)),
			validator.Prop("note", validator.String()),
		)

		res := run(t, map[string]any{"id": "7", "name": " Ann ", "extra": true}, rule)
		require.True(t, res.Valid)
		assert.Equal(t, map[string]any{"id": int64(7), "name": "Ann"}, res.Value)
	})

	t.Run("expandable keeps undeclared properties", func(t *testing.T) {
		rule := validator.Object(validator.Prop("id", validator.Integer())).Expandable()

		res := run(t, map[string]any{"id": 7.0, "extra": true}, rule)
		require.True(t, res.Valid)
		assert.Equal(t, map[string]any{"id": int64(7), "extra": true}, res.Value)
	})

	t.Run("nested paths", func(t *testing.T) {
		rule := validator.Object(
			validator.Prop("delivery", validator.Object(
				validator.Prop("address", validator.Object(
					validator.Prop("code", validator.String().With(validator.Len(5))),
				)),
			)),
		)

		res := run(t, map[string]any{
			"delivery": map[string]any{"address": map[string]any{"code": "123"}},
		}, rule)
		assert.Equal(t, validator.Errors{
			"delivery.address.code": {"must be exactly 5 characters long"},
		}, res.Errors)
	})

	t.Run("non-map values are rejected", func(t *testing.T) {
		rule := validator.Object(validator.Prop("id", validator.Integer()))

		res := run(t, "object", rule)
		assert.Equal(t, validator.Errors{"": {"Value is not a valid object"}}, res.Errors)

		res = run(t, []any{1}, rule.InvalidMessage("expected an order"))
		assert.Equal(t, validator.Errors{"": {"expected an order"}}, res.Errors)
	})

	t.Run("absent object passes unless required", func(t *testing.T) {
		rule := validator.Object(validator.Prop("id", validator.Integer().Required()))

		res := run(t, nil, rule)
		assert.True(t, res.Valid)

		res = run(t, nil, rule.Required())
		assert.Equal(t, validator.Errors{"": {"Value is required"}}, res.Errors)
	})

	t.Run("maps with other value types are accepted", func(t *testing.T) {
		rule := validator.Object(validator.Prop("id", validator.Integer()))

		res := run(t, map[string]int{"id": 3}, rule)
		require.True(t, res.Valid)
		assert.Equal(t, map[string]any{"id": int64(3)}, res.Value)
	})

	t.Run("after checks see converted properties", func(t *testing.T) {
		rule := validator.Object(
			validator.Prop("min", validator.Number()),
			validator.Prop("max", validator.Number()),
		).After(func(o map[string]any) bool {
			return o["min"].(float64) <= o["max"].(float64)
		}, validator.Message("min must not exceed max"))

		assert.True(t, run(t, map[string]any{"min": "1", "max": 2}, rule).Valid)

		res := run(t, map[string]any{"min": "3", "max": 2}, rule)
		assert.Equal(t, validator.Errors{"": {"min must not exceed max"}}, res.Errors)
	})

	t.Run("before checks see source values of failed conversions", func(t *testing.T) {
		rule := validator.Object(validator.Prop("age", validator.Integer())).
			Before(func(o map[string]any) bool {
				_, text := o["age"].(string)
				return !text
			}, validator.Message("age sent as text"), validator.Continue())

		res := run(t, map[string]any{"age": "x"}, rule)
		assert.Equal(t, validator.Errors{
			"":    {"age sent as text"},
			"age": {"Value is not a valid integer"},
		}, res.Errors)
	})

	t.Run("before rules validate their own conversion", func(t *testing.T) {
		rule := validator.Object(validator.Prop("id", validator.Any())).
			BeforeRule(validator.Object(validator.Prop("id", validator.Number())))

		res := run(t, map[string]any{"id": "abc"}, rule)
		require.False(t, res.Valid)
		assert.Equal(t, validator.Errors{"id": {"Value is not a valid number"}}, res.Errors)

		res = run(t, map[string]any{"id": "5"}, rule)
		require.True(t, res.Valid)
		assert.Equal(t, map[string]any{"id": "5"}, res.Value)
	})

	t.Run("before and after rules leave the parsed value alone", func(t *testing.T) {
		rule := validator.Object(validator.Prop("a", validator.Any())).
			Expandable().
			BeforeRule(validator.Hash(validator.Any()).Filter(func(k string) bool { return k == "a" })).
			AfterRule(validator.Hash(validator.Number()).SkipInvalidElements())

		res := run(t, map[string]any{"a": 1, "b": "x"}, rule)
		require.True(t, res.Valid)
		assert.Equal(t, map[string]any{"a": 1, "b": "x"}, res.Value)
	})

	t.Run("invalid construction panics", func(t *testing.T) {
		assert.PanicsWithValue(t, validator.ErrEmptyProperty, func() {
			validator.Object(validator.Prop("", validator.String()))
		})
		assert.PanicsWithValue(t, validator.ErrNilRule, func() {
			validator.Object(validator.Prop("id", nil))
		})
		assert.PanicsWithValue(t, validator.ErrNilRule, func() {
			validator.Object().BeforeRule(nil)
		})
	})
}
