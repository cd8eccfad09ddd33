package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// run executes rules synchronously and fails the test if done is not called
// exactly once before Run returns.
func run(t *testing.T, value any, rules ...validator.Rule) validator.Result {
	t.Helper()

	var (
		res   validator.Result
		calls int
	)
	err := validator.Run(context.Background(), value, func(r validator.Result) {
		res = r
		calls++
	}, rules...)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	return res
}

// validateRule drives a single rule by hand so reported errors stay visible
// even when the rule succeeds.
func validateRule(t *testing.T, rule validator.Rule, input any) (bool, any, validator.Errors) {
	t.Helper()

	acc := validator.NewAccumulator()
	vc := validator.NewContext(context.Background(), acc, nil)
	value := rule.Parse(input, input, input)

	calls := 0
	var ok bool
	rule.Validate(vc, &value, input, input, func(res bool) {
		ok = res
		calls++
	})
	require.Equal(t, 1, calls)
	return ok, value, acc.Errors()
}
