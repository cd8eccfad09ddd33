package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/sanitizer"
)

func TestStringTransforms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fn       func(string) string
		input    string
		expected string
	}{
		{"trim", sanitizer.Trim, "  hello  ", "hello"},
		{"lower", sanitizer.ToLower, "HeLLo", "hello"},
		{"upper", sanitizer.ToUpper, "HeLLo", "HELLO"},
		{"title", sanitizer.ToTitle, "hello wORLD", "Hello World"},
		{"kebab", sanitizer.ToKebabCase, " Hello, World! ", "hello-world"},
		{"snake", sanitizer.ToSnakeCase, "Hello  World", "hello_world"},
		{"collapse", sanitizer.RemoveExtraWhitespace, " a \t b\n c ", "a b c"},
		{"control chars", sanitizer.RemoveControlChars, "a\x00b\tc", "ab\tc"},
		{"strip html", sanitizer.StripHTML, "<b>Tom &amp; Jerry</b>", "Tom & Jerry"},
		{"digits", sanitizer.KeepDigits, "+1 (555) 010-99", "155501099"},
		{"single line", sanitizer.SingleLine, "one\r\ntwo\nthree", "one two three"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.fn(tt.input))
		})
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	fn, ok := sanitizer.Lookup(" Trim ")
	assert.True(t, ok)
	assert.Equal(t, "x", fn(" x "))

	_, ok = sanitizer.Lookup("reverse")
	assert.False(t, ok)
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.RemoveExtraWhitespace, sanitizer.ToLower)
	assert.Equal(t, "john smith", clean("  JOHN   Smith "))
	assert.Equal(t, "abc", sanitizer.Apply("abc"))
}

func TestNumeric(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, sanitizer.Clamp(15, 0, 10))
	assert.Equal(t, 0, sanitizer.Clamp(-5, 0, 10))
	assert.Equal(t, 5.5, sanitizer.Clamp(5.5, 0.0, 10.0))
	assert.Equal(t, 3.14, sanitizer.RoundToDecimalPlaces(3.14159, 2))
	assert.Equal(t, 3.0, sanitizer.RoundToDecimalPlaces(3.4, -1))
}
