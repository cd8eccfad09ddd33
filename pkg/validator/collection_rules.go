package validator

import "fmt"

// MinItems checks the number of elements left after filtering.
func (r ArrayRule) MinItems(min int, opts ...Option) ArrayRule {
	opts = append([]Option{builtinMessage("min_items", fmt.Sprintf("must have at least %d items", min), map[string]any{"min": min})}, opts...)
	return r.After(func(v []any) bool { return len(v) >= min }, opts...)
}

// MaxItems checks the number of elements left after filtering.
func (r ArrayRule) MaxItems(max int, opts ...Option) ArrayRule {
	opts = append([]Option{builtinMessage("max_items", fmt.Sprintf("must have at most %d items", max), map[string]any{"max": max})}, opts...)
	return r.After(func(v []any) bool { return len(v) <= max }, opts...)
}

// MinKeys checks the number of keys left after filtering.
func (r HashRule) MinKeys(min int, opts ...Option) HashRule {
	opts = append([]Option{builtinMessage("min_keys", fmt.Sprintf("must have at least %d keys", min), map[string]any{"min": min})}, opts...)
	return r.After(func(v map[string]any) bool { return len(v) >= min }, opts...)
}

// MaxKeys checks the number of keys left after filtering.
func (r HashRule) MaxKeys(max int, opts ...Option) HashRule {
	opts = append([]Option{builtinMessage("max_keys", fmt.Sprintf("must have at most %d keys", max), map[string]any{"max": max})}, opts...)
	return r.After(func(v map[string]any) bool { return len(v) <= max }, opts...)
}

// LenItems requires exactly n elements after filtering.
func (r ArrayRule) LenItems(n int, opts ...Option) ArrayRule {
	opts = append([]Option{builtinMessage("exact_items", fmt.Sprintf("must have exactly %d items", n), map[string]any{"length": n})}, opts...)
	return r.After(func(v []any) bool { return len(v) == n }, opts...)
}
