package validator

import (
	"maps"
	"reflect"
	"slices"
)

// asMap returns v as map[string]any. Other maps keyed by strings are copied.
func asMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, m != nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.IsNil() {
		return nil, false
	}

	keyKind := rv.Type().Key().Kind()
	if keyKind != reflect.String && keyKind != reflect.Interface {
		return nil, false
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key()
		if keyKind == reflect.Interface {
			k = k.Elem()
			if k.Kind() != reflect.String {
				return nil, false
			}
		}
		out[k.String()] = iter.Value().Interface()
	}
	return out, true
}

// asList returns v as []any. Other slices and arrays are copied; strings and
// byte slices are not lists.
func asList(v any) ([]any, bool) {
	if l, ok := v.([]any); ok {
		return l, l != nil
	}
	if _, ok := v.([]byte); ok {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return nil, false
		}
	case reflect.Array:
	default:
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// visible hides failed conversions from user callbacks.
func visible(v any) any {
	if iv, ok := v.(*invalid); ok {
		return iv.value
	}
	return v
}

// absent reports nil as well as nil maps, slices and pointers.
func absent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer:
		return rv.IsNil()
	}
	return false
}

// deepVisible replaces failed conversions at any depth of a parsed value with
// their source values. Containers are copied only when something changes.
func deepVisible(v any) any {
	out, _ := unwrapInvalid(v)
	return out
}

func unwrapInvalid(v any) (any, bool) {
	switch c := v.(type) {
	case *invalid:
		return c.value, true
	case map[string]any:
		var out map[string]any
		for k, e := range c {
			if u, changed := unwrapInvalid(e); changed {
				if out == nil {
					out = maps.Clone(c)
				}
				out[k] = u
			}
		}
		if out != nil {
			return out, true
		}
	case []any:
		var out []any
		for i, e := range c {
			if u, changed := unwrapInvalid(e); changed {
				if out == nil {
					out = slices.Clone(c)
				}
				out[i] = u
			}
		}
		if out != nil {
			return out, true
		}
	}
	return v, false
}
