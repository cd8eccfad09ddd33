package validator

import (
	"maps"
	"slices"
)

// HashRule applies one element rule to every value of a string-keyed map.
type HashRule struct {
	enclosing
	body hashBody
}

// Hash builds a rule for maps with runtime keys. Keys are visited in
// lexical order.
func Hash(elem Rule) HashRule {
	if elem == nil {
		panic(ErrNilRule)
	}
	body := hashBody{elem: elem, message: builtin(KindHash, "")}
	return HashRule{enclosing: enclosing{main: body, stop: true}, body: body}
}

// Filter keeps only the keys accepted by keep, both when parsing and when
// validating. Rejected keys are never validated.
func (r HashRule) Filter(keep func(key string) bool) HashRule {
	if keep == nil {
		panic(ErrNilRule)
	}
	r.body.filter = keep
	r.main = r.body
	return r
}

// SkipInvalidElements removes keys whose value fails validation instead of
// failing the hash. Errors of removed keys are still reported at their path.
func (r HashRule) SkipInvalidElements() HashRule {
	r.body.skipInvalid = true
	r.main = r.body
	return r
}

// InvalidMessage overrides the message reported for values that are not maps.
func (r HashRule) InvalidMessage(msg string) HashRule {
	r.body.message = builtin(KindHash, msg)
	r.main = r.body
	return r
}

func (r HashRule) Required(opts ...Option) HashRule {
	r.enclosing = r.required(applyOptions(opts))
	return r
}

func (r HashRule) Before(fn func(value map[string]any) bool, opts ...Option) HashRule {
	r.enclosing = r.addBefore(predicate(fn, opts))
	return r
}

func (r HashRule) After(fn func(value map[string]any) bool, opts ...Option) HashRule {
	r.enclosing = r.addAfter(predicate(fn, opts))
	return r
}

func (r HashRule) BeforeRule(rule Rule) HashRule {
	r.enclosing = r.addBefore(rule)
	return r
}

func (r HashRule) AfterRule(rule Rule) HashRule {
	r.enclosing = r.addAfter(rule)
	return r
}

func (r HashRule) StopOnFail(stop bool) HashRule {
	r.stop = stop
	return r
}

type hashBody struct {
	elem        Rule
	filter      func(key string) bool
	skipInvalid bool
	message     text
}

func (b hashBody) StopOnFailure() bool { return true }

func (b hashBody) keep(key string) bool {
	return b.filter == nil || safeCheck(func() bool { return b.filter(key) })
}

func (b hashBody) Parse(value, _, root any) any {
	src, ok := asMap(value)
	if !ok {
		return value
	}
	out := make(map[string]any, len(src))
	for k, v := range src {
		if b.keep(k) {
			out[k] = b.elem.Parse(v, src, root)
		}
	}
	return out
}

func (b hashBody) Validate(vc *Context, value *any, _, root any, done func(ok bool)) {
	if absent(*value) {
		done(true)
		return
	}
	m, ok := asMap(*value)
	if !ok {
		vc.report(b.message)
		done(false)
		return
	}
	*value = m

	var keys []string
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if b.keep(k) {
			keys = append(keys, k)
		} else {
			delete(m, k)
		}
	}

	overall := true
	walk(len(keys), func(i int, next func(halt bool)) {
		key := keys[i]
		cell := m[key]
		b.elem.Validate(vc.Property(key), &cell, m, root, once(func(ok bool) {
			switch {
			case !ok && b.skipInvalid:
				delete(m, key)
			case !ok:
				m[key] = cell
				overall = false
			default:
				m[key] = cell
			}
			next(false)
		}))
	}, func() {
		done(overall)
	})
}
