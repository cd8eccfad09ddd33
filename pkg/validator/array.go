package validator

import "slices"

// ArrayRule applies one element rule to every item of a list.
type ArrayRule struct {
	enclosing
	body arrayBody
}

// Array builds a rule for list values. Any Go slice is accepted and parsed
// into []any.
func Array(elem Rule) ArrayRule {
	if elem == nil {
		panic(ErrNilRule)
	}
	body := arrayBody{elem: elem, message: builtin(KindArray, "")}
	return ArrayRule{enclosing: enclosing{main: body, stop: true}, body: body}
}

// Filter drops the parsed elements keep rejects before they are validated.
// Dropped elements never report errors.
func (r ArrayRule) Filter(keep func(elem any) bool) ArrayRule {
	if keep == nil {
		panic(ErrNilRule)
	}
	r.body.filter = keep
	r.main = r.body
	return r
}

// SkipInvalidElements drops elements that fail validation instead of failing
// the array. Their errors are discarded.
func (r ArrayRule) SkipInvalidElements() ArrayRule {
	r.body.skipInvalid = true
	r.main = r.body
	return r
}

// InvalidMessage overrides the message reported for values that are not lists.
func (r ArrayRule) InvalidMessage(msg string) ArrayRule {
	r.body.message = builtin(KindArray, msg)
	r.main = r.body
	return r
}

func (r ArrayRule) Required(opts ...Option) ArrayRule {
	r.enclosing = r.required(applyOptions(opts))
	return r
}

// Before adds a check on the parsed list. It sees every element, including
// the ones Filter or SkipInvalidElements will drop.
func (r ArrayRule) Before(fn func(value []any) bool, opts ...Option) ArrayRule {
	r.enclosing = r.addBefore(predicate(fn, opts))
	return r
}

// After adds a check on the list left after filtering.
func (r ArrayRule) After(fn func(value []any) bool, opts ...Option) ArrayRule {
	r.enclosing = r.addAfter(predicate(fn, opts))
	return r
}

func (r ArrayRule) BeforeRule(rule Rule) ArrayRule {
	r.enclosing = r.addBefore(rule)
	return r
}

func (r ArrayRule) AfterRule(rule Rule) ArrayRule {
	r.enclosing = r.addAfter(rule)
	return r
}

func (r ArrayRule) StopOnFail(stop bool) ArrayRule {
	r.stop = stop
	return r
}

type arrayBody struct {
	elem        Rule
	filter      func(elem any) bool
	skipInvalid bool
	message     text
}

func (b arrayBody) StopOnFailure() bool { return true }

// Parse converts every element and keeps all of them, so error paths can
// use source indexes. Filtering happens during validation.
func (b arrayBody) Parse(value, _, root any) any {
	src, ok := asList(value)
	if !ok {
		return value
	}
	out := make([]any, len(src))
	for i, v := range src {
		out[i] = b.elem.Parse(v, src, root)
	}
	return out
}

// Validate walks the list by source index while index tracks the position
// of the same element in the shrinking result. Each element reports into a
// buffer that is committed or discarded once its outcome is known.
func (b arrayBody) Validate(vc *Context, value *any, _, root any, done func(ok bool)) {
	if absent(*value) {
		done(true)
		return
	}
	items, ok := asList(*value)
	if !ok {
		vc.report(b.message)
		done(false)
		return
	}

	result := items
	index := 0
	overall := true
	walk(len(items), func(src int, next func(halt bool)) {
		elem := result[index]
		if b.filter != nil && !safeCheck(func() bool { return b.filter(visible(elem)) }) {
			result = slices.Delete(result, index, index+1)
			next(false)
			return
		}

		ectx := vc.Index(src).BufferErrors()
		cell := elem
		b.elem.Validate(ectx, &cell, result, root, once(func(ok bool) {
			result[index] = cell
			switch {
			case b.skipInvalid && !ok:
				result = slices.Delete(result, index, index+1)
			case b.skipInvalid:
				ectx.FlushErrors()
				index++
			default:
				ectx.FlushErrors()
				if !ok {
					overall = false
				}
				index++
			}
			next(false)
		}))
	}, func() {
		*value = result
		done(overall)
	})
}
