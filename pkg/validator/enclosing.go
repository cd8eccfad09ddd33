package validator

import "slices"

// enclosing wraps a main rule with rules that run before and after it.
// Only the main rule converts the value; all of them run through the same
// stop-on-failure chain engine. Before and after rules validate their own
// parse of the value, which is thrown away.
type enclosing struct {
	before []Rule
	main   Rule
	after  []Rule
	stop   bool
}

func (e enclosing) required(o options) enclosing {
	e.before = append([]Rule{requiredStep(o)}, e.before...)
	return e
}

func (e enclosing) addBefore(r Rule) enclosing {
	if r == nil {
		panic(ErrNilRule)
	}
	e.before = append(slices.Clip(e.before), r)
	return e
}

func (e enclosing) addAfter(r Rule) enclosing {
	if r == nil {
		panic(ErrNilRule)
	}
	e.after = append(slices.Clip(e.after), r)
	return e
}

func (e enclosing) StopOnFailure() bool { return e.stop }

func (e enclosing) Parse(value, enclosingValue, root any) any {
	return e.main.Parse(value, enclosingValue, root)
}

func (e enclosing) Validate(vc *Context, value *any, enclosingValue, root any, done func(ok bool)) {
	rules := make([]Rule, 0, len(e.before)+1+len(e.after))
	for _, r := range e.before {
		rules = append(rules, detached{r})
	}
	rules = append(rules, e.main)
	for _, r := range e.after {
		rules = append(rules, detached{r})
	}
	runChain(rules, vc, value, enclosingValue, root, once(done))
}

// detached validates a copy of the value parsed by the wrapped rule, so a
// before or after rule neither converts nor filters what the main rule
// produced. Failed conversions of the main rule are shown as source values.
type detached struct {
	Rule
}

func (d detached) Validate(vc *Context, value *any, enclosingValue, root any, done func(ok bool)) {
	cell := d.Rule.Parse(deepVisible(*value), enclosingValue, root)
	d.Rule.Validate(vc, &cell, enclosingValue, root, done)
}

// predicate wraps a typed check as a before/after rule.
func predicate[T any](fn func(value T) bool, opts []Option) Rule {
	if fn == nil {
		panic(ErrNilRule)
	}
	return newStep("must", applyOptions(opts), typed(func(v T, _, _ any) bool { return fn(v) }))
}
