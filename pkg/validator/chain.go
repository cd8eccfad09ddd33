package validator

import (
	"context"
	"slices"

	"github.com/dmitrymomot/rulekit/pkg/async"
)

// Chain is an ordered list of elementary rules over values of type T.
// Builder methods return a new Chain and never modify the receiver, so a
// partially built chain can be shared between rule trees.
type Chain[T any] struct {
	rules []Rule
	stop  bool
}

// Step is a reusable typed check with a default message.
// Values fill the placeholders of the translated message.
type Step[T any] struct {
	Kind    string
	Message string
	Values  map[string]any
	Check   func(value T) bool
}

func (c Chain[T]) with(r Rule) Chain[T] {
	c.rules = append(slices.Clip(c.rules), r)
	return c
}

// Required rejects absent values. The check always runs first, no matter
// where it was added.
func (c Chain[T]) Required(opts ...Option) Chain[T] {
	c.rules = append([]Rule{requiredStep(applyOptions(opts))}, c.rules...)
	return c
}

// NotEmpty rejects empty strings, slices and maps.
func (c Chain[T]) NotEmpty(opts ...Option) Chain[T] {
	return c.with(notEmptyStep(applyOptions(opts)))
}

// Must adds a predicate. It has no default message, so Message is mandatory.
func (c Chain[T]) Must(fn func(value T) bool, opts ...Option) Chain[T] {
	return c.Refine(func(v T, _, _ any) bool { return fn(v) }, opts...)
}

// Refine adds a predicate that can also look at the enclosing and root values.
func (c Chain[T]) Refine(fn func(value T, enclosing, root any) bool, opts ...Option) Chain[T] {
	return c.with(newStep("must", applyOptions(opts), typed(fn)))
}

// With adds a typed step. An explicit Message wins over the step's own.
func (c Chain[T]) With(s Step[T], opts ...Option) Chain[T] {
	if s.Check == nil {
		panic(ErrNilRule)
	}
	o := applyOptions(append([]Option{builtinMessage(s.Kind, s.Message, s.Values)}, opts...))
	check := s.Check
	return c.with(newStep(s.Kind, o, typed(func(v T, _, _ any) bool { return check(v) })))
}

// Transform adds a parse step. An error, a panic or a nil result turns into a
// validation failure reported by this step.
func (c Chain[T]) Transform(fn func(value T) (T, error), opts ...Option) Chain[T] {
	s := newStep(KindTransform, applyOptions(opts), nil)
	s.verify = func(_ *Context, value, _, _ any, done func(bool)) {
		done(rejectsOwnFailure(s)(value, nil, nil))
	}
	s.parse = func(value, _, _ any) (out any) {
		if value == nil || isInvalid(value) {
			return value
		}
		v, ok := value.(T)
		if !ok {
			return value
		}
		defer func() {
			if r := recover(); r != nil {
				out = &invalid{origin: s, value: value, err: recoverError(r)}
			}
		}()
		res, err := fn(v)
		if err != nil {
			return &invalid{origin: s, value: value, err: err}
		}
		if any(res) == nil {
			return &invalid{origin: s, value: value}
		}
		return res
	}
	return c.with(s)
}

// MustAsync adds a predicate that may block, such as a lookup in an external
// store. It runs off the caller's goroutine with the run's context; the chain
// resumes when it returns. An error counts as a failure.
func (c Chain[T]) MustAsync(fn func(ctx context.Context, value T) (bool, error), opts ...Option) Chain[T] {
	o := applyOptions(opts)
	s := &step{
		kind:    "must",
		message: o.resolve("must"),
		stop:    o.stopOnFailure(),
	}
	s.verify = func(vc *Context, value, _, _ any, done func(bool)) {
		if value == nil {
			done(true)
			return
		}
		v, ok := value.(T)
		if !ok || isInvalid(value) {
			done(false)
			return
		}
		future := async.Async(vc.Ctx(), v, func(ctx context.Context, v T) (res bool, err error) {
			defer func() {
				if r := recover(); r != nil {
					res, err = false, recoverError(r)
				}
			}()
			return fn(ctx, v)
		})
		go func() {
			res, err := future.Await()
			done(err == nil && res)
		}()
	}
	return c.with(s)
}

// StopOnFail sets whether a failure of the whole chain stops the list it belongs to.
func (c Chain[T]) StopOnFail(stop bool) Chain[T] {
	c.stop = stop
	return c
}

func (c Chain[T]) StopOnFailure() bool { return c.stop }

func (c Chain[T]) Parse(value, enclosing, root any) any {
	for _, r := range c.rules {
		value = r.Parse(value, enclosing, root)
	}
	return value
}

// Validate runs the chain's steps. A value another rule failed to convert,
// as handed on between the rules of a Run, has already been reported there
// and passes without running any step.
func (c Chain[T]) Validate(vc *Context, value *any, enclosing, root any, done func(ok bool)) {
	if iv, ok := (*value).(*invalid); ok && !c.owns(iv) {
		done(true)
		return
	}
	runChain(c.rules, vc, value, enclosing, root, once(done))
}

// runChain validates rules one at a time. A failing rule that stops on
// failure ends the list; otherwise every outcome is folded into the result.
func runChain(rules []Rule, vc *Context, value *any, enclosing, root any, done func(ok bool)) {
	overall := true
	walk(len(rules), func(i int, next func(halt bool)) {
		r := rules[i]
		r.Validate(vc, value, enclosing, root, once(func(ok bool) {
			if ok {
				next(false)
				return
			}
			overall = false
			next(r.StopOnFailure())
		}))
	}, func() {
		done(overall)
	})
}

func (c Chain[T]) owns(iv *invalid) bool {
	return slices.ContainsFunc(c.rules, func(r Rule) bool {
		s, ok := r.(*step)
		return ok && s == iv.origin
	})
}
