package validator

import (
	"fmt"
	"reflect"
)

// Rule is the unit every validator is built from.
//
// Parse converts the input and never reports errors. Validate reports through
// vc and finishes by calling done exactly once. value points at the parsed
// value; structural rules may replace it (filtered arrays, dropped keys) and
// later rules observe the replacement. enclosing is the value that contains
// the current one and root is the value the run started from.
type Rule interface {
	StopOnFailure() bool
	Parse(value, enclosing, root any) any
	Validate(vc *Context, value *any, enclosing, root any, done func(ok bool))
}

// Option tunes a generated rule.
type Option func(*options)

type options struct {
	message string
	stop    *bool

	// key and values translate a built-in message; a Message clears them.
	key    string
	values map[string]any
}

// Message overrides the error message of a rule. Custom messages are
// reported as given, never translated.
func Message(msg string) Option {
	return func(o *options) {
		o.message = msg
		o.key, o.values = "", nil
	}
}

// builtinMessage sets a default message translated under kind.
func builtinMessage(kind, msg string, values map[string]any) Option {
	return func(o *options) {
		o.message = msg
		o.key, o.values = TranslationKey(kind), values
	}
}

// Continue lets the following rules run when this one fails.
func Continue() Option {
	return func(o *options) {
		stop := false
		o.stop = &stop
	}
}

// Stop skips the following rules when this one fails. It is the default.
func Stop() Option {
	return func(o *options) {
		stop := true
		o.stop = &stop
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o options) stopOnFailure() bool {
	if o.stop == nil {
		return true
	}
	return *o.stop
}

// invalid stands in for a value a conversion step failed to produce.
// Only the step named by origin reports it.
type invalid struct {
	origin *step
	value  any
	err    error
}

func isInvalid(v any) bool {
	_, ok := v.(*invalid)
	return ok
}

// present reports whether v holds something, looking through failed conversions.
func present(v any) bool {
	return !absent(visible(v))
}

// step is an elementary rule of a chain or a before/after list.
type step struct {
	kind    string
	message text
	stop    bool
	parse   func(value, enclosing, root any) any
	verify  func(vc *Context, value, enclosing, root any, done func(ok bool))
}

func (s *step) StopOnFailure() bool { return s.stop }

func (s *step) Parse(value, enclosing, root any) any {
	if s.parse == nil {
		return value
	}
	return s.parse(value, enclosing, root)
}

func (s *step) Validate(vc *Context, value *any, enclosing, root any, done func(ok bool)) {
	done = once(done)
	s.verify(vc, *value, enclosing, root, func(ok bool) {
		if !ok {
			vc.report(s.message)
		}
		done(ok)
	})
}

// newStep builds a step whose outcome is known synchronously.
func newStep(kind string, o options, check func(value, enclosing, root any) bool) *step {
	return &step{
		kind:    kind,
		message: o.resolve(kind),
		stop:    o.stopOnFailure(),
		verify: func(_ *Context, value, enclosing, root any, done func(bool)) {
			done(safeCheck(func() bool { return check(value, enclosing, root) }))
		},
	}
}

// rejectsOwnFailure is the check of conversion steps: the value is fine
// unless this very step failed to produce it.
func rejectsOwnFailure(s *step) func(value, enclosing, root any) bool {
	return func(value, _, _ any) bool {
		iv, ok := value.(*invalid)
		return !ok || iv.origin != s
	}
}

func requiredStep(o options) *step {
	return newStep(KindRequired, o, func(value, _, _ any) bool {
		return present(value)
	})
}

func notEmptyStep(o options) *step {
	return newStep(KindNotEmpty, o, func(value, _, _ any) bool {
		if value == nil || isInvalid(value) {
			return true
		}
		return !isEmpty(value)
	})
}

// typed adapts a typed predicate. Absent values pass, values of another type
// and failed conversions do not.
func typed[T any](fn func(value T, enclosing, root any) bool) func(value, enclosing, root any) bool {
	return func(value, enclosing, root any) bool {
		if value == nil {
			return true
		}
		if isInvalid(value) {
			return false
		}
		v, ok := value.(T)
		if !ok {
			return false
		}
		return fn(v, enclosing, root)
	}
}

func safeCheck(fn func() bool) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return fn()
}

func isEmpty(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func recoverError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
