package validator

// Property binds a rule to a named member of an object.
type Property struct {
	Name string
	Rule Rule
}

// Prop declares an object property.
func Prop(name string, rule Rule) Property {
	return Property{Name: name, Rule: rule}
}

// ObjectRule validates a map against a fixed, ordered set of properties.
type ObjectRule struct {
	enclosing
	body objectBody
}

// Object builds a rule for map[string]any values. Properties are parsed and
// validated in declaration order; a failing property does not keep the
// others from being validated.
func Object(props ...Property) ObjectRule {
	for _, p := range props {
		if p.Name == "" {
			panic(ErrEmptyProperty)
		}
		if p.Rule == nil {
			panic(ErrNilRule)
		}
	}
	body := objectBody{
		props:   append([]Property(nil), props...),
		message: builtin(KindObject, ""),
	}
	return ObjectRule{enclosing: enclosing{main: body, stop: true}, body: body}
}

// Expandable keeps source properties the object does not declare.
// By default they are dropped from the parsed value.
func (r ObjectRule) Expandable() ObjectRule {
	r.body.expandable = true
	r.main = r.body
	return r
}

// InvalidMessage overrides the message reported for values that are not objects.
func (r ObjectRule) InvalidMessage(msg string) ObjectRule {
	r.body.message = builtin(KindObject, msg)
	r.main = r.body
	return r
}

func (r ObjectRule) Required(opts ...Option) ObjectRule {
	r.enclosing = r.required(applyOptions(opts))
	return r
}

// Before adds a check on the whole parsed object that runs before its properties.
func (r ObjectRule) Before(fn func(value map[string]any) bool, opts ...Option) ObjectRule {
	r.enclosing = r.addBefore(predicate(fn, opts))
	return r
}

// After adds a check on the whole object that runs after its properties.
func (r ObjectRule) After(fn func(value map[string]any) bool, opts ...Option) ObjectRule {
	r.enclosing = r.addAfter(predicate(fn, opts))
	return r
}

func (r ObjectRule) BeforeRule(rule Rule) ObjectRule {
	r.enclosing = r.addBefore(rule)
	return r
}

func (r ObjectRule) AfterRule(rule Rule) ObjectRule {
	r.enclosing = r.addAfter(rule)
	return r
}

func (r ObjectRule) StopOnFail(stop bool) ObjectRule {
	r.stop = stop
	return r
}

type objectBody struct {
	props      []Property
	expandable bool
	message    text
}

func (b objectBody) StopOnFailure() bool { return true }

func (b objectBody) Parse(value, _, root any) any {
	src, ok := asMap(value)
	if !ok {
		return value
	}

	out := make(map[string]any, len(b.props))
	if b.expandable {
		for k, v := range src {
			out[k] = v
		}
	}
	for _, p := range b.props {
		raw, has := src[p.Name]
		parsed := p.Rule.Parse(raw, src, root)
		if has || parsed != nil {
			out[p.Name] = parsed
		}
	}
	return out
}

func (b objectBody) Validate(vc *Context, value *any, _, root any, done func(ok bool)) {
	if absent(*value) {
		done(true)
		return
	}
	obj, ok := asMap(*value)
	if !ok {
		vc.report(b.message)
		done(false)
		return
	}
	*value = obj

	overall := true
	walk(len(b.props), func(i int, next func(halt bool)) {
		p := b.props[i]
		cell, has := obj[p.Name]
		p.Rule.Validate(vc.Property(p.Name), &cell, obj, root, once(func(ok bool) {
			if has || cell != nil {
				obj[p.Name] = cell
			}
			if !ok {
				overall = false
			}
			next(false)
		}))
	}, func() {
		done(overall)
	})
}
