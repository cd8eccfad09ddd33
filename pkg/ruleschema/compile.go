package ruleschema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rulekit/pkg/sanitizer"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Compile builds a rule tree from a YAML schema document.
//
//	type: object
//	properties:
//	  id:    {type: integer, required: true, min: 1}
//	  email: {type: string, transforms: [trim, lower], format: email}
//	  tags:
//	    type: array
//	    items: {type: string, maxLength: 20}
//	    skipInvalid: true
func Compile(data []byte) (validator.Rule, error) {
	var s Schema
	if err := decodeStrict(data, &s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidSchema)
		}
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	return Build(&s)
}

// decodeStrict decodes YAML rejecting fields Schema does not declare.
func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}

// decodeNode decodes a property schema as strictly as a whole document;
// yaml.Node.Decode ignores unknown fields.
func decodeNode(node *yaml.Node, out any) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	return decodeStrict(data, out)
}

// Build turns a decoded schema into a rule tree.
func Build(s *Schema) (validator.Rule, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: schema is nil", ErrInvalidSchema)
	}
	return build(s, "")
}

func build(s *Schema, path string) (validator.Rule, error) {
	switch strings.ToLower(s.Type) {
	case "", "any":
		return buildAny(s), nil
	case "string":
		return buildString(s, path)
	case "number":
		return buildNumber(s, path)
	case "integer":
		return buildInteger(s), nil
	case "boolean", "bool":
		return optional(s, validator.Bool(s.opts(MsgType)...)), nil
	case "uuid":
		c := validator.UUID(s.opts(MsgType)...)
		if s.NotEmpty {
			c = c.With(validator.NonNilUUID(), s.opts(MsgNotEmpty)...)
		}
		return optional(s, c), nil
	case "time":
		layout := s.Layout
		if layout == "" {
			layout = time.RFC3339
		}
		return optional(s, validator.Time(layout, s.opts(MsgType)...)), nil
	case "object":
		return buildObject(s, path)
	case "array":
		return buildArray(s, path)
	case "hash":
		return buildHash(s, path)
	default:
		return nil, fmt.Errorf("%w: %q at %s", ErrUnknownType, s.Type, label(path))
	}
}

// opts returns the options of a check: its custom message, if any, and
// Continue when the schema collects every failure.
func (s *Schema) opts(key string) []validator.Option {
	var opts []validator.Option
	if msg := s.Messages[key]; msg != "" {
		opts = append(opts, validator.Message(msg))
	}
	if s.CollectAll {
		opts = append(opts, validator.Continue())
	}
	return opts
}

func optional[T any](s *Schema, c validator.Chain[T]) validator.Chain[T] {
	if s.Required {
		c = c.Required(s.opts(MsgRequired)...)
	}
	return c
}

func buildAny(s *Schema) validator.Rule {
	c := validator.Any()
	if s.NotEmpty {
		c = c.NotEmpty(s.opts(MsgNotEmpty)...)
	}
	return optional(s, c)
}

func buildString(s *Schema, path string) (validator.Rule, error) {
	c := validator.String(s.opts(MsgType)...)

	if len(s.Transforms) > 0 {
		fns := make([]func(string) string, 0, len(s.Transforms))
		for _, name := range s.Transforms {
			fn, ok := sanitizer.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("%w: %q at %s", ErrUnknownTransform, name, label(path))
			}
			fns = append(fns, fn)
		}
		c = c.Transform(validator.Sanitize(fns...))
	}
	if s.NotEmpty {
		c = c.NotEmpty(s.opts(MsgNotEmpty)...)
	}
	if s.MinLength != nil {
		c = c.With(validator.MinLen(*s.MinLength), s.opts(MsgMinLength)...)
	}
	if s.MaxLength != nil {
		c = c.With(validator.MaxLen(*s.MaxLength), s.opts(MsgMaxLength)...)
	}
	if s.Pattern != "" {
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w at %s: %w", ErrInvalidPattern, label(path), err)
		}
		c = c.With(validator.Matches(re, ""), s.opts(MsgPattern)...)
	}
	if s.Format != "" {
		step, err := format(s.Format)
		if err != nil {
			return nil, fmt.Errorf("%w at %s", err, label(path))
		}
		c = c.With(step, s.opts(MsgFormat)...)
	}
	if len(s.OneOf) > 0 {
		c = c.With(validator.OneOf(s.OneOf...), s.opts(MsgOneOf)...)
	}
	return optional(s, c), nil
}

func format(name string) (validator.Step[string], error) {
	switch strings.ToLower(name) {
	case "email":
		return validator.Email(), nil
	case "url":
		return validator.URL(), nil
	case "phone":
		return validator.Phone(), nil
	case "ip":
		return validator.IP(), nil
	case "uuid":
		return validator.UUIDString(), nil
	case "alpha":
		return validator.Alpha(), nil
	case "alphanumeric":
		return validator.Alphanumeric(), nil
	case "numeric":
		return validator.NumericString(), nil
	}
	return validator.Step[string]{}, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

func buildNumber(s *Schema, path string) (validator.Rule, error) {
	c := validator.Number(s.opts(MsgType)...)
	if s.Round != nil {
		if *s.Round < 0 {
			return nil, fmt.Errorf("%w: negative round at %s", ErrInvalidSchema, label(path))
		}
		c = c.Transform(validator.Round(*s.Round))
	}
	if s.Min != nil {
		c = c.With(validator.Min(*s.Min), s.opts(MsgMin)...)
	}
	if s.Max != nil {
		c = c.With(validator.Max(*s.Max), s.opts(MsgMax)...)
	}
	return optional(s, c), nil
}

func buildInteger(s *Schema) validator.Rule {
	c := validator.Integer(s.opts(MsgType)...)
	if s.Min != nil {
		c = c.With(validator.Min(int64(math.Ceil(*s.Min))), s.opts(MsgMin)...)
	}
	if s.Max != nil {
		c = c.With(validator.Max(int64(math.Floor(*s.Max))), s.opts(MsgMax)...)
	}
	return optional(s, c)
}

func buildObject(s *Schema, path string) (validator.Rule, error) {
	var props []validator.Property

	switch s.Properties.Kind {
	case 0:
	case yaml.MappingNode:
		content := s.Properties.Content
		for i := 0; i+1 < len(content); i += 2 {
			name := content[i].Value
			if name == "" {
				return nil, fmt.Errorf("%w: empty property name at %s", ErrInvalidSchema, label(path))
			}
			var child Schema
			if err := decodeNode(content[i+1], &child); err != nil {
				return nil, errors.Join(fmt.Errorf("%w at %s", ErrInvalidSchema, label(join(path, name))), err)
			}
			rule, err := build(&child, join(path, name))
			if err != nil {
				return nil, err
			}
			props = append(props, validator.Prop(name, rule))
		}
	default:
		return nil, fmt.Errorf("%w: properties must be a mapping at %s", ErrInvalidSchema, label(path))
	}

	r := validator.Object(props...)
	if msg := s.Messages[MsgType]; msg != "" {
		r = r.InvalidMessage(msg)
	}
	if s.Expandable {
		r = r.Expandable()
	}
	if s.Required {
		r = r.Required(s.opts(MsgRequired)...)
	}
	return r, nil
}

func buildArray(s *Schema, path string) (validator.Rule, error) {
	elem, err := buildItems(s, path+"[]")
	if err != nil {
		return nil, err
	}

	r := validator.Array(elem)
	if msg := s.Messages[MsgType]; msg != "" {
		r = r.InvalidMessage(msg)
	}
	if s.SkipInvalid {
		r = r.SkipInvalidElements()
	}
	if s.NotEmpty {
		r = r.MinItems(1, s.opts(MsgNotEmpty)...)
	}
	if s.MinItems != nil {
		r = r.MinItems(*s.MinItems, s.opts(MsgMinItems)...)
	}
	if s.MaxItems != nil {
		r = r.MaxItems(*s.MaxItems, s.opts(MsgMaxItems)...)
	}
	if s.Required {
		r = r.Required(s.opts(MsgRequired)...)
	}
	return r, nil
}

func buildHash(s *Schema, path string) (validator.Rule, error) {
	elem, err := buildItems(s, join(path, "*"))
	if err != nil {
		return nil, err
	}

	r := validator.Hash(elem)
	if msg := s.Messages[MsgType]; msg != "" {
		r = r.InvalidMessage(msg)
	}
	if s.Filter != "" {
		re, err := regexp.Compile(s.Filter)
		if err != nil {
			return nil, fmt.Errorf("%w at %s: %w", ErrInvalidPattern, label(path), err)
		}
		r = r.Filter(re.MatchString)
	}
	if s.SkipInvalid {
		r = r.SkipInvalidElements()
	}
	if s.NotEmpty {
		r = r.MinKeys(1, s.opts(MsgNotEmpty)...)
	}
	if s.MinItems != nil {
		r = r.MinKeys(*s.MinItems, s.opts(MsgMinItems)...)
	}
	if s.MaxItems != nil {
		r = r.MaxKeys(*s.MaxItems, s.opts(MsgMaxItems)...)
	}
	if s.Required {
		r = r.Required(s.opts(MsgRequired)...)
	}
	return r, nil
}

func buildItems(s *Schema, path string) (validator.Rule, error) {
	if s.Items == nil {
		return nil, fmt.Errorf("%w at %s", ErrMissingItems, label(path))
	}
	return build(s.Items, path)
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func label(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}
