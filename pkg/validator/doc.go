// Package validator builds validators for dynamic, loosely typed values such
// as decoded JSON or YAML documents, and converts those values while checking
// them.
//
// A validator is a tree of Rule values. Each rule first parses its input into
// a converted value without reporting anything, then validates the converted
// value, reporting messages at a path ("items[2].id") and finishing through a
// completion callback. Callbacks may fire before Validate returns or later
// from another goroutine; rules that look something up can do so without
// blocking the caller.
//
// # Building Blocks
//
//   - Chain[T]   – ordered elementary checks over one value (String, Number, ...)
//   - ObjectRule – fixed set of named properties
//   - ArrayRule  – one element rule for every item of a list
//   - HashRule   – one element rule for every value of a map with runtime keys
//   - Runner     – runs a pipeline of rules and collects Errors
//
// Within a chain a failing step stops the chain unless it was added with
// Continue. Required always runs first. Absent values pass every step except
// Required.
//
// # Usage
//
//	rule := validator.Object(
//	    validator.Prop("id", validator.Integer().Required().With(validator.Positive[int64]())),
//	    validator.Prop("email", validator.String().Transform(validator.Trim).With(validator.Email())),
//	    validator.Prop("tags", validator.Array(validator.String().NotEmpty()).SkipInvalidElements()),
//	)
//
//	value, err := validator.Validate(ctx, input, rule)
//	if errs := validator.ExtractErrors(err); errs != nil {
//	    for _, path := range errs.Fields() {
//	        // errs.Get(path) holds the messages in report order
//	    }
//	}
//
// # Error Handling
//
// Invalid input never produces a Go error from a rule; it produces messages
// in Errors. Go errors and panics are reserved for broken rule trees: a nil
// rule, an unnamed property or a custom check without a message.
//
// # Translation
//
// Built-in messages are translated under TranslationKey(kind), for example
// "validation.min_length" with the value "min", when the runner has a
// translator and the context a locale:
//
//	r := validator.NewRunner(validator.WithTranslator(tr))
//	_, err := r.Validate(i18n.SetLocale(ctx, "de"), input, rule)
package validator
