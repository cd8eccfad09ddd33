// Package sanitizer provides pure transforms for strings and numbers.
//
// Every helper maps a value to a cleaned value and never fails, which makes
// them suitable as parse steps of validator chains:
//
//	name := validator.String().Transform(validator.Sanitize(
//	    sanitizer.Trim,
//	    sanitizer.RemoveExtraWhitespace,
//	    sanitizer.ToTitle,
//	))
//
// Lookup resolves transforms by name for declarative rule descriptions.
//
// Apply and Compose build pipelines out of single-step transforms.
package sanitizer
