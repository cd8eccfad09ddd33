package validator

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Configuration errors. They abort rule construction or run setup and never
// enter the error map.
var (
	// ErrNilRule is raised when a combinator or the runner receives a nil rule.
	ErrNilRule = errors.New("validator: rule is nil")

	// ErrEmptyProperty is raised when an object property is declared without a name.
	ErrEmptyProperty = errors.New("validator: property name is empty")

	// ErrMissingMessage is raised when a generated rule has neither an explicit
	// message nor a default one for its kind.
	ErrMissingMessage = errors.New("validator: no error message for rule")

	// ErrNoRules is returned when a run is started without any rule.
	ErrNoRules = errors.New("validator: at least one rule is required")

	// ErrNilCallback is returned when a run is started without a completion callback.
	ErrNilCallback = errors.New("validator: completion callback is nil")
)

// rootLabel renders the root path in error strings.
const rootLabel = "(root)"

// Errors maps a value path to the ordered messages reported for it.
// The root value is keyed by the empty string.
type Errors map[string][]string

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, path := range e.Fields() {
		label := path
		if label == "" {
			label = rootLabel
		}
		for _, msg := range e[path] {
			parts = append(parts, fmt.Sprintf("%s: %s", label, msg))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) Has(path string) bool {
	_, ok := e[path]
	return ok
}

func (e Errors) Get(path string) []string {
	return e[path]
}

// Fields returns the reported paths in lexical order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for path := range e {
		fields = append(fields, path)
	}
	slices.Sort(fields)
	return fields
}

func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// ExtractErrors extracts the error map from an error returned by Validate.
func ExtractErrors(err error) Errors {
	if err == nil {
		return nil
	}

	var verr Errors
	if errors.As(err, &verr) {
		return verr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var verr Errors
	return errors.As(err, &verr)
}
