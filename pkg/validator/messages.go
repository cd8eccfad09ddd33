package validator

import "fmt"

// Rule kinds with a default message.
const (
	KindRequired  = "required"
	KindNotEmpty  = "not_empty"
	KindTransform = "transform"
	KindString    = "string"
	KindNumber    = "number"
	KindInteger   = "integer"
	KindBool      = "bool"
	KindUUID      = "uuid"
	KindTime      = "time"
	KindObject    = "object"
	KindArray     = "array"
	KindHash      = "hash"
)

var defaultMessages = map[string]string{
	KindRequired:  "Value is required",
	KindNotEmpty:  "Value must not be empty",
	KindTransform: "Value could not be converted",
	KindString:    "Value is not a valid string",
	KindNumber:    "Value is not a valid number",
	KindInteger:   "Value is not a valid integer",
	KindBool:      "Value is not a valid boolean",
	KindUUID:      "Value is not a valid UUID",
	KindTime:      "Value is not a valid time",
	KindObject:    "Value is not a valid object",
	KindArray:     "Value is not a valid array",
	KindHash:      "Value is not a valid hash",
}

// TranslationKey is the key a built-in message of kind is translated under.
func TranslationKey(kind string) string {
	return "validation." + kind
}

// text is a reportable message. key is empty for caller-supplied messages.
type text struct {
	msg    string
	key    string
	values map[string]any
}

func builtin(kind, explicit string) text {
	if explicit != "" {
		return text{msg: explicit}
	}
	return text{msg: resolveMessage(kind, ""), key: TranslationKey(kind)}
}

func (o options) resolve(kind string) text {
	if o.key != "" && o.message != "" {
		return text{msg: o.message, key: o.key, values: o.values}
	}
	return builtin(kind, o.message)
}

// DefaultMessage returns the built-in message for kind, or "" if there is none.
func DefaultMessage(kind string) string {
	return defaultMessages[kind]
}

// resolveMessage picks the explicit message over the kind default and panics
// when neither exists.
func resolveMessage(kind, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if msg := defaultMessages[kind]; msg != "" {
		return msg
	}
	panic(fmt.Errorf("%w: kind %q", ErrMissingMessage, kind))
}
