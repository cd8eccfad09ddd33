package ruleschema

import "gopkg.in/yaml.v3"

// Schema is the YAML description of one rule. Properties stays a raw node so
// declaration order survives decoding.
type Schema struct {
	Type       string            `yaml:"type"`
	Required   bool              `yaml:"required"`
	NotEmpty   bool              `yaml:"notEmpty"`
	CollectAll bool              `yaml:"collectAll"`
	Messages   map[string]string `yaml:"messages"`

	// scalars
	Min        *float64 `yaml:"min"`
	Max        *float64 `yaml:"max"`
	MinLength  *int     `yaml:"minLength"`
	MaxLength  *int     `yaml:"maxLength"`
	Pattern    string   `yaml:"pattern"`
	Format     string   `yaml:"format"`
	OneOf      []string `yaml:"oneOf"`
	Transforms []string `yaml:"transforms"`
	Round      *int     `yaml:"round"`
	Layout     string   `yaml:"layout"`

	// containers
	Properties  yaml.Node `yaml:"properties"`
	Expandable  bool      `yaml:"expandable"`
	Items       *Schema   `yaml:"items"`
	Filter      string    `yaml:"filter"`
	SkipInvalid bool      `yaml:"skipInvalid"`
	MinItems    *int      `yaml:"minItems"`
	MaxItems    *int      `yaml:"maxItems"`
}

// Message keys recognized under messages.
const (
	MsgType      = "type"
	MsgRequired  = "required"
	MsgNotEmpty  = "notEmpty"
	MsgMin       = "min"
	MsgMax       = "max"
	MsgMinLength = "minLength"
	MsgMaxLength = "maxLength"
	MsgPattern   = "pattern"
	MsgFormat    = "format"
	MsgOneOf     = "oneOf"
	MsgMinItems  = "minItems"
	MsgMaxItems  = "maxItems"
)
