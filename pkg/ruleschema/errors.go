package ruleschema

import "errors"

var (
	ErrInvalidSchema    = errors.New("ruleschema: invalid schema")
	ErrUnknownType      = errors.New("ruleschema: unknown type")
	ErrUnknownFormat    = errors.New("ruleschema: unknown format")
	ErrUnknownTransform = errors.New("ruleschema: unknown transform")
	ErrInvalidPattern   = errors.New("ruleschema: invalid pattern")
	ErrMissingItems     = errors.New("ruleschema: items schema is required")
)
