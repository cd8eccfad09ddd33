package async

import "errors"

var (
	ErrTimeout     = errors.New("async: operation timed out waiting for future completion")
	ErrNilFunction = errors.New("async: function is nil")
)
