package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrInvalidConfigType is returned when Load receives something other than a struct.
	ErrInvalidConfigType = errors.New("config: invalid config type")

	// ErrLoadingEnvFile is returned when a .env file cannot be read.
	ErrLoadingEnvFile = errors.New("config: failed to load env file")

	ErrNilPointer = errors.New("config: nil pointer provided to config loader")
)
