// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing the environment into structs
// annotated with `env` tags. Each configuration type is parsed once and
// cached for the lifetime of the process.
//
//	if err := config.LoadEnv(".env.local"); err != nil {
//	    return err
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Variables already present in the environment always take precedence over
// values from .env files. Use ResetCache in tests that change the environment
// between loads.
package config
