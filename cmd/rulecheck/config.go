package main

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// Config is read from the environment; command line flags override it.
type Config struct {
	LogLevel  string        `env:"RULECHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat string        `env:"RULECHECK_LOG_FORMAT" envDefault:"text"`
	Timeout   time.Duration `env:"RULECHECK_TIMEOUT" envDefault:"30s"`

	// Translations is a YAML file of localized validation messages used
	// for Locale.
	Translations string `env:"RULECHECK_TRANSLATIONS"`
	Locale       string `env:"RULECHECK_LOCALE"`
}

var errInvalidTimeout = errors.New("rulecheck: timeout must be positive")

// loadConfig reads envFile, when set, before parsing the environment.
func loadConfig(envFile string) (Config, error) {
	var cfg Config
	if envFile != "" {
		if err := config.LoadEnv(envFile); err != nil {
			return cfg, err
		}
	}
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Timeout <= 0 {
		return errInvalidTimeout
	}
	return nil
}

func (c Config) logger(out io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}
	opts := []logger.Option{
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("rulecheck")),
		logger.WithContextValue("document", documentKey{}),
		logger.WithOutput(out),
	}
	return logger.New(opts...), nil
}
