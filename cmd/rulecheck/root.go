package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulekit/pkg/ruleschema"
)

// schemaCacheSize bounds the compiled schemas kept by one invocation.
const schemaCacheSize = 64

// app carries what every subcommand needs once flags and environment are resolved.
type app struct {
	cfg     Config
	log     *slog.Logger
	schemas *ruleschema.Cache
}

type rootOptions struct {
	envFile   string
	logLevel  string
	logFormat string
	timeout   time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	a := &app{schemas: ruleschema.NewCache(schemaCacheSize)}

	cmd := &cobra.Command{
		Use:           "rulecheck",
		Short:         "Validate and convert YAML or JSON documents against a rule schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts.envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = opts.logFormat
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = opts.timeout
			}
			if err := cfg.validate(); err != nil {
				return err
			}

			log, err := cfg.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", os.Getenv("RULECHECK_ENV_FILE"), "Load environment variables from this file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Maximum time to wait for each document")

	cmd.AddCommand(
		validateCmd(a),
		compileCmd(a),
	)
	return cmd
}
