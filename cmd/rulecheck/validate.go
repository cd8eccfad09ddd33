package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

var errInvalidDocuments = errors.New("rulecheck: some documents are invalid")

type documentKey struct{}

// report is printed once per document.
type report struct {
	Document string           `json:"document"`
	Valid    bool             `json:"valid"`
	Value    any              `json:"value,omitempty"`
	Errors   validator.Errors `json:"errors,omitempty"`
}

func validateCmd(a *app) *cobra.Command {
	var (
		schemaFile   string
		quiet        bool
		translations string
		locale       string
	)

	cmd := &cobra.Command{
		Use:   "validate --schema <schema.yaml> <document>...",
		Short: "Validates documents and prints the converted value or the errors of each",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := a.compileFile(schemaFile)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("translations") {
				a.cfg.Translations = translations
			}
			if cmd.Flags().Changed("locale") {
				a.cfg.Locale = locale
			}
			runner, err := a.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			failed := 0
			for _, path := range args {
				rep, err := checkDocument(a.runContext(cmd.Context()), runner, rule, path, a.cfg.Timeout)
				if err != nil {
					return err
				}
				if !rep.Valid {
					failed++
					for _, field := range rep.Errors.Fields() {
						a.log.Debug("invalid value", logger.Document(rep.Document), logger.Path(field), "messages", rep.Errors.Get(field))
					}
				}
				if quiet && rep.Valid {
					continue
				}
				if err := enc.Encode(rep); err != nil {
					return fmt.Errorf("rulecheck: write report for %s: %w", path, err)
				}
			}

			a.log.Info("documents checked", "total", len(args), "invalid", failed)
			if failed > 0 {
				return errInvalidDocuments
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaFile, "schema", "s", "", "Rule schema file")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print invalid documents only")
	cmd.Flags().StringVar(&translations, "translations", "", "YAML file with localized validation messages")
	cmd.Flags().StringVar(&locale, "locale", "", "Language of validation messages, e.g. de")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

// newRunner builds the runner, loading translations when configured.
func (a *app) newRunner(ctx context.Context) (*validator.Runner, error) {
	opts := []validator.RunnerOption{validator.WithLogger(a.log)}
	if a.cfg.Translations != "" {
		if ctx == nil {
			ctx = context.Background()
		}
		tr, err := i18n.NewTranslator(ctx, i18n.NewFileAdapter(a.cfg.Translations), i18n.WithLogger(a.log))
		if err != nil {
			return nil, fmt.Errorf("rulecheck: load translations: %w", err)
		}
		opts = append(opts, validator.WithTranslator(tr))
	}
	return validator.NewRunner(opts...), nil
}

// runContext carries the configured locale to the runs.
func (a *app) runContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if a.cfg.Locale != "" {
		ctx = i18n.SetLocale(ctx, a.cfg.Locale)
	}
	return ctx
}

func checkDocument(ctx context.Context, runner *validator.Runner, rule validator.Rule, path string, timeout time.Duration) (report, error) {
	rep := report{Document: filepath.Base(path)}

	doc, err := readDocument(path)
	if err != nil {
		return rep, err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, documentKey{}, rep.Document)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	value, err := runner.Validate(ctx, doc, rule)
	switch errs := validator.ExtractErrors(err); {
	case err == nil:
		rep.Valid = true
		rep.Value = value
	case errs != nil:
		rep.Errors = errs
	default:
		return rep, fmt.Errorf("rulecheck: validate %s: %w", path, err)
	}
	return rep, nil
}

// readDocument decodes a YAML document. JSON is valid YAML, so both work.
func readDocument(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rulecheck: open document: %w", err)
	}
	defer f.Close()

	var doc any
	if err := yaml.NewDecoder(f).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("rulecheck: decode %s: %w", path, err)
	}
	return doc, nil
}

// compileFile compiles a schema file. Files with identical content share
// one compiled rule tree.
func (a *app) compileFile(path string) (validator.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rulecheck: read schema: %w", err)
	}
	rule, err := a.schemas.Compile(data)
	if err != nil {
		return nil, fmt.Errorf("rulecheck: %s: %w", path, err)
	}
	return rule, nil
}

func compileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compile <schema.yaml>...",
		Short: "Checks that rule schemas compile",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, path := range args {
				if _, err := a.compileFile(path); err != nil {
					a.log.Error("schema rejected", logger.Document(path), logger.Error(err))
					errs = append(errs, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}
			a.log.Info("schemas compiled", "total", len(args), "distinct", a.schemas.Len())
			return errors.Join(errs...)
		},
	}
}
