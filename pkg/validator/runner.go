package validator

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/dmitrymomot/rulekit/pkg/async"
	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// Result is the outcome of a run. Value is set only when the run is valid,
// Errors only when it is not.
type Result struct {
	Valid  bool
	Value  any
	Errors Errors
}

// Runner executes validators over a value. A Runner holds no per-run state
// and can be shared between goroutines.
type Runner struct {
	logger     *slog.Logger
	filter     func(message string) bool
	translator Translator
}

// Translator looks up message templates by key; *i18n.Translator implements it.
// args are placeholder name/value pairs.
type Translator interface {
	Td(lang, key, defaultValue string, args ...string) string
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger receiving one debug record per run.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithErrorFilter drops every reported message keep rejects.
func WithErrorFilter(keep func(message string) bool) RunnerOption {
	return func(r *Runner) {
		r.filter = keep
	}
}

// WithTranslator localizes built-in messages into the locale stored in the
// run's context with i18n.SetLocale. Keys are TranslationKey(kind); a missing
// translation keeps the English message. Messages set with Message are
// reported unchanged.
func WithTranslator(tr Translator) RunnerOption {
	return func(r *Runner) {
		r.translator = tr
	}
}

func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(logger.Component("validator"))
	return r
}

// Run validates value with each rule in turn and hands the result to done.
//
// Each rule parses the value produced by the previous one and validates its
// own output. Every rule receives the original value as both enclosing and
// root value, all rules run even after a failure, and they share one error
// map. The result carries the last rule's value when all of them succeed.
//
// Configuration errors are returned before anything runs; validation
// failures only ever reach done.
func (r *Runner) Run(ctx context.Context, value any, done func(Result), rules ...Rule) error {
	if done == nil {
		return ErrNilCallback
	}
	if len(rules) == 0 {
		return ErrNoRules
	}
	for _, rule := range rules {
		if rule == nil {
			return ErrNilRule
		}
	}

	start := time.Now()
	acc := NewAccumulator()
	vc := NewContext(ctx, acc, r.filter)
	if r.translator != nil {
		vc.translate = r.translateFunc(i18n.GetLocale(vc.Ctx()))
	}
	current := value
	overall := true

	walk(len(rules), func(i int, next func(halt bool)) {
		rule := rules[i]
		cell := rule.Parse(current, value, value)
		rule.Validate(vc, &cell, value, value, once(func(ok bool) {
			current = cell
			if !ok {
				overall = false
			}
			next(false)
		}))
	}, func() {
		res := Result{Valid: overall}
		if overall {
			res.Value = current
		} else {
			res.Errors = acc.Errors()
		}
		r.logger.DebugContext(vc.Ctx(), "validation finished",
			logger.Valid(overall),
			logger.ErrorPaths(acc.Len()),
			logger.Duration(time.Since(start)),
		)
		done(res)
	})
	return nil
}

func (r *Runner) translateFunc(lang string) func(key, fallback string, values map[string]any) string {
	return func(key, fallback string, values map[string]any) string {
		args := make([]string, 0, 2*len(values))
		for _, name := range slices.Sorted(maps.Keys(values)) {
			args = append(args, name, fmt.Sprint(values[name]))
		}
		return r.translator.Td(lang, key, fallback, args...)
	}
}

// ValidateAsync starts a run and returns a future that resolves with the
// converted value or fails with Errors.
func (r *Runner) ValidateAsync(ctx context.Context, value any, rules ...Rule) (*async.Future[any], error) {
	future, resolve, reject := async.NewPromise[any]()
	err := r.Run(ctx, value, func(res Result) {
		if res.Valid {
			resolve(res.Value)
			return
		}
		reject(res.Errors)
	}, rules...)
	if err != nil {
		return nil, err
	}
	return future, nil
}

// Validate runs the rules and waits for the result. A failed validation is
// returned as Errors; use ExtractErrors to get the map back. Cancelling ctx
// stops the wait, not the run.
func (r *Runner) Validate(ctx context.Context, value any, rules ...Rule) (any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	future, err := r.ValidateAsync(ctx, value, rules...)
	if err != nil {
		return nil, err
	}
	return future.AwaitContext(ctx)
}

var defaultRunner = NewRunner()

// Run uses a runner without logging or filtering. See Runner.Run.
func Run(ctx context.Context, value any, done func(Result), rules ...Rule) error {
	return defaultRunner.Run(ctx, value, done, rules...)
}

// ValidateAsync uses a runner without logging or filtering. See Runner.ValidateAsync.
func ValidateAsync(ctx context.Context, value any, rules ...Rule) (*async.Future[any], error) {
	return defaultRunner.ValidateAsync(ctx, value, rules...)
}

// Validate uses a runner without logging or filtering. See Runner.Validate.
func Validate(ctx context.Context, value any, rules ...Rule) (any, error) {
	return defaultRunner.Validate(ctx, value, rules...)
}
