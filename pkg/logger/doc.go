// Package logger builds slog loggers for rulekit commands and exposes the
// attribute helpers used across the module.
//
// New creates a *slog.Logger from functional options: output format (text or
// json), minimum level, static attributes and extractors that copy values
// from a context.Context into every record logged with that context.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextValue("document", documentKey{}),
//	)
//
//	ctx := context.WithValue(context.Background(), documentKey{}, "order.yaml")
//	log.DebugContext(ctx, "validation finished", logger.Valid(false), logger.ErrorPaths(2))
//
// Level and format names coming from configuration are parsed with ParseLevel
// and ParseFormat.
//
// # Error Handling
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally:
//
//	log.Info("done", logger.Error(err))
package logger
