// Package logger builds the structured log/slog loggers used by the CNPJ
// tools.
//
// New returns a *slog.Logger configured by functional options: output format
// (text or json), minimum level, destination, static attributes and
// ContextExtractor callbacks that copy values out of a context.Context on
// every record.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelWarn),
//	    logger.WithOutput(os.Stderr),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.WarnContext(ctx, "check digit computation failed",
//	    logger.Index(2),
//	    logger.Identifier(raw),
//	    logger.Error(err),
//	)
//
// Attribute helpers in attr.go keep key names consistent. Error returns an
// empty attribute for a nil error so it can be passed unconditionally.
package logger
