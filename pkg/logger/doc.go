// Package logger builds log/slog loggers for the site.
//
// New applies options on top of production defaults (JSON, info level,
// stdout). WithEnvironment switches to readable text output at debug level for
// development. Context extractors add request-scoped attributes, such as the
// request id, at log time:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.AppName),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "booking received", logger.Form("bookingForm"))
//
// The attr helpers return an empty slog.Attr for nil input; slog drops those.
package logger
