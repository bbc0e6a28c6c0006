// Package logger builds the service's slog loggers.
//
// Loggers write JSON (or text) to stdout and run a set of ContextExtractors on every
// call, so request-scoped values such as the request ID land on each record:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "contact message sent", slog.String("provider_id", id))
//
// NewWithSentry additionally fans error records out to Sentry when SENTRY_DSN is set.
// Without a DSN it behaves exactly like NewWithConfig, so development and production
// share one code path. Register FlushSentry as a shutdown hook to drain buffered events.
package logger
