// Package logger builds *slog.Logger instances with environment presets and
// context-aware attribute injection.
//
// Records logged with a context carry the attributes produced by the
// registered ContextExtractor funcs. The service registers extractors for the
// request id and the tenant id, so every line logged while serving a tenant
// request names the tenant without handlers passing it around.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment("production", "orgdb"),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			tenant.LoggerExtractor(),
//		),
//	)
//	log.InfoContext(ctx, "user created", logger.Database(name))
package logger
