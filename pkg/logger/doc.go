// Package logger provides the logging layer of a test suite: a slog factory
// configured with functional options, a registry that hands out one stable
// logger per name, and a Writer that emits one categorized, sanitized line
// per call.
//
// # Factory
//
// New builds a *slog.Logger from Option values:
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment – presets per environment
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format
//   - WithLevel – minimum level
//   - WithOutput / WithErrorOutput – sinks; by default info goes to stdout and errors to stderr
//   - WithSensitiveKeys / WithTruncateLimit – masking and truncation
//   - WithAttr / WithName / WithRunID – static attributes
//   - WithContextExtractors / WithContextValue – attributes taken from context
//
// The handler chain is LogHandlerDecorator (context extraction), then
// RedactHandler (masking, truncation, nil rendering), then LevelSplitHandler
// (stdout/stderr routing) and finally slog's text or JSON handler.
//
// Config and LoadConfig read the same settings from LOG_LEVEL, LOG_FORMAT,
// APP_ENV, SERVICE_NAME, LOG_TRUNCATE_LIMIT, LOG_SENSITIVE_KEYS and
// LOG_RUN_ID.
//
// # Registry
//
// Get(name) and For[T]() return the same *slog.Logger for the same key for
// the life of the process, even when first called from several goroutines at
// once. Configure sets the options used for loggers created afterwards.
//
//	var log = logger.For[LoginPage]()
//
// # Writer
//
// Each Writer method, and the matching package-level Log function that writes
// through Default, emits exactly one line whose message starts with a
// bracketed category token such as "[PERFORMANCE]", "[DATA]", "[CONFIG]" or
// "[UI ACTION]":
//
//	logger.LogAPIRequest("POST", baseURL+"/login", map[string]string{"user": u})
//	logger.LogData("password", pass)  // password=***MASKED***
//	logger.NewWriter(log).UIAction("click", "#submit")
//
// Values of keys containing "password", "token" and the other
// sanitizer.DefaultSensitiveKeys are replaced by "***MASKED***", including
// keys inside maps and structs such as request bodies. Text longer
// than 100 characters, or the limit set with WithTruncateLimit, is cut and
// suffixed with "...[TRUNCATED]". Nil renders as "null". Logging never fails
// the caller.
package logger
