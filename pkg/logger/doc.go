// Package logger builds structured slog loggers and provides attribute
// helpers that keep key names consistent, including a helper that renders
// argument-check failures as a structured group.
//
// New applies a list of Option functions on top of production-safe defaults
// (JSON, INFO, stdout) and returns a plain *slog.Logger:
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithTextFormatter(),
//	    logger.WithComponent("importer"),
//	)
//
//	if _, err := argassert.NotNegative(offset, "offset"); err != nil {
//	    log.Warn("rejected request", logger.InvalidArgument(err))
//	}
//
// The second call produces a record with the group
// invalid_argument={label, message, value, bound}. Errors that are not
// argument-check failures fall back to the plain "error" attribute.
package logger
