// Package logger provides slog attribute helpers used across the
// framework. Helpers follow the empty-Attr-for-nil pattern so call
// sites never need explicit nil checks:
//
//	log.Error("handler failed", logger.Error(err), logger.Component("server"))
package logger
