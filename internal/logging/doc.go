// Package logging assembles the structured slog loggers used across
// ertnotes.
//
// It centralizes level and format plumbing (console or JSON, optional log
// file under the configured log directory) and provides a no-op logger for
// tests and wiring code that cannot fail. Prefer these constructors over
// hand-rolled slog setup so every component emits data with the same shape.
package logging
