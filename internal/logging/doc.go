// Package logging assembles the structured slog loggers used across
// photosift.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes attribute helpers so pipeline code tags log lines with the same
// field names everywhere. A no-op logger is provided for tests and wiring
// code that cannot fail.
package logging
