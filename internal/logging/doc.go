// Package logging assembles structured slog loggers and formatting helpers used
// across lifelist.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so import code can tag every log
// line with the run ID of the import in flight. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
package logging
