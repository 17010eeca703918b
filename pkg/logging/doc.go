// Package logging provides structured logging utilities for benchsweep.
//
// It wraps the standard library slog package with a JSON handler on stderr,
// module/version attributes on every record, and LOG_LEVEL based level
// selection. Debug level records carry their source location.
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("benchsweep", version)
//	    slog.Info("registry loaded", "benchmarks", reg.Count())
//	}
//
// Explicit level, for example from a --log-level flag:
//
//	logging.SetDefaultStructuredLoggerWithLevel("benchsweep", version, "debug")
//
// # Log Levels
//
// Supported levels (case-insensitive): debug, info (default), warn/warning,
// error. Unknown values fall back to info.
package logging
