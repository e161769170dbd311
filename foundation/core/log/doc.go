// Package log provides structured logging for stringkit.
//
// Package: log
// Title: Structured Logging
// Description: Leveled structured logging with persistent fields, several
//              output formats and integration with the stringkit error type.
//              Library code logs through a *Logger handed in by the caller
//              or through the package default.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-14 v0.2.0: Trimmed to the library use case
//
// Features:
// - JSON, text, console and logfmt formats
// - Leveled filtering including a fully disabled level
// - Persistent fields on derived loggers
// - Error logging that maps error severity to log level
// - Operation timers
//
// Usage:
//   import mdwlog "github.com/msto63/stringkit/foundation/core/log"
//
//   logger := mdwlog.NewWithConfig(mdwlog.Config{
//     Level:  mdwlog.LevelDebug,
//     Format: mdwlog.FormatLogfmt,
//   }).WithField("component", "regexx")
//
//   logger.Debug("pattern compiled", mdwlog.Field("pattern", `\d+`))
//   logger.LogError(err)
//
//   timer := logger.StartTimer("precompile")
//   // ... compile patterns
//   timer.Stop()
package log
