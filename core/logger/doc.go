// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and is injected into each reconciler at
// construction time; there is no process-wide mutable logging state.
//
// # Run Correlation
//
// The WithRunID helper attaches a unique run_id field to the logger so that
// all log entries produced by a single reconciliation run can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log)
//	log.Info("Pushing auth methods")
package logger
