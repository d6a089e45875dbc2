// Package logging provides structured logging using Go's standard library log/slog.
// It outputs JSON logs by default, or text for interactive use, and integrates
// with Uber's Fx dependency injection framework.
package logging
