// Package observability provides the instrumentation used around callback
// raises: structured logging via slog, metrics and tracing via
// OpenTelemetry. Everything is opt-in and has a no-op implementation.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds raise context to a logger. Returns a new logger carrying
// the callback owner's name and the raise identifier.
func EnrichLogger(logger *slog.Logger, name, raiseID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("multicast", name),
		slog.String("raise_id", raiseID),
	)
}

// LogRaiseStart logs the start of a raise over a callback list.
func LogRaiseStart(logger *slog.Logger, callbacks int) {
	if logger == nil {
		return
	}
	logger.Debug("raise starting",
		slog.Int("callbacks", callbacks),
	)
}

// LogRaiseComplete logs successful completion of a raise.
func LogRaiseComplete(logger *slog.Logger, durationMs float64, callbacks int) {
	if logger == nil {
		return
	}
	logger.Debug("raise completed",
		slog.Float64("duration_ms", durationMs),
		slog.Int("callbacks", callbacks),
	)
}

// LogRaiseError logs a raise that stopped on a propagated fault.
func LogRaiseError(logger *slog.Logger, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("raise failed",
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogFaultSuppressed logs a fault caught by the resilient decorator instead
// of propagating to the raiser.
func LogFaultSuppressed(logger *slog.Logger, err error) {
	if logger == nil {
		return
	}
	logger.Warn("callback fault suppressed",
		slog.String("error", err.Error()),
	)
}

// LogBackgroundFault logs a fault from a background-scheduled raise.
func LogBackgroundFault(logger *slog.Logger, err error) {
	if logger == nil {
		return
	}
	logger.Warn("background raise failed",
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation. Returns a function
// that, when called, returns the elapsed time in milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
