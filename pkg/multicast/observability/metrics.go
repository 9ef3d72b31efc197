package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records multicast raise metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRaise records one raise of a callback list with its size,
	// duration, and error status.
	RecordRaise(ctx context.Context, name string, callbacks int, duration time.Duration, err error)

	// RecordFaultSuppressed records a fault caught by the resilient
	// decorator.
	RecordFaultSuppressed(ctx context.Context, name string)

	// RecordBackgroundTask records completion of a background-scheduled
	// raise.
	RecordBackgroundTask(ctx context.Context, name string, success bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	raises           metric.Int64Counter
	raiseLatency     metric.Float64Histogram
	raiseErrors      metric.Int64Counter
	faultsSuppressed metric.Int64Counter
	backgroundTasks  metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("multicast")

	raises, err := meter.Int64Counter("multicast.raises",
		metric.WithDescription("Number of callback list raises"),
	)
	if err != nil {
		return nil, err
	}

	raiseLatency, err := meter.Float64Histogram("multicast.raise.latency_ms",
		metric.WithDescription("Raise latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	raiseErrors, err := meter.Int64Counter("multicast.raise.errors",
		metric.WithDescription("Number of raises that ended with a propagated fault"),
	)
	if err != nil {
		return nil, err
	}

	faultsSuppressed, err := meter.Int64Counter("multicast.faults.suppressed",
		metric.WithDescription("Number of callback faults suppressed by the resilient decorator"),
	)
	if err != nil {
		return nil, err
	}

	backgroundTasks, err := meter.Int64Counter("multicast.background.tasks",
		metric.WithDescription("Number of completed background raises"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		raises:           raises,
		raiseLatency:     raiseLatency,
		raiseErrors:      raiseErrors,
		faultsSuppressed: faultsSuppressed,
		backgroundTasks:  backgroundTasks,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordRaise records one raise of a callback list.
func (m *otelMetrics) RecordRaise(ctx context.Context, name string, callbacks int, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("multicast", name),
	}

	m.raises.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.raiseLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.raiseErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordFaultSuppressed records a fault routed to an exception handler.
func (m *otelMetrics) RecordFaultSuppressed(ctx context.Context, name string) {
	m.faultsSuppressed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("multicast", name),
	))
}

// RecordBackgroundTask records a completed background raise.
func (m *otelMetrics) RecordBackgroundTask(ctx context.Context, name string, success bool) {
	m.backgroundTasks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("multicast", name),
		attribute.Bool("success", success),
	))
}
