package multicast

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/notifykit/multicast/pkg/multicast/config"
	"github.com/notifykit/multicast/pkg/multicast/observability"
)

// Observer carries the instrumentation applied to observed raises: a
// structured logger, a metrics recorder, and a span manager. Metrics and
// tracing default to no-ops.
type Observer struct {
	name    string
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// ObserverOption configures an Observer.
type ObserverOption func(*Observer)

// WithLogger sets the logger used for raise records. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) ObserverOption {
	return func(o *Observer) {
		o.logger = logger
	}
}

// WithMetrics sets the metrics recorder. Defaults to a no-op.
func WithMetrics(m observability.MetricsRecorder) ObserverOption {
	return func(o *Observer) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithTracing sets the span manager. Defaults to a no-op.
func WithTracing(sm observability.SpanManager) ObserverOption {
	return func(o *Observer) {
		if sm != nil {
			o.spans = sm
		}
	}
}

// NewObserver creates an Observer. The name labels every span, metric, and
// log record produced for lists observed through it, so use one observer per
// notification point.
func NewObserver(name string, opts ...ObserverOption) *Observer {
	o := &Observer{
		name:    name,
		logger:  slog.Default(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ObserverFromConfig builds an Observer from loaded settings. A nil logger
// falls back to slog.Default().
func ObserverFromConfig(s config.Settings, logger *slog.Logger) *Observer {
	opts := make([]ObserverOption, 0, 3)
	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}
	if s.Observer.Metrics {
		opts = append(opts, WithMetrics(observability.NewMetricsRecorder()))
	}
	if s.Observer.Tracing {
		opts = append(opts, WithTracing(observability.NewSpanManager()))
	}
	name := s.Observer.Name
	if name == "" {
		name = "multicast"
	}
	return NewObserver(name, opts...)
}

// Observed produces a single-entry list whose callback raises the underlying
// list with logging, timing, tracing, and metrics around the whole raise.
// The raise outcome is unchanged: faults still propagate to the raiser.
//
// The nil list stays nil.
func Observed[T any](list List[T], o *Observer) List[T] {
	if list == nil {
		return nil
	}
	if o == nil {
		return Combine(list)
	}
	inner := Combine(list)
	wrapped := Callback[T](func(ctx context.Context, source any, data T) error {
		raiseID := uuid.NewString()
		logger := observability.EnrichLogger(o.logger, o.name, raiseID)

		ctx, span := o.spans.StartRaiseSpan(ctx, o.name, raiseID)
		observability.LogRaiseStart(logger, len(inner))

		start := time.Now()
		err := Raise(ctx, inner, source, data)
		duration := time.Since(start)

		o.metrics.RecordRaise(ctx, o.name, len(inner), duration, err)
		if err != nil {
			observability.LogRaiseError(logger, err, float64(duration.Milliseconds()))
		} else {
			observability.LogRaiseComplete(logger, float64(duration.Milliseconds()), len(inner))
		}
		o.spans.EndSpanWithError(span, err)

		return err
	})
	return List[T]{wrapped}
}

// ObservedHandler returns an ExceptionHandler that logs and counts faults
// suppressed by the Resilient decorator.
func ObservedHandler[T any](o *Observer) ExceptionHandler[T] {
	return func(_ Callback[T], err error) {
		observability.LogFaultSuppressed(o.logger, err)
		o.metrics.RecordFaultSuppressed(context.Background(), o.name)
	}
}

// ObservedContinuation returns a Continuation that logs background faults
// and counts every background raise completion.
func ObservedContinuation(o *Observer) Continuation {
	return func(err error) {
		if err != nil {
			observability.LogBackgroundFault(o.logger, err)
		}
		o.metrics.RecordBackgroundTask(context.Background(), o.name, err == nil)
	}
}
