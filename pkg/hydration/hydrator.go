package hydration

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/hydrate/pkg/vdom"
)

// Sink receives fully formatted mismatch diagnostics. How the message
// is surfaced (console, overlay, report store) is up to the sink.
type Sink interface {
	Emit(msg string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(msg string)

// Emit implements Sink.
func (f SinkFunc) Emit(msg string) { f(msg) }

// slogSink is the default sink, logging diagnostics as warnings.
type slogSink struct {
	logger *slog.Logger
}

func (s *slogSink) Emit(msg string) {
	s.logger.Warn("hydration mismatch", "detail", msg)
}

// Hydrator drives hydration diagnostics for a sequence of attempts.
// It carries the per-attempt dedup latch, the diagnostics-enabled
// switch, and the observability hooks. A Hydrator is not safe for
// concurrent use; hydration is single-threaded by contract.
type Hydrator struct {
	diagnostics bool
	sink        Sink
	logger      *slog.Logger
	metrics     *Metrics
	tracer      trace.Tracer

	// warned is the dedup latch: set on the first emitted warning of an
	// attempt, reset only by Begin.
	warned bool
	span   trace.Span
}

// Option configures a Hydrator.
type Option func(*Hydrator)

// WithDiagnostics enables or disables mismatch diagnostics. When
// disabled every Report* method is a no-op; matching and traversal are
// unaffected either way. Off by default: diagnostics are a development
// tool.
func WithDiagnostics(enabled bool) Option {
	return func(h *Hydrator) {
		h.diagnostics = enabled
	}
}

// WithSink sets the diagnostic sink. Defaults to logging through the
// configured logger.
func WithSink(sink Sink) Option {
	return func(h *Hydrator) {
		h.sink = sink
	}
}

// WithLogger sets the logger. If nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hydrator) {
		h.logger = logger
	}
}

// WithMetrics attaches Prometheus metrics for attempts, matches, and
// mismatches by category.
func WithMetrics(m *Metrics) Option {
	return func(h *Hydrator) {
		h.metrics = m
	}
}

// WithTracer attaches an OpenTelemetry tracer. Each attempt becomes a
// span; emitted mismatches become span events.
func WithTracer(tracer trace.Tracer) Option {
	return func(h *Hydrator) {
		h.tracer = tracer
	}
}

// New creates a Hydrator.
func New(opts ...Option) *Hydrator {
	h := &Hydrator{}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = slog.Default().With("component", "hydration")
	}
	if h.sink == nil {
		h.sink = &slogSink{logger: h.logger}
	}
	return h
}

// Begin marks the start of a top-level hydration attempt: the dedup
// latch opens and, if a tracer is configured, an attempt span starts.
// The boundary is defined by the caller; the Hydrator does not detect
// it itself.
func (h *Hydrator) Begin(ctx context.Context) context.Context {
	h.warned = false
	h.metrics.observeAttempt()
	if h.tracer != nil {
		ctx, h.span = h.tracer.Start(ctx, "hydration.attempt")
	}
	return ctx
}

// End closes the attempt started by Begin.
func (h *Hydrator) End() {
	if h.span != nil {
		h.span.End()
		h.span = nil
	}
}

// Warned reports whether a diagnostic has been emitted for the current
// attempt.
func (h *Hydrator) Warned() bool {
	return h.warned
}

// shouldWarn implements the diagnostics gate. It returns true at most
// once per attempt; the caller must skip constructing the diff when it
// returns false. The latch only closes when a warning will actually be
// emitted, so suppressed nodes do not consume it.
func (h *Hydrator) shouldWarn(props vdom.Props) bool {
	if h == nil || !h.diagnostics {
		return false
	}
	if suppressed(props) {
		return false
	}
	if h.warned {
		return false
	}
	h.warned = true
	return true
}

// suppressed reports whether the logical node's props carry the
// hydration warning suppression flag.
func suppressed(props vdom.Props) bool {
	if props == nil {
		return false
	}
	b, ok := props[vdom.PropSuppressWarn].(bool)
	return ok && b
}

// emit forwards a finished diagnostic to the sink and records it.
func (h *Hydrator) emit(category, msg string) {
	h.metrics.observeMismatch(category)
	if h.span != nil {
		h.span.AddEvent("hydration.mismatch",
			trace.WithAttributes(attribute.String("category", category)))
	}
	h.sink.Emit(msg)
}
