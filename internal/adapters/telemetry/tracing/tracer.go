// Package tracing implements ports.Tracer on OpenTelemetry.
package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/nixcrate/internal/core/ports"
)

// InstrumentationName names the tracer spans are recorded under.
const InstrumentationName = "go.trai.ch/nixcrate"

var _ ports.Tracer = (*Tracer)(nil)

// Tracer implements ports.Tracer using an OpenTelemetry TracerProvider.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer recording through provider.
func NewTracer(provider trace.TracerProvider) *Tracer {
	return &Tracer{tracer: provider.Tracer(InstrumentationName)}
}

// Start creates a new span.
func (t *Tracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &Span{span: span}
}

// Span implements ports.Span wrapping trace.Span.
type Span struct {
	span trace.Span
}

// End completes the span.
func (s *Span) End() {
	s.span.End()
}

// RecordError records an error for the span.
func (s *Span) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *Span) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}
