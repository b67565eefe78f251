package tracing

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/nixcrate/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*LogBridge)(nil)

// LogBridge implements sdktrace.SpanProcessor to report spans through a
// ports.Logger at debug level.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart is called when a span starts.
func (b *LogBridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if !s.SpanContext().IsValid() {
		return
	}
	b.logger.Debug(s.Name() + " started")
}

// OnEnd is called when a span ends.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	var msg strings.Builder
	msg.WriteString(s.Name())
	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	if s.Status().Code == codes.Error {
		msg.WriteString(" failed after " + elapsed.String())
		if desc := s.Status().Description; desc != "" {
			msg.WriteString(": " + desc)
		}
	} else {
		msg.WriteString(" finished in " + elapsed.String())
	}
	for _, kv := range s.Attributes() {
		msg.WriteString(" " + string(kv.Key) + "=" + kv.Value.Emit())
	}
	b.logger.Debug(msg.String())
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}
