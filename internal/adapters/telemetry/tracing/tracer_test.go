package tracing_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/nixcrate/internal/adapters/logger"
	"go.trai.ch/nixcrate/internal/adapters/telemetry/tracing"
	"go.trai.ch/nixcrate/internal/core/domain"
)

func newRecorder() (*tracing.Tracer, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return tracing.NewTracer(provider), recorder
}

func TestTracer_RecordsSpans(t *testing.T) {
	tracer, recorder := newRecorder()

	ctx, parent := tracer.Start(context.Background(), "plan")
	_, child := tracer.Start(ctx, "prefetch")
	child.SetAttribute("sources", 3)
	child.SetAttribute("url", "https://example.com/a.git")
	child.SetAttribute("cached", true)
	child.SetAttribute("roots", []string{"a", "b"})
	child.SetAttribute("other", 1.5)
	child.End()
	parent.End()

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "prefetch", spans[0].Name())
	assert.Equal(t, "plan", spans[1].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())

	attrs := spans[0].Attributes()
	assert.Contains(t, attrs, attribute.Int("sources", 3))
	assert.Contains(t, attrs, attribute.String("url", "https://example.com/a.git"))
	assert.Contains(t, attrs, attribute.Bool("cached", true))
	assert.Contains(t, attrs, attribute.StringSlice("roots", []string{"a", "b"}))
	assert.Contains(t, attrs, attribute.String("other", "1.5"))
}

func TestTracer_RecordError(t *testing.T) {
	tracer, recorder := newRecorder()

	_, span := tracer.Start(context.Background(), "write")
	span.RecordError(errors.New("disk full"))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "disk full", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func newLogger() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := logger.NewWithOutput(&buf)
	log.SetLevel(domain.LogLevelDebug)
	return log, &buf
}

func TestLogBridge_ReportsSpans(t *testing.T) {
	log, buf := newLogger()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(tracing.NewLogBridge(log)))
	tracer := tracing.NewTracer(provider)

	ctx, parent := tracer.Start(context.Background(), "plan")
	_, child := tracer.Start(ctx, "conditions")
	child.SetAttribute("roots", 2)
	child.End()
	parent.RecordError(errors.New("disk full"))
	parent.End()

	out := buf.String()
	assert.Contains(t, out, "plan started")
	assert.Contains(t, out, "conditions started")
	assert.Contains(t, out, "conditions finished in")
	assert.Contains(t, out, "roots=2")
	assert.Contains(t, out, "plan failed after")
	assert.Contains(t, out, "disk full")
}

func TestNewProvider_InstallsGlobalProvider(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	log, buf := newLogger()
	provider := tracing.NewProvider(log)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	_, span := otel.Tracer(tracing.InstrumentationName).Start(context.Background(), "prefetch")
	span.End()

	assert.Contains(t, buf.String(), "prefetch finished in")
}
