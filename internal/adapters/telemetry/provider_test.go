package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/cjs/internal/adapters/telemetry"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *telemetry.OTelTracer) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, telemetry.NewOTelTracerFromProvider(tp, "test-tracer")
}

func TestOTelTracer_StartAndEnd(t *testing.T) {
	sr, tracer := setupRecorder(t)

	ctx, parent := tracer.Start(context.Background(), "require main")
	_, child := tracer.Start(ctx, "require ./dep")
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "require ./dep", spans[0].Name())
	assert.Equal(t, "require main", spans[1].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	sr, tracer := setupRecorder(t)

	_, span := tracer.Start(context.Background(), "load")
	span.SetAttribute("module.id", "./x")
	span.SetAttribute("count", 3)
	span.SetAttribute("size", int64(42))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("cached", true)
	span.SetAttribute("candidates", []string{"/a", "/b"})
	span.SetAttribute("other", struct{ N int }{N: 1})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	attrs := spans[0].Attributes()
	assert.Contains(t, attrs, attribute.String("module.id", "./x"))
	assert.Contains(t, attrs, attribute.Int("count", 3))
	assert.Contains(t, attrs, attribute.Int64("size", 42))
	assert.Contains(t, attrs, attribute.Float64("ratio", 0.5))
	assert.Contains(t, attrs, attribute.Bool("cached", true))
	assert.Contains(t, attrs, attribute.StringSlice("candidates", []string{"/a", "/b"}))
	assert.Contains(t, attrs, attribute.String("other", "{1}"))
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr, tracer := setupRecorder(t)

	_, span := tracer.Start(context.Background(), "load")
	span.RecordError(nil)
	span.RecordError(errors.New("boom"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	got, span := tracer.Start(ctx, "anything")
	assert.Equal(t, ctx, got)

	assert.NotPanics(t, func() {
		span.SetAttribute("k", "v")
		span.RecordError(errors.New("ignored"))
		span.End()
	})
}
