package telemetry

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cjs/internal/core/ports"
)

// LogBridge implements sdktrace.SpanProcessor to report finished spans through a ports.Logger.
// Nested spans are indented by their depth below the first span of the trace.
type LogBridge struct {
	logger ports.Logger

	mu     sync.Mutex
	depths map[trace.SpanID]int
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{
		logger: logger,
		depths: make(map[trace.SpanID]int),
	}
}

// OnStart is called when a span starts.
func (b *LogBridge) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	depth := 0
	if parentSpan := trace.SpanFromContext(parent); parentSpan.SpanContext().IsValid() {
		if d, ok := b.depths[parentSpan.SpanContext().SpanID()]; ok {
			depth = d + 1
		}
	}
	b.depths[sc.SpanID()] = depth
}

// OnEnd is called when a span ends.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	b.mu.Lock()
	depth := b.depths[sc.SpanID()]
	delete(b.depths, sc.SpanID())
	b.mu.Unlock()

	line := fmt.Sprintf("%s%s (%s)", strings.Repeat("  ", depth), s.Name(),
		s.EndTime().Sub(s.StartTime()).Round(time.Microsecond))

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		b.logger.Warn(line + ": " + desc)
		return
	}
	b.logger.Info(line)
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}

// NewProvider returns an SDK tracer provider that reports every span through logger.
func NewProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewLogBridge(logger)))
}
