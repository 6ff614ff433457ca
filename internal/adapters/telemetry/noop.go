package telemetry

import (
	"context"

	"go.trai.ch/cjs/internal/core/ports"
)

var (
	_ ports.Tracer = (*NoOpTracer)(nil)
	_ ports.Span   = discardSpan{}
)

// NoOpTracer is the tracer loaders use unless --trace is given.
type NoOpTracer struct{}

// NewNoOpTracer returns a tracer that records nothing.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start hands back ctx untouched, so no span is ever visible to nested loads.
func (t *NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, discardSpan{}
}

// discardSpan ignores everything recorded on it.
type discardSpan struct{}

func (discardSpan) End() {}

func (discardSpan) RecordError(error) {}

func (discardSpan) SetAttribute(_ string, _ any) {}
