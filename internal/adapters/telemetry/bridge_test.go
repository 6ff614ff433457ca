package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cjs/internal/adapters/telemetry"
	"go.trai.ch/cjs/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLogBridge_ReportsNestedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	var lines []string
	logger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		lines = append(lines, msg)
	}).Times(2)

	tp := telemetry.NewProvider(logger)
	defer func() { _ = tp.Shutdown(context.Background()) }()
	tracer := telemetry.NewOTelTracerFromProvider(tp, "test")

	ctx, parent := tracer.Start(context.Background(), "require main")
	_, child := tracer.Start(ctx, "require ./dep")
	child.End()
	parent.End()

	require.Len(t, lines, 2)
	assert.Regexp(t, `^  require \./dep \(.+\)$`, lines[0])
	assert.Regexp(t, `^require main \(.+\)$`, lines[1])
}

func TestLogBridge_ReportsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	var warned string
	logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		warned = msg
	})

	tp := telemetry.NewProvider(logger)
	defer func() { _ = tp.Shutdown(context.Background()) }()
	tracer := telemetry.NewOTelTracerFromProvider(tp, "test")

	_, span := tracer.Start(context.Background(), "require missing")
	span.RecordError(errors.New("module not found"))
	span.End()

	assert.Regexp(t, `^require missing \(.+\): module not found$`, warned)
}

func TestLogBridge_NilLogger(t *testing.T) {
	tp := telemetry.NewProvider(nil)
	defer func() { _ = tp.Shutdown(context.Background()) }()
	tracer := telemetry.NewOTelTracerFromProvider(tp, "test")

	assert.NotPanics(t, func() {
		_, span := tracer.Start(context.Background(), "quiet")
		span.End()
	})
}
