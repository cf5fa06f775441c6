package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/glance/internal/adapters/telemetry"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_ObservesPageSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockMetrics(ctrl)
	metrics.EXPECT().ObserveRender(domain.PageTable, gomock.Any(), nil).Times(1)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(metrics)))
	tracer := telemetry.NewOTelTracerFrom(tp, "test")

	_, span := tracer.Start(context.Background(), domain.PageTable.SpanName())
	span.SetAttribute("rows", 3)
	span.End()
}

func TestBridge_ReportsFailedRenders(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockMetrics(ctrl)
	metrics.EXPECT().ObserveRender(domain.PagePlot, gomock.Any(), gomock.Not(gomock.Nil())).
		Do(func(_ domain.PageID, _ time.Duration, err error) {
			assert.EqualError(t, err, "dataset is unavailable")
		})

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(metrics)))
	tracer := telemetry.NewOTelTracerFrom(tp, "test")

	_, span := tracer.Start(context.Background(), domain.PagePlot.SpanName())
	span.RecordError(errors.New("dataset is unavailable"))
	span.End()
}

func TestBridge_IgnoresOtherSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockMetrics(ctrl)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(metrics)))
	_, span := tp.Tracer("test").Start(context.Background(), "dataset.load")
	span.End()
}

func TestBridge_NilMetrics(_ *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	_, span := tp.Tracer("test").Start(context.Background(), domain.PageHome.SpanName())
	span.End()
}

func TestOTelSpan_Attributes(_ *testing.T) {
	tp := sdktrace.NewTracerProvider()
	_, span := telemetry.NewOTelTracerFrom(tp, "test").Start(context.Background(), "test")

	span.SetAttribute("string", "value")
	span.SetAttribute("int", 42)
	span.SetAttribute("int64", int64(42))
	span.SetAttribute("float", 3.14)
	span.SetAttribute("bool", true)
	span.SetAttribute("slice", []string{"a", "b"})
	span.SetAttribute("other", struct{}{})
	span.End()
}

func TestNoOpTracer(t *testing.T) {
	ctx := context.Background()
	got, span := telemetry.NewNoOpTracer().Start(ctx, "anything")

	assert.Equal(t, ctx, got)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
