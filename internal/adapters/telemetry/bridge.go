package telemetry

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor and feeds finished page spans to Metrics.
type Bridge struct {
	metrics ports.Metrics
}

// NewBridge returns a new Bridge.
func NewBridge(metrics ports.Metrics) *Bridge {
	return &Bridge{metrics: metrics}
}

// OnStart does nothing; renders are measured when they end.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd records the duration and outcome of spans named after a page.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.metrics == nil || !s.SpanContext().IsValid() {
		return
	}

	page, ok := strings.CutPrefix(s.Name(), domain.PageSpanPrefix)
	if !ok {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "render failed"
		}
		err = errors.New(desc)
	}

	b.metrics.ObserveRender(domain.PageID(page), s.EndTime().Sub(s.StartTime()), err)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
