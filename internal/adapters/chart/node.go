package chart

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glance/internal/core/ports"
)

// NodeID is the unique identifier for the chart renderer Graft node.
const NodeID graft.ID = "adapter.chart"

func init() {
	graft.Register(graft.Node[ports.ChartRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ChartRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
