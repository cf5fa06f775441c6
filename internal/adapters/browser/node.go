package browser

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glance/internal/core/ports"
)

// NodeID is the unique identifier for the browser Graft node.
const NodeID graft.ID = "adapter.browser"

func init() {
	graft.Register(graft.Node[ports.Browser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Browser, error) {
			return NewOpener(), nil
		},
	})
}
