package csvfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glance/internal/core/ports"
)

// NodeID is the unique identifier for the dataset loader Graft node.
const NodeID graft.ID = "adapter.dataset_loader"

func init() {
	graft.Register(graft.Node[ports.DatasetLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DatasetLoader, error) {
			return NewLoader(), nil
		},
	})
}
