package request

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nixcrate/internal/core/ports"
)

// NodeID is the unique identifier for the request loader node.
const NodeID graft.ID = "adapter.request_loader"

func init() {
	graft.Register(graft.Node[ports.RequestLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RequestLoader, error) {
			return NewLoader(), nil
		},
	})
}
