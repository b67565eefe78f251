package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nixcrate/internal/core/ports"
)

// NodeID is the unique identifier for the checksum cache node.
const NodeID graft.ID = "adapter.checksum_cache"

func init() {
	graft.Register(graft.Node[ports.ChecksumCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ChecksumCache, error) {
			return NewStore(), nil
		},
	})
}
