package nix

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nixcrate/internal/core/ports"
)

// PrefetcherNodeID is the unique identifier for the prefetcher node.
const PrefetcherNodeID graft.ID = "adapter.nix.prefetcher"

func init() {
	graft.Register(graft.Node[ports.Prefetcher]{
		ID:        PrefetcherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Prefetcher, error) {
			return NewPrefetcher(DefaultCommand), nil
		},
	})
}
