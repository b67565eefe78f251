package optionality

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nixcrate/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nixcrate/internal/core/ports"
	"go.trai.ch/nixcrate/internal/engine/resolver"
)

// NodeID is the unique identifier for the condition engine Graft node.
const NodeID graft.ID = "engine.optionality"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{resolver.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Engine, error) {
			res, err := graft.Dep[ports.FeatureResolver](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(res, log), nil
		},
	})
}
