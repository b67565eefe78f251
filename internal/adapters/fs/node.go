package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nixcrate/internal/build"
	"go.trai.ch/nixcrate/internal/core/ports"
)

// WriterNodeID is the unique identifier for the plan writer node.
const WriterNodeID graft.ID = "adapter.fs.writer"

func init() {
	graft.Register(graft.Node[ports.PlanWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PlanWriter, error) {
			return NewWriter(build.Version), nil
		},
	})
}
