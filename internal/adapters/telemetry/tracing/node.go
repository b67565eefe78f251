package tracing

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/nixcrate/internal/adapters/logger"
	"go.trai.ch/nixcrate/internal/core/ports"
)

// NodeID is the unique identifier for the tracer node.
const NodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewTracer(NewProvider(log)), nil
		},
	})
}

// NewProvider creates a TracerProvider reporting spans through log and
// installs it as the global provider.
func NewProvider(log ports.Logger) *sdktrace.TracerProvider {
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewLogBridge(log)))
	otel.SetTracerProvider(provider)
	return provider
}
