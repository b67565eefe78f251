package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records progress of long-running steps.
type Telemetry interface {
	// Record starts a vertex for a unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	Stdout() io.Writer
	// Complete marks the vertex finished, failed when err is non-nil.
	Complete(err error)
	// Cached marks the vertex as satisfied from cache.
	Cached()
}
