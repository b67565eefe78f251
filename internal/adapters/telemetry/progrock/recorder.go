// Package progrock records prefetch progress with progrock and reports it
// through the logger.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/nixcrate/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on top of a progrock.Recorder.
type Recorder struct {
	rec *progrock.Recorder
}

// New creates a Recorder reporting completed vertexes through logger.
func New(logger ports.Logger) *Recorder {
	return NewRecorder(NewLogWriter(logger))
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{rec: progrock.NewRecorder(w)}
}

// Record starts a vertex identified by name.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.rec.Close()
}
