package progrock

import (
	"io"

	"github.com/vito/progrock"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer attached to the vertex log.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Complete marks the vertex as finished.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as a cache hit and finishes it.
func (v *Vertex) Cached() {
	v.vertex.Cached()
	v.vertex.Done(nil)
}
