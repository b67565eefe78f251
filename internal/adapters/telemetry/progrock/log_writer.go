package progrock

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/nixcrate/internal/core/ports"
)

var _ progrock.Writer = (*LogWriter)(nil)

// LogWriter is a progrock.Writer reporting each vertex once, when it
// completes, through a ports.Logger. Vertex output is logged at debug level.
type LogWriter struct {
	logger ports.Logger

	mu    sync.Mutex
	names map[string]string
	done  map[string]bool
}

// NewLogWriter creates a LogWriter logging to logger.
func NewLogWriter(logger ports.Logger) *LogWriter {
	return &LogWriter{
		logger: logger,
		names:  make(map[string]string),
		done:   make(map[string]bool),
	}
}

// WriteStatus logs the vertexes completed and the output written in status.
func (w *LogWriter) WriteStatus(status *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range status.GetVertexes() {
		w.names[v.GetId()] = v.GetName()
		if v.GetCompleted() == nil || w.done[v.GetId()] {
			continue
		}
		w.done[v.GetId()] = true

		switch {
		case v.Error != nil:
			w.logger.Warn(fmt.Sprintf("%s failed: %s", v.GetName(), v.GetError()))
		case v.GetCanceled():
			w.logger.Warn(v.GetName() + " canceled")
		case v.GetCached():
			w.logger.Info(v.GetName() + " (cached)")
		default:
			elapsed := v.GetCompleted().AsTime().Sub(v.GetStarted().AsTime())
			w.logger.Info(fmt.Sprintf("%s done in %s", v.GetName(), elapsed.Round(time.Millisecond)))
		}
	}

	for _, l := range status.GetLogs() {
		line := strings.TrimRight(string(l.GetData()), "\n")
		if line == "" {
			continue
		}
		w.logger.Debug(w.names[l.GetVertex()] + ": " + line)
	}
	return nil
}

// Close does nothing.
func (w *LogWriter) Close() error {
	return nil
}
