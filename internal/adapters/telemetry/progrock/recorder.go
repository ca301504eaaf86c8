// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/recipe/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the progrock library.
type Recorder struct {
	w      progrock.Writer
	rec    *progrock.Recorder
	stream *Stream

	mu   sync.RWMutex
	echo io.Writer

	closeOnce sync.Once
	closeErr  error
}

// New creates a Recorder backed by a Stream. Vertex stderr is echoed to the
// process stderr until Mute is called.
func New() *Recorder {
	r := NewRecorder(NewStream())
	r.echo = os.Stderr
	return r
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	rec := progrock.NewRecorder(w)
	r := &Recorder{
		w:   w,
		rec: rec,
	}
	if s, ok := w.(*Stream); ok {
		r.stream = s
	}
	return r
}

// Stream returns the in-memory stream the recorder writes to, or nil when it
// was built over another writer.
func (r *Recorder) Stream() *Stream {
	return r.stream
}

// Mute stops echoing vertex stderr. Output is still recorded on the vertex.
func (r *Recorder) Mute() {
	r.SetEcho(nil)
}

// SetEcho sets the writer vertex stderr is copied to. Nil disables the copy.
// Vertices recorded earlier keep the writer they were created with.
func (r *Recorder) SetEcho(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.echo = w
}

// Record starts recording a new vertex. Vertices are keyed by name, so
// recording the same stage twice reuses its digest.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	r.mu.RLock()
	echo := r.echo
	r.mu.RUnlock()

	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	vertex := &Vertex{vertex: v, echo: echo}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	r.closeOnce.Do(func() {
		if c, ok := r.w.(interface{ Close() error }); ok {
			r.closeErr = c.Close()
		}
	})
	return r.closeErr
}
