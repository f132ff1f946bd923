// Package progrock provides the Progrock implementation of the tracer.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/ninjify/internal/core/ports"
)

// Tracer implements the ports.Tracer interface using the progrock library.
// Each span becomes a vertex on the tape.
type Tracer struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Tracer with a default tape.
func New() ports.Tracer {
	tape := progrock.NewTape()
	return NewTracer(tape)
}

// NewTracer creates a new Tracer with the given writer.
func NewTracer(w progrock.Writer) *Tracer {
	return &Tracer{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start begins recording a new vertex for the named unit of work.
func (t *Tracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	d := digest.FromString(name)
	v := t.rec.Vertex(d, name)
	return ctx, &Span{vertex: v}
}

// Close flushes and closes the recording session.
func (t *Tracer) Close() error {
	if c, ok := t.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
