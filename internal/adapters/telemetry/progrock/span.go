package progrock

import (
	"fmt"

	"github.com/vito/progrock"
)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// SetAttribute records a key-value pair on the vertex output stream.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// RecordError stores the error so End reports the vertex as failed.
func (s *Span) RecordError(err error) {
	s.err = err
}

// End marks the vertex as finished, successfully or with the recorded error.
func (s *Span) End() {
	s.vertex.Done(s.err)
}
