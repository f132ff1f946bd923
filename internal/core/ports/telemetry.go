package ports

import "context"

// Tracer is the entry point for recording units of generation work.
type Tracer interface {
	// Start begins a new span. The returned context carries the span.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents one unit of work, such as writing an artifact.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
