package progrock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
)

func TestTracer_SpanLifecycle(t *testing.T) {
	tape := progrock.NewTape()
	tracer := NewTracer(tape)

	_, span := tracer.Start(context.Background(), "write ninja file")
	span.SetAttribute("nodes", 42)
	span.End()

	require.NoError(t, tracer.Close())
}

func TestTracer_SpanRecordsError(t *testing.T) {
	tape := progrock.NewTape()
	tracer := NewTracer(tape)

	_, span := tracer.Start(context.Background(), "write wrapper script")
	span.RecordError(assert.AnError)
	span.End()

	require.NoError(t, tracer.Close())
}
