package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)

	l.Info("generating build description")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "generating build description")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)

	l.Error(errors.New("write failed"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "write failed")
}
