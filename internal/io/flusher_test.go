package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingFlusher struct {
	bytes.Buffer
	flushes int
}

func (r *recordingFlusher) Flush() error {
	r.flushes++
	return nil
}

func TestFlushingWriter_FlushesAfterEachWrite(t *testing.T) {
	rec := &recordingFlusher{}
	fw := NewFlushingWriter(rec)

	_, err := fw.Write([]byte("first\n"))
	require.NoError(t, err)
	_, err = fw.Write([]byte("second\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, rec.flushes)
	assert.Equal(t, "first\nsecond\n", rec.String())
}

func TestFlushingWriter_WrapsPlainWriters(t *testing.T) {
	var buf bytes.Buffer
	fw := NewFlushingWriter(&buf)

	_, err := fw.Write([]byte("visible immediately"))
	require.NoError(t, err)

	// The bufio layer must have been flushed through to the target.
	assert.Equal(t, "visible immediately", buf.String())
}
