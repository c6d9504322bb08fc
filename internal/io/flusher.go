// Package io provides writer helpers for streaming run output.
package io

import (
	"bufio"
	"io"
)

type flusher interface{ Flush() error }

// FlushingWriter flushes after every write, so progress lines and child
// output appear as they happen even when the underlying writer buffers.
type FlushingWriter struct {
	w io.Writer
	f flusher
}

// NewFlushingWriter wraps w. A writer that already knows how to flush is
// used as-is; anything else is wrapped in a bufio.Writer.
func NewFlushingWriter(w io.Writer) *FlushingWriter {
	if f, ok := w.(flusher); ok {
		return &FlushingWriter{w: w, f: f}
	}
	bw := bufio.NewWriter(w)
	return &FlushingWriter{w: bw, f: bw}
}

func (fw *FlushingWriter) Write(p []byte) (int, error) {
	n, err := fw.w.Write(p)
	if err != nil {
		return n, err
	}
	return n, fw.f.Flush()
}
