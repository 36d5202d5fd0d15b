package mython

import (
	"bytes"
	"io"
)

// Context is the output-sink abstraction consumed by the core, realizing
// §6's Context interface. It decouples the interpreter from where its
// output actually goes, the same separation the teacher's VM keeps
// between evaluation and any particular io.Writer.
type Context struct {
	w io.Writer
}

// OutputStream returns the byte-sink the interpreter writes `print`
// output to.
func (c *Context) OutputStream() io.Writer {
	return c.w
}

// NewFileContext wraps an already-open file (or any io.Writer) as the
// production output sink.
func NewFileContext(w io.Writer) *Context {
	return &Context{w: w}
}

// MemoryContext is a Context whose output accumulates into an in-memory
// buffer, used by tests in place of a file, the direct analogue of the
// original implementation's DummyContext/SimpleContext split.
type MemoryContext struct {
	*Context
	buf *bytes.Buffer
}

// NewMemoryContext returns a Context backed by an in-memory buffer.
func NewMemoryContext() *MemoryContext {
	buf := &bytes.Buffer{}
	return &MemoryContext{Context: NewFileContext(buf), buf: buf}
}

// String returns everything written to the context so far.
func (m *MemoryContext) String() string {
	return m.buf.String()
}
