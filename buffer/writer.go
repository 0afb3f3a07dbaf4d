// Package buffer provides a growable output adapter layered outside the
// codec core. The core coders never allocate — the caller owns and sizes the
// span — so convenience callers that want automatic growth use a Writer
// here instead.
package buffer

import (
	"github.com/arloliu/picowire/codec"
	"github.com/arloliu/picowire/internal/pool"
)

// Writer accumulates encoded values in a pooled, amortized-growth byte
// buffer. Values are appended with the generic Append function, which sizes
// the write with the coder's EncodeSkip and then encodes in unsafe mode —
// the bounds are established before the write, so the checked path would be
// pure overhead.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	buf   *pool.ByteBuffer
	count int
}

// NewWriter creates a new Writer backed by a pooled byte buffer.
//
// Returns:
//   - *Writer: A new writer ready for appending encoded values
func NewWriter() *Writer {
	return &Writer{buf: pool.GetWriterBuffer()}
}

// Append encodes v with c at the end of w's buffer, growing it as needed.
//
// The buffer is extended by exactly c.EncodeSkip(v) bytes and the value is
// written with EncodeUnsafe into the reserved region, so a single
// allocation decision covers the whole write.
func Append[T any](w *Writer, c codec.SkipCoder[T], v T) {
	n := c.EncodeSkip(v)

	start := w.buf.Len()
	w.buf.ExtendOrGrow(n)
	c.EncodeUnsafe(v, codec.Span(w.buf.Slice(start, start+n)))

	w.count++
}

// AppendBytes appends raw, already-encoded bytes to the buffer. Useful for
// splicing in payloads produced elsewhere without re-encoding.
func (w *Writer) AppendBytes(data []byte) {
	w.buf.MustWrite(data)
	w.count++
}

// Bytes returns the accumulated encoding.
//
// The returned slice references the internal buffer and is valid until the
// next Append, Reset or Release; the caller must not modify it.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of values appended since the writer was created or
// last Reset.
func (w *Writer) Len() int {
	return w.count
}

// Size returns the total size of the accumulated encoding in bytes.
func (w *Writer) Size() int {
	return w.buf.Len()
}

// Reset clears the accumulated encoding while retaining the buffer for
// reuse.
func (w *Writer) Reset() {
	w.buf.Reset()
	w.count = 0
}

// Release returns the internal buffer to the pool. The writer must not be
// used after calling Release.
func (w *Writer) Release() {
	if w.buf != nil {
		pool.PutWriterBuffer(w.buf)
		w.buf = nil
	}
	w.count = 0
}
