package tachyon

import (
	"io"
	"unicode/utf8"
)

// Buffer is a fixed-capacity output buffer with a sticky failure flag.
//
// A write that does not fit, or any write after a failure, is dropped in
// full and marks the buffer failed. Nothing is ever partially written and
// the buffer never grows. Callers check Failed after encoding and call Reset
// before the next independent encode.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	buf    []byte
	pos    int
	failed bool
}

// NewBuffer allocates a buffer holding at most n bytes.
func NewBuffer(n int) *Buffer {
	return &Buffer{buf: make([]byte, n)}
}

// NewBufferFrom wraps caller storage; the capacity is len(storage).
func NewBufferFrom(storage []byte) *Buffer {
	return &Buffer{buf: storage}
}

// Reset rewinds the cursor and clears the failure flag.
func (b *Buffer) Reset() {
	b.pos = 0
	b.failed = false
}

// Write appends p, or drops it whole and marks the buffer failed. It does
// not satisfy io.Writer on purpose: overflow is reported through Failed.
func (b *Buffer) Write(p []byte) {
	if b.failed || len(p) > len(b.buf)-b.pos {
		b.failed = true
		return
	}
	b.pos += copy(b.buf[b.pos:], p)
}

// WriteString is Write for a string.
func (b *Buffer) WriteString(s string) {
	if b.failed || len(s) > len(b.buf)-b.pos {
		b.failed = true
		return
	}
	b.pos += copy(b.buf[b.pos:], s)
}

// WriteChar writes a single byte.
func (b *Buffer) WriteChar(c byte) {
	if b.failed || b.pos >= len(b.buf) {
		b.failed = true
		return
	}
	b.buf[b.pos] = c
	b.pos++
}

// Failed reports whether a write was dropped since the last Reset.
func (b *Buffer) Failed() bool { return b.failed }

// Len is the number of bytes written.
func (b *Buffer) Len() int { return b.pos }

// Cap is the fixed capacity.
func (b *Buffer) Cap() int { return len(b.buf) }

// Available is the number of bytes left before the buffer fails.
func (b *Buffer) Available() int { return len(b.buf) - b.pos }

// Bytes returns the written prefix. The slice aliases the buffer and is
// only valid until the next Reset.
func (b *Buffer) Bytes() []byte { return b.buf[:b.pos] }

// String returns a copy of the written prefix, or "" if it is not valid UTF-8.
func (b *Buffer) String() string {
	p := b.buf[:b.pos]
	if !utf8.Valid(p) {
		return ""
	}
	return string(p)
}

// Clone returns a freshly allocated copy of the written prefix.
func (b *Buffer) Clone() []byte {
	out := make([]byte, b.pos)
	copy(out, b.buf[:b.pos])
	return out
}

// WriteTo drains the written prefix into w. The buffer is left untouched.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf[:b.pos])
	return int64(n), err
}

// reserve proves that n more bytes fit. On failure the buffer is marked
// failed. Encoder steps call it once and then use the unchecked writers.
func (b *Buffer) reserve(n int) bool {
	if b.failed || n > len(b.buf)-b.pos {
		b.failed = true
		return false
	}
	return true
}

func (b *Buffer) fail() { b.failed = true }

// unchecked; only valid after reserve

func (b *Buffer) writeCharFast(c byte) {
	b.buf[b.pos] = c
	b.pos++
}

func (b *Buffer) writeRaw(s string) {
	b.pos += copy(b.buf[b.pos:], s)
}
