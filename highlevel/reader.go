// File: highlevel/reader.go
// Package highlevel
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package highlevel

import (
	"io"

	"github.com/momentics/hioload-ring/api"
)

// Reader adapts a ring's consumer side to io.Reader. Consumer
// goroutine only, like ring.Read itself.
//
// A ring has no end-of-stream concept, so an empty ring yields
// (0, nil) rather than io.EOF; callers poll or pace themselves the
// same way they would against the raw ring.
type Reader struct {
	ring api.ByteRing
}

var _ io.Reader = (*Reader)(nil)

// NewReader wraps the consumer side of ring.
func NewReader(ring api.ByteRing) *Reader {
	return &Reader{ring: ring}
}

// Read copies up to len(p) bytes out of the ring.
func (r *Reader) Read(p []byte) (int, error) {
	return r.ring.Read(p), nil
}

// Buffered reports the bytes currently readable. Advisory, exactly
// like the ring's own availability counters.
func (r *Reader) Buffered() int {
	return r.ring.AvailableRead()
}

// WriteTo drains everything currently stored in the ring into dst.
// It stops at the first empty snapshot rather than spinning, so a
// concurrent producer cannot keep it live-locked.
func (r *Reader) WriteTo(dst io.Writer) (int64, error) {
	var total int64
	chunk := make([]byte, 4096)
	for {
		n := r.ring.Read(chunk)
		if n == 0 {
			return total, nil
		}
		wn, err := dst.Write(chunk[:n])
		total += int64(wn)
		if err != nil {
			return total, err
		}
	}
}
