// File: highlevel/writer.go
// Package highlevel provides producer/consumer conveniences over the
// SPSC ring core. Nothing in this package touches the ring hot path
// with locks; each wrapper stays single-goroutine like the side it
// wraps.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package highlevel

import (
	"io"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-ring/api"
)

// DefaultMaxSpool bounds the bytes a Writer keeps queued for retry.
const DefaultMaxSpool = 1 << 20

// Writer adapts a ring's producer side to io.Writer with loss
// protection: the remainder of a partial ring write is spooled in a
// FIFO and retried before any new data, preserving byte order
// end-to-end. Producer goroutine only, like ring.Write itself.
type Writer struct {
	ring     api.ByteRing
	spool    *queue.Queue // FIFO of []byte chunks awaiting retry
	spooled  int
	maxSpool int
}

var _ io.Writer = (*Writer)(nil)

// NewWriter wraps the producer side of ring. maxSpool bounds the
// spooled backlog in bytes; values <= 0 select DefaultMaxSpool.
func NewWriter(ring api.ByteRing, maxSpool int) *Writer {
	if maxSpool <= 0 {
		maxSpool = DefaultMaxSpool
	}
	return &Writer{
		ring:     ring,
		spool:    queue.New(),
		maxSpool: maxSpool,
	}
}

// Write queues p for in-order delivery into the ring. It first drains
// the spool, then writes p, spooling any remainder the ring had no
// room for. Returns len(p) on acceptance; the only error is spool
// exhaustion, which reports how much of p was accepted.
func (w *Writer) Write(p []byte) (int, error) {
	w.Flush()

	if w.spool.Length() == 0 {
		n := w.ring.Write(p)
		if n == len(p) {
			return n, nil
		}
		p = p[n:]
		if w.spooled+len(p) > w.maxSpool {
			room := w.maxSpool - w.spooled
			w.enqueue(p[:room])
			return n + room, api.NewError(api.ErrCodeInternal, "writer spool exhausted").
				WithContext("dropped", len(p)-room)
		}
		w.enqueue(p)
		return n + len(p), nil
	}

	// Spool still non-empty: p goes behind it to keep FIFO order.
	if w.spooled+len(p) > w.maxSpool {
		room := w.maxSpool - w.spooled
		w.enqueue(p[:room])
		return room, api.NewError(api.ErrCodeInternal, "writer spool exhausted").
			WithContext("dropped", len(p)-room)
	}
	w.enqueue(p)
	return len(p), nil
}

// Flush pushes spooled chunks into the ring until the ring fills or
// the spool empties. Returns the number of bytes moved.
func (w *Writer) Flush() int {
	moved := 0
	for w.spool.Length() > 0 {
		chunk := w.spool.Peek().([]byte)
		n := w.ring.Write(chunk)
		moved += n
		w.spooled -= n
		if n < len(chunk) {
			// Ring is full; trim the chunk in place and stop.
			w.spool.Remove()
			w.requeueFront(chunk[n:])
			break
		}
		w.spool.Remove()
	}
	return moved
}

// Spooled reports the bytes currently held back for retry.
func (w *Writer) Spooled() int {
	return w.spooled
}

// enqueue copies p into the spool; callers commonly reuse their write
// buffer, so the spool must own its bytes.
func (w *Writer) enqueue(p []byte) {
	if len(p) == 0 {
		return
	}
	c := make([]byte, len(p))
	copy(c, p)
	w.spool.Add(c)
	w.spooled += len(p)
}

// requeueFront puts the unflushed tail of a chunk back at the head of
// the FIFO by rebuilding the queue. The bytes are still counted in
// spooled; only their container moves.
func (w *Writer) requeueFront(rest []byte) {
	nq := queue.New()
	nq.Add(rest)
	for w.spool.Length() > 0 {
		nq.Add(w.spool.Remove())
	}
	w.spool = nq
}
