// File: internal/ring/ring.go
// Package ring implements the SPSC byte ring buffer.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring is a bounded circular byte buffer with atomic read/write
// cursors, padded to prevent false sharing.
// Implements api.ByteRing for cross-package consistency.

package ring

import (
	"sync/atomic"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/mem"
)

// Ensure compile-time interface compliance.
var _ api.ByteRing = (*Ring)(nil)

// minCapacity is the smallest accepted allocation. Capacities 0 and 1
// would yield a ring that can never hold a byte (usable capacity is
// capacity-1), so construction rejects them outright.
const minCapacity = 2

// Ring is a lock-free SPSC byte ring buffer.
//
// Exactly one goroutine may call Write and exactly one other may call
// Read. Each cursor is mutated by its owning side only and observed
// read-only by the other; both live on their own cache line.
type Ring struct {
	noCopy noCopy

	writeIdx atomic.Uint64
	_        [56]byte // Padding for hot/cold separation
	readIdx  atomic.Uint64
	_        [56]byte // Padding

	buf      []byte
	capacity uint64
	slab     api.Slab
}

// New allocates a ring over a zeroed, aligned slab of capacity bytes.
// Usable capacity is capacity-1. Capacities below 2 are rejected;
// allocation failure surfaces as an api.Error with ErrCodeAllocation.
func New(capacity int) (*Ring, error) {
	if capacity < minCapacity {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"ring capacity must be at least 2").
			WithContext("capacity", capacity)
	}
	slab, err := mem.NewSlab(capacity)
	if err != nil {
		return nil, err
	}
	return &Ring{
		buf:      slab.Bytes(),
		capacity: uint64(capacity),
		slab:     slab,
	}, nil
}

// Write copies up to len(p) bytes into the ring, returning the number
// of bytes actually written. Lossy: when free space is short, only the
// available portion is copied and the caller decides whether to retry
// or drop the remainder. Producer goroutine only.
func (r *Ring) Write(p []byte) int {
	w := r.writeIdx.Load()
	rd := r.readIdx.Load()

	free := freeBytes(w, rd, r.capacity)
	toWrite := uint64(len(p))
	if toWrite > free {
		toWrite = free
	}
	if toWrite == 0 {
		return 0
	}

	// Two-segment copy: tail of storage first, then wrap to the head.
	first := r.capacity - w
	if first > toWrite {
		first = toWrite
	}
	copy(r.buf[w:w+first], p[:first])
	if first < toWrite {
		copy(r.buf, p[first:toWrite])
	}

	// Publish only after the copy completes so the consumer never
	// observes the advanced cursor before the bytes are visible.
	r.writeIdx.Store((w + toWrite) % r.capacity)
	return int(toWrite)
}

// Read copies up to len(p) bytes out of the ring, returning the number
// of bytes actually read. Consumer goroutine only.
func (r *Ring) Read(p []byte) int {
	rd := r.readIdx.Load()
	w := r.writeIdx.Load()

	stored := storedBytes(w, rd, r.capacity)
	toRead := uint64(len(p))
	if toRead > stored {
		toRead = stored
	}
	if toRead == 0 {
		return 0
	}

	first := r.capacity - rd
	if first > toRead {
		first = toRead
	}
	copy(p[:first], r.buf[rd:rd+first])
	if first < toRead {
		copy(p[first:toRead], r.buf)
	}

	// Advance only after the copy completes so the producer never
	// reclaims space still being consumed.
	r.readIdx.Store((rd + toRead) % r.capacity)
	return int(toRead)
}

// AvailableRead returns the number of bytes currently stored.
// Advisory snapshot: the producer may have written more by the time
// the caller acts on it.
func (r *Ring) AvailableRead() int {
	w := r.writeIdx.Load()
	rd := r.readIdx.Load()
	return int(storedBytes(w, rd, r.capacity))
}

// AvailableWrite returns the number of bytes currently free.
// Advisory snapshot, same caveat as AvailableRead.
func (r *Ring) AvailableWrite() int {
	w := r.writeIdx.Load()
	rd := r.readIdx.Load()
	return int(freeBytes(w, rd, r.capacity))
}

// Cap returns the usable capacity in bytes.
func (r *Ring) Cap() int {
	return int(r.capacity) - 1
}

// Reset zeroes both cursors and the storage. Not part of the
// concurrent protocol: the caller must quiesce producer and consumer
// first; calling it concurrently with Write/Read is a data race.
func (r *Ring) Reset() {
	r.writeIdx.Store(0)
	r.readIdx.Store(0)
	clear(r.buf)
}

// Close releases the backing slab. The caller must guarantee both
// sides have stopped; idempotent via the slab's release guard.
func (r *Ring) Close() {
	r.slab.Release()
	r.buf = nil
}

// storedBytes is (w - rd) mod capacity, always in [0, capacity-1].
func storedBytes(w, rd, capacity uint64) uint64 {
	if w >= rd {
		return w - rd
	}
	return capacity - (rd - w)
}

// freeBytes is capacity-1-storedBytes: the reserved slot keeps a full
// ring distinguishable from an empty one.
func freeBytes(w, rd, capacity uint64) uint64 {
	if w >= rd {
		return capacity - (w - rd) - 1
	}
	return rd - w - 1
}

// noCopy flags accidental by-value copies to go vet. Duplicating a
// Ring would duplicate ownership of the slab and the cursors.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
