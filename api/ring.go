// File: api/ring.go
// Package api defines the ByteRing contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free SPSC byte ring buffer for real-time producer/consumer paths.

package api

// ByteRing is a fixed-capacity, lock-free single-producer/single-consumer
// byte ring buffer contract.
//
// Exactly one goroutine (the producer) may call Write, and exactly one
// other goroutine (the consumer) may call Read. No operation blocks,
// allocates, or takes a lock. Partial transfers are the normal
// back-pressure signal, not an error.
type ByteRing interface {
	// Write copies up to len(p) bytes into the ring and returns the
	// number of bytes actually written. Producer goroutine only.
	Write(p []byte) int

	// Read copies up to len(p) bytes out of the ring and returns the
	// number of bytes actually read. Consumer goroutine only.
	Read(p []byte) int

	// AvailableRead returns the number of bytes currently stored.
	// Advisory: the value may be stale by the time the caller acts.
	AvailableRead() int

	// AvailableWrite returns the number of bytes currently free.
	// Advisory, same caveat as AvailableRead.
	AvailableWrite() int

	// Reset zeroes both cursors and the storage. Not part of the
	// concurrent protocol: callers must quiesce producer and consumer
	// before invoking it.
	Reset()

	// Cap returns the usable capacity in bytes (one slot of the
	// allocated region is reserved to distinguish empty from full).
	Cap() int
}
