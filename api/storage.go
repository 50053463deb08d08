// File: api/storage.go
// Package api
// Author: momentics <momentics@gmail.com>
//
// Aligned storage regions backing ring buffers.
//
// Slabs may be mmap-backed or heap-backed depending on platform and
// size; either way the region is fixed, zero-initialized, and released
// exactly once.

package api

// Slab describes an exclusively owned, fixed-length, aligned byte region.
type Slab interface {
	// Bytes returns the usable region. The slice header is stable for
	// the slab's lifetime; the region is never reallocated or resized.
	Bytes() []byte

	// Release returns the region to the OS or heap. The slab must not
	// be used afterwards. Idempotent.
	Release()
}
