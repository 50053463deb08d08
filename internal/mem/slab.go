// File: internal/mem/slab.go
// Package mem implements aligned slab storage for ring buffers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A slab is allocated once at ring construction and released exactly
// once at destruction. Platform back-ends live in slab_linux.go and
// slab_stub.go; both guarantee a zeroed, alignment-friendly region.

package mem

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
)

// slabAlign is the storage alignment in bytes. Cache-line/SIMD friendly.
const slabAlign = 64

// maxSlabBytes caps a single slab request. Requests beyond it are
// treated as allocation failures rather than handed to the allocator.
const maxSlabBytes = 1 << 30 // 1 GiB

// slab is the common front-end over platform allocations.
type slab struct {
	data    []byte    // usable, aligned region
	mapping []byte    // full mmap region when OS-backed, nil when heap-backed
	once    sync.Once // release exactly once
}

// Ensure compile-time interface compliance.
var _ api.Slab = (*slab)(nil)

// NewSlab allocates a zeroed slab of exactly size bytes, aligned to
// slabAlign. Fails with an allocation error when the request cannot be
// satisfied.
func NewSlab(size int) (api.Slab, error) {
	if size <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "slab size must be positive").
			WithContext("size", size)
	}
	if size > maxSlabBytes {
		return nil, api.NewError(api.ErrCodeAllocation, "slab size exceeds allocator limit").
			WithContext("size", size)
	}
	return platformAlloc(size)
}

// Bytes returns the usable region.
func (s *slab) Bytes() []byte {
	return s.data
}

// Release returns the region to the OS or heap. Idempotent.
func (s *slab) Release() {
	s.once.Do(func() {
		if s.mapping != nil {
			platformRelease(s.mapping)
			s.mapping = nil
		}
		s.data = nil
	})
}

// heapSlab over-allocates from the Go heap and slices to an aligned
// offset. make() guarantees zeroed memory.
func heapSlab(size int) *slab {
	raw := make([]byte, size+slabAlign)
	off := alignOffset(raw)
	return &slab{data: raw[off : off+size : off+size]}
}
