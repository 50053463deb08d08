// File: internal/mem/slab_linux.go
//go:build linux
// +build linux

// Package mem: Linux slab back-end using anonymous mmap.
//
// Large slabs attempt 2 MiB hugepages first; fallback is a plain
// anonymous mapping. Page-aligned mappings satisfy slabAlign without
// extra padding, and anonymous pages arrive zeroed from the kernel.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mem

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-ring/api"
)

// hugeSize is the transparent 2 MiB hugepage granularity.
const hugeSize = 2 << 20

// platformAlloc maps or allocates a zeroed slab of exactly size bytes.
func platformAlloc(size int) (api.Slab, error) {
	if size >= hugeSize {
		length := ((size + hugeSize - 1) / hugeSize) * hugeSize
		data, err := unix.Mmap(-1, 0, length,
			unix.PROT_READ|unix.PROT_WRITE,
			unix.MAP_ANONYMOUS|unix.MAP_PRIVATE|unix.MAP_HUGETLB)
		if err == nil {
			return &slab{data: data[:size:size], mapping: data}, nil
		}
	}

	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
	if err != nil {
		// The kernel refused the mapping outright; the caller must
		// treat the ring as never constructed.
		return nil, api.NewError(api.ErrCodeAllocation, "mmap failed").
			WithContext("size", size).
			WithContext("errno", err.Error())
	}
	return &slab{data: data[:size:size], mapping: data}, nil
}

// platformRelease returns mmap-backed memory to the OS.
func platformRelease(mapping []byte) {
	_ = unix.Munmap(mapping)
}
