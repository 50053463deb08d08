// File: internal/mem/slab_stub.go
//go:build !linux
// +build !linux

// Package mem: portable slab back-end over the Go heap.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mem

import "github.com/momentics/hioload-ring/api"

// platformAlloc allocates a zeroed, aligned slab from the Go heap.
func platformAlloc(size int) (api.Slab, error) {
	return heapSlab(size), nil
}

// platformRelease is a no-op for heap-backed slabs; the GC reclaims them.
func platformRelease(mapping []byte) {}
