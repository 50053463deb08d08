// File: internal/mem/slab_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mem

import (
	"testing"
	"unsafe"
)

func TestNewSlabZeroedAndAligned(t *testing.T) {
	for _, size := range []int{1, 8, 4096, 1 << 20} {
		s, err := NewSlab(size)
		if err != nil {
			t.Fatalf("NewSlab(%d): %v", size, err)
		}
		b := s.Bytes()
		if len(b) != size {
			t.Errorf("size %d: got %d bytes", size, len(b))
		}
		if addr := uintptr(unsafe.Pointer(&b[0])); addr&(slabAlign-1) != 0 {
			t.Errorf("size %d: region not %d-byte aligned: %#x", size, slabAlign, addr)
		}
		for i, v := range b {
			if v != 0 {
				t.Fatalf("size %d: byte %d not zeroed: %d", size, i, v)
			}
		}
		s.Release()
	}
}

func TestNewSlabRejectsBadSizes(t *testing.T) {
	for _, size := range []int{0, -1, maxSlabBytes + 1} {
		if _, err := NewSlab(size); err == nil {
			t.Errorf("NewSlab(%d): expected error", size)
		}
	}
}

func TestSlabReleaseIdempotent(t *testing.T) {
	s, err := NewSlab(4096)
	if err != nil {
		t.Fatal(err)
	}
	s.Release()
	s.Release() // must not panic or double-unmap
	if s.Bytes() != nil {
		t.Error("Bytes() should be nil after Release")
	}
}

func TestAlignOffset(t *testing.T) {
	raw := make([]byte, 4096+slabAlign)
	off := alignOffset(raw)
	if off < 0 || off >= slabAlign {
		t.Fatalf("offset out of range: %d", off)
	}
	addr := uintptr(unsafe.Pointer(&raw[off]))
	if addr&(slabAlign-1) != 0 {
		t.Errorf("aligned offset %d yields unaligned address %#x", off, addr)
	}
}
