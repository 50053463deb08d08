// File: internal/mem/align.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mem

import "unsafe"

// alignOffset returns the smallest offset into raw whose address is a
// multiple of slabAlign. raw must be at least slabAlign bytes longer
// than the region the caller needs.
func alignOffset(raw []byte) int {
	addr := uintptr(unsafe.Pointer(&raw[0]))
	rem := int(addr & (slabAlign - 1))
	if rem == 0 {
		return 0
	}
	return slabAlign - rem
}
