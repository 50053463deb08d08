// File: bridge/bridge.go
// Package bridge
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// By-handle pass-through operations mirroring the ring surface:
// create/destroy/write/read/reset/available-read/available-write.
// Unknown handles degrade to no-op transfers of zero bytes; only
// Create can fail.

package bridge

import "github.com/momentics/hioload-ring/api"

// Write copies up to len(p) bytes into the ring behind h.
// Returns 0 for unknown handles.
func (r *Registry) Write(h api.Handle, p []byte) int {
	rb, ok := r.get(h)
	if !ok {
		return 0
	}
	return rb.Write(p)
}

// Read copies up to len(p) bytes out of the ring behind h.
// Returns 0 for unknown handles.
func (r *Registry) Read(h api.Handle, p []byte) int {
	rb, ok := r.get(h)
	if !ok {
		return 0
	}
	return rb.Read(p)
}

// Reset reinitializes the ring behind h. Quiescence is the caller's
// obligation, exactly as on the ring itself.
func (r *Registry) Reset(h api.Handle) {
	if rb, ok := r.get(h); ok {
		rb.Reset()
	}
}

// AvailableRead reports stored bytes for the ring behind h.
func (r *Registry) AvailableRead(h api.Handle) int {
	rb, ok := r.get(h)
	if !ok {
		return 0
	}
	return rb.AvailableRead()
}

// AvailableWrite reports free bytes for the ring behind h.
func (r *Registry) AvailableWrite(h api.Handle) int {
	rb, ok := r.get(h)
	if !ok {
		return 0
	}
	return rb.AvailableWrite()
}
