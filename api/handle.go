// File: api/handle.go
// Package api defines the opaque-handle bridge contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Handles let foreign callers address rings without holding Go pointers.
// The registry is a pure pass-through: it adds no synchronization or
// buffering on the data path.

package api

// Handle is an opaque reference to a ring held by a Registry.
// The zero Handle is never valid.
type Handle uint64

// Registry maps opaque handles to rings for bridge-style callers.
type Registry interface {
	// Create allocates a ring of the given capacity and returns its
	// handle. Fails with ErrCodeAllocation or ErrCodeInvalidArgument.
	Create(capacity int) (Handle, error)

	// Get resolves a handle to its ring.
	Get(h Handle) (ByteRing, bool)

	// Destroy releases the ring behind h. The caller must guarantee no
	// producer/consumer operation is in flight.
	Destroy(h Handle)

	// Len reports the number of live handles.
	Len() int
}
