// File: bridge/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Opaque-handle adapter over the SPSC ring core, for embedders that
// cannot (or prefer not to) hold Go pointers across a boundary.
//
// The bridge is a pure pass-through: handle resolution adds no
// synchronization or buffering to the data path, so the ring's SPSC
// contract is unchanged — per handle, exactly one producer may call
// Write and exactly one consumer may call Read.
package bridge
