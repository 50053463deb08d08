// File: internal/ring/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free single-producer/single-consumer byte ring buffer for
// real-time data paths (audio callbacks, streaming I/O) where neither
// side may block, allocate, or take a lock.
//
// The ring keeps two atomic cursors on separate cache lines: the write
// cursor is mutated only by the producer, the read cursor only by the
// consumer. One storage slot is permanently reserved so that occupancy
// never equals capacity, which removes the classic empty-vs-full
// ambiguity without an extra flag.
//
// Ordering: a cursor is published only after the corresponding byte
// copy completes, and availability is derived from a fresh load of the
// other side's cursor. Go's sync/atomic Load/Store are sequentially
// consistent, a strictly stronger (and safe) discipline than the
// acquire/release pairing this protocol minimally requires.
package ring
