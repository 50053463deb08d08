// File: bridge/registry.go
// Package bridge
// Author: momentics <momentics@gmail.com>
//
// Sharded, thread-safe handle registry for high concurrency.

package bridge

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/ring"
)

// Ensure compile-time interface compliance.
var _ api.Registry = (*Registry)(nil)

// Registry implements sharded storage of ring handles. Handle values
// are dense monotonic integers; lookups hash by handle so unrelated
// rings never contend on one lock.
type Registry struct {
	next   atomic.Uint64
	shards []*registryShard
	mask   uint64
}

type registryShard struct {
	mu    sync.RWMutex
	rings map[api.Handle]*ring.Ring
}

// NewRegistry constructs a sharded registry with shardCount shards.
func NewRegistry(shardCount int) *Registry {
	if shardCount <= 0 {
		shardCount = 16
	}
	// power-of-two shards for bitmasking
	m := nextPowerOfTwo(uint64(shardCount))
	shards := make([]*registryShard, m)
	for i := range shards {
		shards[i] = &registryShard{rings: make(map[api.Handle]*ring.Ring)}
	}
	return &Registry{shards: shards, mask: m - 1}
}

// shard picks the correct shard for a given handle.
func (r *Registry) shard(h api.Handle) *registryShard {
	return r.shards[uint64(h)&r.mask]
}

// Create allocates a ring of the given capacity and registers it.
func (r *Registry) Create(capacity int) (api.Handle, error) {
	rb, err := ring.New(capacity)
	if err != nil {
		return 0, err
	}
	h := api.Handle(r.next.Add(1))
	sh := r.shard(h)
	sh.mu.Lock()
	sh.rings[h] = rb
	sh.mu.Unlock()
	return h, nil
}

// Get resolves a handle if present.
func (r *Registry) Get(h api.Handle) (api.ByteRing, bool) {
	rb, ok := r.get(h)
	if !ok {
		return nil, false
	}
	return rb, true
}

func (r *Registry) get(h api.Handle) (*ring.Ring, bool) {
	sh := r.shard(h)
	sh.mu.RLock()
	rb, ok := sh.rings[h]
	sh.mu.RUnlock()
	return rb, ok
}

// Destroy unregisters the ring behind h and releases its storage.
// The caller must guarantee no operation is in flight on the ring.
// Unknown handles are ignored.
func (r *Registry) Destroy(h api.Handle) {
	sh := r.shard(h)
	sh.mu.Lock()
	rb, ok := sh.rings[h]
	if ok {
		delete(sh.rings, h)
	}
	sh.mu.Unlock()
	if ok {
		rb.Close()
	}
}

// Len reports the number of live handles.
func (r *Registry) Len() int {
	n := 0
	for _, sh := range r.shards {
		sh.mu.RLock()
		n += len(sh.rings)
		sh.mu.RUnlock()
	}
	return n
}

// Range calls fn for each live handle. Ordering is unspecified.
func (r *Registry) Range(fn func(api.Handle, api.ByteRing)) {
	for _, sh := range r.shards {
		sh.mu.RLock()
		for h, rb := range sh.rings {
			fn(h, rb)
		}
		sh.mu.RUnlock()
	}
}

// nextPowerOfTwo rounds n up to the next power of two.
func nextPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
