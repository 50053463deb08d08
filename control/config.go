// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with dynamic update and reload propagation.

package control

import (
	"sync"
)

// Well-known configuration keys.
const (
	KeyRingCapacity   = "ring.capacity"
	KeyRegistryShards = "registry.shards"
	KeyWriterSpool    = "writer.max_spool"
	KeyPinProducer    = "affinity.producer_cpu"
	KeyPinConsumer    = "affinity.consumer_cpu"
	KeyEnableMetrics  = "metrics.enabled"
	KeyLogLevel       = "log.level"
)

// ConfigStore is a dynamic key/value map with atomic snapshot and listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func()
}

// NewConfigStore initializes a config store seeded with defaults.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config: map[string]any{
			KeyRingCapacity:   64 * 1024,
			KeyRegistryShards: 16,
			KeyWriterSpool:    1 << 20,
			KeyPinProducer:    -1,
			KeyPinConsumer:    -1,
			KeyEnableMetrics:  true,
			KeyLogLevel:       "info",
		},
		listeners: make([]func(), 0),
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		out[k] = v
	}
	return out
}

// SetConfig merges new values and dispatches reload listeners.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	listeners := make([]func(), len(cs.listeners))
	copy(listeners, cs.listeners)
	cs.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

// OnReload registers a listener hook called after config changes.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}
