// control/controller.go
// Author: momentics <momentics@gmail.com>
//
// Controller implements api.Control over the control package primitives.

package control

import "github.com/momentics/hioload-ring/api"

// Controller glues ConfigStore, MetricsRegistry, and DebugProbes
// behind the api.Control contract.
type Controller struct {
	config  *ConfigStore
	metrics *MetricsRegistry
	debug   *DebugProbes
}

// Ensure compile-time interface compliance.
var _ api.Control = (*Controller)(nil)

// NewController builds a Controller around an existing config store
// (nil selects defaults).
func NewController(cfg *ConfigStore) *Controller {
	if cfg == nil {
		cfg = NewConfigStore()
	}
	return &Controller{
		config:  cfg,
		metrics: NewMetricsRegistry(),
		debug:   NewDebugProbes(),
	}
}

// GetConfig returns a config snapshot.
func (c *Controller) GetConfig() map[string]any {
	return c.config.GetSnapshot()
}

// SetConfig merges cfg and notifies reload listeners.
func (c *Controller) SetConfig(cfg map[string]any) error {
	c.config.SetConfig(cfg)
	return nil
}

// Stats merges metrics and probe output.
func (c *Controller) Stats() map[string]any {
	combined := c.metrics.GetSnapshot()
	for k, v := range c.debug.DumpState() {
		combined["debug."+k] = v
	}
	return combined
}

// OnReload registers a config-change listener.
func (c *Controller) OnReload(fn func()) {
	c.config.OnReload(fn)
}

// RegisterDebugProbe inserts a named debug hook.
func (c *Controller) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}

// Metrics exposes the underlying registry for writers.
func (c *Controller) Metrics() *MetricsRegistry {
	return c.metrics
}
