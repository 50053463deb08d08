// File: api/control.go
// Package api defines Control interface.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Control exposes the runtime knobs of a ring deployment: the live
// configuration (capacities, shard counts, spool limits), occupancy
// statistics aggregated over the registry, and reload hooks fired when
// the configuration changes.
type Control interface {
	// GetConfig returns a snapshot of the active configuration.
	GetConfig() map[string]any

	// SetConfig merges cfg into the active configuration and notifies
	// reload listeners once the merge is applied.
	SetConfig(cfg map[string]any) error

	// Stats reports registry-wide counters such as open rings and
	// stored bytes.
	Stats() map[string]any

	// OnReload registers fn to run after every successful SetConfig.
	OnReload(fn func())

	// RegisterDebugProbe publishes fn under name for diagnostic dumps.
	RegisterDebugProbe(name string, fn func() any)
}
