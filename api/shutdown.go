// File: api/shutdown.go
// Package api defines unified graceful shutdown contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// GracefulShutdown unifies orderly teardown across components.
type GracefulShutdown interface {
	// Shutdown stops internal services and releases resources.
	// Callers must have quiesced all ring producers and consumers
	// first; shutdown does not interrupt in-flight operations.
	Shutdown() error
}
