// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, runtime metrics, and debug introspection layer for
// hioload-ring. Part of the library's cold path: nothing here is ever
// called from the producer/consumer hot loops.
//
// Provides concurrent-safe state handling primitives including:
//   - Immutable snapshot config reads and atomic updates
//   - Viper-backed file/env configuration loading
//   - Metrics telemetry with a Prometheus collector over live rings
//   - Debug hooks and probe registration
package control
