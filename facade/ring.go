// File: facade/ring.go
// Unified facade layer for hioload-ring library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the HioloadRing struct, which aggregates the core
// components of the library behind a single facade. It initializes the
// handle registry, control interface, Prometheus metrics, and
// structured logging based on immutable configuration, and exposes
// methods to open/close rings, obtain producer/consumer adapters, and
// retrieve runtime services.

package facade

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/bridge"
	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/highlevel"
)

// Config holds parameters immutable per run.
type Config struct {
	RingCapacity   int    // Allocated ring size in bytes (usable is capacity-1)
	RegistryShards int    // Number of shards in the handle registry
	WriterMaxSpool int    // Byte bound on highlevel.Writer retry spools
	ProducerCPU    int    // CPU to pin producer threads to, -1 to disable
	ConsumerCPU    int    // CPU to pin consumer threads to, -1 to disable
	EnableMetrics  bool   // Whether to register Prometheus collectors
	LogLevel       string // zap level: debug, info, warn, error
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		RingCapacity:   64 * 1024,
		RegistryShards: 16,
		WriterMaxSpool: 1 << 20,
		ProducerCPU:    -1,
		ConsumerCPU:    -1,
		EnableMetrics:  true,
		LogLevel:       "info",
	}
}

// FromStore derives a Config from a loaded control.ConfigStore.
func FromStore(store *control.ConfigStore) *Config {
	cfg := DefaultConfig()
	snap := store.GetSnapshot()
	if v, ok := snap[control.KeyRingCapacity].(int); ok {
		cfg.RingCapacity = v
	}
	if v, ok := snap[control.KeyRegistryShards].(int); ok {
		cfg.RegistryShards = v
	}
	if v, ok := snap[control.KeyWriterSpool].(int); ok {
		cfg.WriterMaxSpool = v
	}
	if v, ok := snap[control.KeyPinProducer].(int); ok {
		cfg.ProducerCPU = v
	}
	if v, ok := snap[control.KeyPinConsumer].(int); ok {
		cfg.ConsumerCPU = v
	}
	if v, ok := snap[control.KeyEnableMetrics].(bool); ok {
		cfg.EnableMetrics = v
	}
	if v, ok := snap[control.KeyLogLevel].(string); ok {
		cfg.LogLevel = v
	}
	return cfg
}

// HioloadRing is the main facade type.
type HioloadRing struct {
	registry  *bridge.Registry
	control   api.Control
	promReg   *prometheus.Registry
	lifecycle *control.LifecycleMetrics
	logger    *zap.Logger

	config  *Config
	mu      sync.Mutex // Protects stopped flag
	stopped bool
}

// Ensure compliance with api.GracefulShutdown.
var _ api.GracefulShutdown = (*HioloadRing)(nil)

// New constructs HioloadRing with the given configuration.
func New(cfg *Config) (*HioloadRing, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init failure: %w", err)
	}

	h := &HioloadRing{
		registry: bridge.NewRegistry(cfg.RegistryShards),
		config:   cfg,
		logger:   logger,
	}

	ctrl := control.NewController(nil)
	ctrl.SetConfig(map[string]any{
		control.KeyRingCapacity:   cfg.RingCapacity,
		control.KeyRegistryShards: cfg.RegistryShards,
		control.KeyWriterSpool:    cfg.WriterMaxSpool,
		control.KeyPinProducer:    cfg.ProducerCPU,
		control.KeyPinConsumer:    cfg.ConsumerCPU,
		control.KeyEnableMetrics:  cfg.EnableMetrics,
		control.KeyLogLevel:       cfg.LogLevel,
	})
	ctrl.RegisterDebugProbe("rings.live", func() any {
		return h.registry.Len()
	})
	h.control = ctrl

	if cfg.EnableMetrics {
		h.promReg = prometheus.NewRegistry()
		if err := h.promReg.Register(control.NewRingCollector(h.registry)); err != nil {
			return nil, fmt.Errorf("metrics init failure: %w", err)
		}
		h.lifecycle = control.NewLifecycleMetrics(h.promReg)
	}

	logger.Info("hioload-ring initialized",
		zap.Int("ringCapacity", cfg.RingCapacity),
		zap.Int("registryShards", cfg.RegistryShards),
		zap.Bool("metrics", cfg.EnableMetrics))
	return h, nil
}

// OpenRing allocates a ring of the configured capacity.
func (h *HioloadRing) OpenRing() (api.Handle, error) {
	return h.OpenRingSize(h.config.RingCapacity)
}

// OpenRingSize allocates a ring of an explicit capacity.
func (h *HioloadRing) OpenRingSize(capacity int) (api.Handle, error) {
	handle, err := h.registry.Create(capacity)
	if err != nil {
		if h.lifecycle != nil {
			h.lifecycle.OpenErrors.Inc()
		}
		h.logger.Warn("ring open failed",
			zap.Int("capacity", capacity), zap.Error(err))
		return 0, err
	}
	if h.lifecycle != nil {
		h.lifecycle.RingsOpened.Inc()
	}
	h.logger.Debug("ring opened",
		zap.Uint64("handle", uint64(handle)), zap.Int("capacity", capacity))
	return handle, nil
}

// CloseRing destroys the ring behind handle. The caller must have
// quiesced producer and consumer first.
func (h *HioloadRing) CloseRing(handle api.Handle) {
	h.registry.Destroy(handle)
	if h.lifecycle != nil {
		h.lifecycle.RingsClosed.Inc()
	}
	h.logger.Debug("ring closed", zap.Uint64("handle", uint64(handle)))
}

// Producer returns an io.Writer over the handle's producer side, with
// the configured spool bound. Single goroutine use only.
func (h *HioloadRing) Producer(handle api.Handle) (*highlevel.Writer, error) {
	rb, ok := h.registry.Get(handle)
	if !ok {
		return nil, api.NewError(api.ErrCodeNotFound, "unknown ring handle").
			WithContext("handle", uint64(handle))
	}
	return highlevel.NewWriter(rb, h.config.WriterMaxSpool), nil
}

// Consumer returns an io.Reader over the handle's consumer side.
// Single goroutine use only.
func (h *HioloadRing) Consumer(handle api.Handle) (*highlevel.Reader, error) {
	rb, ok := h.registry.Get(handle)
	if !ok {
		return nil, api.NewError(api.ErrCodeNotFound, "unknown ring handle").
			WithContext("handle", uint64(handle))
	}
	return highlevel.NewReader(rb), nil
}

// Registry exposes the handle registry for bridge-style callers.
func (h *HioloadRing) Registry() *bridge.Registry {
	return h.registry
}

// Control returns the Control interface for dynamic config and metrics.
func (h *HioloadRing) Control() api.Control {
	return h.control
}

// Prometheus returns the metrics registry, nil when metrics are disabled.
func (h *HioloadRing) Prometheus() *prometheus.Registry {
	return h.promReg
}

// Logger exposes the facade logger for embedders.
func (h *HioloadRing) Logger() *zap.Logger {
	return h.logger
}

// Stop destroys all live rings and flushes the logger. Calling Stop
// twice is a no-op. Callers must have quiesced all producers and
// consumers.
func (h *HioloadRing) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return nil
	}
	var handles []api.Handle
	h.registry.Range(func(handle api.Handle, _ api.ByteRing) {
		handles = append(handles, handle)
	})
	for _, handle := range handles {
		h.CloseRing(handle)
	}
	h.logger.Info("hioload-ring stopped", zap.Int("ringsClosed", len(handles)))
	_ = h.logger.Sync()
	h.stopped = true
	return nil
}

// Shutdown implements api.GracefulShutdown by delegating to Stop().
func (h *HioloadRing) Shutdown() error {
	return h.Stop()
}

// newLogger builds a production zap logger at the given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
