// control/loader.go
// Author: momentics <momentics@gmail.com>
//
// Viper-backed configuration loading: YAML file plus RING_*-prefixed
// environment variables, merged over ConfigStore defaults.

package control

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Loader handles configuration loading and validation.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("RING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

// Load reads configuration from path (optional) and the environment,
// returning a populated ConfigStore. A missing file is not an error;
// an unreadable or invalid one is.
func (l *Loader) Load(path string) (*ConfigStore, error) {
	l.setDefaults()

	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := map[string]any{
		KeyRingCapacity:   l.v.GetInt(KeyRingCapacity),
		KeyRegistryShards: l.v.GetInt(KeyRegistryShards),
		KeyWriterSpool:    l.v.GetInt(KeyWriterSpool),
		KeyPinProducer:    l.v.GetInt(KeyPinProducer),
		KeyPinConsumer:    l.v.GetInt(KeyPinConsumer),
		KeyEnableMetrics:  l.v.GetBool(KeyEnableMetrics),
		KeyLogLevel:       l.v.GetString(KeyLogLevel),
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	store := NewConfigStore()
	store.SetConfig(cfg)
	return store, nil
}

// setDefaults mirrors the ConfigStore defaults into viper so file and
// env lookups fall back consistently.
func (l *Loader) setDefaults() {
	l.v.SetDefault(KeyRingCapacity, 64*1024)
	l.v.SetDefault(KeyRegistryShards, 16)
	l.v.SetDefault(KeyWriterSpool, 1<<20)
	l.v.SetDefault(KeyPinProducer, -1)
	l.v.SetDefault(KeyPinConsumer, -1)
	l.v.SetDefault(KeyEnableMetrics, true)
	l.v.SetDefault(KeyLogLevel, "info")
}

// validate rejects configurations the ring layer would refuse anyway,
// so misconfiguration fails at startup instead of at first OpenRing.
func validate(cfg map[string]any) error {
	if c, ok := cfg[KeyRingCapacity].(int); ok && c < 2 {
		return fmt.Errorf("%s must be at least 2, got %d", KeyRingCapacity, c)
	}
	if s, ok := cfg[KeyRegistryShards].(int); ok && s < 1 {
		return fmt.Errorf("%s must be positive, got %d", KeyRegistryShards, s)
	}
	return nil
}
