// Package config handles loading and validation of the planner
// configuration file.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/llm-d-incubation/training-capacity-planner/internal/catalog"
	"github.com/llm-d-incubation/training-capacity-planner/pkg/core"
)

// Defaults holds tunables applied when a request leaves them unset.
type Defaults struct {
	// MFU is the default model FLOPS utilization in (0, 1].
	MFU float64 `yaml:"mfu" json:"mfu" mapstructure:"mfu"`
}

// FabricDefaults holds tunables for the fabric planning command.
type FabricDefaults struct {
	// NodeBandwidthGbps is the NIC bandwidth assumed per compute node.
	NodeBandwidthGbps float64 `yaml:"nodeBandwidthGbps" json:"nodeBandwidthGbps" mapstructure:"nodeBandwidthGbps"`
}

// Config is the planner configuration. All fields are optional; the zero
// value (plus ApplyDefaults) is a working configuration.
type Config struct {
	Defaults Defaults `yaml:"defaults" json:"defaults" mapstructure:"defaults"`

	// Accelerators extends the built-in catalog with additional types.
	// Built-in identifiers cannot be redefined.
	Accelerators []catalog.AcceleratorSpec `yaml:"accelerators" json:"accelerators" mapstructure:"accelerators"`

	Fabric FabricDefaults `yaml:"fabric" json:"fabric" mapstructure:"fabric"`
}

// ApplyDefaults fills unset fields with their built-in values.
func (c *Config) ApplyDefaults() {
	if c.Defaults.MFU == 0 {
		c.Defaults.MFU = core.DefaultMFU
	}
	if c.Fabric.NodeBandwidthGbps == 0 {
		c.Fabric.NodeBandwidthGbps = 200
	}
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	if c.Defaults.MFU <= 0 || c.Defaults.MFU > 1 {
		return fmt.Errorf("defaults.mfu must be in (0, 1], got %v", c.Defaults.MFU)
	}
	if c.Fabric.NodeBandwidthGbps <= 0 {
		return fmt.Errorf("fabric.nodeBandwidthGbps must be positive, got %v", c.Fabric.NodeBandwidthGbps)
	}
	for _, spec := range c.Accelerators {
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("invalid accelerator entry: %w", err)
		}
	}
	return nil
}

// Catalog builds the accelerator catalog described by the configuration:
// the built-in table extended with any configured accelerator entries.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	return catalog.New(c.Accelerators)
}

// Load reads the configuration file at path. An empty path yields the
// built-in defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		v := viper.New()
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := v.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
