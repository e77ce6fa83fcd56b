// internal/config/load.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML document. An empty document yields an empty Config.
func Parse(raw []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

// envOverrides are the SUBSYS_* variables. Unset variables leave the file value alone.
type envOverrides struct {
	Capacity  *int    `env:"SUBSYS_REGISTRY_CAPACITY"`
	Transport *string `env:"SUBSYS_PUBLISH_TRANSPORT"`
	Endpoint  *string `env:"SUBSYS_PUBLISH_ENDPOINT"`
	UnitID    *uint8  `env:"SUBSYS_PUBLISH_UNIT_ID"`
}

// ApplyEnv overlays SUBSYS_* environment variables on cfg.
// Setting SUBSYS_PUBLISH_ENDPOINT enables publishing even without a publish section.
func ApplyEnv(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.Capacity != nil {
		cfg.Registry.Capacity = *o.Capacity
	}

	if cfg.Publish == nil && o.Endpoint != nil {
		cfg.Publish = &PublishConfig{}
	}
	if p := cfg.Publish; p != nil {
		if o.Transport != nil {
			p.Transport = *o.Transport
		}
		if o.Endpoint != nil {
			p.Endpoint = *o.Endpoint
		}
		if o.UnitID != nil {
			p.UnitID = *o.UnitID
		}
	}

	return nil
}
