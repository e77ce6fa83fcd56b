// internal/config/normalize.go
package config

import "github.com/tamzrod/subsys-registry/internal/status"

// DefaultCapacity matches the registry default.
const DefaultCapacity = 32

// MaxCapacity keeps the count/capacity header within one register.
const MaxCapacity = 0xFFFF

// DefaultTimeoutMs is the publish timeout when none is configured.
const DefaultTimeoutMs = 1000

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Registry.Capacity == 0 {
		cfg.Registry.Capacity = DefaultCapacity
	}

	for i := range cfg.Registry.Subsystems {
		s := &cfg.Registry.Subsystems[i]

		// Truncate to the stored name width
		if len(s.Name) > status.NameMaxChars {
			s.Name = s.Name[:status.NameMaxChars]
		}
	}

	if p := cfg.Publish; p != nil {
		if p.Transport == "" {
			p.Transport = TransportModbus
		}
		if p.TimeoutMs == 0 {
			p.TimeoutMs = DefaultTimeoutMs
		}
	}
}
