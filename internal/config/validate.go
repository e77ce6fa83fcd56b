// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tamzrod/subsys-registry/internal/status"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// ------------------------------------------------------------
	// REGISTRY VALIDATION
	// ------------------------------------------------------------

	if cfg.Registry.Capacity < 0 {
		return fmt.Errorf("registry: capacity must be >= 0, got %d", cfg.Registry.Capacity)
	}

	capacity := cfg.Registry.Capacity
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	if capacity > MaxCapacity {
		return fmt.Errorf("registry: capacity %d exceeds %d", capacity, MaxCapacity)
	}
	if len(cfg.Registry.Subsystems) > capacity {
		return fmt.Errorf(
			"registry: %d subsystems configured but capacity is %d",
			len(cfg.Registry.Subsystems),
			capacity,
		)
	}

	for i, s := range cfg.Registry.Subsystems {
		if s.Name == "" {
			return fmt.Errorf("subsystem #%d: name required", i)
		}

		// name sanity (ASCII only)
		for j := 0; j < len(s.Name); j++ {
			if s.Name[j] > 0x7F {
				return fmt.Errorf(
					"subsystem %q: name must contain ASCII characters only",
					s.Name,
				)
			}
		}

		for _, fv := range s.Status.fields() {
			if fv.value > fv.field.Max() {
				return fmt.Errorf(
					"subsystem %q: %s accepts 0-%d, got %d",
					s.Name,
					fv.field,
					fv.field.Max(),
					fv.value,
				)
			}
		}
	}

	// ------------------------------------------------------------
	// PUBLISH VALIDATION (OPT-IN)
	// ------------------------------------------------------------

	p := cfg.Publish
	if p == nil {
		return nil
	}

	switch p.Transport {
	case "", TransportModbus, TransportIngest:
	default:
		return fmt.Errorf("publish: unknown transport %q", p.Transport)
	}

	if p.Endpoint == "" {
		return fmt.Errorf("publish: endpoint required")
	}
	if p.TimeoutMs < 0 {
		return fmt.Errorf("publish: timeout_ms must be >= 0, got %d", p.TimeoutMs)
	}

	// the whole status memory must fit in the 16-bit address space
	end := int(p.Address) + status.MemorySize(capacity) - 1
	if end > 0xFFFF {
		return fmt.Errorf(
			"publish: status memory %d-%d exceeds register space",
			p.Address,
			end,
		)
	}

	return nil
}

type fieldValue struct {
	field status.Field
	value uint8
}

// fields lists the seeded fields in word order.
func (s StatusConfig) fields() []fieldValue {
	return []fieldValue{
		{status.FieldPower, s.Power},
		{status.FieldActivity, s.Activity},
		{status.FieldError, s.Error},
		{status.FieldPerformance, s.Performance},
		{status.FieldResource, s.Resource},
	}
}
