// cmd/subsys/seed.go
package main

import (
	"fmt"

	"github.com/tamzrod/subsys-registry/internal/config"
	"github.com/tamzrod/subsys-registry/internal/registry"
	"github.com/tamzrod/subsys-registry/internal/status"
)

// seedRegistry builds a registry from a validated, normalized config.
func seedRegistry(cfg *config.Config) (*registry.Registry, error) {
	reg := registry.New(cfg.Registry.Capacity)

	for _, s := range cfg.Registry.Subsystems {
		if err := reg.Insert(s.Name); err != nil {
			return nil, fmt.Errorf("seed %q: %w", s.Name, err)
		}
		i := reg.Len() - 1

		fields := []struct {
			f status.Field
			v uint8
		}{
			{status.FieldPower, s.Status.Power},
			{status.FieldActivity, s.Status.Activity},
			{status.FieldError, s.Status.Error},
			{status.FieldPerformance, s.Status.Performance},
			{status.FieldResource, s.Status.Resource},
		}
		for _, fv := range fields {
			if err := reg.SetStatus(i, fv.f, fv.v); err != nil {
				return nil, fmt.Errorf("seed %q: %w", s.Name, err)
			}
		}

		if s.Data != 0 {
			if _, _, err := reg.SetData(i, s.Data); err != nil {
				return nil, fmt.Errorf("seed %q: %w", s.Name, err)
			}
		}
	}

	return reg, nil
}
