// internal/writer/builder.go
package writer

import (
	"errors"
	"fmt"
	"time"

	cfg "github.com/tamzrod/subsys-registry/internal/config"
	"github.com/tamzrod/subsys-registry/internal/writer/ingest"
	wmodbus "github.com/tamzrod/subsys-registry/internal/writer/modbus"
)

// BuildPlan converts the publish config into a Plan.
// Assumes config has already passed Validate and Normalize.
func BuildPlan(p *cfg.PublishConfig) (Plan, error) {
	if p == nil {
		return Plan{}, errors.New("writer: publish config required")
	}
	if p.Endpoint == "" {
		return Plan{}, errors.New("writer: endpoint required")
	}

	return Plan{
		Transport: p.Transport,
		Endpoint:  p.Endpoint,
		UnitID:    p.UnitID,
		Address:   p.Address,
		Timeout:   time.Duration(p.TimeoutMs) * time.Millisecond,
	}, nil
}

// BuildEndpointClient creates the client for the plan's transport.
func BuildEndpointClient(plan Plan) (endpointClient, func() error, error) {
	switch plan.Transport {
	case "", cfg.TransportModbus:
		c, err := wmodbus.NewEndpointClient(wmodbus.Config{
			Endpoint: plan.Endpoint,
			Timeout:  plan.Timeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("writer: modbus connect %s: %w", plan.Endpoint, err)
		}
		return c, c.Close, nil

	case cfg.TransportIngest:
		c, err := ingest.NewEndpointClient(ingest.Config{
			Endpoint: plan.Endpoint,
			Timeout:  plan.Timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil

	default:
		return nil, nil, fmt.Errorf("writer: unknown transport %q", plan.Transport)
	}
}
