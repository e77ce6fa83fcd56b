// internal/poller/builder.go
package poller

import (
	"errors"
	"time"

	cfg "github.com/tamzrod/subsys-registry/internal/config"
	pmodbus "github.com/tamzrod/subsys-registry/internal/poller/modbus"
)

// Build constructs a Poller over the publish target's status memory.
// Only the modbus transport can be read back.
func Build(p *cfg.PublishConfig) (*Poller, func() error, error) {
	if p == nil {
		return nil, nil, errors.New("poller: publish config required")
	}
	if p.Transport != "" && p.Transport != cfg.TransportModbus {
		return nil, nil, errors.New("poller: read-back requires the modbus transport")
	}

	client, err := pmodbus.New(pmodbus.Config{
		Endpoint: p.Endpoint,
		UnitID:   p.UnitID,
		Timeout:  time.Duration(p.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	poll, err := New(Config{Address: p.Address}, client)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	return poll, client.Close, nil
}
