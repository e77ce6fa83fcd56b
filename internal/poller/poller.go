// internal/poller/poller.go
package poller

import (
	"errors"
	"fmt"
	"time"

	"github.com/tamzrod/subsys-registry/internal/status"
)

// Client abstracts the Modbus read the poller needs.
type Client interface {
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) // FC 3
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	Address uint16 // first register of the status memory
}

// Poller reads a published status memory back.
type Poller struct {
	cfg    Config
	client Client
}

// New creates a poller with immutable config.
func New(cfg Config, client Client) (*Poller, error) {
	if client == nil {
		return nil, errors.New("poller: client required")
	}
	return &Poller{cfg: cfg, client: client}, nil
}

// PollOnce performs exactly one read-back cycle.
// All-or-nothing: any failure aborts the cycle.
func (p *Poller) PollOnce() PollResult {
	res := PollResult{At: time.Now()}

	// Header first: it tells how many blocks are occupied.
	hdr, err := p.read(0, status.HeaderSlots)
	if err != nil {
		res.Err = err
		return res
	}
	count, _, err := status.DecodeHeader(hdr)
	if err != nil {
		res.Err = err
		return res
	}

	body, err := p.read(status.HeaderSlots, count*status.SlotsPerSubsystem)
	if err != nil {
		res.Err = err
		return res
	}

	raw := append(hdr, body...)
	snap, err := status.Decode(raw)
	if err != nil {
		res.Err = err
		return res
	}

	// Commit only if every read succeeded
	res.Raw = raw
	res.Snapshot = snap
	return res
}

// read fetches qty registers at offset within the status memory in protocol-sized chunks.
func (p *Poller) read(offset, qty int) ([]uint16, error) {
	out := make([]uint16, 0, qty)
	for start := 0; start < qty; start += MaxReadQuantity {
		n := qty - start
		if n > MaxReadQuantity {
			n = MaxReadQuantity
		}
		addr := p.cfg.Address + uint16(offset+start)
		regs, err := p.client.ReadHoldingRegisters(addr, uint16(n))
		if err != nil {
			return nil, fmt.Errorf("poller: read addr=%d qty=%d: %w", addr, n, err)
		}
		if len(regs) != n {
			return nil, fmt.Errorf("poller: read addr=%d: got %d registers, want %d", addr, len(regs), n)
		}
		out = append(out, regs...)
	}
	return out, nil
}
