// internal/writer/writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// endpointClient is the exact contract the publisher uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type endpointClient interface {
	WriteRegisters(area byte, unitID uint8, addr uint16, regs []uint16) error
}

// Publisher writes status memory images into one endpoint.
// The first write (and the one after any failure) re-asserts the whole image;
// later writes only touch registers that changed.
type Publisher struct {
	plan Plan
	cli  endpointClient
	log  *zap.Logger

	needFull bool
	last     []uint16
}

// New builds a Publisher. A nil logger disables logging.
func New(plan Plan, cli endpointClient, log *zap.Logger) *Publisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Publisher{
		plan:     plan,
		cli:      cli,
		log:      log.With(zap.String("endpoint", plan.Endpoint), zap.Uint8("unit_id", plan.UnitID)),
		needFull: true,
	}
}

// Publish delivers regs. It never retains regs.
func (p *Publisher) Publish(regs []uint16) error {
	if p == nil || p.cli == nil {
		return errors.New("writer: publisher not connected")
	}

	// ------------------------------------------------------------
	// Full image write (re-assert)
	// ------------------------------------------------------------
	if p.needFull || len(regs) != len(p.last) {
		if err := p.writeRun(0, regs); err != nil {
			p.needFull = true
			return fmt.Errorf("writer: full write failed: %w", err)
		}
		p.needFull = false
		p.last = append(p.last[:0], regs...)
		p.log.Debug("status memory asserted", zap.Int("registers", len(regs)))
		return nil
	}

	// ------------------------------------------------------------
	// Incremental: changed runs only
	// ------------------------------------------------------------
	var errs []string
	written := 0

	for _, r := range changedRuns(p.last, regs) {
		if err := p.writeRun(r.start, regs[r.start:r.end]); err != nil {
			errs = append(errs, fmt.Sprintf("regs %d-%d: %v", r.start, r.end-1, err))
			continue
		}
		copy(p.last[r.start:r.end], regs[r.start:r.end])
		written += r.end - r.start
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt: re-assert on next call.
		p.needFull = true
		return errors.New("writer: " + strings.Join(errs, " | "))
	}

	if written > 0 {
		p.log.Debug("status memory updated", zap.Int("registers", written))
	}
	return nil
}

// writeRun writes regs at offset within the status memory, split into protocol-sized chunks.
func (p *Publisher) writeRun(offset int, regs []uint16) error {
	for start := 0; start < len(regs); start += MaxWriteQuantity {
		end := start + MaxWriteQuantity
		if end > len(regs) {
			end = len(regs)
		}
		addr := p.plan.Address + uint16(offset+start)
		if err := p.cli.WriteRegisters(AreaHoldingRegisters, p.plan.UnitID, addr, regs[start:end]); err != nil {
			return fmt.Errorf("addr=%d qty=%d: %w", addr, end-start, err)
		}
	}
	return nil
}

type run struct {
	start, end int // [start, end)
}

// changedRuns returns the maximal contiguous ranges where prev and next differ.
// Both slices must be the same length.
func changedRuns(prev, next []uint16) []run {
	var out []run
	for i := 0; i < len(next); i++ {
		if prev[i] == next[i] {
			continue
		}
		start := i
		for i < len(next) && prev[i] != next[i] {
			i++
		}
		out = append(out, run{start: start, end: i})
	}
	return out
}
