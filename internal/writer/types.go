// internal/writer/types.go
package writer

import "time"

// AreaHoldingRegisters is the only area the status memory is written to.
const AreaHoldingRegisters byte = 3

// MaxWriteQuantity is the Modbus FC16 register limit per request.
const MaxWriteQuantity = 123

// Plan is the fully-built publish plan.
type Plan struct {
	Transport string
	Endpoint  string
	UnitID    uint8
	Address   uint16 // first register of the status memory
	Timeout   time.Duration
}

// Writer delivers a status memory image.
type Writer interface {
	Publish(regs []uint16) error
}
