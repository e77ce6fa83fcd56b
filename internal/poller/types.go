// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/subsys-registry/internal/status"
)

// MaxReadQuantity is the Modbus FC3 register limit per request.
const MaxReadQuantity = 125

// PollResult is a status memory snapshot read back in one cycle.
type PollResult struct {
	At time.Time

	// Raw is the register image exactly as read.
	Raw []uint16

	Snapshot status.Snapshot
	Err      error // non-nil means the poll cycle failed
}
