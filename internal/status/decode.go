// internal/status/decode.go
package status

import (
	"errors"
	"fmt"
)

// ErrBadMemory reports a status memory image that violates the layout.
var ErrBadMemory = errors.New("status: malformed status memory")

// DecodeHeader returns the entry count and capacity stored in the header.
func DecodeHeader(regs []uint16) (count, capacity int, err error) {
	if len(regs) < HeaderSlots {
		return 0, 0, fmt.Errorf("%w: %d registers, header needs %d", ErrBadMemory, len(regs), HeaderSlots)
	}
	count = int(regs[SlotCount])
	capacity = int(regs[SlotCapacity])
	if count > capacity {
		return 0, 0, fmt.Errorf("%w: count %d exceeds capacity %d", ErrBadMemory, count, capacity)
	}
	return count, capacity, nil
}

// Decode is the inverse of Encode for the occupied blocks.
func Decode(regs []uint16) (Snapshot, error) {
	count, capacity, err := DecodeHeader(regs)
	if err != nil {
		return Snapshot{}, err
	}
	if need := BlockAddr(count); len(regs) < need {
		return Snapshot{}, fmt.Errorf("%w: %d registers, %d entries need %d", ErrBadMemory, len(regs), count, need)
	}

	snap := Snapshot{
		Capacity: capacity,
		Entries:  make([]Entry, count),
	}
	for i := range snap.Entries {
		base := BlockAddr(i)
		w := regs[base+SlotStatusWord]
		if w > 0xFF {
			return Snapshot{}, fmt.Errorf("%w: block %d status word 0x%04X", ErrBadMemory, i, w)
		}
		snap.Entries[i] = Entry{
			Name: DecodeNameRegs(regs[base+SlotNameStart : base+SlotNameStart+SlotNameSlots]),
			Word: Word(w),
			Data: uint32(regs[base+SlotDataHigh])<<16 | uint32(regs[base+SlotDataLow]),
		}
	}
	return snap, nil
}

// DecodeNameRegs unpacks big-endian byte pairs up to the first zero byte.
func DecodeNameRegs(regs []uint16) string {
	b := make([]byte, 0, len(regs)*2)
	for _, r := range regs {
		hi, lo := byte(r>>8), byte(r)
		if hi == 0 {
			break
		}
		b = append(b, hi)
		if lo == 0 {
			break
		}
		b = append(b, lo)
	}
	return string(b)
}
