// internal/status/encode.go
package status

// MemorySize returns the register count of a status memory for capacity entries.
func MemorySize(capacity int) int {
	return HeaderSlots + capacity*SlotsPerSubsystem
}

// BlockAddr returns the first register of block i, relative to the memory base.
func BlockAddr(i int) int {
	return HeaderSlots + i*SlotsPerSubsystem
}

// Encode converts a Snapshot into a full status memory image.
// Layout is protocol-locked. Blocks past len(Entries) stay zero.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	capacity := s.Capacity
	if capacity < len(s.Entries) {
		capacity = len(s.Entries)
	}
	regs := make([]uint16, MemorySize(capacity))

	regs[SlotCount] = uint16(len(s.Entries))
	regs[SlotCapacity] = uint16(capacity)

	for i, e := range s.Entries {
		base := BlockAddr(i)
		regs[base+SlotStatusWord] = uint16(e.Word)
		if e.Word.Get(FieldData) == 1 {
			regs[base+SlotDataHigh] = uint16(e.Data >> 16)
			regs[base+SlotDataLow] = uint16(e.Data)
		}
		copy(regs[base+SlotNameStart:base+SlotNameStart+SlotNameSlots], EncodeNameRegs(e.Name))
	}

	return regs
}

// EncodeNameRegs packs up to NameMaxChars ASCII characters into SlotNameSlots registers.
// Each register stores two bytes in big-endian order.
func EncodeNameRegs(name string) []uint16 {
	out := make([]uint16, SlotNameSlots)

	b := []byte(name)
	if len(b) > NameMaxChars {
		b = b[:NameMaxChars]
	}

	// sanitize to printable ASCII
	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < SlotNameSlots*2; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}
