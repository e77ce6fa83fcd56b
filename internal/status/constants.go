// internal/status/constants.go
package status

// Status word layout constants.
// Bit positions are protocol-locked and MUST NOT be configurable.

// ---- FIELD IDENTIFIERS ----
// A field is identified by its lowest bit position.

// FieldPower is the power flag (bit 7).
const FieldPower Field = 7

// FieldData is the pending-data flag (bit 6).
const FieldData Field = 6

// FieldActivity is the activity flag (bit 5).
const FieldActivity Field = 5

// FieldError is the error flag (bit 4).
const FieldError Field = 4

// FieldPerformance is the 2-bit performance level (bits 3-2).
const FieldPerformance Field = 2

// FieldResource is the 2-bit resource level (bits 1-0).
const FieldResource Field = 0

// ---- PATTERN ----

// PatternLen is the exact length of a filter pattern (one character per bit).
const PatternLen = 8

// ---- STATUS MEMORY GEOMETRY ----

// HeaderSlots is the number of registers ahead of the first subsystem block.
const HeaderSlots = 4

// SlotCount holds the number of subsystems currently stored.
const SlotCount = 0

// SlotCapacity holds the registry capacity.
const SlotCapacity = 1

// SlotsPerSubsystem is the fixed number of registers per subsystem block.
const SlotsPerSubsystem = 20

// SlotStatusWord holds the status word (low byte).
const SlotStatusWord = 0

// SlotDataHigh holds the high 16 bits of the pending payload.
const SlotDataHigh = 1

// SlotDataLow holds the low 16 bits of the pending payload.
const SlotDataLow = 2

// Slot 3 is reserved.

// SlotNameStart is the first register of the subsystem name.
const SlotNameStart = 4

// SlotNameSlots is the number of registers reserved for the name.
const SlotNameSlots = 16

// NameMaxChars is the maximum number of bytes stored for a name.
const NameMaxChars = 31
