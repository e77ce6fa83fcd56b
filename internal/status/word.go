// internal/status/word.go
package status

import (
	"errors"
	"fmt"
)

// ErrInvalidValue reports an unknown field or a value wider than the field.
var ErrInvalidValue = errors.New("status: invalid value")

// Field identifies one of the six status fields by its lowest bit position.
type Field uint8

// Word is the packed 8-bit status of one subsystem.
type Word uint8

// Fields lists every field, MSB first.
var Fields = [...]Field{
	FieldPower,
	FieldData,
	FieldActivity,
	FieldError,
	FieldPerformance,
	FieldResource,
}

// Width returns the field width in bits, or 0 for an unknown field.
func (f Field) Width() uint8 {
	switch f {
	case FieldPower, FieldData, FieldActivity, FieldError:
		return 1
	case FieldPerformance, FieldResource:
		return 2
	default:
		return 0
	}
}

// Valid reports whether f is one of the six recognized fields.
func (f Field) Valid() bool { return f.Width() != 0 }

// Max returns the largest value the field can hold.
func (f Field) Max() uint8 { return 1<<f.Width() - 1 }

func (f Field) mask() Word { return Word(f.Max()) << f }

func (f Field) String() string {
	switch f {
	case FieldPower:
		return "PWR"
	case FieldData:
		return "DATA"
	case FieldActivity:
		return "ACT"
	case FieldError:
		return "ERR"
	case FieldPerformance:
		return "PERF"
	case FieldResource:
		return "RES"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(f))
	}
}

// ParseField resolves a field from its name or its bit position ("7", "2", ...).
func ParseField(s string) (Field, error) {
	switch s {
	case "power", "pwr", "POWER", "PWR", "7":
		return FieldPower, nil
	case "data", "DATA", "6":
		return FieldData, nil
	case "activity", "act", "ACTIVITY", "ACT", "5":
		return FieldActivity, nil
	case "error", "err", "ERROR", "ERR", "4":
		return FieldError, nil
	case "performance", "perf", "PERFORMANCE", "PERF", "2":
		return FieldPerformance, nil
	case "resource", "res", "RESOURCE", "RES", "0":
		return FieldResource, nil
	}
	return 0, fmt.Errorf("%w: unknown field %q", ErrInvalidValue, s)
}

// SetField returns w with field f replaced by v.
// Other fields are left untouched. w is never modified on error.
func SetField(w Word, f Field, v uint8) (Word, error) {
	if !f.Valid() {
		return w, fmt.Errorf("%w: unknown field %d", ErrInvalidValue, uint8(f))
	}
	if v > f.Max() {
		return w, fmt.Errorf("%w: %s accepts 0-%d, got %d", ErrInvalidValue, f, f.Max(), v)
	}
	w &^= f.mask()
	w |= Word(v) << f
	return w, nil
}

// Get extracts field f, right-aligned. Unknown fields read as 0.
func (w Word) Get(f Field) uint8 {
	return uint8((w >> f) & Word(f.Max()))
}

// String renders every field in the menu's presentation order.
func (w Word) String() string {
	return fmt.Sprintf("[PWR: %d | DATA: %d | ACT: %d | ERR: %d | PERF: %d | RES: %d ]",
		w.Get(FieldPower),
		w.Get(FieldData),
		w.Get(FieldActivity),
		w.Get(FieldError),
		w.Get(FieldPerformance),
		w.Get(FieldResource),
	)
}
