// internal/registry/subsystem.go
package registry

import "github.com/tamzrod/subsys-registry/internal/status"

// Pending is an optional one-shot payload.
// The zero value holds nothing. A held payload is never 0.
type Pending struct {
	value uint32
	ok    bool
}

// Some returns a Pending holding v. v must be non-zero.
func Some(v uint32) Pending { return Pending{value: v, ok: v != 0} }

// Peek returns the payload without consuming it.
func (p Pending) Peek() (uint32, bool) { return p.value, p.ok }

// take returns the payload and empties p.
func (p *Pending) take() (uint32, bool) {
	v, ok := p.value, p.ok
	*p = Pending{}
	return v, ok
}

// Subsystem is one registry record.
// The DATA bit of its status word always mirrors its pending payload.
type Subsystem struct {
	Name string

	word    status.Word // DATA bit is never stored here
	pending Pending
}

// Status returns the full status word, DATA flag included.
func (s Subsystem) Status() status.Word {
	w, _ := status.SetField(s.word, status.FieldData, s.dataFlag())
	return w
}

// Pending returns the pending payload without consuming it.
func (s Subsystem) Pending() Pending { return s.pending }

func (s Subsystem) dataFlag() uint8 {
	if s.pending.ok {
		return 1
	}
	return 0
}

func (s Subsystem) entry() status.Entry {
	v, _ := s.pending.Peek()
	return status.Entry{Name: s.Name, Word: s.Status(), Data: v}
}
