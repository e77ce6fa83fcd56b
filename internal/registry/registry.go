// internal/registry/registry.go
package registry

import (
	"errors"
	"fmt"

	"github.com/tamzrod/subsys-registry/internal/status"
)

// DefaultCapacity is the registry size used when none is configured.
const DefaultCapacity = 32

var (
	// ErrIndex reports an empty registry or an index outside [0, Len()).
	ErrIndex = errors.New("registry: invalid index")
	// ErrCapacityExceeded reports an insertion into a full registry.
	ErrCapacityExceeded = errors.New("registry: capacity exceeded")
	// ErrNoData reports a zero payload write or a read with nothing pending.
	ErrNoData = errors.New("registry: no data")
)

// Registry is a fixed-capacity ordered collection of subsystems.
// It is not safe for concurrent use; Remove shifts indices of later entries.
type Registry struct {
	capacity int
	items    []Subsystem
}

// New creates an empty registry. capacity <= 0 selects DefaultCapacity.
func New(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Registry{
		capacity: capacity,
		items:    make([]Subsystem, 0, capacity),
	}
}

// Len returns the number of stored subsystems.
func (r *Registry) Len() int { return len(r.items) }

// Cap returns the fixed capacity.
func (r *Registry) Cap() int { return r.capacity }

// At returns a copy of the subsystem at index i.
func (r *Registry) At(i int) (Subsystem, error) {
	if err := r.check(i); err != nil {
		return Subsystem{}, err
	}
	return r.items[i], nil
}

// Insert appends a zeroed subsystem named name.
// Names longer than status.NameMaxChars bytes are truncated. Duplicates are allowed.
func (r *Registry) Insert(name string) error {
	if len(r.items) >= r.capacity {
		return fmt.Errorf("%w: %d/%d", ErrCapacityExceeded, len(r.items), r.capacity)
	}
	if len(name) > status.NameMaxChars {
		name = name[:status.NameMaxChars]
	}
	r.items = append(r.items, Subsystem{Name: name})
	return nil
}

// Find returns the index of the first subsystem named exactly name.
func (r *Registry) Find(name string) (int, bool) {
	for i := range r.items {
		if r.items[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// Remove deletes the subsystem at index i and shifts later entries left.
func (r *Registry) Remove(i int) error {
	if err := r.check(i); err != nil {
		return err
	}
	copy(r.items[i:], r.items[i+1:])
	r.items[len(r.items)-1] = Subsystem{}
	r.items = r.items[:len(r.items)-1]
	return nil
}

// SetStatus writes value into field f of subsystem i.
// DATA follows the pending payload: 0 discards it, 1 is accepted only while one is pending.
func (r *Registry) SetStatus(i int, f status.Field, value uint8) error {
	if err := r.check(i); err != nil {
		return err
	}
	s := &r.items[i]

	if f == status.FieldData {
		switch {
		case value == 0:
			s.pending = Pending{}
			return nil
		case value == 1 && s.pending.ok:
			return nil
		case value == 1:
			return fmt.Errorf("%w: DATA cannot be raised without a pending payload", status.ErrInvalidValue)
		}
	}

	w, err := status.SetField(s.word, f, value)
	if err != nil {
		return err
	}
	s.word = w
	return nil
}

// SetData stores v as the pending payload of subsystem i and raises DATA.
// It returns the payload it replaced, if one was pending.
func (r *Registry) SetData(i int, v uint32) (prev uint32, replaced bool, err error) {
	if err := r.check(i); err != nil {
		return 0, false, err
	}
	if v == 0 {
		return 0, false, fmt.Errorf("%w: payload must be non-zero", ErrNoData)
	}
	s := &r.items[i]
	prev, replaced = s.pending.Peek()
	s.pending = Some(v)
	return prev, replaced, nil
}

// GetData consumes the pending payload of subsystem i and clears DATA.
// With nothing pending it returns 0 and ErrNoData.
func (r *Registry) GetData(i int) (uint32, error) {
	if err := r.check(i); err != nil {
		return 0, err
	}
	v, ok := r.items[i].pending.take()
	if !ok {
		return 0, fmt.Errorf("%w: nothing pending for %q", ErrNoData, r.items[i].Name)
	}
	return v, nil
}

// Filter returns, in order, a copy of every subsystem whose status word matches pattern.
func (r *Registry) Filter(pattern string) ([]Subsystem, error) {
	p, err := status.CompilePattern(pattern)
	if err != nil {
		return nil, err
	}

	out := make([]Subsystem, 0, len(r.items))
	for _, s := range r.items {
		if p.Match(s.Status()) {
			out = append(out, s)
		}
	}
	return out, nil
}

// Snapshot returns the publishable view of the registry. Payloads are peeked, not consumed.
func (r *Registry) Snapshot() status.Snapshot {
	snap := status.Snapshot{
		Capacity: r.capacity,
		Entries:  make([]status.Entry, len(r.items)),
	}
	for i, s := range r.items {
		snap.Entries[i] = s.entry()
	}
	return snap
}

func (r *Registry) check(i int) error {
	if len(r.items) == 0 {
		return fmt.Errorf("%w: registry is empty", ErrIndex)
	}
	if i < 0 || i >= len(r.items) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndex, i, len(r.items))
	}
	return nil
}
