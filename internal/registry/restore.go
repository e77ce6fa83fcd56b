// internal/registry/restore.go
package registry

import (
	"fmt"

	"github.com/tamzrod/subsys-registry/internal/status"
)

// Restore rebuilds a registry from a snapshot, such as one read back from status memory.
// A DATA flag without a non-zero payload is rejected.
func Restore(snap status.Snapshot) (*Registry, error) {
	if len(snap.Entries) > snap.Capacity {
		return nil, fmt.Errorf("%w: %d entries for capacity %d", ErrCapacityExceeded, len(snap.Entries), snap.Capacity)
	}

	r := New(snap.Capacity)
	for _, e := range snap.Entries {
		s := Subsystem{Name: e.Name}
		s.word, _ = status.SetField(e.Word, status.FieldData, 0)

		if e.Word.Get(status.FieldData) == 1 {
			if e.Data == 0 {
				return nil, fmt.Errorf("%w: %q has DATA set with a zero payload", ErrNoData, e.Name)
			}
			s.pending = Some(e.Data)
		}

		if len(s.Name) > status.NameMaxChars {
			s.Name = s.Name[:status.NameMaxChars]
		}
		r.items = append(r.items, s)
	}
	return r, nil
}
