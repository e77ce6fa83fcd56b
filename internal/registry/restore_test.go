// internal/registry/restore_test.go
package registry

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tamzrod/subsys-registry/internal/status"
)

func TestRestoreRoundTrip(t *testing.T) {
	r := newWith(t, "A", "B")
	mustSet(t, r, 0, status.FieldPower, 1)
	mustSet(t, r, 1, status.FieldResource, 3)
	_, _, _ = r.SetData(1, 0xBEEF)

	snap, err := status.Decode(status.Encode(r.Snapshot()))
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	restored, err := Restore(snap)
	if err != nil {
		t.Fatalf("Restore err=%v", err)
	}
	if diff := cmp.Diff(r.Snapshot(), restored.Snapshot()); diff != "" {
		t.Fatalf("restored snapshot (-want +got):\n%s", diff)
	}

	v, err := restored.GetData(1)
	if err != nil || v != 0xBEEF {
		t.Fatalf("restored payload: got=%X,%v", v, err)
	}
}

func TestRestoreRejectsFlagWithoutPayload(t *testing.T) {
	snap := status.Snapshot{
		Capacity: 1,
		Entries:  []status.Entry{{Name: "A", Word: 0b01000000}},
	}
	if _, err := Restore(snap); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestRestoreRejectsOverCapacity(t *testing.T) {
	snap := status.Snapshot{
		Capacity: 1,
		Entries:  []status.Entry{{Name: "A"}, {Name: "B"}},
	}
	if _, err := Restore(snap); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
}
