// internal/registry/registry_test.go
package registry

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tamzrod/subsys-registry/internal/status"
)

// helper to build a registry quickly
func newWith(t *testing.T, names ...string) *Registry {
	t.Helper()
	r := New(DefaultCapacity)
	for _, n := range names {
		if err := r.Insert(n); err != nil {
			t.Fatalf("Insert(%q) err=%v", n, err)
		}
	}
	return r
}

func names(subs []Subsystem) []string {
	out := make([]string, len(subs))
	for i, s := range subs {
		out[i] = s.Name
	}
	return out
}

func mustSet(t *testing.T, r *Registry, i int, f status.Field, v uint8) {
	t.Helper()
	if err := r.SetStatus(i, f, v); err != nil {
		t.Fatalf("SetStatus(%d, %s, %d) err=%v", i, f, v, err)
	}
}

// ---- tests ----

func TestInsertAndFind(t *testing.T) {
	r := newWith(t, "Core", "Nav", "Core")

	if r.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", r.Len())
	}

	i, ok := r.Find("Core")
	if !ok || i != 0 {
		t.Fatalf("Find(Core): got=%d,%v want=0,true", i, ok)
	}
	if _, ok := r.Find("core"); ok {
		t.Fatalf("Find must be case-sensitive")
	}
	if _, ok := r.Find("Comms"); ok {
		t.Fatalf("Find(Comms) should miss")
	}

	s, err := r.At(1)
	if err != nil {
		t.Fatalf("At(1) err=%v", err)
	}
	if s.Name != "Nav" || s.Status() != 0 {
		t.Fatalf("At(1): got name=%q status=%08b", s.Name, s.Status())
	}
}

func TestInsertTruncatesLongName(t *testing.T) {
	r := newWith(t, strings.Repeat("x", 40))

	s, _ := r.At(0)
	if len(s.Name) != status.NameMaxChars {
		t.Fatalf("expected name of %d bytes, got %d", status.NameMaxChars, len(s.Name))
	}
}

func TestCapacityBoundary(t *testing.T) {
	r := New(4)
	for i := 0; i < 4; i++ {
		if err := r.Insert(fmt.Sprintf("s%d", i)); err != nil {
			t.Fatalf("Insert #%d err=%v", i, err)
		}
	}

	err := r.Insert("overflow")
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if r.Len() != 4 {
		t.Fatalf("size changed on failed insert: %d", r.Len())
	}
}

func TestNewDefaultCapacity(t *testing.T) {
	if got := New(0).Cap(); got != DefaultCapacity {
		t.Fatalf("expected default capacity %d, got %d", DefaultCapacity, got)
	}
}

func TestRemoveShiftsLeft(t *testing.T) {
	r := newWith(t, "A", "B", "C")

	if err := r.Remove(1); err != nil {
		t.Fatalf("Remove(1) err=%v", err)
	}

	all, _ := r.Filter("********")
	if diff := cmp.Diff([]string{"A", "C"}, names(all)); diff != "" {
		t.Fatalf("order after remove (-want +got):\n%s", diff)
	}
	if _, ok := r.Find("B"); ok {
		t.Fatalf("B still present after remove")
	}
	if i, _ := r.Find("C"); i != 1 {
		t.Fatalf("C should have shifted to 1, got %d", i)
	}
}

func TestRemoveInvalidIndex(t *testing.T) {
	empty := New(DefaultCapacity)
	if err := empty.Remove(0); !errors.Is(err, ErrIndex) {
		t.Fatalf("Remove on empty: expected ErrIndex, got %v", err)
	}

	r := newWith(t, "A", "B")
	for _, i := range []int{-1, 2, 10} {
		if err := r.Remove(i); !errors.Is(err, ErrIndex) {
			t.Fatalf("Remove(%d): expected ErrIndex, got %v", i, err)
		}
	}
	if r.Len() != 2 {
		t.Fatalf("size changed on failed remove: %d", r.Len())
	}
}

func TestSetStatus(t *testing.T) {
	r := newWith(t, "A")

	mustSet(t, r, 0, status.FieldPower, 1)
	mustSet(t, r, 0, status.FieldPerformance, 3)
	mustSet(t, r, 0, status.FieldResource, 2)

	s, _ := r.At(0)
	if s.Status() != 0b10001110 {
		t.Fatalf("status: got=%08b want=10001110", s.Status())
	}

	if err := r.SetStatus(0, status.FieldPower, 2); !errors.Is(err, status.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if err := r.SetStatus(0, status.Field(3), 0); !errors.Is(err, status.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue for unknown field, got %v", err)
	}
	if err := r.SetStatus(5, status.FieldPower, 0); !errors.Is(err, ErrIndex) {
		t.Fatalf("expected ErrIndex, got %v", err)
	}

	s, _ = r.At(0)
	if s.Status() != 0b10001110 {
		t.Fatalf("status mutated by failed calls: %08b", s.Status())
	}
}

func TestSetStatus_DataFlagFollowsPayload(t *testing.T) {
	r := newWith(t, "A")

	if err := r.SetStatus(0, status.FieldData, 1); !errors.Is(err, status.ErrInvalidValue) {
		t.Fatalf("raising DATA without payload: expected ErrInvalidValue, got %v", err)
	}

	if _, _, err := r.SetData(0, 0x42); err != nil {
		t.Fatalf("SetData err=%v", err)
	}
	mustSet(t, r, 0, status.FieldData, 1) // already pending: no-op
	mustSet(t, r, 0, status.FieldData, 0) // discards payload

	s, _ := r.At(0)
	if s.Status().Get(status.FieldData) != 0 {
		t.Fatalf("DATA still set after clearing")
	}
	if _, err := r.GetData(0); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData after discard, got %v", err)
	}
}

func TestDataOneShot(t *testing.T) {
	r := newWith(t, "A")

	prev, replaced, err := r.SetData(0, 0xCAFE)
	if err != nil {
		t.Fatalf("SetData err=%v", err)
	}
	if replaced || prev != 0 {
		t.Fatalf("first SetData reported previous payload %X", prev)
	}

	s, _ := r.At(0)
	if s.Status().Get(status.FieldData) != 1 {
		t.Fatalf("DATA not raised by SetData")
	}

	v, err := r.GetData(0)
	if err != nil || v != 0xCAFE {
		t.Fatalf("GetData: got=%X,%v want=CAFE,nil", v, err)
	}

	v, err = r.GetData(0)
	if !errors.Is(err, ErrNoData) || v != 0 {
		t.Fatalf("second GetData: got=%X,%v want=0,ErrNoData", v, err)
	}

	s, _ = r.At(0)
	if s.Status().Get(status.FieldData) != 0 {
		t.Fatalf("DATA not cleared by GetData")
	}
	if _, ok := s.Pending().Peek(); ok {
		t.Fatalf("payload still readable after consume")
	}
}

func TestSetDataReturnsReplaced(t *testing.T) {
	r := newWith(t, "A")

	_, _, _ = r.SetData(0, 1)
	prev, replaced, err := r.SetData(0, 2)
	if err != nil {
		t.Fatalf("SetData err=%v", err)
	}
	if !replaced || prev != 1 {
		t.Fatalf("expected previous payload 1, got %d,%v", prev, replaced)
	}

	v, _ := r.GetData(0)
	if v != 2 {
		t.Fatalf("expected 2, got %d", v)
	}
}

func TestSetDataZeroRejected(t *testing.T) {
	r := newWith(t, "A", "B")

	if _, _, err := r.SetData(0, 0); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	s, _ := r.At(0)
	if s.Status().Get(status.FieldData) != 0 {
		t.Fatalf("zero payload raised DATA")
	}

	_, _, _ = r.SetData(1, 7)
	if _, _, err := r.SetData(1, 0); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if v, err := r.GetData(1); err != nil || v != 7 {
		t.Fatalf("prior payload lost: got=%d,%v", v, err)
	}
}

func TestDataOperationsInvalidIndex(t *testing.T) {
	r := New(DefaultCapacity)
	if _, _, err := r.SetData(0, 1); !errors.Is(err, ErrIndex) {
		t.Fatalf("SetData on empty: expected ErrIndex, got %v", err)
	}
	if _, err := r.GetData(0); !errors.Is(err, ErrIndex) {
		t.Fatalf("GetData on empty: expected ErrIndex, got %v", err)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	r := newWith(t, "A", "B", "C")
	mustSet(t, r, 0, status.FieldPower, 1)
	mustSet(t, r, 2, status.FieldPower, 1)

	got, err := r.Filter("1*******")
	if err != nil {
		t.Fatalf("Filter err=%v", err)
	}
	if diff := cmp.Diff([]string{"A", "C"}, names(got)); diff != "" {
		t.Fatalf("filter result (-want +got):\n%s", diff)
	}
}

func TestFilterMatchesDataFlag(t *testing.T) {
	r := newWith(t, "A", "B")
	_, _, _ = r.SetData(1, 9)

	got, _ := r.Filter("*1******")
	if diff := cmp.Diff([]string{"B"}, names(got)); diff != "" {
		t.Fatalf("filter result (-want +got):\n%s", diff)
	}
}

func TestFilterIsSnapshot(t *testing.T) {
	r := newWith(t, "A", "B")
	mustSet(t, r, 0, status.FieldPower, 1)
	_, _, _ = r.SetData(0, 5)

	got, _ := r.Filter("1*******")

	mustSet(t, r, 0, status.FieldPower, 0)
	_, _ = r.GetData(0)
	_ = r.Remove(0)

	if len(got) != 1 || got[0].Name != "A" {
		t.Fatalf("snapshot changed: %v", names(got))
	}
	if got[0].Status() != 0b11000000 {
		t.Fatalf("snapshot status changed: %08b", got[0].Status())
	}
	if v, ok := got[0].Pending().Peek(); !ok || v != 5 {
		t.Fatalf("snapshot payload changed: %d,%v", v, ok)
	}
}

func TestFilterInvalidPattern(t *testing.T) {
	r := newWith(t, "A")

	for _, p := range []string{"1111111", "1111111x"} {
		got, err := r.Filter(p)
		if !errors.Is(err, status.ErrInvalidPattern) {
			t.Fatalf("Filter(%q): expected ErrInvalidPattern, got %v", p, err)
		}
		if got != nil {
			t.Fatalf("Filter(%q): expected no result, got %v", p, names(got))
		}
	}
}

func TestSnapshotPeeksData(t *testing.T) {
	r := newWith(t, "A")
	_, _, _ = r.SetData(0, 0x1234)

	snap := r.Snapshot()
	want := status.Snapshot{
		Capacity: DefaultCapacity,
		Entries:  []status.Entry{{Name: "A", Word: 0b01000000, Data: 0x1234}},
	}
	if diff := cmp.Diff(want, snap); diff != "" {
		t.Fatalf("snapshot (-want +got):\n%s", diff)
	}

	if v, err := r.GetData(0); err != nil || v != 0x1234 {
		t.Fatalf("snapshot consumed payload: %X,%v", v, err)
	}
}
