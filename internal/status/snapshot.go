// internal/status/snapshot.go
package status

// Entry is the published view of one subsystem.
// Data is 0 when nothing is pending.
type Entry struct {
	Name string
	Word Word
	Data uint32
}

// Snapshot represents exactly what the writer is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Capacity int
	Entries  []Entry
}
