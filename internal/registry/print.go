// internal/registry/print.go
package registry

import (
	"fmt"
	"io"
)

// Print writes one subsystem line. Pending data is shown, not consumed.
func Print(w io.Writer, s Subsystem) error {
	data := "0"
	if v, ok := s.pending.Peek(); ok {
		data = fmt.Sprintf("%08X", v)
	}
	_, err := fmt.Fprintf(w, "Name: %-16s; Status: %s; Data: %s\n", s.Name, s.Status(), data)
	return err
}

// PrintList writes every subsystem in subs, or a notice when subs is empty.
func PrintList(w io.Writer, subs []Subsystem) error {
	if len(subs) == 0 {
		_, err := fmt.Fprintln(w, "There are no subsystems in the collection.")
		return err
	}
	for _, s := range subs {
		if err := Print(w, s); err != nil {
			return err
		}
	}
	return nil
}

// PrintAll writes every stored subsystem in order.
func (r *Registry) PrintAll(w io.Writer) error {
	return PrintList(w, r.items)
}
