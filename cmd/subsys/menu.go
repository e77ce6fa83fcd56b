// cmd/subsys/menu.go
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tamzrod/subsys-registry/internal/registry"
	"github.com/tamzrod/subsys-registry/internal/status"
)

const (
	menuExit     = 0
	menuAdd      = 1
	menuPrint    = 2
	menuPrintAll = 3
	menuStatus   = 4
	menuRemove   = 5
	menuFilter   = 6
	menuSetData  = 7
	menuGetData  = 8

	menuMin = menuExit
	menuMax = menuGetData
)

// session is one interactive menu loop over a registry.
// It performs only gross syntactic checks; the registry validates semantics.
type session struct {
	reg *registry.Registry
	in  *bufio.Scanner
	out io.Writer
	log *zap.Logger

	// publish mirrors the registry after each mutation. nil disables it.
	publish func() error
}

func newSession(reg *registry.Registry, in io.Reader, out io.Writer, log *zap.Logger) *session {
	if log == nil {
		log = zap.NewNop()
	}
	return &session{
		reg: reg,
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
	}
}

// run loops until the user exits or input ends.
func (s *session) run() error {
	s.sync()

	for {
		choice, ok := s.readChoice()
		if !ok || choice == menuExit {
			s.printf("Exiting the program.\n")
			return s.in.Err()
		}

		mutated := false
		switch choice {
		case menuAdd:
			mutated = s.add()
		case menuPrint:
			s.printOne()
		case menuPrintAll:
			_ = s.reg.PrintAll(s.out)
		case menuStatus:
			mutated = s.setStatus()
		case menuRemove:
			mutated = s.remove()
		case menuFilter:
			s.filter()
		case menuSetData:
			mutated = s.setData()
		case menuGetData:
			mutated = s.getData()
		}

		if mutated {
			s.sync()
		}
	}
}

// sync publishes the registry when publishing is enabled. Failures are logged only.
func (s *session) sync() {
	if s.publish == nil {
		return
	}
	if err := s.publish(); err != nil {
		s.log.Warn("status memory publish failed", zap.Error(err))
	}
}

func (s *session) readChoice() (int, bool) {
	for {
		s.printf("\n--- Subsystem Management Menu ---\n")
		s.printf("%d. Add Subsystem\n", menuAdd)
		s.printf("%d. Print Subsystem\n", menuPrint)
		s.printf("%d. Print All Subsystems\n", menuPrintAll)
		s.printf("%d. Set Subsystem Status\n", menuStatus)
		s.printf("%d. Remove Subsystem\n", menuRemove)
		s.printf("%d. Filter Subsystems\n", menuFilter)
		s.printf("%d. Set Subsystem Data\n", menuSetData)
		s.printf("%d. Read Subsystem Data\n", menuGetData)
		s.printf("%d. Exit\n", menuExit)
		s.printf("Select an option: ")

		line, ok := s.readLine()
		if !ok {
			return 0, false
		}
		choice, err := strconv.Atoi(line)
		if err != nil || choice < menuMin || choice > menuMax {
			s.printf("Error: Invalid choice. Please try again.\n")
			continue
		}
		return choice, true
	}
}

// ---- actions ----

func (s *session) add() bool {
	s.printf("\nEnter a name: ")
	args, ok := s.readArgs(1)
	if !ok {
		return false
	}
	name := clipName(args[0])

	if err := s.reg.Insert(name); err != nil {
		s.printf("The subsystem collection is full.\n")
		return false
	}
	s.printf("'%s' has been added to the subsystem collection.\n", name)
	return true
}

func (s *session) printOne() {
	s.printf("\nEnter subsystem name to print: ")
	args, ok := s.readArgs(1)
	if !ok {
		return
	}
	i, ok := s.lookup(args[0])
	if !ok {
		return
	}
	sub, _ := s.reg.At(i)
	_ = registry.Print(s.out, sub)
}

func (s *session) setStatus() bool {
	s.printf("\nEnter <Subsystem Name> <Status ID; 7,6,5,4,2,0> <New Value (0-3)>: ")
	args, ok := s.readArgs(3)
	if !ok {
		return false
	}
	i, ok := s.lookup(args[0])
	if !ok {
		return false
	}

	f, err := status.ParseField(args[1])
	if err != nil {
		s.printf("The status number is invalid.\n")
		return false
	}
	v, err := strconv.ParseUint(args[2], 10, 8)
	if err != nil {
		s.printf("The value is invalid for the type of status.\n")
		return false
	}

	if err := s.reg.SetStatus(i, f, uint8(v)); err != nil {
		s.log.Debug("set status rejected", zap.Error(err))
		s.printf("The value is invalid for the type of status.\n")
		return false
	}
	s.printf("'%s' status was successfully updated.\n", clipName(args[0]))
	return true
}

func (s *session) remove() bool {
	s.printf("\nEnter subsystem name to remove: ")
	args, ok := s.readArgs(1)
	if !ok {
		return false
	}
	i, ok := s.lookup(args[0])
	if !ok {
		return false
	}
	if err := s.reg.Remove(i); err != nil {
		s.log.Error("remove failed", zap.Int("index", i), zap.Error(err))
		return false
	}
	s.printf("Subsystem '%s' was deleted successfully\n", clipName(args[0]))
	return true
}

func (s *session) filter() {
	s.printf("\nEnter filter string (8 characters of 1, 0, *): ")
	args, ok := s.readArgs(1)
	if !ok {
		return
	}

	subs, err := s.reg.Filter(args[0])
	if err != nil {
		s.printf("The filter must be exactly 8 characters of 1, 0 or *.\n")
		return
	}
	if len(subs) == 0 {
		s.printf("No subsystem matched the filter.\n")
		return
	}
	_ = registry.PrintList(s.out, subs)
}

func (s *session) setData() bool {
	s.printf("\nEnter <Subsystem Name> <Data, uppercase hex without 0x>: ")
	args, ok := s.readArgs(2)
	if !ok {
		return false
	}
	i, ok := s.lookup(args[0])
	if !ok {
		return false
	}

	v, err := strconv.ParseUint(args[1], 16, 32)
	if err != nil {
		s.printf("The data must be a 32-bit hex value.\n")
		return false
	}

	prev, replaced, err := s.reg.SetData(i, uint32(v))
	if errors.Is(err, registry.ErrNoData) {
		s.printf("The data has a value of 0.\n")
		return false
	}
	if err != nil {
		s.log.Error("set data failed", zap.Int("index", i), zap.Error(err))
		return false
	}

	if replaced {
		s.printf("Previous data %08X was replaced.\n", prev)
	}
	s.printf("'%s' data has successfully been set.\n", clipName(args[0]))
	return true
}

func (s *session) getData() bool {
	s.printf("\nEnter subsystem name to read data from: ")
	args, ok := s.readArgs(1)
	if !ok {
		return false
	}
	i, ok := s.lookup(args[0])
	if !ok {
		return false
	}

	v, err := s.reg.GetData(i)
	if err != nil {
		s.printf("'%s' has no pending data.\n", clipName(args[0]))
		return false
	}
	s.printf("'%s' data: %08X\n", clipName(args[0]), v)
	return true
}

// ---- input helpers ----

func (s *session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// readArgs reads one line and requires at least n whitespace-separated tokens.
func (s *session) readArgs(n int) ([]string, bool) {
	line, ok := s.readLine()
	if !ok {
		return nil, false
	}
	args := strings.Fields(line)
	if len(args) < n {
		s.printf("Expected %d value(s), got %d.\n", n, len(args))
		return nil, false
	}
	return args, true
}

func (s *session) lookup(name string) (int, bool) {
	name = clipName(name)
	i, ok := s.reg.Find(name)
	if !ok {
		s.printf("'%s' is not in the subsystem collection.\n", name)
	}
	return i, ok
}

func (s *session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// clipName applies the stored name width so lookups see what Insert stored.
func clipName(name string) string {
	if len(name) > status.NameMaxChars {
		return name[:status.NameMaxChars]
	}
	return name
}
