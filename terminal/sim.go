package terminal

import (
	"fmt"
	"time"
)

// SimDriver is an in-memory Driver for tests and headless runs. Every
// primitive invocation is recorded in Ops (e.g. "move(0,0)", "raw_on"),
// printed text accumulates in Output, and key events are served from a
// scripted queue. Failures are injectable per primitive.
//
// PollKey never sleeps: an empty queue reports an elapsed window
// immediately, so timeout paths stay fast under test.
type SimDriver struct {
	Width  int
	Height int

	Ops    []string
	Output string

	RawActive    bool
	AltActive    bool
	CursorHidden bool

	keys []KeyEvent
	errs map[string]error
}

// NewSimDriver returns a simulated 80x24 terminal.
func NewSimDriver() *SimDriver {
	return &SimDriver{Width: 80, Height: 24, errs: make(map[string]error)}
}

// FailWith makes the named primitive ("move", "raw_on", "size", ...) return err.
func (s *SimDriver) FailWith(op string, err error) {
	s.errs[op] = err
}

// QueueKey appends a scripted key event for PollKey to return.
func (s *SimDriver) QueueKey(ev KeyEvent) {
	s.keys = append(s.keys, ev)
}

// Count reports how many recorded ops start with prefix.
func (s *SimDriver) Count(prefix string) int {
	n := 0
	for _, op := range s.Ops {
		if len(op) >= len(prefix) && op[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (s *SimDriver) record(name, op string) error {
	if err := s.errs[name]; err != nil {
		return err
	}
	s.Ops = append(s.Ops, op)
	return nil
}

func (s *SimDriver) MoveCursor(x, y int) error {
	return s.record("move", fmt.Sprintf("move(%d,%d)", x, y))
}

func (s *SimDriver) MoveCursorBy(dir Direction, n int) error {
	return s.record("move_by", fmt.Sprintf("move_%s(%d)", dir, n))
}

func (s *SimDriver) MoveToNextLine(n int) error {
	return s.record("next_line", fmt.Sprintf("next_line(%d)", n))
}

func (s *SimDriver) ShowCursor() error {
	if err := s.record("show_cursor", "show_cursor"); err != nil {
		return err
	}
	s.CursorHidden = false
	return nil
}

func (s *SimDriver) HideCursor() error {
	if err := s.record("hide_cursor", "hide_cursor"); err != nil {
		return err
	}
	s.CursorHidden = true
	return nil
}

func (s *SimDriver) EnterAltScreen() error {
	if err := s.record("enter_alt", "enter_alt"); err != nil {
		return err
	}
	s.AltActive = true
	return nil
}

func (s *SimDriver) LeaveAltScreen() error {
	if err := s.record("leave_alt", "leave_alt"); err != nil {
		return err
	}
	s.AltActive = false
	return nil
}

func (s *SimDriver) EnableRawMode() error {
	if err := s.record("raw_on", "raw_on"); err != nil {
		return err
	}
	s.RawActive = true
	return nil
}

func (s *SimDriver) DisableRawMode() error {
	if err := s.record("raw_off", "raw_off"); err != nil {
		return err
	}
	s.RawActive = false
	return nil
}

func (s *SimDriver) Clear() error {
	return s.record("clear", "clear")
}

func (s *SimDriver) Size() (int, int, error) {
	if err := s.errs["size"]; err != nil {
		return 0, 0, err
	}
	return s.Width, s.Height, nil
}

func (s *SimDriver) PollKey(timeout time.Duration) (KeyEvent, bool, error) {
	if err := s.errs["poll"]; err != nil {
		return KeyEvent{}, false, err
	}
	if len(s.keys) == 0 {
		return KeyEvent{}, false, nil
	}
	ev := s.keys[0]
	s.keys = s.keys[1:]
	return ev, true, nil
}

func (s *SimDriver) Print(text string) error {
	if err := s.record("print", fmt.Sprintf("print(%q)", text)); err != nil {
		return err
	}
	s.Output += text
	return nil
}
