// Package cursor provides the closed set of cursor movement commands and
// their translation onto terminal driver primitives.
package cursor

import (
	"fmt"

	"github.com/lixenwraith/tuikit/terminal"
)

type op uint8

const (
	opTo op = iota
	opLeft
	opRight
	opUp
	opDown
	opNextLine
)

// Command describes one cursor movement. The zero value moves to (0, 0).
type Command struct {
	op   op
	x, y int
	n    int
}

// To moves the cursor to the absolute cell (x, y), 0-indexed.
func To(x, y int) Command { return Command{op: opTo, x: x, y: y} }

// Left moves the cursor n cells to the left.
func Left(n int) Command { return Command{op: opLeft, n: n} }

// Right moves the cursor n cells to the right.
func Right(n int) Command { return Command{op: opRight, n: n} }

// Up moves the cursor n cells upward.
func Up(n int) Command { return Command{op: opUp, n: n} }

// Down moves the cursor n cells downward.
func Down(n int) Command { return Command{op: opDown, n: n} }

// NextLine moves the cursor to column 0, n lines down.
func NextLine(n int) Command { return Command{op: opNextLine, n: n} }

func (c Command) String() string {
	switch c.op {
	case opTo:
		return fmt.Sprintf("to(%d,%d)", c.x, c.y)
	case opLeft:
		return fmt.Sprintf("left(%d)", c.n)
	case opRight:
		return fmt.Sprintf("right(%d)", c.n)
	case opUp:
		return fmt.Sprintf("up(%d)", c.n)
	case opDown:
		return fmt.Sprintf("down(%d)", c.n)
	case opNextLine:
		return fmt.Sprintf("next_line(%d)", c.n)
	}
	return "unknown"
}

// MoveError reports a cursor movement that the driver rejected.
type MoveError struct {
	Cmd Command
	Err error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("failed to move cursor %s: %v", e.Cmd, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }

// Move executes cmd against the driver. Driver failures come back wrapped
// in a MoveError, never swallowed.
func Move(d terminal.Driver, cmd Command) error {
	var err error
	switch cmd.op {
	case opTo:
		err = d.MoveCursor(cmd.x, cmd.y)
	case opLeft:
		err = d.MoveCursorBy(terminal.DirLeft, cmd.n)
	case opRight:
		err = d.MoveCursorBy(terminal.DirRight, cmd.n)
	case opUp:
		err = d.MoveCursorBy(terminal.DirUp, cmd.n)
	case opDown:
		err = d.MoveCursorBy(terminal.DirDown, cmd.n)
	case opNextLine:
		err = d.MoveToNextLine(cmd.n)
	}
	if err != nil {
		return &MoveError{Cmd: cmd, Err: err}
	}
	return nil
}
