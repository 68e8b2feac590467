package terminal

import "time"

// Direction selects the axis for relative cursor movement.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "unknown"
}

// Modifier flags reported with a key event (bitmask).
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// Code identifies the kind of key a raw event carries.
type Code uint8

const (
	CodeNone Code = iota
	CodeRune      // Printable character (check KeyEvent.Rune)

	CodeUp
	CodeDown
	CodeLeft
	CodeRight

	CodeEnter
	CodeBackspace
	CodeTab
	CodeEscape
	CodeEnd
	CodeCapsLock
	CodeInsert
	CodeHome
	CodePageUp
	CodePageDown
	CodeDelete

	CodeFunction // F1..Fn (check KeyEvent.Fn)
)

// KeyEvent is a raw key event as reported by a Driver. Control bytes are
// normalized to CodeRune with ModCtrl set (0x01 becomes 'a'+Ctrl), so the
// modifier mask is the single source of truth for combinations.
type KeyEvent struct {
	Code Code
	Rune rune  // valid when Code == CodeRune
	Fn   uint8 // valid when Code == CodeFunction
	Mods Modifier
}

// Driver abstracts the raw terminal primitives the runtime is built on.
// Every operation may fail with a driver-level I/O error; callers wrap,
// never swallow.
type Driver interface {
	// MoveCursor positions the cursor at absolute cell (x, y), 0-indexed.
	MoveCursor(x, y int) error

	// MoveCursorBy moves the cursor n cells in the given direction.
	MoveCursorBy(dir Direction, n int) error

	// MoveToNextLine moves the cursor to column 0, n lines down.
	MoveToNextLine(n int) error

	ShowCursor() error
	HideCursor() error

	EnterAltScreen() error
	LeaveAltScreen() error

	EnableRawMode() error
	DisableRawMode() error

	// Clear erases the whole screen.
	Clear() error

	// Size returns current terminal dimensions in character cells.
	Size() (width, height int, err error)

	// PollKey waits up to timeout for a key event. ok is false when the
	// window elapses without one.
	PollKey(timeout time.Duration) (ev KeyEvent, ok bool, err error)

	// Print writes text at the current cursor position. A '\n' in text
	// breaks the line (column 0 of the next row).
	Print(text string) error
}
