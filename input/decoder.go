package input

import (
	"time"

	"github.com/lixenwraith/tuikit/terminal"
)

// DefaultPollTimeout is the poll window used by PollDefault, sized to one
// frame at ~60fps.
const DefaultPollTimeout = 16 * time.Millisecond

// Decoder polls a terminal driver and decodes raw key events.
type Decoder struct {
	drv terminal.Driver
}

// NewDecoder creates a decoder over the given driver.
func NewDecoder(drv terminal.Driver) *Decoder {
	return &Decoder{drv: drv}
}

// Poll waits up to timeout for a key event and decodes it. NoInput comes
// back when the window elapses without a key press; driver failures are
// returned alongside NoInput.
func (d *Decoder) Poll(timeout time.Duration) (Input, error) {
	ev, ok, err := d.drv.PollKey(timeout)
	if err != nil {
		return NoInput, err
	}
	if !ok {
		return NoInput, nil
	}
	return Decode(ev), nil
}

// PollDefault polls with the default 16ms window.
func (d *Decoder) PollDefault() (Input, error) {
	return d.Poll(DefaultPollTimeout)
}

// Decode converts one raw key event to its semantic input. Character keys
// are lower-cased and wrapped by at most one modifier with strict
// precedence Ctrl > Alt > Shift > none; named keys map 1:1; unrecognized
// codes decode to NoInput.
func Decode(ev terminal.KeyEvent) Input {
	switch ev.Code {
	case terminal.CodeRune:
		k := KeyOf(ev.Rune)
		switch {
		case ev.Mods&terminal.ModCtrl != 0:
			return Ctrl(k)
		case ev.Mods&terminal.ModAlt != 0:
			return Alt(k)
		case ev.Mods&terminal.ModShift != 0:
			return Shift(Press(k))
		default:
			return Press(k)
		}
	case terminal.CodeUp:
		return Input{Kind: KindUp}
	case terminal.CodeDown:
		return Input{Kind: KindDown}
	case terminal.CodeLeft:
		return Input{Kind: KindLeft}
	case terminal.CodeRight:
		return Input{Kind: KindRight}
	case terminal.CodeEnter:
		return Input{Kind: KindEnter}
	case terminal.CodeBackspace:
		return Input{Kind: KindBackspace}
	case terminal.CodeTab:
		return Input{Kind: KindTab}
	case terminal.CodeEscape:
		return Input{Kind: KindEscape}
	case terminal.CodeEnd:
		return Input{Kind: KindEnd}
	case terminal.CodeCapsLock:
		return Input{Kind: KindCapsLock}
	case terminal.CodeInsert:
		return Input{Kind: KindInsert}
	case terminal.CodeHome:
		return Input{Kind: KindHome}
	case terminal.CodePageUp:
		return Input{Kind: KindPageUp}
	case terminal.CodePageDown:
		return Input{Kind: KindPageDown}
	case terminal.CodeDelete:
		return Input{Kind: KindDelete}
	case terminal.CodeFunction:
		return Function(ev.Fn)
	}
	return NoInput
}
