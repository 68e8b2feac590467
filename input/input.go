// Package input decodes raw driver key events into the semantic input
// model: letter keys, single-modifier combinations, named keys, function
// keys, or no input at all.
package input

import "fmt"

// Kind tags the variant an Input carries.
type Kind uint8

const (
	KindNone Kind = iota
	KindPress
	KindShift // wraps another Input, see Input.Inner
	KindCtrl
	KindAlt

	KindUp
	KindDown
	KindLeft
	KindRight

	KindEnter
	KindBackspace
	KindTab
	KindEscape
	KindEnd
	KindCapsLock
	KindInsert
	KindHome
	KindPageUp
	KindPageDown
	KindDelete

	KindFunction
)

// Input is one decoded keyboard input. It is a closed variant set: exactly
// one of the Kind values, with Key valid for Press/Ctrl/Alt, Fn for
// Function, and Inner for Shift. Shift owns its boxed inner value — the
// variant is self-referential, so the inner input lives behind a pointer
// that nothing else holds.
type Input struct {
	Kind  Kind
	Key   Key
	Fn    uint8
	Inner *Input
}

// NoInput is returned when no key event arrived within the poll window.
var NoInput = Input{Kind: KindNone}

// Press is a plain key press without modifiers.
func Press(k Key) Input { return Input{Kind: KindPress, Key: k} }

// Ctrl is a key press with the Control modifier.
func Ctrl(k Key) Input { return Input{Kind: KindCtrl, Key: k} }

// Alt is a key press with the Alt modifier.
func Alt(k Key) Input { return Input{Kind: KindAlt, Key: k} }

// Shift wraps another input with the Shift modifier. The decoder only ever
// wraps a plain press.
func Shift(inner Input) Input { return Input{Kind: KindShift, Inner: &inner} }

// Function is a function key press, index 1-255.
func Function(n uint8) Input { return Input{Kind: KindFunction, Fn: n} }

// Equal reports structural equality, following Shift wrapping.
func (in Input) Equal(other Input) bool {
	if in.Kind != other.Kind || in.Key != other.Key || in.Fn != other.Fn {
		return false
	}
	if in.Kind != KindShift {
		return true
	}
	if in.Inner == nil || other.Inner == nil {
		return in.Inner == other.Inner
	}
	return in.Inner.Equal(*other.Inner)
}

// IsNone reports whether the input is the no-input value.
func (in Input) IsNone() bool { return in.Kind == KindNone }

func (in Input) String() string {
	switch in.Kind {
	case KindNone:
		return "None"
	case KindPress:
		return fmt.Sprintf("Key(%s)", in.Key)
	case KindShift:
		if in.Inner == nil {
			return "Shift(?)"
		}
		return fmt.Sprintf("Shift(%s)", *in.Inner)
	case KindCtrl:
		return fmt.Sprintf("Ctrl(%s)", in.Key)
	case KindAlt:
		return fmt.Sprintf("Alt(%s)", in.Key)
	case KindUp:
		return "Up"
	case KindDown:
		return "Down"
	case KindLeft:
		return "Left"
	case KindRight:
		return "Right"
	case KindEnter:
		return "Enter"
	case KindBackspace:
		return "Backspace"
	case KindTab:
		return "Tab"
	case KindEscape:
		return "Escape"
	case KindEnd:
		return "End"
	case KindCapsLock:
		return "CapsLock"
	case KindInsert:
		return "Insert"
	case KindHome:
		return "Home"
	case KindPageUp:
		return "PageUp"
	case KindPageDown:
		return "PageDown"
	case KindDelete:
		return "Delete"
	case KindFunction:
		return fmt.Sprintf("F%d", in.Fn)
	}
	return "unknown"
}
