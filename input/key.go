package input

import "fmt"

// Key identifies a character key. Letter keys use the named constants
// KeyA..KeyZ; any other character is represented by its own rune value, so
// equality and ordering are structural for free.
type Key rune

const (
	KeyA Key = 'a' + iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// KeyOf returns the Key for a raw character, lower-casing ASCII letters so
// 'A' and 'a' identify the same key.
func KeyOf(r rune) Key {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return Key(r)
}

// IsLetter reports whether k is one of the 26 letter keys.
func (k Key) IsLetter() bool { return k >= KeyA && k <= KeyZ }

func (k Key) String() string {
	if k.IsLetter() {
		return string('A' + rune(k) - 'a')
	}
	return fmt.Sprintf("Other(%c)", rune(k))
}
