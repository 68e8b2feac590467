// Package object holds the registry of addressable drawable objects and
// the closed set of object variants it can render.
package object

import (
	"errors"
	"fmt"
)

// Kind tags the variant an Object carries.
type Kind uint8

const (
	// KindText renders its content followed by a line break.
	KindText Kind = iota
	// KindAir renders nothing.
	KindAir
	// KindBlock is reserved; drawing one is a distinct failure, never a
	// silent no-op.
	KindBlock
)

// ErrBlockNotImplemented is returned when a Block object is drawn.
var ErrBlockNotImplemented = errors.New("block objects are not drawable")

// Object is one drawable value. Construct with Text, Air or Block.
type Object struct {
	kind Kind
	text string
}

// Text creates a text object with the given content.
func Text(content string) Object { return Object{kind: KindText, text: content} }

// Air creates an object with no visible effect.
func Air() Object { return Object{kind: KindAir} }

// Block creates the reserved block object.
func Block() Object { return Object{kind: KindBlock} }

// Kind returns the object's variant tag.
func (o Object) Kind() Kind { return o.kind }

// Content returns the text content; empty for non-text objects.
func (o Object) Content() string { return o.text }

func (o Object) String() string {
	switch o.kind {
	case KindText:
		return fmt.Sprintf("Text(%s)", o.text)
	case KindAir:
		return "Air"
	case KindBlock:
		return "Block"
	}
	return "unknown"
}
