package object

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/tuikit/cursor"
	"github.com/lixenwraith/tuikit/terminal"
)

// NotFoundError reports an operation on an identifier the registry does
// not hold. Callers can tell "no-op because absent" from "succeeded".
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("object with ID %q is not found", e.ID)
}

// IsNotFound reports whether err is a registry miss.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

type entry struct {
	obj Object
	x   int
	y   int
}

// Registry maps identifiers to drawable objects with a stored default draw
// coordinate per entry. The key type is fixed at construction. It is a
// pure mapping: nothing in the API depends on iteration order — draw order
// is whatever sequence of Draw/DrawAt calls the caller makes per frame.
//
// The registry is owned by the single goroutine driving the frame loop.
type Registry[K comparable] struct {
	drv     terminal.Driver
	objects map[K]entry
}

// NewRegistry creates an empty registry rendering through the driver.
func NewRegistry[K comparable](drv terminal.Driver) *Registry[K] {
	return &Registry[K]{
		drv:     drv,
		objects: make(map[K]entry),
	}
}

// Add inserts or overwrites the entry for id at the default coordinate
// (0, 0). Last write wins; overwriting is not an error.
func (r *Registry[K]) Add(id K, obj Object) {
	r.AddAt(id, obj, 0, 0)
}

// AddAt inserts or overwrites the entry for id with a stored draw
// coordinate.
func (r *Registry[K]) AddAt(id K, obj Object, x, y int) {
	r.objects[id] = entry{obj: obj, x: x, y: y}
}

// Remove deletes the entry for id.
func (r *Registry[K]) Remove(id K) error {
	if _, ok := r.objects[id]; !ok {
		return &NotFoundError{ID: fmt.Sprint(id)}
	}
	delete(r.objects, id)
	return nil
}

// Update replaces the entry for id wholesale, exactly as Remove followed
// by Add: the new entry carries the default (0, 0) coordinate, not the old
// one. Fails when id is absent; an update is never a silent insert.
func (r *Registry[K]) Update(id K, obj Object) error {
	return r.UpdateAt(id, obj, 0, 0)
}

// UpdateAt replaces the entry for id wholesale at an explicit coordinate.
func (r *Registry[K]) UpdateAt(id K, obj Object, x, y int) error {
	if _, ok := r.objects[id]; !ok {
		return &NotFoundError{ID: fmt.Sprint(id)}
	}
	r.objects[id] = entry{obj: obj, x: x, y: y}
	return nil
}

// Len returns the number of stored entries.
func (r *Registry[K]) Len() int { return len(r.objects) }

// Draw renders the object for id at its stored coordinate: the cursor
// moves there first, then the object renders by variant. Cursor failures
// surface as a cursor.MoveError, not swallowed.
func (r *Registry[K]) Draw(id K) error {
	e, ok := r.objects[id]
	if !ok {
		return &NotFoundError{ID: fmt.Sprint(id)}
	}
	if err := cursor.Move(r.drv, cursor.To(e.x, e.y)); err != nil {
		return err
	}
	return r.render(e.obj)
}

// DrawAt renders the object for id after moving the cursor with an
// explicit command instead of the stored coordinate — for objects without
// a fixed position, like a counter pinned to the last screen row.
func (r *Registry[K]) DrawAt(id K, cmd cursor.Command) error {
	e, ok := r.objects[id]
	if !ok {
		return &NotFoundError{ID: fmt.Sprint(id)}
	}
	if err := cursor.Move(r.drv, cmd); err != nil {
		return err
	}
	return r.render(e.obj)
}

func (r *Registry[K]) render(obj Object) error {
	switch obj.Kind() {
	case KindText:
		if err := r.drv.Print(obj.Content() + "\n"); err != nil {
			return fmt.Errorf("failed to draw %s: %w", obj, err)
		}
		return nil
	case KindAir:
		return nil
	case KindBlock:
		return ErrBlockNotImplemented
	}
	return fmt.Errorf("failed to draw %s: unknown object kind", obj)
}
