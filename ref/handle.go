// Package ref provides an opaque, reference-counted handle to a single
// implementation object.
//
// A Handle owns zero or one cell. A cell holds exactly one payload and the
// number of handles that own it. The contract has four operations:
//
//   - New / NewValue allocate a cell with one owner.
//   - Get returns the payload; it panics with ErrInvalidHandle when the handle
//     owns nothing (use TryGet for an error return instead).
//   - Release drops this handle's ownership; the payload is disposed when the
//     last owner releases it.
//   - IsValid reports whether the handle currently owns a cell.
//
// Copies and moves are explicit:
//
//	b := a.Clone()   // counted copy; a and b share the cell
//	c := a.Move()    // ownership transfer; a is invalid afterwards
//
// A plain Go assignment (b := a) copies the pointer without counting it and
// breaks the bookkeeping. Handle embeds a noCopy marker so `go vet` reports
// such copies.
//
// Concurrency: the owner count is not synchronised. Handles sharing a cell
// must not be cloned, moved or released from different goroutines without
// external locking. To hand data to another goroutine, copy the payload, not
// the handle.
package ref

import (
	"errors"
	"io"
)

// ErrInvalidHandle reports use of a handle that owns no cell. It always
// indicates an ownership bug in the caller.
var ErrInvalidHandle = errors.New("invalid handle")

// Disposer is implemented by payloads that own further handles or outside
// resources. Dispose runs once, when the last owner releases the cell.
type Disposer interface {
	Dispose()
}

// noCopy makes `go vet` (copylocks) flag by-value copies of Handle.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type cell[T any] struct {
	payload T
	owners  int
}

// Handle is an owning reference to a cell holding a T. The zero value owns
// nothing and is invalid.
type Handle[T any] struct {
	_ noCopy
	c *cell[T]
}

// New allocates a cell holding the zero T and returns its only owner.
func New[T any]() Handle[T] {
	return Handle[T]{c: &cell[T]{owners: 1}}
}

// NewValue allocates a cell holding a copy of v and returns its only owner.
func NewValue[T any](v T) Handle[T] {
	return Handle[T]{c: &cell[T]{payload: v, owners: 1}}
}

// IsValid reports whether h owns a cell.
func (h *Handle[T]) IsValid() bool { return h != nil && h.c != nil }

// Get returns the payload. The pointer must not outlive h's ownership.
// Get panics with ErrInvalidHandle when h is invalid.
func (h *Handle[T]) Get() *T {
	if !h.IsValid() {
		panic(ErrInvalidHandle)
	}
	return &h.c.payload
}

// TryGet is Get without the panic.
func (h *Handle[T]) TryGet() (*T, error) {
	if !h.IsValid() {
		return nil, ErrInvalidHandle
	}
	return &h.c.payload, nil
}

// Owners returns the owner count of the referenced cell, or 0 when invalid.
func (h *Handle[T]) Owners() int {
	if !h.IsValid() {
		return 0
	}
	return h.c.owners
}

// Same reports whether h and other own the same cell. Two invalid handles are
// not the same.
func (h *Handle[T]) Same(other *Handle[T]) bool {
	return h.IsValid() && other.IsValid() && h.c == other.c
}

// Clone returns a new owner of h's cell. Cloning an invalid handle yields an
// invalid handle.
func (h *Handle[T]) Clone() Handle[T] {
	if !h.IsValid() {
		return Handle[T]{}
	}
	h.c.owners++
	return Handle[T]{c: h.c}
}

// Move transfers h's ownership to the returned handle and leaves h invalid.
func (h *Handle[T]) Move() Handle[T] {
	if h == nil {
		return Handle[T]{}
	}
	c := h.c
	h.c = nil
	return Handle[T]{c: c}
}

// Assign makes h a counted copy of src, releasing whatever h owned before.
// Assigning from an invalid handle leaves h invalid. Self-assignment is a
// no-op.
func (h *Handle[T]) Assign(src *Handle[T]) {
	if h == src {
		return
	}
	if src.IsValid() && h.c == src.c {
		return
	}
	var next *cell[T]
	if src.IsValid() {
		src.c.owners++
		next = src.c
	}
	old := h.c
	h.c = next
	release(old)
}

// MoveFrom takes src's ownership, releasing whatever h owned before. src is
// invalid afterwards. Self-move is a no-op.
func (h *Handle[T]) MoveFrom(src *Handle[T]) {
	if h == src || src == nil {
		return
	}
	old := h.c
	h.c = src.c
	src.c = nil
	release(old)
}

// Release drops h's ownership and leaves h invalid. The payload is disposed
// when h was the last owner. Releasing an invalid handle is a no-op.
func (h *Handle[T]) Release() {
	_ = h.Close()
}

// Close is Release returning the error of an io.Closer payload when this call
// disposed it.
func (h *Handle[T]) Close() error {
	if !h.IsValid() {
		return nil
	}
	c := h.c
	h.c = nil
	return release(c)
}

func release[T any](c *cell[T]) error {
	if c == nil {
		return nil
	}
	c.owners--
	if c.owners > 0 {
		return nil
	}
	return c.dispose()
}

// dispose runs the payload's cleanup and clears it so stale aliases cannot
// observe freed state.
func (c *cell[T]) dispose() error {
	var err error
	switch p := any(&c.payload).(type) {
	case Disposer:
		p.Dispose()
	case io.Closer:
		err = p.Close()
	default:
		if cl, ok := any(c.payload).(io.Closer); ok && cl != nil {
			err = cl.Close()
		}
	}
	var zero T
	c.payload = zero
	c.owners = 0
	return err
}
