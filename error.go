// Package xgxexception defines chained, type-tagged exceptions held behind
// an opaque reference-counted handle.
//
// Design tenets:
//   - Identity by value: kinds are 128-bit typetag.Tag values, so code built
//     separately can classify an exception without sharing Go types.
//   - Move in, copy out: causes are attached by move (the source becomes
//     invalid); readers receive independent copies.
//   - Fail safe on read: rendering an invalid handle yields empty text instead
//     of panicking.
//
// See: errors.Is / errors.As / errors.Unwrap contracts in the Go standard library.
package xgxexception

import (
	"errors"
	"io/fs"

	"github.com/xgx-io/xgx-exception/ref"
	"github.com/xgx-io/xgx-exception/typetag"
)

// ErrSelfNesting is the panic value used when an exception would become its
// own cause.
var ErrSelfNesting = errors.New("exception cannot nest itself")

// Exception is the public handle to a chain of records. Use *Exception; a
// by-value copy would alias the record without counting it.
//
// The zero value holds no record. Exception is not safe for concurrent use.
type Exception struct {
	ref ref.Handle[record]
}

// rec returns the record or nil when the handle holds none.
func (e *Exception) rec() *record {
	if e == nil {
		return nil
	}
	r, err := e.ref.TryGet()
	if err != nil {
		return nil
	}
	return r
}

// valid returns the record when it exists and has been configured.
func (e *Exception) valid() *record {
	r := e.rec()
	if r == nil || !r.set {
		return nil
	}
	return r
}

// IsValid reports whether e holds a configured record.
func (e *Exception) IsValid() bool { return e.valid() != nil }

// HasNested reports whether e's record has a cause attached.
func (e *Exception) HasNested() bool {
	r := e.rec()
	return r != nil && r.nested.IsValid()
}

// Nested returns an independent copy of the cause, or nil when there is none.
func (e *Exception) Nested() *Exception {
	if !e.HasNested() {
		return nil
	}
	return copyOf(e.rec().nested.Get())
}

// First returns an independent copy of the root cause. An exception without
// a cause is its own root. Returns nil when e holds no record.
func (e *Exception) First() *Exception {
	r := e.rec()
	if r == nil {
		return nil
	}
	return copyOf(r.first())
}

// Depth returns the number of records in the chain, or 0 when e is invalid.
func (e *Exception) Depth() int {
	r := e.valid()
	if r == nil {
		return 0
	}
	return r.depth()
}

// Move transfers e's chain to a new handle. e is invalid afterwards.
func (e *Exception) Move() *Exception {
	out := &Exception{}
	if e != nil {
		out.ref.MoveFrom(&e.ref)
	}
	return out
}

// Clone returns a second owner of e's record. Unlike Nested and First the
// result shares the record: SetData through either handle is visible to both.
func (e *Exception) Clone() *Exception {
	out := &Exception{}
	if e != nil {
		out.ref.Assign(&e.ref)
	}
	return out
}

// Release drops e's ownership of its record and leaves e invalid.
func (e *Exception) Release() {
	if e != nil {
		e.ref.Release()
	}
}

// SetData reconfigures e in place and drops any previous cause. An invalid
// handle gets a fresh record.
func (e *Exception) SetData(tag typetag.Tag, site Site, message string) {
	e.ensure().setData(tag, message, site.File, site.Function, site.Line)
}

// SetDataNested is SetData followed by taking ownership of prev's chain. prev
// is invalid afterwards. A prev holding no configured record is released
// instead of attached. Nesting e inside itself panics with ErrSelfNesting.
func (e *Exception) SetDataNested(tag typetag.Tag, site Site, message string, prev *Exception) {
	if prev == e {
		panic(ErrSelfNesting)
	}
	r := e.ensure()
	if !prev.IsValid() {
		prev.Release()
		r.setData(tag, message, site.File, site.Function, site.Line)
		return
	}
	r.setDataNested(tag, message, site.File, site.Function, site.Line, &prev.ref)
}

func (e *Exception) ensure() *record {
	if r := e.rec(); r != nil {
		return r
	}
	fresh := ref.New[record]()
	e.ref.MoveFrom(&fresh)
	r := e.ref.Get()
	r.reset()
	return r
}

// Tag returns the record's type tag, or Standard when e is invalid.
func (e *Exception) Tag() typetag.Tag {
	if r := e.rec(); r != nil {
		return r.tag
	}
	return typetag.Default()
}

// Message returns the record's message.
func (e *Exception) Message() string {
	if r := e.rec(); r != nil {
		return r.message
	}
	return ""
}

// File returns the shortened source file that raised e.
func (e *Exception) File() string {
	if r := e.rec(); r != nil {
		return r.file
	}
	return ""
}

// Function returns the function that raised e.
func (e *Exception) Function() string {
	if r := e.rec(); r != nil {
		return r.function
	}
	return ""
}

// Line returns the source line that raised e, or -1 when unset.
func (e *Exception) Line() int {
	if r := e.rec(); r != nil {
		return r.line
	}
	return unsetLine
}

// Site returns the recorded source location.
func (e *Exception) Site() Site {
	return Site{File: e.File(), Function: e.Function(), Line: e.Line()}
}

// String renders the head record on one line, or "" when e is invalid.
func (e *Exception) String() string {
	if r := e.valid(); r != nil {
		return r.String()
	}
	return ""
}

// StringList renders one line per record, outermost first. Nil when e is
// invalid.
func (e *Exception) StringList() []string {
	if r := e.valid(); r != nil {
		return r.stringList()
	}
	return nil
}

// StringComplete renders the whole chain, one record per line, each deeper
// cause prefixed by one more '>'. Empty when e is invalid.
func (e *Exception) StringComplete() string {
	if r := e.valid(); r != nil {
		return r.stringComplete()
	}
	return ""
}

// Error implements error with the single line form.
func (e *Exception) Error() string {
	if s := e.String(); s != "" {
		return s
	}
	return "invalid exception"
}

// Unwrap exposes the cause to errors.Is/As. Each call returns a new copy.
func (e *Exception) Unwrap() error {
	if n := e.Nested(); n != nil {
		return n
	}
	return nil
}

// Is matches Kind sentinels by tag, and fs.ErrNotExist for FileNotFound.
func (e *Exception) Is(target error) bool {
	r := e.valid()
	if r == nil {
		return false
	}
	switch t := target.(type) {
	case kind:
		return r.tag.Equal(t.tag)
	default:
		return target == fs.ErrNotExist && r.tag.Equal(typetag.FileNotFound)
	}
}

// copyOf allocates a new record holding a copy of src.
func copyOf(src *record) *Exception {
	fresh := ref.New[record]()
	src.copyInto(fresh.Get())
	out := &Exception{}
	out.ref.MoveFrom(&fresh)
	return out
}

// kind is a comparable sentinel matching exceptions by tag.
type kind struct{ tag typetag.Tag }

func (k kind) Error() string { return k.tag.String() }

// TypeTag returns the tag the sentinel matches.
func (k kind) TypeTag() typetag.Tag { return k.tag }

// Kind returns a sentinel for errors.Is that matches any exception in a chain
// whose tag equals t.
func Kind(t typetag.Tag) error { return kind{tag: t} }

// Sentinels for the well-known tags.
var (
	ErrStandard     = Kind(typetag.Standard)
	ErrOutOfMemory  = Kind(typetag.OutOfMemory)
	ErrRuntimeError = Kind(typetag.RuntimeError)
	ErrFileNotFound = Kind(typetag.FileNotFound)
)
