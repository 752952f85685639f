// Package interop carries exception chains across a boundary that cannot hold
// an *xgxexception.Exception, such as a plugin host, an RPC layer or another
// error library.
//
// Two directions are supported:
//
//   - Flatten turns a chain into plain Entry values, outermost first, using
//     only the public HasNested/Nested walk.
//   - Project turns a chain into ordinary Go errors, innermost first, each one
//     wrapping the previous as its cause. Restore reverses it.
//
// Projected errors keep the 128-bit tag and the raise site, so
// Project → Restore reproduces the chain record for record.
package interop

import (
	"fmt"
	"sync"

	xgxexception "github.com/xgx-io/xgx-exception"
	"github.com/xgx-io/xgx-exception/typetag"
)

// Entry is one record of a flattened chain.
type Entry struct {
	Tag      typetag.Tag `json:"tag" toml:"tag"`
	Message  string      `json:"message" toml:"message"`
	File     string      `json:"file" toml:"file"`
	Function string      `json:"function" toml:"function"`
	Line     int         `json:"line" toml:"line"`
}

func entryOf(e *xgxexception.Exception) Entry {
	return Entry{
		Tag:      e.Tag(),
		Message:  e.Message(),
		File:     e.File(),
		Function: e.Function(),
		Line:     e.Line(),
	}
}

// Site returns the raise site of the entry.
func (en Entry) Site() xgxexception.Site {
	return xgxexception.Site{File: en.File, Function: en.Function, Line: en.Line}
}

// Flatten returns the records of e, outermost first. An invalid e yields nil.
// e itself is left untouched.
func Flatten(e *xgxexception.Exception) []Entry {
	if !e.IsValid() {
		return nil
	}
	out := make([]Entry, 0, e.Depth())
	out = append(out, entryOf(e))
	cur := e
	for cur.HasNested() {
		next := cur.Nested()
		if cur != e {
			cur.Release()
		}
		cur = next
		out = append(out, entryOf(cur))
	}
	if cur != e {
		cur.Release()
	}
	return out
}

// Build rebuilds a chain from entries ordered outermost first. An empty slice
// yields nil.
func Build(entries []Entry) *xgxexception.Exception {
	var e *xgxexception.Exception
	for i := len(entries) - 1; i >= 0; i-- {
		en := entries[i]
		e = xgxexception.NestTypedAt(en.Tag, e, en.Site(), en.Message)
	}
	return e
}

// Ctor builds the projected error for one record. cause is the projection of
// the record's nested cause, nil for the root.
type Ctor func(en Entry, cause error) error

var (
	mu       sync.RWMutex
	registry = map[typetag.Tag]Ctor{}
)

func key(t typetag.Tag) typetag.Tag { return typetag.Tag{ID: t.ID} }

func init() {
	registry[key(typetag.Standard)] = func(en Entry, cause error) error {
		return &StandardError{Base: Base{Entry: en, Cause: cause}}
	}
	registry[key(typetag.OutOfMemory)] = func(en Entry, cause error) error {
		return &OutOfMemoryError{Base: Base{Entry: en, Cause: cause}}
	}
	registry[key(typetag.RuntimeError)] = func(en Entry, cause error) error {
		return &RuntimeError{Base: Base{Entry: en, Cause: cause}}
	}
}

// Register installs ctor for tag, replacing any previous one. Registering a
// nil ctor removes the mapping so the tag projects to *ForeignError.
func Register(tag typetag.Tag, ctor Ctor) {
	mu.Lock()
	defer mu.Unlock()
	if ctor == nil {
		delete(registry, key(tag))
		return
	}
	registry[key(tag)] = ctor
}

func lookup(tag typetag.Tag) Ctor {
	mu.RLock()
	defer mu.RUnlock()
	if c, ok := registry[key(tag)]; ok {
		return c
	}
	return func(en Entry, cause error) error {
		return &ForeignError{Base: Base{Entry: en, Cause: cause}}
	}
}

// Project converts e into ordinary Go errors. The root cause is built first
// and every outer record wraps the one below it. An invalid e yields nil.
func Project(e *xgxexception.Exception) error {
	entries := Flatten(e)
	var err error
	for i := len(entries) - 1; i >= 0; i-- {
		err = lookup(entries[i].Tag)(entries[i], err)
		if err == nil {
			panic(fmt.Sprintf("interop: ctor for %s returned nil", entries[i].Tag))
		}
	}
	return err
}

// Restore rebuilds an exception chain from err. Projected errors come back
// with their original tags and sites; anything else is converted like
// xgxexception.FromError does.
func Restore(err error) *xgxexception.Exception {
	return xgxexception.FromError(err)
}
