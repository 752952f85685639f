package interop

import (
	"fmt"

	xgxexception "github.com/xgx-io/xgx-exception"
	"github.com/xgx-io/xgx-exception/typetag"
)

// Base is embedded by every projected error. It keeps the record the error
// was projected from and the projection of its cause.
type Base struct {
	Entry Entry
	Cause error
}

func (b *Base) Error() string {
	name := b.Entry.Tag.Name
	if name == "" {
		name = "{" + b.Entry.Tag.Format() + "}"
	}
	return fmt.Sprintf("%s: %s", name, b.Entry.Message)
}

func (b *Base) Unwrap() error { return b.Cause }

// Message returns the record's message without the kind prefix.
func (b *Base) Message() string { return b.Entry.Message }

// TypeTag returns the record's tag.
func (b *Base) TypeTag() typetag.Tag { return b.Entry.Tag }

// Site returns the record's raise site.
func (b *Base) Site() xgxexception.Site { return b.Entry.Site() }

// StandardError is the projection of a Standard record.
type StandardError struct{ Base }

// OutOfMemoryError is the projection of an OutOfMemory record.
type OutOfMemoryError struct{ Base }

// RuntimeError is the projection of a RuntimeError record.
type RuntimeError struct{ Base }

// ForeignError is the projection of a record whose tag has no registered
// constructor. The tag travels with it unchanged.
type ForeignError struct{ Base }

// TagID returns the canonical text of the unregistered tag.
func (f *ForeignError) TagID() string { return f.Entry.Tag.Format() }

// TagName returns the name the tag carried, possibly empty.
func (f *ForeignError) TagName() string { return f.Entry.Tag.Name }

var (
	_ xgxexception.Tagged = (*StandardError)(nil)
	_ xgxexception.Sited  = (*ForeignError)(nil)
)
