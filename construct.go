// construct.go — constructors for Exception handles.
//
// Scope:
//   - Explicit-site constructors (NewAt, NewTypedAt, NestAt, NestTypedAt) for
//     callers that already know file/function/line, e.g. adapters replaying a
//     chain produced elsewhere.
//   - Capture-site constructors (New, Newf, NewTyped, Wrap, Wrapf, WrapTyped)
//     that record their caller automatically.
//
// Ownership:
//   - The Nest*/Wrap* forms MOVE prev into the new record. prev reports
//     IsValid() == false afterwards and must not be read again.
//   - A nil or invalid prev yields an exception without a cause.
package xgxexception

import (
	"fmt"

	"github.com/xgx-io/xgx-exception/typetag"
)

// Empty allocates an unconfigured record: tag Standard, line -1. The result
// reports IsValid() == false until SetData is called.
func Empty() *Exception {
	e := &Exception{}
	e.ensure()
	return e
}

// NewAt creates a Standard exception raised at site.
func NewAt(site Site, message string) *Exception {
	return NewTypedAt(typetag.Standard, site, message)
}

// NewTypedAt creates an exception of the given kind raised at site. A zero
// tag is replaced by Standard.
func NewTypedAt(tag typetag.Tag, site Site, message string) *Exception {
	e := &Exception{}
	e.SetData(tag, site, message)
	return e
}

// NestAt creates a Standard exception raised at site whose cause is prev.
// prev is moved and invalid afterwards.
func NestAt(prev *Exception, site Site, message string) *Exception {
	return NestTypedAt(typetag.Standard, prev, site, message)
}

// NestTypedAt creates an exception of the given kind raised at site whose
// cause is prev. prev is moved and invalid afterwards.
func NestTypedAt(tag typetag.Tag, prev *Exception, site Site, message string) *Exception {
	e := &Exception{}
	e.SetDataNested(tag, site, message, prev)
	return e
}

// New creates a Standard exception raised by its caller.
func New(message string) *Exception {
	return NewTypedAt(typetag.Standard, Caller(1), message)
}

// Newf is New with fmt.Sprintf formatting.
func Newf(format string, args ...any) *Exception {
	return NewTypedAt(typetag.Standard, Caller(1), fmt.Sprintf(format, args...))
}

// NewTyped creates an exception of the given kind raised by its caller.
func NewTyped(tag typetag.Tag, message string) *Exception {
	return NewTypedAt(tag, Caller(1), message)
}

// Wrap adds context raised by its caller on top of prev. prev is moved.
//
//	if ex := parse(b); ex != nil {
//		return xgxexception.Wrap(ex, "loading settings")
//	}
func Wrap(prev *Exception, message string) *Exception {
	return NestTypedAt(typetag.Standard, prev, Caller(1), message)
}

// Wrapf is Wrap with fmt.Sprintf formatting.
func Wrapf(prev *Exception, format string, args ...any) *Exception {
	return NestTypedAt(typetag.Standard, prev, Caller(1), fmt.Sprintf(format, args...))
}

// WrapTyped is Wrap with an explicit kind for the new record.
func WrapTyped(tag typetag.Tag, prev *Exception, message string) *Exception {
	return NestTypedAt(tag, prev, Caller(1), message)
}
