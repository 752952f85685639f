// wrap.go — bridging arbitrary Go errors into exception chains.
//
// Purpose
//   - Give code that receives a plain error a way to continue the chain with
//     Wrap/Nest, without losing the original causes.
//   - Classify well-known conditions on the way in (missing files, runtime
//     panics) so tag predicates work on the converted chain.
package xgxexception

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"

	"github.com/xgx-io/xgx-exception/typetag"
)

// Tagged is implemented by foreign errors that know their exception kind.
type Tagged interface {
	TypeTag() typetag.Tag
}

// Sited is implemented by foreign errors that know where they were raised.
type Sited interface {
	Site() Site
}

// FromError converts err into an exception chain.
//   - nil → nil
//   - *Exception → a second owner of the same chain (see Clone)
//   - other errors → one record per node along the first unwrap path,
//     outermost first; an *Exception met on the way is cloned as the tail.
//
// Foreign records take their tag from TypeTag() when available, then from the
// well-known conditions (runtime.Error → RuntimeError, missing file →
// FileNotFound), else Standard. Their function is the Go type of the error
// and their line is -1 unless the error implements Sited. A foreign chain
// longer than the traversal bound ends in a Standard record saying where it
// was cut.
func FromError(err error) *Exception {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Exception); ok {
		return e.Clone()
	}
	path, truncated := walkPath(err)

	var tail *Exception
	for i, node := range path {
		// A foreign wrapper may hand out the caller's own exception; never move it.
		if e, ok := node.(*Exception); ok {
			tail = e.Clone()
			path = path[:i]
			truncated = false
			break
		}
	}
	if truncated {
		tail = NewAt(UnknownSite, fmt.Sprintf("error chain truncated after %d nodes", len(path)))
	}
	for i := len(path) - 1; i >= 0; i-- {
		node := path[i]
		tail = NestTypedAt(tagFor(node), tail, siteFor(node), messageFor(node))
	}
	return tail
}

func tagFor(err error) typetag.Tag {
	switch e := err.(type) {
	case Tagged:
		return e.TypeTag().OrDefault()
	case runtime.Error:
		return typetag.RuntimeError
	case *fs.PathError:
		if errors.Is(e.Err, fs.ErrNotExist) {
			return typetag.FileNotFound
		}
	}
	// Leaves such as fs.ErrNotExist or syscall.ENOENT.
	if len(children(err)) == 0 && errors.Is(err, fs.ErrNotExist) {
		return typetag.FileNotFound
	}
	return typetag.Standard
}

func siteFor(err error) Site {
	if s, ok := err.(Sited); ok {
		return s.Site()
	}
	return Site{Function: fmt.Sprintf("%T", err), Line: unsetLine}
}

// messageFor prefers a bare Message() over Error(), which often repeats
// the cause that gets its own record anyway.
func messageFor(err error) string {
	if m, ok := err.(interface{ Message() string }); ok {
		return m.Message()
	}
	return err.Error()
}
