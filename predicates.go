// predicates.go — tag-based classification for any error.
//
// Scope:
//   • Answer "what kind is this?" by comparing 128-bit tags, never Go types.
//   • Accept any error: exception chains are read record by record, foreign
//     errors are asked for TypeTag() and classified like FromError does.
//
// Out of scope:
//   • Retry policy, status mapping, logging.
package xgxexception

import "github.com/xgx-io/xgx-exception/typetag"

// TagOf returns the tag of err itself: the head record of an exception, or
// the classification FromError would give a foreign error.
// ok is false for nil.
func TagOf(err error) (typetag.Tag, bool) {
	if err == nil {
		return typetag.Tag{}, false
	}
	if e, ok := err.(*Exception); ok {
		if r := e.valid(); r != nil {
			return r.tag, true
		}
		return typetag.Tag{}, false
	}
	return tagFor(err), true
}

// HasTag reports whether any node in err's graph carries tag.
func HasTag(err error, tag typetag.Tag) bool {
	found := false
	walk(err, func(e error) walkAction {
		if x, ok := e.(*Exception); ok {
			// The records are scanned in place, so the copies Unwrap would
			// hand out are never needed.
			for r := x.valid(); r != nil; r = next(r) {
				if r.tag.Equal(tag) {
					found = true
					return walkStop
				}
			}
			return walkSkip
		}
		if tagFor(e).Equal(tag) {
			found = true
			return walkStop
		}
		return walkDescend
	})
	return found
}

func next(r *record) *record {
	if !r.nested.IsValid() {
		return nil
	}
	return r.nested.Get()
}

// RootTag returns the tag of the root cause of err.
func RootTag(err error) (typetag.Tag, bool) {
	if e, ok := err.(*Exception); ok {
		if r := e.valid(); r != nil {
			return r.first().tag, true
		}
		return typetag.Tag{}, false
	}
	return TagOf(Root(err))
}

// IsOutOfMemory reports whether err's graph contains an OutOfMemory node.
func IsOutOfMemory(err error) bool { return HasTag(err, typetag.OutOfMemory) }

// IsRuntimeError reports whether err's graph contains a RuntimeError node.
func IsRuntimeError(err error) bool { return HasTag(err, typetag.RuntimeError) }

// IsFileNotFound reports whether err's graph contains a FileNotFound node.
func IsFileNotFound(err error) bool { return HasTag(err, typetag.FileNotFound) }
