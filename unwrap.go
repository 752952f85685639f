// unwrap.go — traversal of arbitrary error graphs.
//
// Foreign errors reach this package through FromError and the predicates.
// They may wrap once (Unwrap() error), fan out (Unwrap() []error, as made by
// errors.Join) or, when badly built, loop. These helpers handle all three.
//
// Traversal semantics:
//   - Walk:    pre-order, each distinct node once, stops when visit returns false.
//   - Flatten: leaves only (nodes without children), depth-first order.
//   - Root:    first leaf, i.e. the deepest error along the first path.
//   - Path:    the nodes along that first path, outermost first.
//
// Foreign nodes are bounded by maxNodes. Exception records are not: a chain
// is acyclic, so walking it always ends.
//
// An *Exception unwraps to a fresh copy of its cause on every call, so
// exception chains are never mistaken for cycles.
package xgxexception

import "reflect"

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// maxNodes bounds traversal of pathological graphs.
const maxNodes = 1 << 12

// seenSet tracks visited nodes. Comparable dynamic types are keyed by value,
// pointers by address; anything else is caught only by maxNodes.
type seenSet struct {
	byValue map[error]struct{}
	byPtr   map[uintptr]struct{}
}

func newSeenSet() *seenSet {
	return &seenSet{
		byValue: make(map[error]struct{}, 8),
		byPtr:   make(map[uintptr]struct{}, 8),
	}
}

// add returns false when err was already recorded.
func (s *seenSet) add(err error) bool {
	if _, ok := err.(*Exception); ok {
		return true
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		id := rv.Pointer()
		if _, dup := s.byPtr[id]; dup {
			return false
		}
		s.byPtr[id] = struct{}{}
		return true
	}
	if reflect.TypeOf(err).Comparable() {
		if _, dup := s.byValue[err]; dup {
			return false
		}
		s.byValue[err] = struct{}{}
	}
	return true
}

// children returns the direct causes of err, skipping nils.
func children(err error) []error {
	switch u := err.(type) {
	case multiUnwrapper:
		kids := u.Unwrap()
		out := make([]error, 0, len(kids))
		for _, k := range kids {
			if k != nil {
				out = append(out, k)
			}
		}
		return out
	case singleUnwrapper:
		if k := u.Unwrap(); k != nil {
			return []error{k}
		}
	}
	return nil
}

// walkAction tells walk how to continue after a visit.
type walkAction int

const (
	walkDescend walkAction = iota // visit the node's children
	walkSkip                      // do not visit the node's children
	walkStop                      // end the traversal
)

// Walk visits err and everything it wraps in pre-order. nil err or visit is a
// no-op. At most maxNodes foreign nodes are visited; exception records do not
// count against the bound because a chain cannot loop.
func Walk(err error, visit func(error) bool) {
	if visit == nil {
		return
	}
	walk(err, func(e error) walkAction {
		if !visit(e) {
			return walkStop
		}
		return walkDescend
	})
}

func walk(err error, visit func(error) walkAction) {
	if err == nil {
		return
	}
	seen := newSeenSet()
	seen.add(err)
	stack := []error{err}
	for foreign := 0; len(stack) > 0; {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := cur.(*Exception); !ok {
			if foreign == maxNodes {
				return
			}
			foreign++
		}
		switch visit(cur) {
		case walkStop:
			return
		case walkSkip:
			continue
		}
		kids := children(cur)
		for i := len(kids) - 1; i >= 0; i-- {
			if seen.add(kids[i]) {
				stack = append(stack, kids[i])
			}
		}
	}
}

// Flatten returns the leaves of err's graph in depth-first order.
func Flatten(err error) []error {
	var out []error
	Walk(err, func(e error) bool {
		if len(children(e)) == 0 {
			out = append(out, e)
		}
		return true
	})
	return out
}

// Path follows the first cause at every level and returns the nodes visited,
// outermost first. It stops on a repeated node, and after maxNodes foreign
// nodes.
func Path(err error) []error {
	p, _ := walkPath(err)
	return p
}

// walkPath is Path that also reports whether the bound cut the path short.
func walkPath(err error) (out []error, truncated bool) {
	if err == nil {
		return nil, false
	}
	seen := newSeenSet()
	seen.add(err)
	out = []error{err}
	foreign := 0
	for cur := err; ; {
		if _, ok := cur.(*Exception); !ok {
			foreign++
		}
		kids := children(cur)
		if len(kids) == 0 || !seen.add(kids[0]) {
			return out, false
		}
		if foreign == maxNodes {
			return out, true
		}
		cur = kids[0]
		out = append(out, cur)
	}
}

// Root returns the deepest error along the first path. For an exception
// chain that is a copy of its root cause, as First returns. Root returns nil
// for nil, and for a foreign path longer than maxNodes, whose end was never
// reached.
func Root(err error) error {
	if e, ok := err.(*Exception); ok {
		if !e.IsValid() {
			return err
		}
		return e.First()
	}
	p, truncated := walkPath(err)
	if len(p) == 0 || truncated {
		return nil
	}
	return p[len(p)-1]
}
