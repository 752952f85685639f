// record.go — the implementation object behind an Exception handle.
//
// A record holds one link of a chain. Its nested field owns the next (older)
// link, so a chain is a singly linked list from the latest context to the
// root cause. Links are only ever attached by move, which keeps the list
// acyclic.
package xgxexception

import (
	"fmt"
	"strings"

	"github.com/xgx-io/xgx-exception/internal/pathutil"
	"github.com/xgx-io/xgx-exception/ref"
	"github.com/xgx-io/xgx-exception/typetag"
)

// unsetLine marks a record that was allocated but never configured.
const unsetLine = -1

type record struct {
	tag      typetag.Tag
	message  string
	file     string
	function string
	line     int
	nested   ref.Handle[record]
	set      bool
}

var _ ref.Disposer = (*record)(nil)

// Dispose releases the cause when the last owner lets go of this record.
func (r *record) Dispose() { r.nested.Release() }

// reset puts r back into the freshly allocated state.
func (r *record) reset() {
	r.tag = typetag.Default()
	r.message, r.file, r.function = "", "", ""
	r.line = unsetLine
	r.nested.Release()
	r.set = false
}

// setData overwrites every field and drops any previous cause.
func (r *record) setData(tag typetag.Tag, message, file, function string, line int) {
	r.tag = tag.OrDefault()
	r.message = message
	r.file = pathutil.Shorten(file)
	r.function = function
	r.line = line
	r.nested.Release()
	r.set = true
}

// setDataNested is setData followed by taking ownership of prev.
// prev is invalid afterwards.
func (r *record) setDataNested(tag typetag.Tag, message, file, function string, line int, prev *ref.Handle[record]) {
	if prev != nil && r.reaches(prev) {
		panic(ErrSelfNesting)
	}
	r.setData(tag, message, file, function, line)
	if prev != nil {
		r.nested.MoveFrom(prev)
	}
}

// reaches reports whether r is part of the chain owned by h.
func (r *record) reaches(h *ref.Handle[record]) bool {
	for h.IsValid() {
		cur := h.Get()
		if cur == r {
			return true
		}
		h = &cur.nested
	}
	return false
}

// copyInto makes dst an independent copy of r. dst shares ownership of r's
// cause; the link itself is new.
func (r *record) copyInto(dst *record) {
	dst.tag = r.tag
	dst.message = r.message
	dst.file = r.file
	dst.function = r.function
	dst.line = r.line
	dst.set = r.set
	dst.nested.Assign(&r.nested)
}

// first returns the terminal record of the chain starting at r.
func (r *record) first() *record {
	cur := r
	for cur.nested.IsValid() {
		cur = cur.nested.Get()
	}
	return cur
}

func (r *record) depth() int {
	n := 1
	for cur := r; cur.nested.IsValid(); cur = cur.nested.Get() {
		n++
	}
	return n
}

func (r *record) typeName() string {
	if r.tag.Name != "" {
		return r.tag.Name
	}
	return "{" + r.tag.Format() + "}"
}

// String renders the single line form.
func (r *record) String() string {
	return fmt.Sprintf("%s: %s in %s ['%s' : %d]", r.typeName(), r.message, r.function, r.file, r.line)
}

// stringList renders every record, outermost first.
func (r *record) stringList() []string {
	out := make([]string, 0, 4)
	for cur := r; ; cur = cur.nested.Get() {
		out = append(out, cur.String())
		if !cur.nested.IsValid() {
			return out
		}
	}
}

// stringComplete joins stringList with newlines; line i gets i '>' markers.
func (r *record) stringComplete() string {
	var sb strings.Builder
	for i, line := range r.stringList() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Repeat(">", i))
		sb.WriteString(line)
	}
	return sb.String()
}
