// tag.go — 128-bit type tags used to classify exceptions across module boundaries.
//
// Intent:
//   - Identify an exception "kind" by value, never by Go type identity. The code
//     producing a record and the code inspecting it may be built separately, so
//     the only trustworthy identity is the 128-bit id.
//   - The name is informational. Two tags with the same id and different names
//     are equal.
//
// Text form:
//   - Canonical: 8-4-4-2-2-2-2-2-2-2-2 uppercase hex digits, zero padded.
//   - Parse accepts the canonical form, the RFC 4122 form (8-4-4-4-12), braced
//     forms and the bare 32 digit form. See Parse for the exact rule.
package typetag

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrMalformed is returned when text does not hold a valid 128-bit tag.
var ErrMalformed = errors.New("malformed type tag")

// Tag is a value-comparable exception kind.
type Tag struct {
	ID   uuid.UUID
	Name string
}

// digits is the number of hex digits in a tag.
const digits = 32

// boundaries lists the digit offsets where a separator may appear in the
// middle of a tag. They are the group boundaries of the canonical form, which
// is a superset of the RFC 4122 boundaries.
var boundaries = [digits]bool{
	8: true, 12: true, 16: true, 18: true, 20: true,
	22: true, 24: true, 26: true, 28: true, 30: true,
}

// New returns a tag with the given id and name.
func New(id uuid.UUID, name string) Tag {
	return Tag{ID: id, Name: name}
}

// Parse reads a tag from text. Every non-hex character is treated as a
// separator. Separators may surround the digits freely; between digits they
// are only allowed on a group boundary of the canonical form. The text must
// hold exactly 32 hex digits.
//
// The returned tag carries the well-known name when the id is registered.
func Parse(text string) (Tag, error) {
	return ParseNamed(text, "")
}

// ParseNamed is like Parse but sets name on the result. An empty name falls
// back to the well-known name for the id, if any.
func ParseNamed(text, name string) (Tag, error) {
	bare, err := stripSeparators(text)
	if err != nil {
		return Tag{}, err
	}
	id, err := uuid.Parse(bare)
	if err != nil {
		return Tag{}, fmt.Errorf("%w: %q: %v", ErrMalformed, text, err)
	}
	if name == "" {
		if known, ok := Lookup(id); ok {
			name = known.Name
		}
	}
	return Tag{ID: id, Name: name}, nil
}

// MustParse is like ParseNamed but panics on malformed input. Intended for
// package-level declarations of project-specific tags.
func MustParse(text, name string) Tag {
	t, err := ParseNamed(text, name)
	if err != nil {
		panic(err)
	}
	return t
}

func stripSeparators(text string) (string, error) {
	var sb strings.Builder
	sb.Grow(digits)
	n := 0
	pendingSep := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !isHex(c) {
			if n > 0 {
				pendingSep = true
			}
			continue
		}
		if n == digits {
			return "", fmt.Errorf("%w: %q: more than %d hex digits", ErrMalformed, text, digits)
		}
		if pendingSep && !boundaries[n] {
			return "", fmt.Errorf("%w: %q: separator inside group at digit %d", ErrMalformed, text, n)
		}
		pendingSep = false
		sb.WriteByte(c)
		n++
	}
	if n != digits {
		return "", fmt.Errorf("%w: %q: got %d hex digits, want %d", ErrMalformed, text, n, digits)
	}
	return sb.String(), nil
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// Format renders the id in canonical 8-4-4-2-2-2-2-2-2-2-2 uppercase form.
func (t Tag) Format() string {
	var raw [digits]byte
	hex.Encode(raw[:], t.ID[:])
	out := make([]byte, 0, digits+10)
	for i, c := range raw {
		if boundaries[i] {
			out = append(out, '-')
		}
		out = append(out, c)
	}
	return strings.ToUpper(string(out))
}

// String renders "Name {FORMAT}", or just the braced id when unnamed.
func (t Tag) String() string {
	if t.Name == "" {
		return "{" + t.Format() + "}"
	}
	return t.Name + " {" + t.Format() + "}"
}

// Equal reports whether both tags carry the same 128-bit id.
func (t Tag) Equal(other Tag) bool { return t.ID == other.ID }

// IsZero reports whether the id is all zeros. A zero tag never appears on a
// record; constructors substitute Standard.
func (t Tag) IsZero() bool { return t.ID == uuid.Nil }

// OrDefault returns t, or Standard when t is zero.
func (t Tag) OrDefault() Tag {
	if t.IsZero() {
		return Standard
	}
	return t
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.Format()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The name is taken from
// the registry when the id is well known; otherwise it is left empty.
func (t *Tag) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
