// wellknown.go — process-wide well-known tags and their registry.
//
// Intent:
//   - A small fixed set of tags usable before any user code runs.
//   - Declared with composite literals so there is no init ordering to get wrong.
//   - Modules match a received tag against these values by id, never by a
//     language-level type check.
package typetag

import "github.com/google/uuid"

var (
	// Standard is the default kind for records created without an explicit tag.
	Standard = Tag{
		ID:   uuid.UUID{0x4b, 0x1d, 0x6f, 0x2e, 0x9c, 0x3a, 0x47, 0x58, 0x8e, 0x21, 0x5a, 0x7c, 0x0d, 0x93, 0xe6, 0x14},
		Name: "Standard",
	}

	// OutOfMemory marks allocation failures.
	OutOfMemory = Tag{
		ID:   uuid.UUID{0x7e, 0x52, 0x0a, 0xc1, 0x3f, 0x68, 0x4d, 0x0b, 0xa4, 0x97, 0x16, 0xb2, 0xc8, 0x5e, 0x03, 0xf9},
		Name: "OutOfMemory",
	}

	// RuntimeError marks failures detected while running, such as a violated
	// precondition inside a collaborator.
	RuntimeError = Tag{
		ID:   uuid.UUID{0xc3, 0x0f, 0x84, 0x6d, 0x21, 0xb7, 0x4e, 0x9a, 0xb5, 0x6c, 0xe0, 0x4f, 0x19, 0xa2, 0x7d, 0x38},
		Name: "RuntimeError",
	}

	// FileNotFound marks a missing file or directory.
	FileNotFound = Tag{
		ID:   uuid.UUID{0x1a, 0xe9, 0x53, 0xb8, 0x66, 0x04, 0x4c, 0x2f, 0x9d, 0x3e, 0x87, 0x05, 0xfa, 0x6b, 0xc1, 0x92},
		Name: "FileNotFound",
	}
)

// wellKnown is the ordered registry. Unexported so callers cannot mutate it.
var wellKnown = []Tag{Standard, OutOfMemory, RuntimeError, FileNotFound}

// byID provides O(1) lookup by id.
var byID = map[uuid.UUID]Tag{
	Standard.ID:     Standard,
	OutOfMemory.ID:  OutOfMemory,
	RuntimeError.ID: RuntimeError,
	FileNotFound.ID: FileNotFound,
}

// Default returns the tag used when none is given.
func Default() Tag { return Standard }

// WellKnown returns a copy of the well-known tags in a stable order.
func WellKnown() []Tag {
	out := make([]Tag, len(wellKnown))
	copy(out, wellKnown)
	return out
}

// Lookup returns the well-known tag with the given id.
func Lookup(id uuid.UUID) (Tag, bool) {
	t, ok := byID[id]
	return t, ok
}

// IsWellKnown reports whether t's id is registered.
func (t Tag) IsWellKnown() bool {
	_, ok := byID[t.ID]
	return ok
}

// Resolve returns the registered tag for t's id, keeping t unchanged when the
// id is unknown. Useful when a foreign module sent only the id.
func Resolve(t Tag) Tag {
	if known, ok := byID[t.ID]; ok {
		return known
	}
	return t
}
