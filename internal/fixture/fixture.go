// Package fixture reads and writes exception chains described in TOML.
//
//	[[frame]]
//	tag = "RuntimeError"          # well-known name or a tag id
//	message = "step failed"
//	file = "/src/app/run.go"
//	function = "app.run"
//	line = 30
//
//	[[frame]]                     # the cause of the frame above
//	tag = "00112233-4455-6677-88-99-AA-BB-CC-DD-EE-FF"
//	name = "CodecError"
//	message = "bad header"
//
// Frames are listed outermost first. Unknown keys are rejected so typos do
// not silently produce a different chain.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	xgxexception "github.com/xgx-io/xgx-exception"
	"github.com/xgx-io/xgx-exception/interop"
	"github.com/xgx-io/xgx-exception/typetag"
)

// ErrInvalid reports a fixture that decodes but cannot describe a chain.
var ErrInvalid = errors.New("invalid fixture")

// File is the decoded form of a fixture.
type File struct {
	Frames []Frame `toml:"frame"`
}

type Frame struct {
	Tag      string `toml:"tag"`
	Name     string `toml:"name,omitempty"`
	Message  string `toml:"message"`
	File     string `toml:"file,omitempty"`
	Function string `toml:"function,omitempty"`
	Line     *int   `toml:"line,omitempty"`
}

// Load decodes the fixture at path.
func Load(path string) (File, error) {
	var f File
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, fmt.Errorf("load fixture: %w", err)
	}
	if err := checkUndecoded(meta); err != nil {
		return File{}, fmt.Errorf("load fixture %s: %w", path, err)
	}
	return f, nil
}

// Decode reads a fixture from r.
func Decode(r io.Reader) (File, error) {
	var f File
	meta, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return File{}, fmt.Errorf("decode fixture: %w", err)
	}
	if err := checkUndecoded(meta); err != nil {
		return File{}, err
	}
	return f, nil
}

func checkUndecoded(meta toml.MetaData) error {
	keys := meta.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.String())
	}
	return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(names, ", "))
}

// Entries resolves every frame, outermost first.
func (f File) Entries() ([]interop.Entry, error) {
	if len(f.Frames) == 0 {
		return nil, fmt.Errorf("%w: no frames", ErrInvalid)
	}
	out := make([]interop.Entry, 0, len(f.Frames))
	for i, fr := range f.Frames {
		tag, err := resolveTag(fr.Tag, fr.Name)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		line := -1
		if fr.Line != nil {
			line = *fr.Line
		}
		out = append(out, interop.Entry{
			Tag:      tag,
			Message:  fr.Message,
			File:     fr.File,
			Function: fr.Function,
			Line:     line,
		})
	}
	return out, nil
}

// Build turns the fixture into an exception chain.
func (f File) Build() (*xgxexception.Exception, error) {
	entries, err := f.Entries()
	if err != nil {
		return nil, err
	}
	return interop.Build(entries), nil
}

// FromException describes e as a fixture. An invalid e yields an empty File.
func FromException(e *xgxexception.Exception) File {
	entries := interop.Flatten(e)
	f := File{Frames: make([]Frame, 0, len(entries))}
	for _, en := range entries {
		fr := Frame{
			Message:  en.Message,
			File:     en.File,
			Function: en.Function,
		}
		if en.Tag.IsWellKnown() {
			fr.Tag = en.Tag.Name
		} else {
			fr.Tag = en.Tag.Format()
			fr.Name = en.Tag.Name
		}
		if en.Line >= 0 {
			line := en.Line
			fr.Line = &line
		}
		f.Frames = append(f.Frames, fr)
	}
	return f
}

// Encode writes f as TOML.
func (f File) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	return nil
}

// resolveTag accepts a well-known name or any form typetag.Parse accepts.
// An empty tag means Standard.
func resolveTag(text, name string) (typetag.Tag, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return typetag.Default(), nil
	}
	for _, t := range typetag.WellKnown() {
		if strings.EqualFold(t.Name, text) {
			return t, nil
		}
	}
	return typetag.ParseNamed(text, name)
}
