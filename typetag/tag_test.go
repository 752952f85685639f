package typetag

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Canonical(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "4B1D6F2E-9C3A-4758-8E-21-5A-7C-0D-93-E6-14", Standard.Format())

	zeroPadded := Tag{ID: uuid.UUID{0x00, 0x00, 0x00, 0x01, 0x00, 0x02, 0x00, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b}}
	assert.Equal(t, "00000001-0002-0003-04-05-06-07-08-09-0A-0B", zeroPadded.Format())
}

func TestParse_RoundTripWellKnown(t *testing.T) {
	t.Parallel()
	for _, tag := range WellKnown() {
		t.Run(tag.Name, func(t *testing.T) {
			got, err := Parse(tag.Format())
			require.NoError(t, err)
			assert.True(t, got.Equal(tag))
			assert.Equal(t, tag, got, "well-known name is restored from the registry")
		})
	}
}

func TestParse_AcceptedForms(t *testing.T) {
	t.Parallel()
	want := Standard.ID
	tests := []struct {
		name string
		text string
	}{
		{name: "canonical", text: "4B1D6F2E-9C3A-4758-8E-21-5A-7C-0D-93-E6-14"},
		{name: "lowercase canonical", text: "4b1d6f2e-9c3a-4758-8e-21-5a-7c-0d-93-e6-14"},
		{name: "rfc 4122", text: "4b1d6f2e-9c3a-4758-8e21-5a7c0d93e614"},
		{name: "braced", text: "{4B1D6F2E-9C3A-4758-8E21-5A7C0D93E614}"},
		{name: "bare", text: "4B1D6F2E9C3A47588E215A7C0D93E614"},
		{name: "8-4-4-2-2-6 split further", text: "4B1D6F2E-9C3A-4758-8E-21-5A7C-0D93E614"},
		{name: "surrounding whitespace", text: "  4B1D6F2E-9C3A-4758-8E21-5A7C0D93E614\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, want, got.ID)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "too few digits", text: "4B1D6F2E-9C3A-4758-8E21-5A7C0D93E6"},
		{name: "too many digits", text: "4B1D6F2E-9C3A-4758-8E21-5A7C0D93E61400"},
		{name: "separator inside first group", text: "4B1D-6F2E-9C3A-4758-8E21-5A7C0D93E614"},
		{name: "odd split in tail", text: "4B1D6F2E-9C3A-4758-8E2-15A7C0D93E614"},
		{name: "garbage between digits", text: "4B1D6F2Ezz9C3A-4758-8E21-5A7C0D93E6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed), "err = %v", err)
		})
	}
}

func TestEqual_IgnoresName(t *testing.T) {
	t.Parallel()
	renamed := New(OutOfMemory.ID, "oom-from-elsewhere")
	assert.True(t, renamed.Equal(OutOfMemory))
	assert.False(t, renamed.Equal(Standard))
}

func TestParseNamed_KeepsExplicitName(t *testing.T) {
	t.Parallel()
	got, err := ParseNamed(RuntimeError.Format(), "Custom")
	require.NoError(t, err)
	assert.Equal(t, "Custom", got.Name)
	assert.True(t, got.Equal(RuntimeError))
}

func TestParse_UnknownIDHasNoName(t *testing.T) {
	t.Parallel()
	got, err := Parse("00112233-4455-6677-88-99-AA-BB-CC-DD-EE-FF")
	require.NoError(t, err)
	assert.Empty(t, got.Name)
	assert.False(t, got.IsWellKnown())
	assert.Equal(t, "{00112233-4455-6677-88-99-AA-BB-CC-DD-EE-FF}", got.String())
}

func TestMustParse_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { MustParse("nope", "x") })
	assert.NotPanics(t, func() { MustParse(FileNotFound.Format(), "x") })
}

func TestDefault_IsStandardNotZero(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Standard, Default())
	assert.False(t, Default().IsZero())

	var zero Tag
	assert.True(t, zero.IsZero())
	assert.Equal(t, Standard, zero.OrDefault())
	assert.Equal(t, FileNotFound, FileNotFound.OrDefault())
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	all := WellKnown()
	require.Len(t, all, 4)
	assert.Equal(t, []Tag{Standard, OutOfMemory, RuntimeError, FileNotFound}, all)

	all[0] = Tag{}
	assert.Equal(t, Standard, WellKnown()[0], "WellKnown must return a copy")

	got, ok := Lookup(FileNotFound.ID)
	require.True(t, ok)
	assert.Equal(t, "FileNotFound", got.Name)

	assert.Equal(t, OutOfMemory, Resolve(Tag{ID: OutOfMemory.ID}))
	foreign := New(uuid.UUID{1}, "Foreign")
	assert.Equal(t, foreign, Resolve(foreign))
}

func TestTextMarshalling(t *testing.T) {
	t.Parallel()
	b, err := RuntimeError.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, RuntimeError.Format(), string(b))

	var got Tag
	require.NoError(t, got.UnmarshalText(b))
	assert.Equal(t, RuntimeError, got)

	assert.ErrorIs(t, got.UnmarshalText([]byte("xyz")), ErrMalformed)
}

func TestWellKnown_DistinctIDs(t *testing.T) {
	t.Parallel()
	seen := map[uuid.UUID]string{}
	for _, tag := range WellKnown() {
		prev, dup := seen[tag.ID]
		require.False(t, dup, "%s shares its id with %s", tag.Name, prev)
		seen[tag.ID] = tag.Name
	}
}
