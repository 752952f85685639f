package sink

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xgxexception "github.com/xgx-io/xgx-exception"
	"github.com/xgx-io/xgx-exception/typetag"
)

func chain() *xgxexception.Exception {
	s := xgxexception.Site{File: "/src/app/store/open.go", Function: "store.Open", Line: 14}
	e := xgxexception.NewTypedAt(typetag.FileNotFound, s, "journal.db")
	return xgxexception.NestAt(e, xgxexception.Site{File: "/src/app/main.go", Function: "main.run", Line: 40}, "startup failed")
}

func TestReport_EmitsCompleteChain(t *testing.T) {
	t.Parallel()
	var got []string
	e := chain()
	ok := Report(Func(func(text string) { got = append(got, text) }), e)

	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, e.StringComplete(), got[0])
	assert.True(t, e.IsValid(), "reporting does not consume the chain")
}

func TestReport_SkipsInvalid(t *testing.T) {
	t.Parallel()
	called := false
	s := Func(func(string) { called = true })

	assert.False(t, Report(s, nil))
	assert.False(t, Report(s, xgxexception.Empty()))
	assert.False(t, Report(nil, chain()))
	assert.False(t, called)
}

func TestWriter_Emit(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	e := chain()
	Report(Writer{W: &buf}, e)
	assert.Equal(t, e.StringComplete()+"\n", buf.String())
}

func TestZerolog_Emit(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	e := chain()
	Report(NewZerolog(zerolog.New(&buf)), e)

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "error", ev["level"])
	assert.Equal(t, e.StringComplete(), ev["message"])
}

func TestLogException_StructuredFields(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	LogException(zerolog.New(&buf), zerolog.WarnLevel, chain())

	var ev struct {
		Level       string   `json:"level"`
		Message     string   `json:"message"`
		Kind        string   `json:"kind"`
		Tag         string   `json:"tag"`
		Function    string   `json:"function"`
		File        string   `json:"file"`
		Line        int      `json:"line"`
		Depth       int      `json:"depth"`
		RootKind    string   `json:"root_kind"`
		RootMessage string   `json:"root_message"`
		Chain       []string `json:"chain"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "warn", ev.Level)
	assert.Equal(t, "startup failed", ev.Message)
	assert.Equal(t, "Standard", ev.Kind)
	assert.Equal(t, typetag.Standard.Format(), ev.Tag)
	assert.Equal(t, "main.run", ev.Function)
	assert.Equal(t, ".../app/main.go", ev.File)
	assert.Equal(t, 40, ev.Line)
	assert.Equal(t, 2, ev.Depth)
	assert.Equal(t, "FileNotFound", ev.RootKind)
	assert.Equal(t, "journal.db", ev.RootMessage)
	assert.Len(t, ev.Chain, 2)
}

func TestLogException_Invalid(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	LogException(zerolog.New(&buf), zerolog.ErrorLevel, xgxexception.Empty())
	assert.Zero(t, buf.Len())
}

func TestCharm_Emit(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := xgxexception.Site{File: "/src/app/main.go", Function: "main.run", Line: 40}
	e := xgxexception.NewTypedAt(typetag.RuntimeError, s, "bad state")
	Report(NewCharm(&buf, "xgx"), e)

	out := buf.String()
	assert.True(t, strings.Contains(out, "ERRO"), out)
	assert.True(t, strings.Contains(out, "xgx"), out)
	assert.True(t, strings.Contains(out, e.String()), out)
}

func TestConsole_IncludesApp(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := Console(&buf, "xgxchain")
	NewZerolog(logger).Emit("boom")
	assert.Contains(t, buf.String(), "xgxchain")
	assert.Contains(t, buf.String(), "boom")
}
