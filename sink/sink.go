// Package sink hands rendered exception chains to something that can show
// them: a logger, a terminal, a file.
//
// The exception core performs no I/O. Callers pick a Sink and call Report
// at the point where the chain is finally handled.
package sink

import (
	"fmt"
	"io"

	xgxexception "github.com/xgx-io/xgx-exception"
)

// Sink receives one rendered chain per call.
type Sink interface {
	Emit(text string)
}

// Func adapts a plain function to Sink.
type Func func(text string)

func (f Func) Emit(text string) { f(text) }

// Report emits e.StringComplete() to s. It reports false, emitting nothing,
// when e is invalid or s is nil.
func Report(s Sink, e *xgxexception.Exception) bool {
	if s == nil || !e.IsValid() {
		return false
	}
	s.Emit(e.StringComplete())
	return true
}

// Writer writes each chain followed by a newline.
type Writer struct {
	W io.Writer
}

func (w Writer) Emit(text string) {
	// a sink has no caller to return write errors to
	_, _ = fmt.Fprintln(w.W, text)
}
