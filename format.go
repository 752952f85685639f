// format.go — fmt.Formatter implementation for Exception.
//
// Behavior:
//
//   %s, %v   → single line of the head record (String()).
//   %+v      → the complete chain (StringComplete()):
//                Standard: open failed in app.run ['.../app/run.go' : 40]
//                >FileNotFound: missing in cfg.Load ['.../cfg/load.go' : 12]
//   %q       → quoted single line.
//
// An invalid handle formats as "invalid exception" for every verb so log lines
// never come out blank.
package xgxexception

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter.
func (e *Exception) Format(s fmt.State, verb rune) {
	if !e.IsValid() {
		// ignore write errors in formatting paths
		_, _ = io.WriteString(s, e.Error())
		return
	}
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.StringComplete())
			return
		}
		_, _ = io.WriteString(s, e.String())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.String())
	default:
		_, _ = io.WriteString(s, e.String())
	}
}
