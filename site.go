// site.go — capture of the source location that raises an exception.
//
// Design goals:
//   - Accuracy: use runtime.Callers + runtime.CallersFrames so inlined callers
//     resolve to the right function.
//   - One frame only: a record keeps file, function and line of the raise site,
//     never a full stack.
//
// References:
//   - runtime.Callers skip semantics (0 = Callers, 1 = its caller)
//   - Prefer CallersFrames over FuncForPC for inlined frames
package xgxexception

import (
	"runtime"

	"github.com/xgx-io/xgx-exception/internal/pathutil"
)

// Site is the source location recorded on an exception. Function is the
// package-qualified name without the import path (pkg.Func, pkg.(*T).Method).
type Site struct {
	File     string
	Function string
	Line     int
}

// UnknownSite is used when the runtime cannot resolve a caller.
var UnknownSite = Site{Function: "unknown", Line: unsetLine}

// Here returns the site of its caller.
func Here() Site { return Caller(1) }

// Caller returns the site skip frames above its caller. Caller(0) is the
// function calling Caller.
//
// Skip accounting: +1 for runtime.Callers itself and +1 for Caller.
func Caller(skip int) Site {
	var pc [1]uintptr
	if runtime.Callers(skip+2, pc[:]) == 0 {
		return UnknownSite
	}
	fr, _ := runtime.CallersFrames(pc[:]).Next()
	if fr.Function == "" && fr.File == "" {
		return UnknownSite
	}
	return Site{
		File:     fr.File,
		Function: pathutil.FunctionName(fr.Function),
		Line:     fr.Line,
	}
}

// IsKnown reports whether s points at real source.
func (s Site) IsKnown() bool { return s.File != "" && s.Line > 0 }
