// Package pathutil shortens source locations recorded on exceptions.
//
// Records keep only the tail of the originating file so rendered chains stay
// compact no matter where the code was built.
package pathutil

import "strings"

// Ellipsis marks a path whose leading segments were dropped.
const Ellipsis = "..."

// keepSegments is the number of trailing path segments Shorten keeps.
const keepSegments = 2

// Normalize converts backslashes to slashes and collapses repeated slashes.
func Normalize(path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	return path
}

// Shorten keeps the last two segments of path, prefixed with Ellipsis when
// anything was dropped. A short absolute path keeps its leading slash.
//
//	/home/ci/src/core/exception.go   -> .../core/exception.go
//	C:\src\core\exception.cpp        -> .../core/exception.cpp
//	core/exception.go                -> core/exception.go
//	/core/exception.go               -> /core/exception.go
func Shorten(path string) string {
	if path == "" {
		return ""
	}
	norm := Normalize(path)
	segs := segments(norm)
	if len(segs) <= keepSegments {
		if strings.HasPrefix(norm, "/") {
			return "/" + strings.Join(segs, "/")
		}
		return strings.Join(segs, "/")
	}
	return Ellipsis + "/" + strings.Join(segs[len(segs)-keepSegments:], "/")
}

// IsShortened reports whether path already went through Shorten and lost
// segments.
func IsShortened(path string) bool {
	return strings.HasPrefix(path, Ellipsis+"/")
}

// FunctionName trims the import path from a fully qualified Go function name
// as reported by the runtime.
//
//	github.com/acme/app/store.(*DB).Open -> store.(*DB).Open
func FunctionName(fn string) string {
	if i := strings.LastIndex(fn, "/"); i >= 0 {
		return fn[i+1:]
	}
	return fn
}

func segments(path string) []string {
	raw := strings.Split(path, "/")
	out := raw[:0]
	for _, s := range raw {
		if s != "" && s != "." {
			out = append(out, s)
		}
	}
	return out
}
