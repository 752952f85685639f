// doc.go — package documentation for xgx-exception
//
// Package xgxexception provides chained exception records behind an opaque,
// reference-counted handle. An *Exception carries a 128-bit type tag, a
// message and the source location that raised it, plus an optional nested
// cause. Chains grow outward: each catch site that adds context builds a NEW
// exception that takes ownership of the one it caught.
//
// It is designed to be:
//   - Portable across build boundaries (kinds are typetag.Tag values, not Go types)
//   - Interoperable with the stdlib (error, errors.Is/As/Unwrap, fmt.Formatter)
//   - Policy-free (no logging, retry or transport rules in core)
//
// # Building a chain
//
//	func load(path string) *xgxexception.Exception {
//		if _, err := os.Stat(path); err != nil {
//			return xgxexception.NewTyped(typetag.FileNotFound, "config missing")
//		}
//		return nil
//	}
//
//	func start() error {
//		if ex := load("app.toml"); ex != nil {
//			return xgxexception.Wrap(ex, "startup failed") // ex is invalid afterwards
//		}
//		return nil
//	}
//
// Wrap, Nest* and SetDataNested MOVE the previous exception into the new one.
// The moved-from value reports IsValid() == false and must not be read again.
//
// # Reading a chain
//
//	+--------------------+------------------------------------------------+
//	| Operation          | Result                                         |
//	+--------------------+------------------------------------------------+
//	| HasNested()        | whether a cause is attached                    |
//	| Nested()           | independent copy of the cause (nil if none)    |
//	| First()            | independent copy of the root cause             |
//	| String()           | "<Type>: <msg> in <func> ['<file>' : <line>]"  |
//	| StringList()       | one line per record, outermost first           |
//	| StringComplete()   | lines joined by "\n", line i prefixed by i '>' |
//	+--------------------+------------------------------------------------+
//
// Copies returned by Nested and First are independent: releasing one never
// affects the original chain or another copy. Walking a chain by repeated
// Nested() calls terminates because HasNested() eventually reports false.
//
// # Formatting
//
//   - `%v`, `%s`   → single line (String)
//   - `%+v`        → full chain (StringComplete)
//   - `%q`         → quoted single line
//
// # Ownership and concurrency
//
// Handles are single-owner values. Owner counts are not synchronised: do not
// Clone, Move or Release exceptions sharing a record from several goroutines.
// To hand a chain to another goroutine, pass it by Move.
//
// # Foreign errors
//
// FromError converts any Go error chain into an exception chain. Predicates
// (TagOf, HasTag, IsFileNotFound, …) accept any error and look through both.
package xgxexception
