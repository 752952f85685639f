package sink

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	xgxexception "github.com/xgx-io/xgx-exception"
)

// Zerolog emits chains as zerolog events at Level. The zero Level is
// Debug; NewZerolog sets Error.
type Zerolog struct {
	Logger zerolog.Logger
	Level  zerolog.Level
}

// NewZerolog returns a sink logging at error level.
func NewZerolog(logger zerolog.Logger) Zerolog {
	return Zerolog{Logger: logger, Level: zerolog.ErrorLevel}
}

func (z Zerolog) Emit(text string) {
	z.Logger.WithLevel(z.Level).Msg(text)
}

// Console builds a human-readable zerolog logger tagged with app.
func Console(out io.Writer, app string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", app).Logger()
}

// LogException writes e as one structured event: the head record's fields
// plus the whole chain as a string array. Invalid exceptions are skipped.
func LogException(logger zerolog.Logger, level zerolog.Level, e *xgxexception.Exception) {
	if !e.IsValid() {
		return
	}
	ev := logger.WithLevel(level).
		Str("tag", e.Tag().Format()).
		Str("kind", e.Tag().Name).
		Str("function", e.Function()).
		Str("file", e.File()).
		Int("line", e.Line()).
		Int("depth", e.Depth())
	if e.HasNested() {
		root := e.First()
		ev = ev.Str("root_kind", root.Tag().Name).Str("root_message", root.Message())
		root.Release()
	}
	ev.Strs("chain", e.StringList()).Msg(e.Message())
}
