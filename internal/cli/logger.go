package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/rs/zerolog"

	"github.com/xgx-io/xgx-exception/internal/config"
	"github.com/xgx-io/xgx-exception/sink"
)

const appName = "xgxchain"

// newSink builds the sink `render --log` reports through.
func newSink(c config.Log, out io.Writer) (sink.Sink, error) {
	switch c.Format {
	case config.FormatCharm:
		lvl, err := log.ParseLevel(strings.ToLower(c.Level))
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		s := sink.NewCharm(out, appName)
		s.Logger.SetLevel(lvl)
		return s, nil
	case config.FormatJSON, config.FormatConsole:
		lvl, err := zerolog.ParseLevel(strings.ToLower(c.Level))
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		var logger zerolog.Logger
		if c.Format == config.FormatJSON {
			logger = zerolog.New(out).With().Timestamp().Str("app", appName).Logger()
		} else {
			logger = sink.Console(out, appName)
		}
		return sink.NewZerolog(logger.Level(lvl)), nil
	}
	return nil, fmt.Errorf("%w: log format %q", config.ErrInvalid, c.Format)
}
