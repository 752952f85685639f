package sink

import (
	"io"

	"github.com/charmbracelet/log"
)

// Charm emits chains through a charmbracelet logger at error level.
type Charm struct {
	Logger *log.Logger
}

// NewCharm builds a charm logger writing to out with the given prefix.
func NewCharm(out io.Writer, prefix string) Charm {
	return Charm{Logger: log.NewWithOptions(out, log.Options{
		Prefix: prefix,
	})}
}

func (c Charm) Emit(text string) {
	c.Logger.Error(text)
}
