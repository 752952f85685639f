package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorMuted     = lipgloss.Color("#6B7280")
	colorError     = lipgloss.Color("#EF4444")
	colorHighlight = lipgloss.Color("#3B82F6")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	headStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	tagStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)
)

// painter applies styles only when color output is on.
type painter struct {
	color bool
}

func (p painter) paint(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// chain renders lines of StringComplete output: the head record stands out,
// depth markers are muted.
func (p painter) chain(complete string) string {
	if !p.color || complete == "" {
		return complete
	}
	lines := strings.Split(complete, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = headStyle.Render(line)
			continue
		}
		body := strings.TrimLeft(line, ">")
		lines[i] = mutedStyle.Render(line[:len(line)-len(body)]) + body
	}
	return strings.Join(lines, "\n")
}
