package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"midiwire/theme"
)

// Kind selects the styling of a log line.
type Kind int

const (
	KindNote Kind = iota
	KindMeta
	KindSysEx
	KindPort
)

type line struct {
	kind Kind
	port string
	text string
}

// MessageLog is a fixed-size scrollback of rendered messages, newest
// last. Appending past the cap drops the oldest line.
type MessageLog struct {
	theme *theme.Theme
	lines []line
	max   int
	count int
}

// NewMessageLog creates a log keeping at most max lines.
func NewMessageLog(th *theme.Theme, max int) *MessageLog {
	if max < 1 {
		max = 1
	}
	return &MessageLog{theme: th, max: max}
}

// Append adds a line, evicting the oldest when full.
func (l *MessageLog) Append(kind Kind, port, text string) {
	l.lines = append(l.lines, line{kind: kind, port: port, text: text})
	if len(l.lines) > l.max {
		l.lines = l.lines[len(l.lines)-l.max:]
	}
	l.count++
}

// Clear drops the scrollback but keeps the total count.
func (l *MessageLog) Clear() {
	l.lines = nil
}

// Len returns the number of retained lines.
func (l *MessageLog) Len() int {
	return len(l.lines)
}

// Total returns the number of lines ever appended.
func (l *MessageLog) Total() int {
	return l.count
}

// Tail renders the newest n lines.
func (l *MessageLog) Tail(n int) string {
	if n > len(l.lines) {
		n = len(l.lines)
	}
	var out strings.Builder
	for i := len(l.lines) - n; i < len(l.lines); i++ {
		if out.Len() > 0 {
			out.WriteString("\n")
		}
		out.WriteString(l.render(l.lines[i]))
	}
	return out.String()
}

// View renders the whole scrollback.
func (l *MessageLog) View() string {
	return l.Tail(len(l.lines))
}

func (l *MessageLog) render(ln line) string {
	symbol, color := l.style(ln.kind)
	mark := lipgloss.NewStyle().Foreground(color).Render(string(symbol))
	portStyle := lipgloss.NewStyle().Foreground(l.theme.Muted())
	text := lipgloss.NewStyle().Foreground(l.theme.FG()).Render(ln.text)
	return fmt.Sprintf("%s %s %s", mark, portStyle.Render(fmt.Sprintf("%-24s", ln.port)), text)
}

func (l *MessageLog) style(kind Kind) (rune, lipgloss.Color) {
	switch kind {
	case KindMeta:
		return l.theme.Symbols.Meta, l.theme.Meta()
	case KindSysEx:
		return l.theme.Symbols.SysEx, l.theme.SysEx()
	case KindPort:
		return l.theme.Symbols.Port, l.theme.Warning()
	default:
		return l.theme.Symbols.Note, l.theme.Note()
	}
}
