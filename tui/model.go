package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"midiwire/midi"
	"midiwire/theme"
	"midiwire/transport"
	"midiwire/widgets"
)

type Model struct {
	Manager *transport.Manager
	Theme   *theme.Theme

	log      *widgets.MessageLog
	ports    map[string]bool
	paused   bool
	quitting bool
	height   int
}

type MessageMsg transport.Received

type PortEventMsg transport.PortEvent

func NewModel(manager *transport.Manager, th *theme.Theme, maxLines int) Model {
	return Model{
		Manager: manager,
		Theme:   th,
		log:     widgets.NewMessageLog(th, maxLines),
		ports:   make(map[string]bool),
		height:  24,
	}
}

// ListenForMessages waits for the next decoded message. A closed
// channel yields a nil msg, which ends the re-subscription loop.
func ListenForMessages(msgs <-chan transport.Received) tea.Cmd {
	return func() tea.Msg {
		rec, ok := <-msgs
		if !ok {
			return nil
		}
		return MessageMsg(rec)
	}
}

// ListenForPorts waits for the next port event. The manager closes the
// events channel on shutdown; a closed channel yields a nil msg.
func ListenForPorts(events <-chan transport.PortEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return PortEventMsg(ev)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		ListenForMessages(m.Manager.Messages()),
		ListenForPorts(m.Manager.Events()),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "c":
			m.log.Clear()

		case "p", " ":
			m.paused = !m.paused
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height

	case MessageMsg:
		if !m.paused {
			rec := transport.Received(msg)
			m.log.Append(kindFor(rec.Msg), rec.Port, rec.Msg.String())
		}
		return m, ListenForMessages(m.Manager.Messages())

	case PortEventMsg:
		event := transport.PortEvent(msg)
		if event.Type == transport.PortConnected {
			m.ports[event.Port] = true
			m.log.Append(widgets.KindPort, event.Port, "connected")
		} else {
			delete(m.ports, event.Port)
			m.log.Append(widgets.KindPort, event.Port, "disconnected")
		}
		return m, ListenForPorts(m.Manager.Events())
	}

	return m, nil
}

func kindFor(msg midi.Message) widgets.Kind {
	switch msg.(type) {
	case midi.SysEx:
		return widgets.KindSysEx
	case midi.ChannelMessage:
		return widgets.KindNote
	default:
		return widgets.KindMeta
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())

	state := "LIVE"
	if m.paused {
		state = "PAUSED"
	}

	header := headerStyle.Render(fmt.Sprintf("midiwire monitor  %s  ports:%d  messages:%d", state, len(m.ports), m.log.Total()))

	// Leave room for the header, blank lines and help line.
	tail := m.height - 5
	if tail < 1 {
		tail = 1
	}
	logView := m.log.Tail(tail)

	help := dimStyle.Render("p:pause  c:clear  q:quit")

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(logView)
	out.WriteString("\n\n")
	out.WriteString(help)

	return out.String()
}
