package transport

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	gomidi "gitlab.com/gomidi/midi/v2"

	"midiwire/midi"
)

// PortEvent is emitted when a matching input port appears or goes away.
type PortEvent struct {
	Type PortEventType
	Port string
}

type PortEventType int

const (
	PortConnected PortEventType = iota
	PortDisconnected
)

// Received is a decoded message together with its source port.
type Received struct {
	Port string
	Msg  midi.Message
}

// Manager watches input ports matching a name pattern, decodes their
// traffic fail-soft, and fans the typed messages out on a channel.
// Unsupported traffic (pitch bend, realtime ticks and so on) is
// silently skipped.
type Manager struct {
	pattern  string
	log      zerolog.Logger
	pollRate time.Duration

	mu    sync.RWMutex
	stops map[string]func()

	events chan PortEvent
	msgs   chan Received
}

// NewManager creates a manager for ports matching pattern.
func NewManager(pattern string, log zerolog.Logger) *Manager {
	return &Manager{
		pattern:  pattern,
		log:      log,
		pollRate: time.Second,
		stops:    make(map[string]func()),
		events:   make(chan PortEvent, 16),
		msgs:     make(chan Received, 64),
	}
}

// Events returns the channel of port connect/disconnect events.
func (m *Manager) Events() <-chan PortEvent {
	return m.events
}

// Messages returns the channel of decoded incoming messages.
func (m *Manager) Messages() <-chan Received {
	return m.msgs
}

// OpenPorts returns a snapshot of the currently open port names.
func (m *Manager) OpenPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.stops))
	for name := range m.stops {
		names = append(names, name)
	}
	return names
}

// Run starts the polling loop (blocking - run in goroutine).
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.pollRate)
	defer ticker.Stop()

	// Initial scan
	m.scan()

	for {
		select {
		case <-ctx.Done():
			m.closeAll()
			close(m.events)
			return
		case <-ticker.C:
			m.scan()
		}
	}
}

func (m *Manager) scan() {
	ins, _, err := Ports()
	if err != nil {
		// CoreMIDI is hung - skip this scan.
		m.log.Warn().Err(err).Msg("port scan skipped")
		return
	}

	seen := make(map[string]bool)

	for i, in := range ins {
		name := in.String()
		if !MatchPort(name, m.pattern) {
			continue
		}
		seen[name] = true

		m.mu.RLock()
		_, open := m.stops[name]
		m.mu.RUnlock()
		if open {
			continue
		}

		port := name
		stop, err := gomidi.ListenTo(ins[i], func(msg gomidi.Message, timestampms int32) {
			m.deliver(port, msg)
		})
		if err != nil {
			m.log.Warn().Err(err).Str("port", name).Msg("open input failed")
			continue
		}

		m.mu.Lock()
		m.stops[name] = stop
		m.mu.Unlock()

		m.log.Info().Str("port", name).Msg("port connected")
		m.notify(PortEvent{Type: PortConnected, Port: name})
	}

	// Check for disconnects
	m.mu.Lock()
	var gone []string
	for name := range m.stops {
		if !seen[name] {
			gone = append(gone, name)
		}
	}
	for _, name := range gone {
		m.stops[name]()
		delete(m.stops, name)
	}
	m.mu.Unlock()

	for _, name := range gone {
		m.log.Info().Str("port", name).Msg("port disconnected")
		m.notify(PortEvent{Type: PortDisconnected, Port: name})
	}
}

func (m *Manager) notify(ev PortEvent) {
	select {
	case m.events <- ev:
	default:
		// Drop rather than block the scan loop when nobody drains.
	}
}

func (m *Manager) deliver(port string, msg gomidi.Message) {
	raw, err := midi.ParseRaw(msg)
	if err != nil {
		m.log.Debug().Err(err).Str("port", port).Msg("skipping message")
		return
	}
	decoded, ok := midi.TryDecode(raw)
	if !ok {
		return
	}
	select {
	case m.msgs <- Received{Port: port, Msg: decoded}:
	default:
		// Drop rather than block the driver callback.
	}
}

func (m *Manager) closeAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, stop := range m.stops {
		stop()
	}
	m.stops = make(map[string]func())
}
