package transport

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"midiwire/midi"
)

// Sender writes typed messages to an output port. Meta messages are a
// file-domain shape and are refused: a live port has no framing for
// them.
type Sender struct {
	port drivers.Out
	send func(gomidi.Message) error
}

// NewSender opens the first output port matching pattern.
func NewSender(pattern string) (*Sender, error) {
	_, outs, err := Ports()
	if err != nil {
		return nil, err
	}
	port := findOut(outs, pattern)
	if port == nil {
		return nil, fmt.Errorf("no output port matching %q", pattern)
	}
	send, err := gomidi.SendTo(port)
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}
	return &Sender{port: port, send: send}, nil
}

// Port returns the name of the open output port.
func (s *Sender) Port() string {
	return s.port.String()
}

// Send encodes and writes one message.
func (s *Sender) Send(m midi.Message) error {
	raw := m.Raw()
	if raw.Kind == midi.RawMeta {
		return fmt.Errorf("cannot send meta message %s to a live port", m)
	}
	return s.send(gomidi.Message(raw.Bytes()))
}

// Close releases the port.
func (s *Sender) Close() error {
	if s.port != nil {
		return s.port.Close()
	}
	return nil
}
