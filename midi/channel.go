package midi

import "fmt"

// Channel-voice messages. Values are validated by the New* constructors
// and immutable afterwards; the decoder builds them from wire data that
// is 7-bit by construction.

func checkChannel(channel uint8) error {
	if channel > 15 {
		return validationf("channel %d out of range 0-15", channel)
	}
	return nil
}

func checkData(name string, v uint8) error {
	if v > 127 {
		return validationf("%s %d out of range 0-127", name, v)
	}
	return nil
}

// NoteOn starts sounding a pitch on a channel.
type NoteOn struct {
	channel  uint8
	pitch    uint8
	velocity uint8
}

// NewNoteOn validates channel and 7-bit data ranges. Note that a
// velocity of 0 is legal but decodes back as a NoteOff, per the MIDI
// convention.
func NewNoteOn(channel, pitch, velocity uint8) (NoteOn, error) {
	if err := checkChannel(channel); err != nil {
		return NoteOn{}, err
	}
	if err := checkData("pitch", pitch); err != nil {
		return NoteOn{}, err
	}
	if err := checkData("velocity", velocity); err != nil {
		return NoteOn{}, err
	}
	return NoteOn{channel: channel, pitch: pitch, velocity: velocity}, nil
}

func (n NoteOn) Channel() uint8  { return n.channel }
func (n NoteOn) Pitch() uint8    { return n.pitch }
func (n NoteOn) Velocity() uint8 { return n.velocity }

func (n NoteOn) Raw() Raw {
	return Raw{Kind: RawShort, Command: CmdNoteOn, Channel: n.channel, Data1: n.pitch, Data2: n.velocity}
}

func (n NoteOn) String() string {
	return fmt.Sprintf("NoteOn(channel=%d, pitch=%d, velocity=%d)", n.channel, n.pitch, n.velocity)
}

func (NoteOn) message() {}

// NoteOff stops sounding a pitch on a channel.
type NoteOff struct {
	channel  uint8
	pitch    uint8
	velocity uint8
}

func NewNoteOff(channel, pitch, velocity uint8) (NoteOff, error) {
	if err := checkChannel(channel); err != nil {
		return NoteOff{}, err
	}
	if err := checkData("pitch", pitch); err != nil {
		return NoteOff{}, err
	}
	if err := checkData("velocity", velocity); err != nil {
		return NoteOff{}, err
	}
	return NoteOff{channel: channel, pitch: pitch, velocity: velocity}, nil
}

func (n NoteOff) Channel() uint8  { return n.channel }
func (n NoteOff) Pitch() uint8    { return n.pitch }
func (n NoteOff) Velocity() uint8 { return n.velocity }

func (n NoteOff) Raw() Raw {
	return Raw{Kind: RawShort, Command: CmdNoteOff, Channel: n.channel, Data1: n.pitch, Data2: n.velocity}
}

func (n NoteOff) String() string {
	return fmt.Sprintf("NoteOff(channel=%d, pitch=%d, velocity=%d)", n.channel, n.pitch, n.velocity)
}

func (NoteOff) message() {}

// ControlChange sets a controller to a value on a channel.
type ControlChange struct {
	channel    uint8
	controller uint8
	value      uint8
}

func NewControlChange(channel, controller, value uint8) (ControlChange, error) {
	if err := checkChannel(channel); err != nil {
		return ControlChange{}, err
	}
	if err := checkData("controller", controller); err != nil {
		return ControlChange{}, err
	}
	if err := checkData("value", value); err != nil {
		return ControlChange{}, err
	}
	return ControlChange{channel: channel, controller: controller, value: value}, nil
}

func (c ControlChange) Channel() uint8    { return c.channel }
func (c ControlChange) Controller() uint8 { return c.controller }
func (c ControlChange) Value() uint8      { return c.value }

func (c ControlChange) Raw() Raw {
	return Raw{Kind: RawShort, Command: CmdControlChange, Channel: c.channel, Data1: c.controller, Data2: c.value}
}

func (c ControlChange) String() string {
	return fmt.Sprintf("ControlChange(channel=%d, num=%d, value=%d)", c.channel, c.controller, c.value)
}

func (ControlChange) message() {}

// ProgramChange selects a patch on a channel.
type ProgramChange struct {
	channel uint8
	patch   uint8
}

func NewProgramChange(channel, patch uint8) (ProgramChange, error) {
	if err := checkChannel(channel); err != nil {
		return ProgramChange{}, err
	}
	if err := checkData("patch", patch); err != nil {
		return ProgramChange{}, err
	}
	return ProgramChange{channel: channel, patch: patch}, nil
}

func (p ProgramChange) Channel() uint8 { return p.channel }
func (p ProgramChange) Patch() uint8   { return p.patch }

// Raw forces data2 to zero; receivers ignore it for program changes.
func (p ProgramChange) Raw() Raw {
	return Raw{Kind: RawShort, Command: CmdProgramChange, Channel: p.channel, Data1: p.patch}
}

func (p ProgramChange) String() string {
	return fmt.Sprintf("ProgramChange(channel=%d, patch=%d)", p.channel, p.patch)
}

func (ProgramChange) message() {}
