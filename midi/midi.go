// Package midi is a bidirectional codec between typed MIDI messages and
// their raw byte encoding: channel-voice messages, the meta events used
// in file representations, and system-exclusive payloads. Decoding and
// encoding are pure functions with no I/O; a platform transport hands
// raw bytes in and takes raw bytes out.
package midi

import "fmt"

// Message is a typed MIDI message. The set of implementations is closed:
// the channel-voice messages, the meta messages, and SysEx.
type Message interface {
	fmt.Stringer

	// Raw returns the wire shape exchanged with a platform transport.
	Raw() Raw

	message()
}

// ChannelMessage is a Message tied to one of the 16 MIDI channels.
type ChannelMessage interface {
	Message
	Channel() uint8
}

// Short-message command codes (status byte upper nibble).
const (
	CmdNoteOff       uint8 = 0x80
	CmdNoteOn        uint8 = 0x90
	CmdControlChange uint8 = 0xB0
	CmdProgramChange uint8 = 0xC0
)

// Meta event type codes.
const (
	metaCopyright      uint8 = 0x02
	metaTrackName      uint8 = 0x03
	metaInstrumentName uint8 = 0x04
	metaLyrics         uint8 = 0x05
	metaMarker         uint8 = 0x06
	metaCuePoint       uint8 = 0x07
	metaEndOfTrack     uint8 = 0x2F
	metaTempo          uint8 = 0x51
	metaSMPTEOffset    uint8 = 0x54
	metaTimeSignature  uint8 = 0x58
	metaKeySignature   uint8 = 0x59
)
