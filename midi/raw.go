package midi

import "fmt"

// RawKind discriminates the three wire shapes a transport exchanges.
type RawKind uint8

const (
	RawShort RawKind = iota
	RawMeta
	RawSysEx
)

// maxMetaPayload is the largest payload the single meta length byte
// can frame.
const maxMetaPayload = 255

// Raw is a platform MIDI message before typed decoding: a channel-voice
// short message, a meta event, or a sysex payload.
type Raw struct {
	Kind    RawKind
	Command uint8 // short: status upper nibble (CmdNoteOn etc.)
	Channel uint8 // short: status lower nibble
	Data1   uint8
	Data2   uint8
	Type    uint8  // meta: event type byte
	Payload []byte // meta and sysex
}

// Bytes renders the message as wire bytes: status plus data bytes for
// shorts, FF/type/length framing for meta events, F0..F7 for sysex.
// Meta payloads longer than 255 bytes cannot be framed and are capped
// so the length byte always agrees with the payload; the typed
// constructors reject such payloads before they get here.
func (r Raw) Bytes() []byte {
	switch r.Kind {
	case RawMeta:
		p := r.Payload
		if len(p) > maxMetaPayload {
			p = p[:maxMetaPayload]
		}
		b := make([]byte, 0, len(p)+3)
		b = append(b, 0xFF, r.Type, uint8(len(p)))
		return append(b, p...)
	case RawSysEx:
		b := make([]byte, 0, len(r.Payload)+2)
		b = append(b, 0xF0)
		b = append(b, r.Payload...)
		return append(b, 0xF7)
	default:
		return []byte{r.Command | r.Channel&0x0F, r.Data1, r.Data2}
	}
}

func (r Raw) String() string {
	return fmt.Sprintf("Raw(kind=%d, [% 02X])", r.Kind, r.Bytes())
}

// ParseRaw splits wire bytes into the discriminated Raw shape. Meta
// events use a single-byte length here; sysex must carry its trailing
// F7. System common and realtime status bytes are not modeled and come
// back as an UnsupportedError.
func ParseRaw(b []byte) (Raw, error) {
	if len(b) == 0 {
		return Raw{}, &MalformedError{Bytes: b, Reason: "empty message"}
	}
	switch {
	case b[0] == 0xFF:
		if len(b) < 3 {
			return Raw{}, &MalformedError{Bytes: b, Reason: "truncated meta event"}
		}
		if int(b[2]) != len(b)-3 {
			return Raw{}, &MalformedError{Bytes: b, Reason: "meta length mismatch"}
		}
		payload := make([]byte, len(b)-3)
		copy(payload, b[3:])
		return Raw{Kind: RawMeta, Type: b[1], Payload: payload}, nil

	case b[0] == 0xF0:
		if len(b) < 2 || b[len(b)-1] != 0xF7 {
			return Raw{}, &MalformedError{Bytes: b, Reason: "sysex missing trailing F7"}
		}
		payload := make([]byte, len(b)-2)
		copy(payload, b[1:len(b)-1])
		return Raw{Kind: RawSysEx, Payload: payload}, nil

	case b[0] >= 0xF1:
		// System common and realtime traffic.
		return Raw{}, &UnsupportedError{Bytes: b}

	case b[0]&0x80 != 0:
		if len(b) < 2 || len(b) > 3 {
			return Raw{}, &MalformedError{Bytes: b, Reason: "bad short message length"}
		}
		r := Raw{Kind: RawShort, Command: b[0] & 0xF0, Channel: b[0] & 0x0F, Data1: b[1]}
		if len(b) == 3 {
			r.Data2 = b[2]
		}
		return r, nil

	default:
		// Data byte without a status byte (running status is out of scope).
		return Raw{}, &UnsupportedError{Bytes: b}
	}
}
