package midi

import "fmt"

// Decode translates a raw platform message into its typed Message. It
// fails with an UnsupportedError for commands and meta types outside
// the modeled set, and a MalformedError for payloads whose shape does
// not match the type code.
func Decode(raw Raw) (Message, error) {
	switch raw.Kind {
	case RawShort:
		return decodeShort(raw)
	case RawMeta:
		return decodeMeta(raw)
	case RawSysEx:
		data := make([]byte, len(raw.Payload))
		copy(data, raw.Payload)
		return SysEx{Data: data}, nil
	}
	return nil, &UnsupportedError{Bytes: raw.Bytes()}
}

// TryDecode is the fail-soft entry point: any decode failure yields
// (nil, false), never an error, so stream scanners can skip messages of
// unknown or future types.
func TryDecode(raw Raw) (Message, bool) {
	m, err := Decode(raw)
	if err != nil {
		return nil, false
	}
	return m, true
}

// DecodeBytes parses wire bytes and decodes them in one step.
func DecodeBytes(b []byte) (Message, error) {
	raw, err := ParseRaw(b)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

func decodeShort(raw Raw) (Message, error) {
	ch := raw.Channel & 0x0F
	d1 := raw.Data1 & 0x7F
	d2 := raw.Data2 & 0x7F

	switch raw.Command {
	case CmdNoteOn:
		if d2 == 0 {
			// Zero-velocity note-on is a note-off by convention.
			return NoteOff{channel: ch, pitch: d1}, nil
		}
		return NoteOn{channel: ch, pitch: d1, velocity: d2}, nil
	case CmdNoteOff:
		return NoteOff{channel: ch, pitch: d1, velocity: d2}, nil
	case CmdControlChange:
		return ControlChange{channel: ch, controller: d1, value: d2}, nil
	case CmdProgramChange:
		// data2 is unused for program changes.
		return ProgramChange{channel: ch, patch: d1}, nil
	}
	return nil, &UnsupportedError{Bytes: raw.Bytes()}
}

func decodeMeta(raw Raw) (Message, error) {
	p := raw.Payload
	if len(p) > maxMetaPayload {
		// A single length byte cannot have framed this.
		return nil, &MalformedError{
			Bytes:  raw.Bytes(),
			Reason: fmt.Sprintf("payload %d bytes exceeds the single-byte length", len(p)),
		}
	}
	wrongLen := func(want int) error {
		return &MalformedError{
			Bytes:  raw.Bytes(),
			Reason: fmt.Sprintf("want %d payload bytes, got %d", want, len(p)),
		}
	}

	switch raw.Type {
	case metaKeySignature:
		if len(p) != 2 {
			return nil, wrongLen(2)
		}
		mode, ok := keyModeFromByte(p[1])
		if !ok {
			return nil, &MalformedError{Bytes: raw.Bytes(), Reason: fmt.Sprintf("key mode id %d out of range 0-1", p[1])}
		}
		return KeySignature{shift: int8(p[0]), mode: mode}, nil

	case metaEndOfTrack:
		if len(p) != 0 {
			return nil, wrongLen(0)
		}
		return EndOfTrack{}, nil

	case metaTimeSignature:
		if len(p) != 4 {
			return nil, wrongLen(4)
		}
		if p[1] > 7 {
			// The literal denominator would not fit in a byte.
			return nil, &MalformedError{Bytes: raw.Bytes(), Reason: fmt.Sprintf("denominator exponent %d too large", p[1])}
		}
		return TimeSignature{
			numerator:         p[0],
			denominator:       1 << p[1],
			clocksPerMetro:    p[2],
			thirtySecondsPerQ: p[3],
		}, nil

	case metaTempo:
		if len(p) != 3 {
			return nil, wrongLen(3)
		}
		return Tempo{microsPerQuarter: unpack24(p[0], p[1], p[2])}, nil

	case metaSMPTEOffset:
		if len(p) != 5 {
			return nil, wrongLen(5)
		}
		return SMPTEOffset{code: smpteCode([5]uint8{p[0], p[1], p[2], p[3], p[4]})}, nil

	case metaCopyright:
		return Copyright(p), nil
	case metaTrackName:
		return TrackName(p), nil
	case metaInstrumentName:
		return InstrumentName(p), nil
	case metaLyrics:
		return Lyrics(p), nil
	case metaMarker:
		return Marker(p), nil
	case metaCuePoint:
		return CuePoint(p), nil
	}

	return nil, &UnsupportedError{Bytes: raw.Bytes()}
}
