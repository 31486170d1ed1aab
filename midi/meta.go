package midi

import (
	"fmt"
	"math"
)

// KeyMode is the tonality of a key signature.
type KeyMode uint8

const (
	Minor KeyMode = 0
	Major KeyMode = 1
)

func (m KeyMode) String() string {
	if m == Minor {
		return "Minor"
	}
	return "Major"
}

func keyModeFromByte(b uint8) (KeyMode, bool) {
	if b > 1 {
		return 0, false
	}
	return KeyMode(b), true
}

// KeySignature carries the sharp/flat count (negative for flats) and
// the key mode.
type KeySignature struct {
	shift int8
	mode  KeyMode
}

func NewKeySignature(shift int8, mode KeyMode) (KeySignature, error) {
	if mode > Major {
		return KeySignature{}, validationf("key mode id %d out of range 0-1", uint8(mode))
	}
	return KeySignature{shift: shift, mode: mode}, nil
}

func (k KeySignature) Shift() int8   { return k.shift }
func (k KeySignature) Mode() KeyMode { return k.mode }

func (k KeySignature) Raw() Raw {
	return Raw{Kind: RawMeta, Type: metaKeySignature, Payload: []byte{uint8(k.shift), uint8(k.mode)}}
}

func (k KeySignature) String() string {
	return fmt.Sprintf("KeySignature(shift=%d, mode=%s)", k.shift, k.mode)
}

func (KeySignature) message() {}

// EndOfTrack marks the end of a track. It carries no payload.
type EndOfTrack struct{}

func (EndOfTrack) Raw() Raw {
	return Raw{Kind: RawMeta, Type: metaEndOfTrack}
}

func (EndOfTrack) String() string { return "EndOfTrack" }

func (EndOfTrack) message() {}

// DefaultThirtySeconds is the customary 32nd-notes-per-quarter value
// for a time signature.
const DefaultThirtySeconds uint8 = 32

// TimeSignature holds the literal denominator (4, 8, 16...), which must
// be a power of two; the encoding stores its base-2 exponent.
type TimeSignature struct {
	numerator         uint8
	denominator       uint8
	clocksPerMetro    uint8
	thirtySecondsPerQ uint8
}

func NewTimeSignature(numerator, denominator, clocksPerMetro, thirtySecondsPerQ uint8) (TimeSignature, error) {
	if _, ok := pow2Exponent(denominator); !ok {
		return TimeSignature{}, validationf("time signature denominator %d is not a power of two", denominator)
	}
	return TimeSignature{
		numerator:         numerator,
		denominator:       denominator,
		clocksPerMetro:    clocksPerMetro,
		thirtySecondsPerQ: thirtySecondsPerQ,
	}, nil
}

func (t TimeSignature) Numerator() uint8          { return t.numerator }
func (t TimeSignature) Denominator() uint8        { return t.denominator }
func (t TimeSignature) ClocksPerMetronome() uint8 { return t.clocksPerMetro }
func (t TimeSignature) ThirtySecondsPerQuarter() uint8 {
	return t.thirtySecondsPerQ
}

func (t TimeSignature) Raw() Raw {
	exp, _ := pow2Exponent(t.denominator)
	return Raw{Kind: RawMeta, Type: metaTimeSignature, Payload: []byte{
		t.numerator, exp, t.clocksPerMetro, t.thirtySecondsPerQ,
	}}
}

func (t TimeSignature) String() string {
	return fmt.Sprintf("TimeSignature(num=%d, denom=%d, clocksPerMetro=%d, num32perQ=%d)",
		t.numerator, t.denominator, t.clocksPerMetro, t.thirtySecondsPerQ)
}

func (TimeSignature) message() {}

// Tempo holds the quarter-note duration in microseconds, a 24-bit
// unsigned value on the wire.
type Tempo struct {
	microsPerQuarter uint32
}

func NewTempo(microsPerQuarter uint32) (Tempo, error) {
	if microsPerQuarter > 0xFFFFFF {
		return Tempo{}, validationf("tempo %d does not fit in 24 bits", microsPerQuarter)
	}
	return Tempo{microsPerQuarter: microsPerQuarter}, nil
}

// TempoFromBPM converts beats per minute, rounding to the nearest
// microsecond.
func TempoFromBPM(bpm float64) (Tempo, error) {
	if bpm <= 0 {
		return Tempo{}, validationf("bpm %v must be positive", bpm)
	}
	return NewTempo(uint32(math.Round(60_000_000 / bpm)))
}

func (t Tempo) MicrosPerQuarter() uint32 { return t.microsPerQuarter }

func (t Tempo) BPM() float64 {
	return 60_000_000 / float64(t.microsPerQuarter)
}

func (t Tempo) Raw() Raw {
	b0, b1, b2 := pack24(t.microsPerQuarter)
	return Raw{Kind: RawMeta, Type: metaTempo, Payload: []byte{b0, b1, b2}}
}

func (t Tempo) String() string {
	return fmt.Sprintf("Tempo(microsPerQuarterNote=%d, bpm=%.2f)", t.microsPerQuarter, t.BPM())
}

func (Tempo) message() {}

// Format is the SMPTE frame-rate code, a 2-bit value.
type Format uint8

const (
	Format24     Format = 0
	Format25     Format = 1
	Format30Drop Format = 2 // 29.97 fps
	Format30     Format = 3
)

// FormatFromFPS maps a frame rate to its code. Only the four rates of
// the MIDI spec are supported.
func FormatFromFPS(fps float64) (Format, error) {
	switch fps {
	case 24:
		return Format24, nil
	case 25:
		return Format25, nil
	case 29.97:
		return Format30Drop, nil
	case 30:
		return Format30, nil
	}
	return 0, validationf("unsupported SMPTE frame rate %v", fps)
}

func (f Format) FPS() float64 {
	switch f {
	case Format24:
		return 24
	case Format25:
		return 25
	case Format30Drop:
		return 29.97
	default:
		return 30
	}
}

func (f Format) String() string {
	switch f {
	case Format24:
		return "24fps"
	case Format25:
		return "25fps"
	case Format30Drop:
		return "30fps(drop)"
	default:
		return "30fps"
	}
}

// SMPTEOffset anchors a track to a timecode. It stores the packed
// 40-bit code; the accessors slice byte-aligned fields out of it,
// except the format code and hours which share the top byte.
type SMPTEOffset struct {
	code uint64
}

func NewSMPTEOffset(format Format, hours, minutes, seconds, frames, subframes uint8) (SMPTEOffset, error) {
	if format > Format30 {
		return SMPTEOffset{}, validationf("SMPTE format code %d out of range 0-3", uint8(format))
	}
	if hours > smpteHoursMask {
		return SMPTEOffset{}, validationf("SMPTE hours %d out of range 0-63", hours)
	}
	return SMPTEOffset{code: packSMPTE(format, hours, minutes, seconds, frames, subframes)}, nil
}

func (o SMPTEOffset) Format() Format {
	return Format(o.code >> smpteFormatShift & 0x3)
}

func (o SMPTEOffset) Hours() uint8     { return uint8(o.code>>smpteHoursShift) & smpteHoursMask }
func (o SMPTEOffset) Minutes() uint8   { return uint8(o.code >> smpteMinutesShift) }
func (o SMPTEOffset) Seconds() uint8   { return uint8(o.code >> smpteSecondsShift) }
func (o SMPTEOffset) Frames() uint8    { return uint8(o.code >> smpteFramesShift) }
func (o SMPTEOffset) Subframes() uint8 { return uint8(o.code >> smpteSubframesShift) }

func (o SMPTEOffset) Raw() Raw {
	b := smpteBytes(o.code)
	return Raw{Kind: RawMeta, Type: metaSMPTEOffset, Payload: b[:]}
}

func (o SMPTEOffset) String() string {
	return fmt.Sprintf("SMPTEOffset(fps=%s, hours=%d, minutes=%d, seconds=%d, frames=%d, subframes=%d)",
		o.Format(), o.Hours(), o.Minutes(), o.Seconds(), o.Frames(), o.Subframes())
}

func (SMPTEOffset) message() {}

// The six text meta messages share their encoding (UTF-8 bytes, no
// terminator); only the type code differs. The New* constructors
// reject text longer than 255 bytes, the most a single meta length
// byte can frame.

func checkText(s string) error {
	if len(s) > maxMetaPayload {
		return validationf("text payload %d bytes exceeds %d", len(s), maxMetaPayload)
	}
	return nil
}

func NewCopyright(s string) (Copyright, error) {
	if err := checkText(s); err != nil {
		return "", err
	}
	return Copyright(s), nil
}

func NewTrackName(s string) (TrackName, error) {
	if err := checkText(s); err != nil {
		return "", err
	}
	return TrackName(s), nil
}

func NewInstrumentName(s string) (InstrumentName, error) {
	if err := checkText(s); err != nil {
		return "", err
	}
	return InstrumentName(s), nil
}

func NewLyrics(s string) (Lyrics, error) {
	if err := checkText(s); err != nil {
		return "", err
	}
	return Lyrics(s), nil
}

func NewMarker(s string) (Marker, error) {
	if err := checkText(s); err != nil {
		return "", err
	}
	return Marker(s), nil
}

func NewCuePoint(s string) (CuePoint, error) {
	if err := checkText(s); err != nil {
		return "", err
	}
	return CuePoint(s), nil
}

type Copyright string

func (t Copyright) Raw() Raw       { return textRaw(metaCopyright, string(t)) }
func (t Copyright) String() string { return fmt.Sprintf("Copyright(%q)", string(t)) }
func (Copyright) message()         {}

type TrackName string

func (t TrackName) Raw() Raw       { return textRaw(metaTrackName, string(t)) }
func (t TrackName) String() string { return fmt.Sprintf("TrackName(%q)", string(t)) }
func (TrackName) message()         {}

type InstrumentName string

func (t InstrumentName) Raw() Raw       { return textRaw(metaInstrumentName, string(t)) }
func (t InstrumentName) String() string { return fmt.Sprintf("InstrumentName(%q)", string(t)) }
func (InstrumentName) message()         {}

type Lyrics string

func (t Lyrics) Raw() Raw       { return textRaw(metaLyrics, string(t)) }
func (t Lyrics) String() string { return fmt.Sprintf("Lyrics(%q)", string(t)) }
func (Lyrics) message()         {}

type Marker string

func (t Marker) Raw() Raw       { return textRaw(metaMarker, string(t)) }
func (t Marker) String() string { return fmt.Sprintf("Marker(%q)", string(t)) }
func (Marker) message()         {}

type CuePoint string

func (t CuePoint) Raw() Raw       { return textRaw(metaCuePoint, string(t)) }
func (t CuePoint) String() string { return fmt.Sprintf("CuePoint(%q)", string(t)) }
func (CuePoint) message()         {}

func textRaw(typ uint8, text string) Raw {
	return Raw{Kind: RawMeta, Type: typ, Payload: []byte(text)}
}
