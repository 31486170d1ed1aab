package midi

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestChannelVoiceConstructorsValidate(t *testing.T) {
	if _, err := NewNoteOn(16, 60, 90); err == nil {
		t.Errorf("expected error for channel 16")
	}
	if _, err := NewNoteOn(3, 128, 90); err == nil {
		t.Errorf("expected error for pitch 128")
	}
	if _, err := NewNoteOff(0, 0, 200); err == nil {
		t.Errorf("expected error for velocity 200")
	}
	if _, err := NewControlChange(2, 130, 0); err == nil {
		t.Errorf("expected error for controller 130")
	}
	if _, err := NewProgramChange(1, 128); err == nil {
		t.Errorf("expected error for patch 128")
	}

	var verr *ValidationError
	_, err := NewNoteOn(16, 60, 90)
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	n, err := NewNoteOn(3, 60, 90)
	if err != nil {
		t.Fatalf("valid note on rejected: %v", err)
	}
	if n.Channel() != 3 || n.Pitch() != 60 || n.Velocity() != 90 {
		t.Fatalf("unexpected fields: %s", n)
	}
}

func TestTempoFromBPM(t *testing.T) {
	tempo, err := TempoFromBPM(120)
	if err != nil {
		t.Fatalf("bpm 120 rejected: %v", err)
	}
	if tempo.MicrosPerQuarter() != 500000 {
		t.Fatalf("expected 500000 us/quarter, got %d", tempo.MicrosPerQuarter())
	}
	if math.Abs(tempo.BPM()-120) > 1e-9 {
		t.Fatalf("expected 120 bpm back, got %v", tempo.BPM())
	}

	// Round trip through bpm stays within rounding tolerance.
	for _, bpm := range []float64{33.3, 90, 128, 174, 200.5} {
		tp, err := TempoFromBPM(bpm)
		if err != nil {
			t.Fatalf("bpm %v rejected: %v", bpm, err)
		}
		if math.Abs(tp.BPM()-bpm) > 0.01 {
			t.Errorf("bpm %v round trip drifted to %v", bpm, tp.BPM())
		}
	}

	if _, err := TempoFromBPM(0); err == nil {
		t.Errorf("expected error for bpm 0")
	}
	if _, err := NewTempo(0x1000000); err == nil {
		t.Errorf("expected error for 25-bit tempo")
	}
}

func TestTimeSignatureEncoding(t *testing.T) {
	ts, err := NewTimeSignature(4, 4, 24, 8)
	if err != nil {
		t.Fatalf("4/4 rejected: %v", err)
	}
	raw := ts.Raw()
	want := []byte{0x04, 0x02, 0x18, 0x08}
	if len(raw.Payload) != 4 {
		t.Fatalf("expected 4 payload bytes, got %d", len(raw.Payload))
	}
	for i := range want {
		if raw.Payload[i] != want[i] {
			t.Fatalf("payload mismatch: got % 02X want % 02X", raw.Payload, want)
		}
	}
}

func TestTimeSignatureRejectsNonPowerOfTwo(t *testing.T) {
	if _, err := NewTimeSignature(3, 3, 24, 8); err == nil {
		t.Fatalf("denominator 3 accepted")
	}
	var verr *ValidationError
	_, err := NewTimeSignature(3, 0, 24, 8)
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for denominator 0, got %v", err)
	}
}

func TestSMPTEOffsetAccessors(t *testing.T) {
	o, err := NewSMPTEOffset(Format25, 1, 2, 3, 4, 5)
	if err != nil {
		t.Fatalf("smpte offset rejected: %v", err)
	}
	if o.Format() != Format25 {
		t.Errorf("format: got %s", o.Format())
	}
	if o.Hours() != 1 || o.Minutes() != 2 || o.Seconds() != 3 || o.Frames() != 4 || o.Subframes() != 5 {
		t.Errorf("unexpected fields: %s", o)
	}

	if _, err := NewSMPTEOffset(Format(4), 0, 0, 0, 0, 0); err == nil {
		t.Errorf("format code 4 accepted")
	}
	if _, err := NewSMPTEOffset(Format24, 64, 0, 0, 0, 0); err == nil {
		t.Errorf("hours 64 accepted")
	}
}

func TestFormatFromFPS(t *testing.T) {
	cases := []struct {
		fps  float64
		want Format
	}{
		{24, Format24},
		{25, Format25},
		{29.97, Format30Drop},
		{30, Format30},
	}
	for _, c := range cases {
		f, err := FormatFromFPS(c.fps)
		if err != nil {
			t.Fatalf("fps %v rejected: %v", c.fps, err)
		}
		if f != c.want {
			t.Errorf("fps %v: got %s want %s", c.fps, f, c.want)
		}
		if f.FPS() != c.fps {
			t.Errorf("%s: FPS() = %v want %v", f, f.FPS(), c.fps)
		}
	}
	if _, err := FormatFromFPS(23.976); err == nil {
		t.Errorf("fps 23.976 accepted")
	}
}

func TestKeySignature(t *testing.T) {
	k, err := NewKeySignature(-3, Minor)
	if err != nil {
		t.Fatalf("key signature rejected: %v", err)
	}
	if k.Shift() != -3 || k.Mode() != Minor {
		t.Fatalf("unexpected fields: %s", k)
	}
	raw := k.Raw()
	if raw.Payload[0] != 0xFD || raw.Payload[1] != 0 {
		t.Fatalf("payload: got % 02X", raw.Payload)
	}
	if _, err := NewKeySignature(0, KeyMode(2)); err == nil {
		t.Errorf("mode id 2 accepted")
	}
}

func TestStringRenderings(t *testing.T) {
	noteOn, _ := NewNoteOn(3, 60, 90)
	cases := []struct {
		msg  Message
		want string
	}{
		{noteOn, "NoteOn(channel=3, pitch=60, velocity=90)"},
		{EndOfTrack{}, "EndOfTrack"},
		{TrackName("piano"), `TrackName("piano")`},
		{Marker("verse"), `Marker("verse")`},
	}
	for _, c := range cases {
		if got := c.msg.String(); got != c.want {
			t.Errorf("String() = %q want %q", got, c.want)
		}
	}
}

func TestTextMessagesRejectOversizedPayload(t *testing.T) {
	long := strings.Repeat("x", 300)
	var verr *ValidationError
	if _, err := NewTrackName(long); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for 300-byte track name, got %v", err)
	}
	if _, err := NewMarker(long); err == nil {
		t.Errorf("300-byte marker accepted")
	}
	if _, err := NewLyrics(long); err == nil {
		t.Errorf("300-byte lyrics accepted")
	}

	// 255 bytes is the largest text a single length byte can frame.
	name, err := NewTrackName(strings.Repeat("y", 255))
	if err != nil {
		t.Fatalf("255-byte track name rejected: %v", err)
	}
	b := name.Raw().Bytes()
	if b[2] != 255 {
		t.Fatalf("length byte: got %d want 255", b[2])
	}
	got, err := DecodeBytes(b)
	if err != nil {
		t.Fatalf("decode bytes failed: %v", err)
	}
	if got != name {
		t.Fatalf("wire round trip mismatch: %s", got)
	}
}

func TestOversizedMetaPayloadFraming(t *testing.T) {
	// A hand-built oversized text bypasses the constructors; Bytes caps
	// the frame at 255 bytes so the length byte stays truthful, and
	// Decode rejects the unframeable payload outright.
	long := TrackName(strings.Repeat("x", 300))
	b := long.Raw().Bytes()
	if len(b) != 3+255 || b[2] != 255 {
		t.Fatalf("capped frame: got %d bytes, length byte %d", len(b), b[2])
	}
	if _, err := DecodeBytes(b); err != nil {
		t.Fatalf("capped frame undecodable: %v", err)
	}

	_, err := Decode(Raw{Kind: RawMeta, Type: metaTrackName, Payload: []byte(long)})
	var merr *MalformedError
	if !errors.As(err, &merr) {
		t.Fatalf("expected MalformedError for oversized payload, got %v", err)
	}
}

func TestSysExStringTruncates(t *testing.T) {
	short := SysEx{Data: []byte{1, 2, 3}}
	if s := short.String(); !strings.Contains(s, "3 bytes") || strings.Contains(s, "...") {
		t.Errorf("short sysex rendering: %q", s)
	}
	long := SysEx{Data: make([]byte, 20)}
	s := long.String()
	if !strings.Contains(s, "...") || !strings.Contains(s, "20 bytes") {
		t.Errorf("long sysex rendering: %q", s)
	}
}
