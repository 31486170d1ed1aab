package midi

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRawShort(t *testing.T) {
	raw, err := ParseRaw([]byte{0x93, 60, 90})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := Raw{Kind: RawShort, Command: CmdNoteOn, Channel: 3, Data1: 60, Data2: 90}
	if diff := cmp.Diff(want, raw); diff != "" {
		t.Fatalf("mismatch:\n%s", diff)
	}

	// Program changes arrive as two bytes; data2 stays zero.
	raw, err = ParseRaw([]byte{0xC5, 42})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if raw.Command != CmdProgramChange || raw.Data1 != 42 || raw.Data2 != 0 {
		t.Fatalf("unexpected raw: %+v", raw)
	}
}

func TestParseRawMetaAndSysEx(t *testing.T) {
	raw, err := ParseRaw([]byte{0xFF, 0x51, 3, 0x07, 0xA1, 0x20})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := Raw{Kind: RawMeta, Type: 0x51, Payload: []byte{0x07, 0xA1, 0x20}}
	if diff := cmp.Diff(want, raw); diff != "" {
		t.Fatalf("meta mismatch:\n%s", diff)
	}

	raw, err = ParseRaw([]byte{0xF0, 0x7E, 0x00, 0xF7})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want = Raw{Kind: RawSysEx, Payload: []byte{0x7E, 0x00}}
	if diff := cmp.Diff(want, raw); diff != "" {
		t.Fatalf("sysex mismatch:\n%s", diff)
	}
}

func TestParseRawRejects(t *testing.T) {
	malformed := [][]byte{
		{},
		{0xFF, 0x51},             // truncated meta header
		{0xFF, 0x51, 5, 1, 2},    // length byte disagrees
		{0xF0, 0x01, 0x02},       // sysex without trailing F7
		{0x90},                   // short with no data
		{0x90, 1, 2, 3},          // short with too much data
	}
	for _, b := range malformed {
		_, err := ParseRaw(b)
		var merr *MalformedError
		if !errors.As(err, &merr) {
			t.Errorf("% 02X: expected MalformedError, got %v", b, err)
		}
	}

	unsupported := [][]byte{
		{0xF1, 0x00}, // MIDI time code
		{0xF2, 0, 0}, // song position
		{0xF8},       // timing clock
		{0xFA},       // start
		{0xFE},       // active sensing
		{0x40, 0x40}, // data byte first (running status unsupported)
	}
	for _, b := range unsupported {
		_, err := ParseRaw(b)
		var uerr *UnsupportedError
		if !errors.As(err, &uerr) {
			t.Errorf("% 02X: expected UnsupportedError, got %v", b, err)
		}
	}
}

func TestRawBytesRoundTrip(t *testing.T) {
	msgs := []Message{
		must(NewNoteOn(3, 60, 90)),
		must(NewControlChange(2, 7, 100)),
		must(NewTempo(500000)),
		must(NewTimeSignature(6, 8, 24, DefaultThirtySeconds)),
		EndOfTrack{},
		TrackName("lead"),
		SysEx{Data: []byte{0x7E, 0x00, 0x09, 0x01}},
	}
	for _, m := range msgs {
		got, err := DecodeBytes(m.Raw().Bytes())
		if err != nil {
			t.Fatalf("%s: decode bytes failed: %v", m, err)
		}
		if diff := cmp.Diff(m, got, msgCmpOpts...); diff != "" {
			t.Errorf("%s: wire round trip mismatch (-want +got):\n%s", m, diff)
		}
	}
}

func TestNoteOnWireBytes(t *testing.T) {
	b := must(NewNoteOn(3, 60, 90)).Raw().Bytes()
	if len(b) != 3 || b[0] != 0x93 || b[1] != 60 || b[2] != 90 {
		t.Fatalf("unexpected bytes: % 02X", b)
	}
}
