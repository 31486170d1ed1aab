package midi

// Small pure field codecs. Each pair is an exact inverse of the other
// over its valid domain.

// pack24 splits a 24-bit value into big-endian bytes.
func pack24(v uint32) (b0, b1, b2 uint8) {
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// unpack24 rebuilds a 24-bit value from big-endian bytes.
func unpack24(b0, b1, b2 uint8) uint32 {
	return uint32(b0)<<16 | uint32(b1)<<8 | uint32(b2)
}

// pow2Exponent returns the base-2 exponent of v, counting right-shifts
// until the value reaches 1. ok is false when v is not a power of two.
func pow2Exponent(v uint8) (exp uint8, ok bool) {
	if v == 0 {
		return 0, false
	}
	for v > 1 {
		if v&1 != 0 {
			return 0, false
		}
		v >>= 1
		exp++
	}
	return exp, true
}

// SMPTE offset bit layout within the packed 40-bit code. The top byte
// is shared: the 2-bit frame-rate format code sits in bits 38-39 above
// the 6-bit hours field.
const (
	smpteFormatShift    = 38
	smpteHoursShift     = 32
	smpteMinutesShift   = 24
	smpteSecondsShift   = 16
	smpteFramesShift    = 8
	smpteSubframesShift = 0

	smpteHoursMask = 0x3F
)

// packSMPTE assembles the 40-bit SMPTE code. hours must already be
// masked to 6 bits.
func packSMPTE(format Format, hours, minutes, seconds, frames, subframes uint8) uint64 {
	return uint64(format)<<smpteFormatShift |
		uint64(hours&smpteHoursMask)<<smpteHoursShift |
		uint64(minutes)<<smpteMinutesShift |
		uint64(seconds)<<smpteSecondsShift |
		uint64(frames)<<smpteFramesShift |
		uint64(subframes)<<smpteSubframesShift
}

// smpteBytes slices the 40-bit code most-significant byte first.
func smpteBytes(code uint64) [5]uint8 {
	return [5]uint8{
		uint8(code >> smpteHoursShift),
		uint8(code >> smpteMinutesShift),
		uint8(code >> smpteSecondsShift),
		uint8(code >> smpteFramesShift),
		uint8(code >> smpteSubframesShift),
	}
}

// smpteCode packs five payload bytes into the 40-bit code, byte 0 in
// the most-significant position.
func smpteCode(b [5]uint8) uint64 {
	return uint64(b[0])<<smpteHoursShift |
		uint64(b[1])<<smpteMinutesShift |
		uint64(b[2])<<smpteSecondsShift |
		uint64(b[3])<<smpteFramesShift |
		uint64(b[4])<<smpteSubframesShift
}
