package midi

import "fmt"

// SysEx holds a system-exclusive payload, excluding the F0/F7 framing
// which belongs to the transport layer. The bytes are opaque to this
// codec.
type SysEx struct {
	Data []byte
}

func (s SysEx) Raw() Raw {
	payload := make([]byte, len(s.Data))
	copy(payload, s.Data)
	return Raw{Kind: RawSysEx, Payload: payload}
}

// String shows at most the first 8 payload bytes.
func (s SysEx) String() string {
	if len(s.Data) <= 8 {
		return fmt.Sprintf("SysEx([% 02X], %d bytes)", s.Data, len(s.Data))
	}
	return fmt.Sprintf("SysEx([% 02X ...], %d bytes)", s.Data[:8], len(s.Data))
}

func (SysEx) message() {}
