package midi

import "fmt"

// UnsupportedError reports a message whose status or meta type code is
// not modeled by this codec: the explicitly excluded commands (pitch
// bend, aftertouch, system common/realtime) and any unrecognized code.
type UnsupportedError struct {
	Bytes []byte
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported midi message [% 02X]", e.Bytes)
}

// MalformedError reports a message whose type code is modeled but whose
// payload does not match the fixed shape required for that type.
type MalformedError struct {
	Bytes  []byte
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed midi message: %s [% 02X]", e.Reason, e.Bytes)
}

// ValidationError reports a structurally invalid value handed to a
// message constructor, independent of any decoding.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid midi value: " + e.Reason
}

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
