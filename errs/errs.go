// Package errs defines the two error families every constructor, setter,
// and validator in this module returns: a structural/semantic failure
// (InvalidData) and a fixed-capacity exhaustion (BufferOverflow). See spec
// section 7.
package errs

// InvalidData reports that a buffer does not describe a well-formed
// message of the requested kind. Reason is one of a small closed set:
// inconsistent groups, expected Begin/Continue/End/Complete, incorrect
// message type, incorrect status/bank, invalid packet size, invalid number
// of payload bytes, inconsistent stream id, slice too short, bad
// discriminant for an enum-typed field.
type InvalidData struct {
	Reason string
}

func (e InvalidData) Error() string { return "midi2: invalid data: " + e.Reason }

// NewInvalidData builds an InvalidData error with the given reason.
func NewInvalidData(reason string) error { return InvalidData{Reason: reason} }

// BufferOverflow reports that a fallible resize against a fixed-capacity
// buffer could not be satisfied. Only try-variants return this; their
// infallible equivalents panic on allocator failure instead.
type BufferOverflow struct{}

func (BufferOverflow) Error() string { return "midi2: buffer overflow" }

// ErrBufferOverflow is the canonical BufferOverflow value, suitable for
// errors.Is comparisons.
var ErrBufferOverflow error = BufferOverflow{}

// The closed set of InvalidData reasons used across the module.
const (
	ReasonSliceTooShort       = "slice too short"
	ReasonInconsistentGroups  = "inconsistent groups across packet sequence"
	ReasonInconsistentStream  = "inconsistent stream id across packet sequence"
	ReasonExpectedComplete    = "expected Complete status, got multi-packet sequence"
	ReasonExpectedBegin       = "expected Start or Complete status at sequence head"
	ReasonExpectedContinue    = "expected Continue or End status mid-sequence"
	ReasonExpectedEnd         = "sequence did not terminate with End status"
	ReasonWrongMessageType    = "incorrect message type"
	ReasonWrongStatus         = "incorrect status code"
	ReasonWrongBank           = "incorrect bank code"
	ReasonInvalidPacketSize   = "invalid packet payload-size field"
	ReasonInvalidPayloadCount = "invalid number of payload bytes"
	ReasonBadDiscriminant     = "unrecognised discriminant"
	ReasonNoBeginByte         = "sysex byte stream must begin 0xF0"
	ReasonNoEndByte           = "sysex byte stream must end 0xF7"
	ReasonNotSevenBit         = "sysex byte stream contains a byte with bit 7 set"
)
