// Package utility implements the Utility message family (UMP message type
// 0x0): No-Op, JR Clock, and JR Timestamp, the three jitter-reduction
// messages a sender may prefix onto a sysex8 or flex-data packet sequence
// to let the receiver compensate for transmission jitter. Utility is,
// along with UMP Stream, the one UMP family with no group nibble.
package utility

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
)

// UMPType is the message-type nibble identifying the Utility family.
const UMPType = 0x0

// Kind enumerates the three Utility message kinds.
type Kind uint8

const (
	NOOP Kind = iota
	JRClock
	JRTimestamp
)

var statusNibbles = [...]uint8{NOOP: 0x0, JRClock: 0x1, JRTimestamp: 0x2}

// Message is a decoded Utility message. Data is the 16-bit sender-clock
// time (JRClock) or timestamp (JRTimestamp), in 1/31250-second units; it
// is zero and unused for NOOP.
type Message struct {
	Kind Kind
	Data uint16
}

// NewNOOP builds a No-Op message.
func NewNOOP() Message { return Message{Kind: NOOP} }

// NewJRClock builds a JR Clock message carrying the sender's current clock
// time in 1/31250-second units.
func NewJRClock(data uint16) Message { return Message{Kind: JRClock, Data: data} }

// NewJRTimestamp builds a JR Timestamp message.
func NewJRTimestamp(data uint16) Message { return Message{Kind: JRTimestamp, Data: data} }

// ToUMP encodes m as a single UMP word.
func (m Message) ToUMP() uint32 {
	w := bits.SetNibble(0, 0, UMPType)
	w = bits.SetNibble(w, 2, statusNibbles[m.Kind])
	w = bits.SetOctet(w, 2, uint8(m.Data>>8))
	w = bits.SetOctet(w, 3, uint8(m.Data))
	return w
}

// FromUMP decodes a single Utility UMP word.
func FromUMP(word uint32) (Message, error) {
	if bits.Nibble(word, 0) != UMPType {
		return Message{}, errs.NewInvalidData(errs.ReasonWrongMessageType)
	}
	status := bits.Nibble(word, 2)
	var kind Kind
	found := false
	for k, s := range statusNibbles {
		if s == status {
			kind, found = Kind(k), true
			break
		}
	}
	if !found {
		return Message{}, errs.NewInvalidData(errs.ReasonBadDiscriminant)
	}
	data := uint16(bits.Octet(word, 2))<<8 | uint16(bits.Octet(word, 3))
	return Message{Kind: kind, Data: data}, nil
}

// FromUMPWords decodes the first word of words, the whole of a Utility
// message.
func FromUMPWords(words []uint32) (Message, error) {
	if len(words) == 0 {
		return Message{}, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	return FromUMP(words[0])
}
