package systemcommon

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
)

// ToUMP encodes m as a single UMP word: type nibble, group nibble, status
// byte, then up to two 7-bit data bytes.
func (m Message) ToUMP() uint32 {
	w := bits.SetNibble(0, 0, UMPType)
	w = bits.SetNibble(w, 1, m.Group&0xF)
	w = bits.SetOctet(w, 1, statusBytes[m.Kind])
	if m.Kind.dataByteCount() >= 1 {
		w = bits.SetOctet(w, 2, m.Data1.Into())
	}
	if m.Kind.dataByteCount() >= 2 {
		w = bits.SetOctet(w, 3, m.Data2.Into())
	}
	return w
}

// FromUMP decodes a single System Common / Real-Time UMP word.
func FromUMP(word uint32) (Message, error) {
	if bits.Nibble(word, 0) != UMPType {
		return Message{}, errs.NewInvalidData(errs.ReasonWrongMessageType)
	}
	kind, err := kindFromStatusByte(bits.Octet(word, 1))
	if err != nil {
		return Message{}, err
	}
	m := Message{Kind: kind, Group: bits.Nibble(word, 1)}
	if kind.dataByteCount() >= 1 {
		m.Data1 = bits.NewU7(bits.Octet(word, 2) & 0x7F)
	}
	if kind.dataByteCount() >= 2 {
		m.Data2 = bits.NewU7(bits.Octet(word, 3) & 0x7F)
	}
	return m, nil
}

// FromUMPWords decodes the first word of words, the whole of a System
// Common / Real-Time UMP message.
func FromUMPWords(words []uint32) (Message, error) {
	if len(words) == 0 {
		return Message{}, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	return FromUMP(words[0])
}
