package channelvoice1

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/property"
)

const umpType = 0x2

// ToUMP encodes m as a single UMP word: type=0x2, group, status, channel,
// then Data1/Data2 as the two trailing octets (Data2 zeroed when m.Kind
// carries only one data byte).
func (m Message) ToUMP() uint32 {
	w := uint32(0)
	w = bits.SetNibble(w, 0, umpType)
	w = bits.SetNibble(w, 1, m.Group)
	w = bits.SetNibble(w, 2, statusNibbles[m.Kind])
	w = bits.SetNibble(w, 3, m.Channel)
	w = bits.SetOctet(w, 2, m.Data1.Into())
	if m.Kind.twoDataBytes() {
		w = bits.SetOctet(w, 3, m.Data2.Into())
	}
	return w
}

// FromUMP decodes a single UMP word into a Message. Each data field is read
// from the low 7 bits of its octet.
func FromUMP(word uint32) (Message, error) {
	if err := property.ValidateConstantNibble(word, 0, umpType); err != nil {
		return Message{}, err
	}
	kind, err := kindFromStatusNibble(bits.Nibble(word, 2))
	if err != nil {
		return Message{}, err
	}
	m := Message{
		Kind:    kind,
		Group:   bits.Nibble(word, 1),
		Channel: bits.Nibble(word, 3),
		Data1:   bits.NewU7(bits.Septet(bits.Octet(word, 2))),
	}
	if kind.twoDataBytes() {
		m.Data2 = bits.NewU7(bits.Septet(bits.Octet(word, 3)))
	}
	return m, nil
}

// FromUMPWords decodes the first word of words, requiring a 1-word slice.
func FromUMPWords(words []uint32) (Message, error) {
	if len(words) < 1 {
		return Message{}, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	return FromUMP(words[0])
}
