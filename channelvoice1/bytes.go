package channelvoice1

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
)

// ToBytes encodes m as its legacy 2- or 3-byte status-led stream. Group is
// not representable in the Bytes encoding and is dropped.
func (m Message) ToBytes() []byte {
	status := statusNibbles[m.Kind]<<4 | (m.Channel & 0xF)
	if !m.Kind.twoDataBytes() {
		return []byte{status, m.Data1.Into()}
	}
	return []byte{status, m.Data1.Into(), m.Data2.Into()}
}

// FromBytes decodes a single legacy channel-voice message from data,
// which must hold exactly one status byte plus its 1 or 2 data bytes (no
// running status).
func FromBytes(data []byte) (Message, error) {
	if len(data) < 2 {
		return Message{}, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	if data[0]&0x80 == 0 {
		return Message{}, errs.NewInvalidData(errs.ReasonWrongStatus)
	}
	kind, err := kindFromStatusNibble(data[0] >> 4)
	if err != nil {
		return Message{}, err
	}
	wantLen := 2
	if kind.twoDataBytes() {
		wantLen = 3
	}
	if len(data) != wantLen {
		return Message{}, errs.NewInvalidData(errs.ReasonInvalidPayloadCount)
	}
	for _, b := range data[1:] {
		if b&0x80 != 0 {
			return Message{}, errs.NewInvalidData(errs.ReasonNotSevenBit)
		}
	}
	m := Message{Kind: kind, Channel: data[0] & 0xF, Data1: bits.NewU7(data[1])}
	if kind.twoDataBytes() {
		m.Data2 = bits.NewU7(data[2])
	}
	return m, nil
}
