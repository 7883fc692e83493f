package systemcommon

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
)

func bits7(v uint8) bits.U7 { return bits.NewU7(v & 0x7F) }

// ToBytes encodes m as its legacy byte-stream status byte plus any data
// bytes. Group has no Bytes representation and is dropped.
func (m Message) ToBytes() []byte {
	n := m.Kind.dataByteCount()
	out := make([]byte, 1+n)
	out[0] = statusBytes[m.Kind]
	if n >= 1 {
		out[1] = m.Data1.Into()
	}
	if n >= 2 {
		out[2] = m.Data2.Into()
	}
	return out
}

// FromBytes decodes a legacy byte-stream System Common / Real-Time message.
func FromBytes(data []byte) (Message, error) {
	if len(data) == 0 {
		return Message{}, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	kind, err := kindFromStatusByte(data[0])
	if err != nil {
		return Message{}, err
	}
	n := kind.dataByteCount()
	if len(data) != 1+n {
		return Message{}, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	m := Message{Kind: kind}
	for i := 1; i <= n; i++ {
		if data[i]&0x80 != 0 {
			return Message{}, errs.NewInvalidData(errs.ReasonNotSevenBit)
		}
	}
	if n >= 1 {
		m.Data1 = bits7(data[1])
	}
	if n >= 2 {
		m.Data2 = bits7(data[2])
	}
	return m, nil
}
