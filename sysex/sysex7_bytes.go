package sysex

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/buffer"
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/internal/diag"
	"github.com/rob-gra/midi2/message"
)

// Sysex7Bytes is the legacy-wire encoding of a System Exclusive message: a
// single 0xF0-led, 0xF7-terminated byte stream with no packet framing and
// no group. Every payload byte carries 7 bits of data (bit 7 clear).
type Sysex7Bytes struct {
	buf message.Resizer[byte]
}

// NewSysex7Bytes returns an owned, empty (0xF0 0xF7) message.
func NewSysex7Bytes() *Sysex7Bytes {
	m := &Sysex7Bytes{buf: newOwnedResizer[byte]()}
	m.buf.TryResize(2)
	raw := m.buf.UnitsMut()
	raw[0], raw[1] = 0xF0, 0xF7
	return m
}

// NewSysex7BytesBounded returns an empty message backed by a fixed-capacity
// buffer; capacity must be at least 2.
func NewSysex7BytesBounded(capacity int) *Sysex7Bytes {
	m := &Sysex7Bytes{buf: buffer.NewBounded[byte](capacity)}
	m.buf.TryResize(2)
	raw := m.buf.UnitsMut()
	raw[0], raw[1] = 0xF0, 0xF7
	return m
}

// FromSysex7BytesOwned validates data and copies it into a new owned
// message.
func FromSysex7BytesOwned(data []byte) (*Sysex7Bytes, error) {
	if err := validateSysex7Bytes(data); err != nil {
		return nil, err
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return &Sysex7Bytes{buf: message.OwnedResizer[byte]{Owned: buffer.FromUnits(cp)}}, nil
}

// FromSysex7BytesView validates backing and wraps it without copying.
func FromSysex7BytesView(backing []byte) (*Sysex7Bytes, error) {
	if err := validateSysex7Bytes(backing); err != nil {
		return nil, err
	}
	return &Sysex7Bytes{buf: buffer.NewView(backing)}, nil
}

func validateSysex7Bytes(data []byte) error {
	if len(data) < 2 {
		return errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	if data[0] != 0xF0 {
		return errs.NewInvalidData(errs.ReasonNoBeginByte)
	}
	if data[len(data)-1] != 0xF7 {
		return errs.NewInvalidData(errs.ReasonNoEndByte)
	}
	for _, b := range data[1 : len(data)-1] {
		if b&0x80 != 0 {
			return errs.NewInvalidData(errs.ReasonNotSevenBit)
		}
	}
	return nil
}

// Raw returns the full 0xF0..0xF7 byte stream.
func (m *Sysex7Bytes) Raw() []byte { return m.buf.Units() }

// Size returns len(Raw()).
func (m *Sysex7Bytes) Size() int { return len(m.buf.Units()) }

// PayloadSize returns the number of payload bytes between the framing
// bytes.
func (m *Sysex7Bytes) PayloadSize() int {
	n := len(m.buf.Units())
	if n < 2 {
		return 0
	}
	return n - 2
}

// Payload returns an O(1)-Nth iterator over the payload bytes.
func (m *Sysex7Bytes) Payload() PayloadIterator {
	raw := m.buf.Units()
	return newBytesIterator(raw[1 : len(raw)-1])
}

// SetByte overwrites the i'th payload byte in place; v's bit 7 is cleared.
func (m *Sysex7Bytes) SetByte(i int, v byte) error {
	if i < 0 || i >= m.PayloadSize() {
		return errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	m.buf.UnitsMut()[1+i] = bits.Septet(v)
	return nil
}

// SetPayload replaces the payload wholesale with bytes drained from src.
func (m *Sysex7Bytes) SetPayload(src PayloadSource) error {
	return m.spliceAt(0, m.PayloadSize(), src)
}

// InsertPayload splices bytes from src into the payload at position at,
// shifting any following payload bytes right.
func (m *Sysex7Bytes) InsertPayload(at int, src PayloadSource) error {
	if at < 0 || at > m.PayloadSize() {
		return errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	return m.spliceAt(at, 0, src)
}

// AppendPayload splices bytes from src onto the end of the payload.
func (m *Sysex7Bytes) AppendPayload(src PayloadSource) error {
	return m.spliceAt(m.PayloadSize(), 0, src)
}

// spliceAt replaces the removeLen payload bytes starting at at with the
// bytes drained from src, resizing the backing buffer first so a
// fixed-capacity buffer fails before any byte is touched.
func (m *Sysex7Bytes) spliceAt(at, removeLen int, src PayloadSource) error {
	fresh := drain(src)
	for _, b := range fresh {
		if b&0x80 != 0 {
			return errs.NewInvalidData(errs.ReasonNotSevenBit)
		}
	}
	oldPayload := m.PayloadSize()
	newPayload := oldPayload - removeLen + len(fresh)
	newTotal := newPayload + 2
	diag.Log.Debugf("sysex7bytes splice", "at", at, "remove", removeLen, "insert", len(fresh))

	tail := append([]byte(nil), m.buf.Units()[1+at+removeLen:m.PayloadSize()+1]...)

	if err := m.buf.TryResize(newTotal); err != nil {
		return err
	}
	raw := m.buf.UnitsMut()
	raw[0] = 0xF0
	copy(raw[1+at:], fresh)
	copy(raw[1+at+len(fresh):], tail)
	raw[newTotal-1] = 0xF7
	return nil
}
