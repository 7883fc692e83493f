package sysex

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/buffer"
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/internal/diag"
	"github.com/rob-gra/midi2/message"
)

const (
	sysex7UMPType = 0x3
	sysex7Cap     = 6
	sysex7Stride  = 2
)

// Sysex7UMP is a System Exclusive 7-bit message carried as a sequence of
// 2-word UMP packets, up to 6 payload bytes per packet.
type Sysex7UMP struct {
	buf   message.Resizer[uint32]
	group uint8
}

// NewSysex7UMP returns an owned, empty (single Complete, zero-length
// payload) message on the given group.
func NewSysex7UMP(group uint8) *Sysex7UMP {
	m := &Sysex7UMP{buf: newOwnedResizer[uint32](), group: group}
	m.buf.TryResize(sysex7Stride)
	m.rebuild(nil)
	return m
}

// NewSysex7UMPBounded returns an empty message backed by a fixed-capacity
// buffer holding up to capacity words.
func NewSysex7UMPBounded(capacity int, group uint8) *Sysex7UMP {
	m := &Sysex7UMP{buf: buffer.NewBounded[uint32](capacity), group: group}
	if err := m.buf.TryResize(sysex7Stride); err != nil {
		panic(err)
	}
	m.rebuild(nil)
	return m
}

// FromSysex7UMPOwned validates data as a well-formed packet sequence and
// copies it into a new owned message.
func FromSysex7UMPOwned(data []uint32) (*Sysex7UMP, error) {
	group, err := validateSysex7UMP(data)
	if err != nil {
		return nil, err
	}
	cp := make([]uint32, len(data))
	copy(cp, data)
	return &Sysex7UMP{buf: message.OwnedResizer[uint32]{Owned: buffer.FromUnits(cp)}, group: group}, nil
}

// FromSysex7UMPView validates backing and wraps it without copying.
func FromSysex7UMPView(backing []uint32) (*Sysex7UMP, error) {
	group, err := validateSysex7UMP(backing)
	if err != nil {
		return nil, err
	}
	return &Sysex7UMP{buf: buffer.NewView(backing), group: group}, nil
}

func sysex7PacketStatus(p []uint32) Status { return Status(bits.Nibble(p[0], 2)) }
func sysex7PacketGroup(p []uint32) uint8   { return bits.Nibble(p[0], 1) }
func sysex7PacketSize(p []uint32) int      { return int(bits.Nibble(p[0], 3)) }

func sysex7PacketByte(p []uint32, idx int) byte {
	switch idx {
	case 0:
		return bits.Octet(p[0], 2)
	case 1:
		return bits.Octet(p[0], 3)
	default:
		return bits.Octet(p[1], idx-2)
	}
}

func validateSysex7UMP(data []uint32) (uint8, error) {
	if len(data) == 0 || len(data)%sysex7Stride != 0 {
		return 0, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	n := len(data) / sysex7Stride
	packet := func(i int) []uint32 { return data[i*sysex7Stride : i*sysex7Stride+sysex7Stride] }
	for i := 0; i < n; i++ {
		p := packet(i)
		if bits.Nibble(p[0], 0) != sysex7UMPType {
			return 0, errs.NewInvalidData(errs.ReasonWrongMessageType)
		}
		if sz := sysex7PacketSize(p); sz > sysex7Cap {
			return 0, errs.NewInvalidData(errs.ReasonInvalidPacketSize)
		}
	}
	if err := ValidateGroupStatuses(n, func(i int) Status { return sysex7PacketStatus(packet(i)) }); err != nil {
		return 0, err
	}
	if err := ValidateConsistentGroups(n, func(i int) uint8 { return sysex7PacketGroup(packet(i)) }); err != nil {
		return 0, err
	}
	return sysex7PacketGroup(packet(0)), nil
}

// Raw returns the full word sequence.
func (m *Sysex7UMP) Raw() []uint32 { return m.buf.Units() }

// Size returns len(Raw()).
func (m *Sysex7UMP) Size() int { return len(m.buf.Units()) }

// Group returns the message's group nibble.
func (m *Sysex7UMP) Group() uint8 { return m.group }

// SetGroup restamps every packet's group nibble.
func (m *Sysex7UMP) SetGroup(g uint8) {
	m.group = g & 0xF
	raw := m.buf.UnitsMut()
	for off := 0; off+sysex7Stride <= len(raw); off += sysex7Stride {
		raw[off] = bits.SetNibble(raw[off], 1, m.group)
	}
}

// PayloadSize returns the total number of payload bytes across all packets.
func (m *Sysex7UMP) PayloadSize() int {
	raw := m.buf.Units()
	total := 0
	for off := 0; off+sysex7Stride <= len(raw); off += sysex7Stride {
		total += sysex7PacketSize(raw[off : off+sysex7Stride])
	}
	return total
}

// Payload returns an iterator over the payload bytes, walking packet by
// packet (O(packet count) worst-case Nth).
func (m *Sysex7UMP) Payload() PayloadIterator {
	return newPacketIterator(m.buf.Units(), sysex7Stride, sysex7PacketSize, sysex7PacketByte)
}

// SetByte overwrites the i'th payload byte in place without reflowing
// packet boundaries.
func (m *Sysex7UMP) SetByte(i int, v byte) error {
	raw := m.buf.UnitsMut()
	idx := 0
	for off := 0; off+sysex7Stride <= len(raw); off += sysex7Stride {
		p := raw[off : off+sysex7Stride]
		sz := sysex7PacketSize(p)
		if i < idx+sz {
			local := i - idx
			switch local {
			case 0:
				p[0] = bits.SetOctet(p[0], 2, bits.Septet(v))
			case 1:
				p[0] = bits.SetOctet(p[0], 3, bits.Septet(v))
			default:
				p[1] = bits.SetOctet(p[1], local-2, bits.Septet(v))
			}
			return nil
		}
		idx += sz
	}
	return errs.NewInvalidData(errs.ReasonSliceTooShort)
}

// SetPayload replaces the payload wholesale with bytes drained from src.
func (m *Sysex7UMP) SetPayload(src PayloadSource) error { return m.splice(0, m.PayloadSize(), src) }

// InsertPayload splices bytes from src into the payload at byte offset at.
func (m *Sysex7UMP) InsertPayload(at int, src PayloadSource) error {
	if at < 0 || at > m.PayloadSize() {
		return errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	return m.splice(at, 0, src)
}

// AppendPayload splices bytes from src onto the end of the payload.
func (m *Sysex7UMP) AppendPayload(src PayloadSource) error {
	return m.splice(m.PayloadSize(), 0, src)
}

func flattenPayload(it PayloadIterator) []byte {
	out := make([]byte, 0, it.Len())
	for {
		b, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, b)
	}
}

func (m *Sysex7UMP) splice(at, removeLen int, src PayloadSource) error {
	fresh := drain(src)
	for _, b := range fresh {
		if b&0x80 != 0 {
			return errs.NewInvalidData(errs.ReasonNotSevenBit)
		}
	}
	current := flattenPayload(m.Payload())
	newPayload := make([]byte, 0, len(current)-removeLen+len(fresh))
	newPayload = append(newPayload, current[:at]...)
	newPayload = append(newPayload, fresh...)
	newPayload = append(newPayload, current[at+removeLen:]...)

	diag.Log.Debugf("sysex7ump splice", "group", m.group, "at", at, "remove", removeLen, "insert", len(fresh))

	newWordCount := len(planSizes(len(newPayload), sysex7Cap)) * sysex7Stride
	if err := m.buf.TryResize(newWordCount); err != nil {
		return err
	}
	m.rebuild(newPayload)
	return nil
}

// rebuild repacketises payload into the (already correctly sized) backing
// buffer. Called only after TryResize has already succeeded, so it never
// needs to itself fail.
func (m *Sysex7UMP) rebuild(payload []byte) {
	sizes := planSizes(len(payload), sysex7Cap)
	raw := m.buf.UnitsMut()
	offset := 0
	for i, sz := range sizes {
		st := statusFor(i, len(sizes))
		chunk := payload[offset : offset+sz]
		offset += sz
		var b [6]byte
		copy(b[:], chunk)

		w0 := uint32(0)
		w0 = bits.SetNibble(w0, 0, sysex7UMPType)
		w0 = bits.SetNibble(w0, 1, m.group)
		w0 = bits.SetNibble(w0, 2, uint8(st))
		w0 = bits.SetNibble(w0, 3, uint8(sz))
		w0 = bits.SetOctet(w0, 2, b[0])
		w0 = bits.SetOctet(w0, 3, b[1])

		w1 := uint32(0)
		w1 = bits.SetOctet(w1, 0, b[2])
		w1 = bits.SetOctet(w1, 1, b[3])
		w1 = bits.SetOctet(w1, 2, b[4])
		w1 = bits.SetOctet(w1, 3, b[5])

		raw[i*sysex7Stride] = w0
		raw[i*sysex7Stride+1] = w1
	}
}
