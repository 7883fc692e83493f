package sysex

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/buffer"
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/internal/diag"
	"github.com/rob-gra/midi2/message"
)

const (
	sysex8UMPType = 0x5
	sysex8Cap     = 13
	sysex8Stride  = 4
)

// Sysex8UMP is a System Exclusive 8-bit message carried as a sequence of
// 4-word UMP packets, each prefixed with a per-packet stream-id byte that
// lets a receiver interleave bytes from several concurrent streams on one
// group. The size nibble counts the stream-id byte: an empty-payload
// Complete packet still stamps size 1.
type Sysex8UMP struct {
	buf      message.Resizer[uint32]
	group    uint8
	streamID uint8
}

// NewSysex8UMP returns an owned, empty message on the given group and
// stream id.
func NewSysex8UMP(group, streamID uint8) *Sysex8UMP {
	m := &Sysex8UMP{buf: newOwnedResizer[uint32](), group: group, streamID: streamID}
	m.buf.TryResize(sysex8Stride)
	m.rebuild(nil)
	return m
}

// NewSysex8UMPBounded returns an empty message backed by a fixed-capacity
// buffer holding up to capacity words.
func NewSysex8UMPBounded(capacity int, group, streamID uint8) *Sysex8UMP {
	m := &Sysex8UMP{buf: buffer.NewBounded[uint32](capacity), group: group, streamID: streamID}
	if err := m.buf.TryResize(sysex8Stride); err != nil {
		panic(err)
	}
	m.rebuild(nil)
	return m
}

// FromSysex8UMPOwned validates data and copies it into a new owned message.
func FromSysex8UMPOwned(data []uint32) (*Sysex8UMP, error) {
	group, streamID, err := validateSysex8UMP(data)
	if err != nil {
		return nil, err
	}
	cp := make([]uint32, len(data))
	copy(cp, data)
	return &Sysex8UMP{buf: message.OwnedResizer[uint32]{Owned: buffer.FromUnits(cp)}, group: group, streamID: streamID}, nil
}

// FromSysex8UMPView validates backing and wraps it without copying.
func FromSysex8UMPView(backing []uint32) (*Sysex8UMP, error) {
	group, streamID, err := validateSysex8UMP(backing)
	if err != nil {
		return nil, err
	}
	return &Sysex8UMP{buf: buffer.NewView(backing), group: group, streamID: streamID}, nil
}

func sysex8PacketStatus(p []uint32) Status { return Status(bits.Nibble(p[0], 2)) }
func sysex8PacketGroup(p []uint32) uint8   { return bits.Nibble(p[0], 1) }
func sysex8PacketStream(p []uint32) uint8  { return bits.Octet(p[0], 2) }

func sysex8PacketSize(p []uint32) int {
	nib := int(bits.Nibble(p[0], 3))
	if nib == 0 {
		return 0
	}
	return nib - 1
}

func sysex8PacketByte(p []uint32, idx int) byte {
	if idx == 0 {
		return bits.Octet(p[0], 3)
	}
	rest := idx - 1
	return bits.Octet(p[1+rest/4], rest%4)
}

func validateSysex8UMP(data []uint32) (uint8, uint8, error) {
	if len(data) == 0 || len(data)%sysex8Stride != 0 {
		return 0, 0, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	n := len(data) / sysex8Stride
	packet := func(i int) []uint32 { return data[i*sysex8Stride : i*sysex8Stride+sysex8Stride] }
	for i := 0; i < n; i++ {
		p := packet(i)
		if bits.Nibble(p[0], 0) != sysex8UMPType {
			return 0, 0, errs.NewInvalidData(errs.ReasonWrongMessageType)
		}
		nib := bits.Nibble(p[0], 3)
		if nib == 0 || nib > sysex8Cap+1 {
			return 0, 0, errs.NewInvalidData(errs.ReasonInvalidPacketSize)
		}
	}
	if err := ValidateGroupStatuses(n, func(i int) Status { return sysex8PacketStatus(packet(i)) }); err != nil {
		return 0, 0, err
	}
	if err := ValidateConsistentGroups(n, func(i int) uint8 { return sysex8PacketGroup(packet(i)) }); err != nil {
		return 0, 0, err
	}
	if err := ValidateConsistentStreamIDs(n, func(i int) uint8 { return sysex8PacketStream(packet(i)) }); err != nil {
		return 0, 0, err
	}
	return sysex8PacketGroup(packet(0)), sysex8PacketStream(packet(0)), nil
}

// Raw returns the full word sequence.
func (m *Sysex8UMP) Raw() []uint32 { return m.buf.Units() }

// Size returns len(Raw()).
func (m *Sysex8UMP) Size() int { return len(m.buf.Units()) }

// Group returns the message's group nibble.
func (m *Sysex8UMP) Group() uint8 { return m.group }

// StreamID returns the message's stream-id byte.
func (m *Sysex8UMP) StreamID() uint8 { return m.streamID }

// SetGroup restamps every packet's group nibble.
func (m *Sysex8UMP) SetGroup(g uint8) {
	m.group = g & 0xF
	raw := m.buf.UnitsMut()
	for off := 0; off+sysex8Stride <= len(raw); off += sysex8Stride {
		raw[off] = bits.SetNibble(raw[off], 1, m.group)
	}
}

// SetStreamID restamps every packet's stream-id byte.
func (m *Sysex8UMP) SetStreamID(id uint8) {
	m.streamID = id
	raw := m.buf.UnitsMut()
	for off := 0; off+sysex8Stride <= len(raw); off += sysex8Stride {
		raw[off] = bits.SetOctet(raw[off], 2, m.streamID)
	}
}

// PayloadSize returns the total number of payload bytes across all packets.
func (m *Sysex8UMP) PayloadSize() int {
	raw := m.buf.Units()
	total := 0
	for off := 0; off+sysex8Stride <= len(raw); off += sysex8Stride {
		total += sysex8PacketSize(raw[off : off+sysex8Stride])
	}
	return total
}

// Payload returns an iterator over the payload bytes, walking packet by
// packet.
func (m *Sysex8UMP) Payload() PayloadIterator {
	return newPacketIterator(m.buf.Units(), sysex8Stride, sysex8PacketSize, sysex8PacketByte)
}

// SetByte overwrites the i'th payload byte in place without reflowing
// packet boundaries.
func (m *Sysex8UMP) SetByte(i int, v byte) error {
	raw := m.buf.UnitsMut()
	idx := 0
	for off := 0; off+sysex8Stride <= len(raw); off += sysex8Stride {
		p := raw[off : off+sysex8Stride]
		sz := sysex8PacketSize(p)
		if i < idx+sz {
			local := i - idx
			if local == 0 {
				p[0] = bits.SetOctet(p[0], 3, v)
			} else {
				rest := local - 1
				p[1+rest/4] = bits.SetOctet(p[1+rest/4], rest%4, v)
			}
			return nil
		}
		idx += sz
	}
	return errs.NewInvalidData(errs.ReasonSliceTooShort)
}

// SetPayload replaces the payload wholesale with bytes drained from src.
func (m *Sysex8UMP) SetPayload(src PayloadSource) error { return m.splice(0, m.PayloadSize(), src) }

// InsertPayload splices bytes from src into the payload at byte offset at.
func (m *Sysex8UMP) InsertPayload(at int, src PayloadSource) error {
	if at < 0 || at > m.PayloadSize() {
		return errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	return m.splice(at, 0, src)
}

// AppendPayload splices bytes from src onto the end of the payload.
func (m *Sysex8UMP) AppendPayload(src PayloadSource) error {
	return m.splice(m.PayloadSize(), 0, src)
}

func (m *Sysex8UMP) splice(at, removeLen int, src PayloadSource) error {
	fresh := drain(src)
	current := flattenPayload(m.Payload())
	newPayload := make([]byte, 0, len(current)-removeLen+len(fresh))
	newPayload = append(newPayload, current[:at]...)
	newPayload = append(newPayload, fresh...)
	newPayload = append(newPayload, current[at+removeLen:]...)

	diag.Log.Debugf("sysex8ump splice", "group", m.group, "stream", m.streamID, "at", at, "remove", removeLen, "insert", len(fresh))

	newWordCount := len(planSizes(len(newPayload), sysex8Cap)) * sysex8Stride
	if err := m.buf.TryResize(newWordCount); err != nil {
		return err
	}
	m.rebuild(newPayload)
	return nil
}

// rebuild repacketises payload into the (already correctly sized) backing
// buffer.
func (m *Sysex8UMP) rebuild(payload []byte) {
	sizes := planSizes(len(payload), sysex8Cap)
	raw := m.buf.UnitsMut()
	offset := 0
	for i, sz := range sizes {
		st := statusFor(i, len(sizes))
		chunk := payload[offset : offset+sz]
		offset += sz
		var b [13]byte
		copy(b[:], chunk)

		w0 := uint32(0)
		w0 = bits.SetNibble(w0, 0, sysex8UMPType)
		w0 = bits.SetNibble(w0, 1, m.group)
		w0 = bits.SetNibble(w0, 2, uint8(st))
		w0 = bits.SetNibble(w0, 3, uint8(sz+1))
		w0 = bits.SetOctet(w0, 2, m.streamID)
		w0 = bits.SetOctet(w0, 3, b[0])

		var words [3]uint32
		for wi := 0; wi < 3; wi++ {
			w := uint32(0)
			for oi := 0; oi < 4; oi++ {
				w = bits.SetOctet(w, oi, b[1+wi*4+oi])
			}
			words[wi] = w
		}

		base := i * sysex8Stride
		raw[base] = w0
		raw[base+1] = words[0]
		raw[base+2] = words[1]
		raw[base+3] = words[2]
	}
}
