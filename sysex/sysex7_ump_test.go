package sysex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sequentialPayload(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i)
	}
	return p
}

func TestSysex7UMPSeedCaseOne(t *testing.T) {
	m := NewSysex7UMP(4)
	require.NoError(t, m.SetPayload(FromSlice(sequentialPayload(15))))

	want := []uint32{
		0x34160001,
		0x02030405,
		0x34260607,
		0x08090A0B,
		0x34330C0D,
		0x0E000000,
	}
	require.Equal(t, want, m.Raw())
}

func TestSysex7UMPRoundTripsThroughFromSysex7UMPOwned(t *testing.T) {
	m := NewSysex7UMP(7)
	require.NoError(t, m.SetPayload(FromSlice(sequentialPayload(20))))

	parsed, err := FromSysex7UMPOwned(m.Raw())
	require.NoError(t, err)
	require.Equal(t, uint8(7), parsed.Group())
	require.Equal(t, flattenPayload(m.Payload()), flattenPayload(parsed.Payload()))
}

func TestSysex7UMPEmptyPayloadIsSingleCompletePacket(t *testing.T) {
	m := NewSysex7UMP(0)
	require.Equal(t, 2, m.Size())
	require.Equal(t, StatusComplete, sysex7PacketStatus(m.Raw()))
	require.Equal(t, 0, m.PayloadSize())
}

func TestSysex7UMPInsertPayloadShiftsTail(t *testing.T) {
	m := NewSysex7UMP(1)
	require.NoError(t, m.SetPayload(FromSlice([]byte{0, 1, 2, 3})))
	require.NoError(t, m.InsertPayload(2, FromSlice([]byte{0x10, 0x11})))
	require.Equal(t, []byte{0, 1, 0x10, 0x11, 2, 3}, flattenPayload(m.Payload()))
}

func TestSysex7UMPAppendPayloadCrossesPacketBoundary(t *testing.T) {
	m := NewSysex7UMP(2)
	require.NoError(t, m.SetPayload(FromSlice(sequentialPayload(6))))
	require.NoError(t, m.AppendPayload(FromSlice([]byte{9, 9})))
	require.Equal(t, append(sequentialPayload(6), 9, 9), flattenPayload(m.Payload()))
	require.Equal(t, 2, len(m.Raw())/sysex7Stride)
}

func TestSysex7UMPSetByteDoesNotReflowPackets(t *testing.T) {
	m := NewSysex7UMP(0)
	require.NoError(t, m.SetPayload(FromSlice(sequentialPayload(10))))
	sizeBefore := m.Size()
	require.NoError(t, m.SetByte(7, 0x40))
	require.Equal(t, sizeBefore, m.Size())
	payload := flattenPayload(m.Payload())
	require.Equal(t, byte(0x40), payload[7])
}

func TestSysex7UMPBoundedOverflowLeavesBufferUnchanged(t *testing.T) {
	m := NewSysex7UMPBounded(4, 0) // room for 2 packets = 12 payload bytes max
	require.NoError(t, m.SetPayload(FromSlice(sequentialPayload(6))))
	before := append([]uint32(nil), m.Raw()...)

	err := m.SetPayload(FromSlice(sequentialPayload(13)))
	require.Error(t, err)
	require.Equal(t, before, m.Raw())
}

func TestSysex7UMPRejectsWrongType(t *testing.T) {
	_, err := FromSysex7UMPOwned([]uint32{0x24000000, 0x00000000})
	require.Error(t, err)
}

func TestSysex7UMPRejectsInconsistentGroups(t *testing.T) {
	_, err := FromSysex7UMPOwned([]uint32{
		0x31160001, 0x02030405,
		0x32330607, 0x08000000,
	})
	require.Error(t, err)
}

func TestSysex7BytesToUMPAndBack(t *testing.T) {
	b, err := FromSysex7BytesOwned(append(append([]byte{0xF0}, sequentialPayload(9)...), 0xF7))
	require.NoError(t, err)

	u := b.ToUMP(3)
	require.Equal(t, uint8(3), u.Group())
	require.Equal(t, sequentialPayload(9), flattenPayload(u.Payload()))

	back := u.ToBytes()
	require.Equal(t, b.Raw(), back.Raw())
}
