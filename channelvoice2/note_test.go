package channelvoice2

import (
	"testing"

	"github.com/rob-gra/midi2/bits"
	"github.com/stretchr/testify/require"
)

func TestNoteOnEncodeMatchesKnownVector(t *testing.T) {
	m := NewNoteOn(0x3, 0x3, bits.NewU7(0x50), 0x6666)
	require.Equal(t, [2]uint32{0x4393_5000, 0x6666_0000}, m.ToUMP())
}

func TestNoteOnDecodeMatchesKnownVector(t *testing.T) {
	m, err := NoteOn{}.FromUMP([]uint32{0x4393_5000, 0x6666_0000})
	require.NoError(t, err)
	require.Equal(t, uint8(0x3), m.Group())
	require.Equal(t, uint8(0x3), m.Channel())
	require.Equal(t, uint8(0x50), m.Note().Into())
	require.Equal(t, uint16(0x6666), m.Velocity())
	require.Equal(t, NoAttribute, m.Attribute())
}

func TestNoteOnWithManufacturerAttributeRoundTrips(t *testing.T) {
	m := NewNoteOn(0x8, 0x5, bits.NewU7(0x6A), 0xFFFF).
		WithAttribute(Attribute{Kind: AttributeManufacturerSpecific, Data: 0x3141})
	require.Equal(t, [2]uint32{0x4895_6A01, 0xFFFF_3141}, m.ToUMP())

	back, err := NoteOn{}.FromUMP(m.ToUMP()[:])
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestNoteOnRejectsWrongStatus(t *testing.T) {
	_, err := NoteOn{}.FromUMP([]uint32{0x4080_0000, 0x0})
	require.Error(t, err)
}

func TestNoteOnRejectsWrongType(t *testing.T) {
	_, err := NoteOn{}.FromUMP([]uint32{0x1000_0000, 0x0})
	require.Error(t, err)
}

func TestNoteOffRoundTrips(t *testing.T) {
	m := NewNoteOff(0x1, 0x2, bits.NewU7(0x40), 0x1234)
	back, err := NoteOff{}.FromUMP(m.ToUMP()[:])
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestNoteOffRejectsNoteOnStatus(t *testing.T) {
	on := NewNoteOn(0, 0, bits.NewU7(1), 1)
	_, err := NoteOff{}.FromUMP(on.ToUMP()[:])
	require.Error(t, err)
}
