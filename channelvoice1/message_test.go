package channelvoice1

import (
	"testing"

	"github.com/rob-gra/midi2/bits"
	"github.com/stretchr/testify/require"
)

func bits7(v uint8) bits.U7 { return bits.NewU7(v) }

func TestFromUMPWrongType(t *testing.T) {
	_, err := FromUMP(0x1000_0000)
	require.Error(t, err)
}

func TestFromUMPNoteOff(t *testing.T) {
	m, err := FromUMP(0x2A80_3C58)
	require.NoError(t, err)
	require.Equal(t, NoteOff, m.Kind)
	require.Equal(t, uint8(0), m.Channel)
	require.Equal(t, uint8(60), m.Data1.Into())
	require.Equal(t, uint8(88), m.Data2.Into())
}

func TestFromUMPNoteOn(t *testing.T) {
	m, err := FromUMP(0x2C9D_5020)
	require.NoError(t, err)
	require.Equal(t, NoteOn, m.Kind)
	require.Equal(t, uint8(13), m.Channel)
	require.Equal(t, uint8(80), m.Data1.Into())
	require.Equal(t, uint8(32), m.Data2.Into())
}

func TestFromUMPKeyPressure(t *testing.T) {
	m, err := FromUMP(0x22A2_3EA0)
	require.NoError(t, err)
	require.Equal(t, KeyPressure, m.Kind)
	require.Equal(t, uint8(2), m.Channel)
	require.Equal(t, uint8(62), m.Data1.Into())
	require.Equal(t, uint8(0x20), m.Data2.Into())
}

func TestFromUMPControlChange(t *testing.T) {
	m, err := FromUMP(0x21BF_010A)
	require.NoError(t, err)
	require.Equal(t, ControlChange, m.Kind)
	require.Equal(t, uint8(15), m.Channel)
	require.Equal(t, uint8(1), m.Data1.Into())
	require.Equal(t, uint8(10), m.Data2.Into())
}

func TestFromUMPProgramChange(t *testing.T) {
	m, err := FromUMP(0x27C0_A400)
	require.NoError(t, err)
	require.Equal(t, ProgramChange, m.Kind)
	require.Equal(t, uint8(0), m.Channel)
	require.Equal(t, uint8(0x24), m.Data1.Into())
}

func TestFromUMPChannelPressure(t *testing.T) {
	m, err := FromUMP(0x24D4_5300)
	require.NoError(t, err)
	require.Equal(t, ChannelPressure, m.Kind)
	require.Equal(t, uint8(4), m.Channel)
	require.Equal(t, uint8(83), m.Data1.Into())
}

func TestUMPRoundTripsAllKinds(t *testing.T) {
	msgs := []Message{
		NewNoteOff(1, 2, bits7(60), bits7(88)),
		NewNoteOn(1, 2, bits7(80), bits7(32)),
		NewKeyPressure(1, 2, bits7(62), bits7(160)),
		NewControlChange(1, 2, bits7(1), bits7(10)),
		NewProgramChange(1, 2, bits7(164)),
		NewChannelPressure(1, 2, bits7(83)),
		NewPitchBend(1, 2, bits7(0x20), bits7(0x40)),
	}
	for _, m := range msgs {
		back, err := FromUMP(m.ToUMP())
		require.NoError(t, err)
		require.Equal(t, m, back)
	}
}

func TestBytesRoundTripsAllKinds(t *testing.T) {
	msgs := []Message{
		NewNoteOff(0, 2, bits7(60), bits7(88)),
		NewProgramChange(0, 3, bits7(164)),
		NewPitchBend(0, 4, bits7(0x20), bits7(0x40)),
	}
	for _, m := range msgs {
		back, err := FromBytes(m.ToBytes())
		require.NoError(t, err)
		m.Group = 0 // Bytes drops group
		require.Equal(t, m, back)
	}
}

func TestFromBytesRejectsWrongLength(t *testing.T) {
	_, err := FromBytes([]byte{0x90, 0x40, 0x7F, 0x00})
	require.Error(t, err)
}

func TestFromBytesRejectsMissingStatusBit(t *testing.T) {
	_, err := FromBytes([]byte{0x40, 0x00})
	require.Error(t, err)
}
