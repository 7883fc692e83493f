package systemcommon

import (
	"testing"

	"github.com/rob-gra/midi2/bits"
	"github.com/stretchr/testify/require"
)

func TestUMPRoundTripsAllKinds(t *testing.T) {
	msgs := []Message{
		NewTimeCode(0x1, bits.NewU7(0x25)),
		NewSongPositionPointer(0x2, bits.NewU14(0x1234)),
		NewSongSelect(0x3, bits.NewU7(0x0A)),
		NewTuneRequest(0x4),
		NewTimingClock(0x5),
		NewStart(0x6),
		NewContinue(0x7),
		NewStop(0x8),
		NewActiveSensing(0x9),
		NewReset(0xA),
	}
	for _, m := range msgs {
		word := m.ToUMP()
		back, err := FromUMP(word)
		require.NoError(t, err)
		require.Equal(t, m, back)
	}
}

func TestBytesRoundTripsAllKinds(t *testing.T) {
	msgs := []Message{
		NewTimeCode(0, bits.NewU7(0x25)),
		NewSongPositionPointer(0, bits.NewU14(0x1234)),
		NewSongSelect(0, bits.NewU7(0x0A)),
		NewTuneRequest(0),
		NewTimingClock(0),
		NewStart(0),
		NewContinue(0),
		NewStop(0),
		NewActiveSensing(0),
		NewReset(0),
	}
	for _, m := range msgs {
		data := m.ToBytes()
		back, err := FromBytes(data)
		require.NoError(t, err)
		require.Equal(t, m.Kind, back.Kind)
		require.Equal(t, m.Data1, back.Data1)
		require.Equal(t, m.Data2, back.Data2)
	}
}

func TestSongPositionPointerRoundTripsPosition(t *testing.T) {
	m := NewSongPositionPointer(0x3, bits.NewU14(0x1234))
	require.Equal(t, bits.NewU14(0x1234), m.Position())
}

func TestFromUMPRejectsWrongType(t *testing.T) {
	_, err := FromUMP(0x2000_0000)
	require.Error(t, err)
}

func TestFromUMPRejectsUnknownStatus(t *testing.T) {
	word := bits.SetOctet(bits.SetNibble(0, 0, UMPType), 1, 0xF5)
	_, err := FromUMP(word)
	require.Error(t, err)
}

func TestFromBytesRejectsWrongLength(t *testing.T) {
	_, err := FromBytes([]byte{0xF2, 0x10})
	require.Error(t, err)
}

func TestFromBytesRejectsNonSevenBitDataByte(t *testing.T) {
	_, err := FromBytes([]byte{0xF3, 0x81})
	require.Error(t, err)
}
