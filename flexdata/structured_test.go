package flexdata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetMetronomeMatchesKnownVector(t *testing.T) {
	m := SetMetronome{
		Group:                 0x1,
		ClocksPerPrimaryClick: 0x9B,
		BarAccent1:            0x4A,
		BarAccent2:            0xFE,
		BarAccent3:            0x56,
		SubdivisionClicks1:    0xB8,
		SubdivisionClicks2:    0x1B,
	}
	require.Equal(t, [4]uint32{0xD110_0002, 0x9B4A_FE56, 0xB81B_0000, 0x0}, m.ToUMP())

	back, err := SetMetronome{}.FromUMP(m.ToUMP()[:])
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestSetTimeSignatureMatchesKnownVector(t *testing.T) {
	m := SetTimeSignature{Group: 0xA, Numerator: 0xCD, Denominator: 0x90, NumberOf32ndNotes: 0x7E}
	require.Equal(t, [4]uint32{0xDA10_0001, 0xCD90_7E00, 0x0, 0x0}, m.ToUMP())

	back, err := SetTimeSignature{}.FromUMP(m.ToUMP()[:])
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestSetTempoRoundTrips(t *testing.T) {
	m := SetTempo{Group: 0x3, TenNsPerQuarter: 0x00ABCDEF}
	back, err := SetTempo{}.FromUMP(m.ToUMP()[:])
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestSetChordNameRoundTrips(t *testing.T) {
	m := SetChordName{
		Group:            0x2,
		TonicSharpsFlats: -1,
		Tonic:            3,
		ChordType:        ChordTypeMinor7,
		Alteration1:      0x15,
	}
	back, err := SetChordName{}.FromUMP(m.ToUMP()[:])
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestSetKeySignatureRoundTrips(t *testing.T) {
	m := SetKeySignature{Group: 0x0, SharpsFlats: 3, Tonic: 1}
	back, err := SetKeySignature{}.FromUMP(m.ToUMP()[:])
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestStructuredMessagesRejectWrongStatus(t *testing.T) {
	m := SetMetronome{Group: 0}
	words := m.ToUMP()
	_, err := SetTimeSignature{}.FromUMP(words[:])
	require.Error(t, err)
}
