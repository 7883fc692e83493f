package utility

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNOOPRoundTrips(t *testing.T) {
	m := NewNOOP()
	word := m.ToUMP()
	require.Equal(t, uint32(0x0000_0000), word)

	back, err := FromUMP(word)
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestJRClockRoundTrips(t *testing.T) {
	m := NewJRClock(0x1234)
	word := m.ToUMP()
	require.Equal(t, uint32(0x0010_1234), word)

	back, err := FromUMP(word)
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestJRTimestampRoundTrips(t *testing.T) {
	m := NewJRTimestamp(0xBEEF)
	word := m.ToUMP()
	require.Equal(t, uint32(0x0020_BEEF), word)

	back, err := FromUMP(word)
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestFromUMPRejectsWrongType(t *testing.T) {
	_, err := FromUMP(0x1000_0000)
	require.Error(t, err)
}

func TestFromUMPRejectsUnknownStatus(t *testing.T) {
	_, err := FromUMP(0x0050_0000)
	require.Error(t, err)
}
