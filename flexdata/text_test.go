package flexdata

import (
	"strings"
	"testing"

	"github.com/rob-gra/midi2/bits"
	"github.com/stretchr/testify/require"
)

func TestProjectNameSinglePacketRoundTrips(t *testing.T) {
	m := NewText(ProjectName, 0x4, "hello")
	words := m.ToUMP()
	require.Len(t, words, 4)

	back, err := FromUMP(words, ProjectName)
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestProjectNameEmptyPayloadIsOnePacket(t *testing.T) {
	m := NewText(ProjectName, 0x0, "")
	words := m.ToUMP()
	require.Len(t, words, 4)

	back, err := FromUMP(words, ProjectName)
	require.NoError(t, err)
	require.Equal(t, "", back.Value)
}

func TestLyricsMultiPacketRoundTrips(t *testing.T) {
	text := strings.Repeat("ab", 20) // 40 bytes, spans 4 packets of 12
	m := NewText(Lyrics, 0x7, text)
	words := m.ToUMP()
	require.Len(t, words, 16)

	back, err := FromUMP(words, Lyrics)
	require.NoError(t, err)
	require.Equal(t, text, back.Value)
	require.Equal(t, uint8(0x7), back.Group)
}

func TestTextWithChannelRoundTrips(t *testing.T) {
	m := NewText(CopyrightNotice, 0x2, "(c) 2026").WithChannel(0x5)
	back, err := FromUMP(m.ToUMP(), CopyrightNotice)
	require.NoError(t, err)
	require.NotNil(t, back.Channel)
	require.Equal(t, uint8(0x5), *back.Channel)
}

func TestTextRejectsWrongBank(t *testing.T) {
	m := NewText(ProjectName, 0, "x")
	_, err := FromUMP(m.ToUMP(), Lyrics)
	require.Error(t, err)
}

func TestTextRejectsInconsistentGroups(t *testing.T) {
	text := strings.Repeat("z", 20)
	m := NewText(Lyrics, 0x1, text)
	words := m.ToUMP()
	// corrupt the second packet's group nibble
	words[4] = bits.SetNibble(words[4], 1, 0x2)
	_, err := FromUMP(words, Lyrics)
	require.Error(t, err)
}
