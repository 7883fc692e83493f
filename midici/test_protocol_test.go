package midici

import (
	"testing"

	"github.com/rob-gra/midi2/bits"
	"github.com/stretchr/testify/require"
)

// TestTestProtocolSysex8MatchesKnownVector reproduces test_protocol.rs's
// try_to_sysex8 vector: group 0xE, source 31193279, destination 196547546,
// authority level 0x19, on stream id 0x88.
func TestTestProtocolSysex8MatchesKnownVector(t *testing.T) {
	tp := NewTestProtocolQuery(0xE, bits.NewU28(31193279), bits.NewU28(196547546), bits.NewU7(0x19))

	m, err := tp.ToSysex8UMP(0x88, TestProtocolQuery)
	require.NoError(t, err)
	require.Equal(t, uint8(0xE), m.Group())
	require.Equal(t, uint8(0x88), m.StreamID())

	payload := drainPayload(m.Payload())
	require.Equal(t, 62, len(payload))
	require.Equal(t, []byte{0x7E, 0x7F, 0x0D, 0x13, Version}, payload[:5])
	require.Equal(t, byte(0x19), payload[13])
	for i := 0; i < 48; i++ {
		require.Equal(t, byte(i), payload[14+i])
	}

	back, kind, err := TestProtocolFromSysex8UMP(m)
	require.NoError(t, err)
	require.Equal(t, TestProtocolQuery, kind)
	require.Equal(t, tp.Source, back.Source)
	require.Equal(t, tp.Destination, back.Destination)
	require.Equal(t, tp.AuthorityLevel, back.AuthorityLevel)
	require.Equal(t, tp.Group, back.Group)
}

func TestTestProtocolReplyRoundTripsThroughBytes(t *testing.T) {
	tp := NewTestProtocolReply(0, bits.NewU28(1), bits.NewU28(2), bits.NewU7(0x10))

	m, err := tp.ToSysex7Bytes(TestProtocolReply)
	require.NoError(t, err)

	back, kind, err := TestProtocolFromSysex7Bytes(m)
	require.NoError(t, err)
	require.Equal(t, TestProtocolReply, kind)
	require.Equal(t, tp.Source, back.Source)
	require.Equal(t, tp.Destination, back.Destination)
	require.Equal(t, tp.AuthorityLevel, back.AuthorityLevel)
}

func TestTestProtocolRejectsCorruptedPattern(t *testing.T) {
	tp := NewTestProtocolQuery(0, bits.NewU28(1), bits.NewU28(2), bits.NewU7(0))
	m, err := tp.ToSysex7UMP(TestProtocolQuery)
	require.NoError(t, err)
	require.NoError(t, m.SetByte(14, 0xFF))

	_, _, err = TestProtocolFromSysex7UMP(m)
	require.Error(t, err)
}
