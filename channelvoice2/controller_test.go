package channelvoice2

import (
	"testing"

	"github.com/rob-gra/midi2/bits"
	"github.com/stretchr/testify/require"
)

func TestControllerPitch7_25RoundTrip(t *testing.T) {
	note := bits.NewU7(0x4C)
	delta := bits.NewU25(0x10013_9B)
	c := NewPitch7_25(note, delta)

	index, data := c.IndexData()
	require.Equal(t, uint8(3), index)
	require.Equal(t, uint32(0x4C)<<25|uint32(0x10013_9B), data)

	back, err := ControllerFromIndexData(index, data)
	require.NoError(t, err)
	require.Equal(t, c, back)
}

func TestControllerUnknownIndexRejected(t *testing.T) {
	_, err := ControllerFromIndexData(4, 0)
	require.Error(t, err)
}

func TestControllerSoundControllerRoundTrip(t *testing.T) {
	c, err := NewSoundController(1, 0xDEADBEEF)
	require.NoError(t, err)
	index, data := c.IndexData()
	require.Equal(t, uint8(70), index)

	back, err := ControllerFromIndexData(index, data)
	require.NoError(t, err)
	require.Equal(t, c, back)
}

func TestControllerEffectDepthRoundTrip(t *testing.T) {
	c, err := NewEffectDepth(5, 0x1234)
	require.NoError(t, err)
	index, _ := c.IndexData()
	require.Equal(t, uint8(95), index)
}

func TestControllerOutOfRangeSubIndexRejected(t *testing.T) {
	_, err := NewSoundController(11, 0)
	require.Error(t, err)
	_, err = NewEffectDepth(0, 0)
	require.Error(t, err)
}

func TestControllerUndefinedRoundTrip(t *testing.T) {
	c := NewUndefined(0xCAFEF00D)
	index, data := c.IndexData()
	require.Equal(t, uint8(0), index)

	back, err := ControllerFromIndexData(index, data)
	require.NoError(t, err)
	require.Equal(t, c, back)
}

func TestControllerSevenEnumeratedSinglesRoundTrip(t *testing.T) {
	cases := []Controller{
		NewModulation(1), NewBreath(2), NewPitch7_25(bits.NewU7(7), bits.NewU25(8)),
		NewVolume(3), NewBalance(4), NewPan(5), NewExpression(6),
	}
	for _, c := range cases {
		index, data := c.IndexData()
		back, err := ControllerFromIndexData(index, data)
		require.NoError(t, err)
		require.Equal(t, c, back)
	}
}
