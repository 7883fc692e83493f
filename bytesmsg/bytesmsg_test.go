package bytesmsg

import (
	"testing"

	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/channelvoice1"
	"github.com/rob-gra/midi2/systemcommon"
	"github.com/stretchr/testify/require"
)

func TestDispatchChannelVoice1NoteOn(t *testing.T) {
	data := channelvoice1.NewNoteOn(0, 3, bits.NewU7(0x40), bits.NewU7(0x7F)).ToBytes()
	m, err := Dispatch(data)
	require.NoError(t, err)
	require.Equal(t, KindChannelVoice1, m.Kind)
	require.Equal(t, channelvoice1.NoteOn, m.ChannelVoice1.Kind)
	require.Equal(t, data, m.ToBytes())
}

func TestDispatchChannelVoice1ProgramChangeOneDataByte(t *testing.T) {
	data := channelvoice1.NewProgramChange(0, 1, bits.NewU7(5)).ToBytes()
	require.Len(t, data, 2)
	m, err := Dispatch(data)
	require.NoError(t, err)
	require.Equal(t, channelvoice1.ProgramChange, m.ChannelVoice1.Kind)
}

func TestDispatchSystemCommonTuneRequest(t *testing.T) {
	data := systemcommon.NewTuneRequest(0).ToBytes()
	m, err := Dispatch(data)
	require.NoError(t, err)
	require.Equal(t, KindSystemCommon, m.Kind)
	require.Equal(t, systemcommon.TuneRequest, m.SystemCommon.Kind)
}

func TestDispatchSystemCommonSongPositionPointer(t *testing.T) {
	data := []byte{0xF2, 0x10, 0x20}
	m, err := Dispatch(data)
	require.NoError(t, err)
	require.Equal(t, systemcommon.SongPositionPointer, m.SystemCommon.Kind)
	require.Equal(t, data, m.ToBytes())
}

func TestDispatchSysex7(t *testing.T) {
	data := []byte{0xF0, 0x01, 0x02, 0x03, 0xF7}
	m, err := Dispatch(data)
	require.NoError(t, err)
	require.Equal(t, KindSysex7, m.Kind)
	require.Equal(t, data, m.Sysex7.Raw())
	require.Equal(t, data, m.ToBytes())
}

func TestConsumedSplitsTwoMessages(t *testing.T) {
	first := channelvoice1.NewNoteOn(0, 0, bits.NewU7(1), bits.NewU7(2)).ToBytes()
	second := []byte{0xF0, 0x7E, 0xF7}
	stream := append(append([]byte{}, first...), second...)

	n, err := Consumed(stream)
	require.NoError(t, err)
	require.Equal(t, len(first), n)

	m, err := Dispatch(stream[n:])
	require.NoError(t, err)
	require.Equal(t, KindSysex7, m.Kind)
}

func TestDispatchRejectsTrailingBytes(t *testing.T) {
	data := append(channelvoice1.NewNoteOn(0, 0, bits.NewU7(1), bits.NewU7(2)).ToBytes(), 0)
	_, err := Dispatch(data)
	require.Error(t, err)
}

func TestDispatchRejectsUnterminatedSysex(t *testing.T) {
	_, err := Dispatch([]byte{0xF0, 0x01, 0x02})
	require.Error(t, err)
}

func TestDispatchRejectsEmptyInput(t *testing.T) {
	_, err := Dispatch(nil)
	require.Error(t, err)
}
