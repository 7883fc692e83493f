// Package systemcommon implements the System Common and System
// Real-Time messages: single status-byte messages (optionally carrying
// one or two 7-bit data bytes) shared by both wire encodings, UMP message
// type 0x1 and legacy Bytes status range 0xF1-0xFF.
package systemcommon

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
)

// UMPType is the message-type nibble identifying the System Common family.
const UMPType = 0x1

// Kind enumerates the ten System Common / System Real-Time message kinds:
// seven zero-data-byte kinds (Tune Request, Timing Clock, Start, Continue,
// Stop, Active Sensing, Reset) plus three data-bearing kinds (Time Code,
// Song Position Pointer, Song Select) the MIDI 2.0 standard defines
// alongside them.
type Kind uint8

const (
	TimeCode Kind = iota
	SongPositionPointer
	SongSelect
	TuneRequest
	TimingClock
	Start
	Continue
	Stop
	ActiveSensing
	Reset
)

var statusBytes = [...]uint8{
	TimeCode:            0xF1,
	SongPositionPointer: 0xF2,
	SongSelect:          0xF3,
	TuneRequest:         0xF6,
	TimingClock:         0xF8,
	Start:               0xFA,
	Continue:            0xFB,
	Stop:                0xFC,
	ActiveSensing:       0xFE,
	Reset:               0xFF,
}

func (k Kind) dataByteCount() int {
	switch k {
	case TimeCode, SongSelect:
		return 1
	case SongPositionPointer:
		return 2
	default:
		return 0
	}
}

func kindFromStatusByte(status uint8) (Kind, error) {
	for k, s := range statusBytes {
		if s == status {
			return Kind(k), nil
		}
	}
	return 0, errs.NewInvalidData(errs.ReasonBadDiscriminant)
}

// Message is a decoded System Common / System Real-Time message. Group
// only applies to the UMP encoding; Data1/Data2 are populated according to
// Kind's data-byte count (SongPositionPointer uses both as its 14-bit
// position's LSB/MSB, TimeCode and SongSelect use only Data1).
type Message struct {
	Kind         Kind
	Group        uint8
	Data1, Data2 bits.U7
}

// NewTimeCode builds a MIDI Time Code Quarter Frame message; dataByte packs
// the quarter-frame message-type nibble (high) and value nibble (low) per
// the standard, but this module does not interpret the nibble split.
func NewTimeCode(group uint8, dataByte bits.U7) Message {
	return Message{Kind: TimeCode, Group: group & 0xF, Data1: dataByte}
}

// NewSongPositionPointer builds a Song Position Pointer from a 14-bit
// position, split LSB-first as the standard requires.
func NewSongPositionPointer(group uint8, position bits.U14) Message {
	b := bits.PackU14(position)
	return Message{Kind: SongPositionPointer, Group: group & 0xF, Data1: bits.NewU7(b[0]), Data2: bits.NewU7(b[1])}
}

// NewSongSelect builds a Song Select message for the given song number.
func NewSongSelect(group uint8, song bits.U7) Message {
	return Message{Kind: SongSelect, Group: group & 0xF, Data1: song}
}

// NewTuneRequest, NewTimingClock, NewStart, NewContinue, NewStop,
// NewActiveSensing, and NewReset build the seven zero-data-byte System
// Common / Real-Time messages.
func NewTuneRequest(group uint8) Message   { return Message{Kind: TuneRequest, Group: group & 0xF} }
func NewTimingClock(group uint8) Message   { return Message{Kind: TimingClock, Group: group & 0xF} }
func NewStart(group uint8) Message         { return Message{Kind: Start, Group: group & 0xF} }
func NewContinue(group uint8) Message      { return Message{Kind: Continue, Group: group & 0xF} }
func NewStop(group uint8) Message          { return Message{Kind: Stop, Group: group & 0xF} }
func NewActiveSensing(group uint8) Message { return Message{Kind: ActiveSensing, Group: group & 0xF} }
func NewReset(group uint8) Message         { return Message{Kind: Reset, Group: group & 0xF} }

// Position reconstructs the 14-bit position carried by a
// SongPositionPointer message.
func (m Message) Position() bits.U14 {
	return bits.UnpackU14(m.Data1.Into(), m.Data2.Into())
}
