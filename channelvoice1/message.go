// Package channelvoice1 implements the MIDI 1.0 channel-voice message
// family, carried either as a legacy status-byte-led Bytes stream or as a
// single-word UMP packet (type 0x2). Both wire forms share one Kind tag
// and one Message value; ToBytes/FromBytes and ToUMP/FromUMP are the
// two projections of the same logical fields.
package channelvoice1

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
)

// Kind discriminates the seven MIDI 1.0 channel-voice message shapes.
type Kind uint8

const (
	NoteOff Kind = iota
	NoteOn
	KeyPressure
	ControlChange
	ProgramChange
	ChannelPressure
	PitchBend
)

// statusNibbles maps Kind to its MIDI 1.0 status nibble (0x8-0xE).
var statusNibbles = [...]uint8{0x8, 0x9, 0xA, 0xB, 0xC, 0xD, 0xE}

// twoDataBytes reports whether Kind carries a second data byte. Program
// Change and Channel Pressure carry only one.
func (k Kind) twoDataBytes() bool {
	return k != ProgramChange && k != ChannelPressure
}

// Message is a single MIDI 1.0 channel-voice event. Data2 is ignored (and
// always encoded/decoded as 0) for ProgramChange and ChannelPressure.
type Message struct {
	Kind    Kind
	Group   uint8 // UMP-only; ignored by the Bytes encoding
	Channel uint8
	Data1   bits.U7
	Data2   bits.U7
}

// NewNoteOff builds a Note Off event.
func NewNoteOff(group, channel uint8, note, velocity bits.U7) Message {
	return Message{Kind: NoteOff, Group: group & 0xF, Channel: channel & 0xF, Data1: note, Data2: velocity}
}

// NewNoteOn builds a Note On event.
func NewNoteOn(group, channel uint8, note, velocity bits.U7) Message {
	return Message{Kind: NoteOn, Group: group & 0xF, Channel: channel & 0xF, Data1: note, Data2: velocity}
}

// NewKeyPressure builds a polyphonic Key Pressure (aftertouch) event.
func NewKeyPressure(group, channel uint8, note, value bits.U7) Message {
	return Message{Kind: KeyPressure, Group: group & 0xF, Channel: channel & 0xF, Data1: note, Data2: value}
}

// NewControlChange builds a Control Change event. controller is the
// 7-bit controller number (MIDI 1.0 has no Controller codec; that is
// channelvoice2's concern).
func NewControlChange(group, channel uint8, controller, value bits.U7) Message {
	return Message{Kind: ControlChange, Group: group & 0xF, Channel: channel & 0xF, Data1: controller, Data2: value}
}

// NewProgramChange builds a Program Change event.
func NewProgramChange(group, channel uint8, program bits.U7) Message {
	return Message{Kind: ProgramChange, Group: group & 0xF, Channel: channel & 0xF, Data1: program}
}

// NewChannelPressure builds a Channel Pressure (monophonic aftertouch)
// event.
func NewChannelPressure(group, channel uint8, value bits.U7) Message {
	return Message{Kind: ChannelPressure, Group: group & 0xF, Channel: channel & 0xF, Data1: value}
}

// NewPitchBend builds a Pitch Bend event from its 14-bit value split into
// LSB (Data1) and MSB (Data2), the MIDI 1.0 wire order.
func NewPitchBend(group, channel uint8, lsb, msb bits.U7) Message {
	return Message{Kind: PitchBend, Group: group & 0xF, Channel: channel & 0xF, Data1: lsb, Data2: msb}
}

// kindFromStatusNibble maps a status nibble back to its Kind, or reports
// failure for a value outside [0x8, 0xE].
func kindFromStatusNibble(nib uint8) (Kind, error) {
	for k, want := range statusNibbles {
		if want == nib {
			return Kind(k), nil
		}
	}
	return 0, errs.NewInvalidData(errs.ReasonWrongStatus)
}
