package channelvoice2

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/property"
)

// noteType is the UMP type nibble for every channel-voice-2 message.
const noteType = 0x4

const (
	statusNoteOff = 0x8
	statusNoteOn  = 0x9
)

// noteFields is the wire shape note_on.rs and note_off.rs share (the
// original's note_message! macro instantiates one body per status); NoteOn
// and NoteOff are thin, differently-statused wrappers around it.
type noteFields struct {
	Group     uint8
	Channel   uint8
	Note      bits.U7
	Velocity  uint16
	Attribute Attribute
}

func buildNoteWords(status uint8, f noteFields) [2]uint32 {
	w0 := uint32(0)
	w0 = bits.SetNibble(w0, 0, noteType)
	w0 = bits.SetNibble(w0, 1, f.Group)
	w0 = bits.SetNibble(w0, 2, status)
	w0 = bits.SetNibble(w0, 3, f.Channel)
	w0 = bits.SetOctet(w0, 2, f.Note.Into())
	w0 = bits.SetOctet(w0, 3, f.Attribute.typeByte())

	w1 := uint32(f.Velocity)<<16 | uint32(f.Attribute.Data)
	return [2]uint32{w0, w1}
}

func parseNoteWords(words []uint32, wantStatus uint8) (noteFields, error) {
	if len(words) < 2 {
		return noteFields{}, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	w0, w1 := words[0], words[1]
	if err := property.ValidateConstantNibble(w0, 0, noteType); err != nil {
		return noteFields{}, err
	}
	if err := property.ValidateConstantNibble(w0, 2, wantStatus); err != nil {
		return noteFields{}, err
	}
	attr, err := attributeFromTypeByte(bits.Octet(w0, 3), uint16(w1&0xFFFF))
	if err != nil {
		return noteFields{}, err
	}
	return noteFields{
		Group:     bits.Nibble(w0, 1),
		Channel:   bits.Nibble(w0, 3),
		Note:      bits.NewU7(bits.Octet(w0, 2)),
		Velocity:  uint16(w1 >> 16),
		Attribute: attr,
	}, nil
}

// NoteOn is a 2-word channel-voice-2 Note On message (status 0x9).
type NoteOn struct{ fields noteFields }

// NewNoteOn builds a Note On with no per-note attribute.
func NewNoteOn(group, channel uint8, note bits.U7, velocity uint16) NoteOn {
	return NoteOn{noteFields{Group: group & 0xF, Channel: channel & 0xF, Note: note, Velocity: velocity}}
}

// WithAttribute returns a copy of m carrying the given per-note attribute.
func (m NoteOn) WithAttribute(a Attribute) NoteOn { m.fields.Attribute = a; return m }

// FromUMP decodes a 2-word Note On packet.
func (NoteOn) FromUMP(words []uint32) (NoteOn, error) {
	f, err := parseNoteWords(words, statusNoteOn)
	return NoteOn{f}, err
}

// ToUMP encodes m as its 2-word packet.
func (m NoteOn) ToUMP() [2]uint32 { return buildNoteWords(statusNoteOn, m.fields) }

// Group returns m's group nibble.
func (m NoteOn) Group() uint8 { return m.fields.Group }

// Channel returns m's channel nibble.
func (m NoteOn) Channel() uint8 { return m.fields.Channel }

// Note returns m's 7-bit note number.
func (m NoteOn) Note() bits.U7 { return m.fields.Note }

// Velocity returns m's 16-bit velocity.
func (m NoteOn) Velocity() uint16 { return m.fields.Velocity }

// Attribute returns m's per-note attribute, or NoAttribute.
func (m NoteOn) Attribute() Attribute { return m.fields.Attribute }

// NoteOff is a 2-word channel-voice-2 Note Off message (status 0x8).
type NoteOff struct{ fields noteFields }

// NewNoteOff builds a Note Off with no per-note attribute.
func NewNoteOff(group, channel uint8, note bits.U7, velocity uint16) NoteOff {
	return NoteOff{noteFields{Group: group & 0xF, Channel: channel & 0xF, Note: note, Velocity: velocity}}
}

// WithAttribute returns a copy of m carrying the given per-note attribute.
func (m NoteOff) WithAttribute(a Attribute) NoteOff { m.fields.Attribute = a; return m }

// FromUMP decodes a 2-word Note Off packet.
func (NoteOff) FromUMP(words []uint32) (NoteOff, error) {
	f, err := parseNoteWords(words, statusNoteOff)
	return NoteOff{f}, err
}

// ToUMP encodes m as its 2-word packet.
func (m NoteOff) ToUMP() [2]uint32 { return buildNoteWords(statusNoteOff, m.fields) }

// Group returns m's group nibble.
func (m NoteOff) Group() uint8 { return m.fields.Group }

// Channel returns m's channel nibble.
func (m NoteOff) Channel() uint8 { return m.fields.Channel }

// Note returns m's 7-bit note number.
func (m NoteOff) Note() bits.U7 { return m.fields.Note }

// Velocity returns m's 16-bit velocity.
func (m NoteOff) Velocity() uint16 { return m.fields.Velocity }

// Attribute returns m's per-note attribute, or NoAttribute.
func (m NoteOff) Attribute() Attribute { return m.fields.Attribute }
