package channelvoice2

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
)

// AttributeKind discriminates the per-note attribute word0 carries for
// NoteOn/NoteOff: its type byte lives in octet3 of word0, and when present
// its 16-bit data lives in the low half of word1.
type AttributeKind uint8

const (
	AttributeNone AttributeKind = iota
	AttributeManufacturerSpecific
	AttributeProfileSpecific
	AttributePitch7_9
)

// Attribute is a (kind, 16-bit data) pair; AttributeNone carries no data.
type Attribute struct {
	Kind AttributeKind
	Data uint16
}

// NoAttribute is the zero-value, type-0 attribute.
var NoAttribute = Attribute{Kind: AttributeNone}

func attributeFromTypeByte(typ byte, data uint16) (Attribute, error) {
	switch typ {
	case 0:
		return Attribute{Kind: AttributeNone}, nil
	case 1:
		return Attribute{Kind: AttributeManufacturerSpecific, Data: data}, nil
	case 2:
		return Attribute{Kind: AttributeProfileSpecific, Data: data}, nil
	case 3:
		return Attribute{Kind: AttributePitch7_9, Data: data}, nil
	default:
		return Attribute{}, errs.NewInvalidData(errs.ReasonBadDiscriminant)
	}
}

func (a Attribute) typeByte() byte { return byte(a.Kind) }

// Pitch7_9 unpacks an AttributePitch7_9's 16-bit data into its 7-bit note
// and 9-bit fractional parts.
func (a Attribute) Pitch7_9() (bits.U7, bits.U9) {
	return bits.NewU7(uint8(a.Data >> 9)), bits.NewU9(a.Data & 0x1FF)
}

// NewPitch7_9Attribute packs a 7-bit note and 9-bit fraction into an
// AttributePitch7_9.
func NewPitch7_9Attribute(note bits.U7, frac bits.U9) Attribute {
	return Attribute{Kind: AttributePitch7_9, Data: uint16(note.Into())<<9 | frac.Into()}
}
