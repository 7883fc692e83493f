// Package property implements the built-in property kinds every message
// declaration in this module is assembled from: Constant, BitRange,
// OptionalWithPresenceBit, Enum, PackedSevenBit, and PayloadPlaceholder
// (the last of which is purely a marker — see the sysex package for the
// variable-length payload API it stands for).
//
// Go has no build-time macro or reflection-free declarative-field-list
// mechanism, so there is no single generator that turns a field list into
// a wrapper type. Instead, each concrete message type in channelvoice1,
// channelvoice2, flexdata, umpstream, systemcommon, utility, and midici is
// hand-written against the generic, reusable combinators below — the
// field list remains the single source of truth for a message's shape,
// the derivation is just inlined rather than generated.
package property

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
)

// ValidateConstantNibble reports whether word's idx'th nibble holds want.
func ValidateConstantNibble(word uint32, idx int, want uint8) error {
	if bits.Nibble(word, idx) != want {
		return errs.NewInvalidData(errs.ReasonWrongMessageType)
	}
	return nil
}

// StampConstantNibble returns word with its idx'th nibble set to value.
func StampConstantNibble(word uint32, idx int, value uint8) uint32 {
	return bits.SetNibble(word, idx, value)
}

// ValidateConstantOctet reports whether word's idx'th octet holds want.
func ValidateConstantOctet(word uint32, idx int, want uint8, reason string) error {
	if bits.Octet(word, idx) != want {
		return errs.NewInvalidData(reason)
	}
	return nil
}

// StampConstantOctet returns word with its idx'th octet set to value.
func StampConstantOctet(word uint32, idx int, value uint8) uint32 {
	return bits.SetOctet(word, idx, value)
}

// ValidateConstantByte reports whether buf[idx] holds want.
func ValidateConstantByte(buf []byte, idx int, want byte, reason string) error {
	if idx >= len(buf) || buf[idx] != want {
		return errs.NewInvalidData(reason)
	}
	return nil
}

// OptionalFromCrumb decodes an OptionalWithPresenceBit field encoded as a
// presence crumb (value absentPattern means None) plus an adjacent nibble
// carrying the value when present.
func OptionalFromCrumb(word uint32, presenceCrumbIdx int, absentPattern uint8, valueNibbleIdx int) (value uint8, present bool) {
	if bits.Crumb(word, presenceCrumbIdx) == absentPattern {
		return 0, false
	}
	return bits.Nibble(word, valueNibbleIdx), true
}

// WriteOptionalToCrumb is the inverse of OptionalFromCrumb: when v is nil
// the presence crumb is set to absentPattern and the value nibble is left
// zeroed; otherwise the presence crumb is cleared and *v (low 4 bits)
// occupies the value nibble.
func WriteOptionalToCrumb(word uint32, presenceCrumbIdx int, absentPattern uint8, valueNibbleIdx int, v *uint8) uint32 {
	if v == nil {
		word = bits.SetCrumb(word, presenceCrumbIdx, absentPattern)
		return bits.SetNibble(word, valueNibbleIdx, 0)
	}
	word = bits.SetCrumb(word, presenceCrumbIdx, 0)
	return bits.SetNibble(word, valueNibbleIdx, *v)
}

// ValidateEnumByte reports whether v is one of the allowed discriminants.
func ValidateEnumByte(v byte, allowed []byte) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return errs.NewInvalidData(errs.ReasonBadDiscriminant)
}

// WritePackedU14 writes v into buf[offset:offset+2] as two 7-bit bytes,
// LSB first.
func WritePackedU14(buf []byte, offset int, v bits.U14) {
	b := bits.PackU14(v)
	buf[offset], buf[offset+1] = b[0], b[1]
}

// ReadPackedU14 reads a PackedSevenBit<14> field from buf[offset:offset+2].
func ReadPackedU14(buf []byte, offset int) bits.U14 {
	return bits.UnpackU14(buf[offset], buf[offset+1])
}

// WritePackedU21 writes v into buf[offset:offset+3] as three 7-bit bytes,
// LSB first.
func WritePackedU21(buf []byte, offset int, v bits.U21) {
	b := bits.PackU21(v)
	buf[offset], buf[offset+1], buf[offset+2] = b[0], b[1], b[2]
}

// ReadPackedU21 reads a PackedSevenBit<21> field from buf[offset:offset+3].
func ReadPackedU21(buf []byte, offset int) bits.U21 {
	return bits.UnpackU21(buf[offset], buf[offset+1], buf[offset+2])
}

// WritePackedU28 writes v into buf[offset:offset+4] as four 7-bit bytes,
// LSB first.
func WritePackedU28(buf []byte, offset int, v bits.U28) {
	b := bits.PackU28(v)
	buf[offset], buf[offset+1], buf[offset+2], buf[offset+3] = b[0], b[1], b[2], b[3]
}

// ReadPackedU28 reads a PackedSevenBit<28> field from buf[offset:offset+4].
func ReadPackedU28(buf []byte, offset int) bits.U28 {
	return bits.UnpackU28(buf[offset], buf[offset+1], buf[offset+2], buf[offset+3])
}
