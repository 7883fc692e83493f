// Package bits provides the non-standard-width unsigned integers and the
// nibble/octet/septet/crumb/bit accessors that every property in this
// module is built from.
//
// See companion standard MIDI 2.0 UMP, which packs fields narrower than a
// byte across otherwise byte- or word-aligned wire positions.
package bits

import "golang.org/x/exp/constraints"

func saturate[U constraints.Unsigned](v U, bitWidth int) U {
	max := (U(1) << uint(bitWidth)) - 1
	if v > max {
		return max
	}
	return v
}

// U2 is a 2-bit unsigned value (a "crumb"). Valid range [0, 3].
type U2 struct{ v uint8 }

// NewU2 saturates v into the 2-bit range instead of wrapping: an
// out-of-range literal is a caller bug, not silent data loss.
func NewU2(v uint8) U2 { return U2{saturate(v, 2)} }

// Into returns the underlying value.
func (u U2) Into() uint8 { return u.v }

// U4 is a 4-bit unsigned value (a nibble). Valid range [0, 15].
type U4 struct{ v uint8 }

// NewU4 saturates v into the 4-bit range.
func NewU4(v uint8) U4 { return U4{saturate(v, 4)} }

// Into returns the underlying value.
func (u U4) Into() uint8 { return u.v }

// U7 is a 7-bit unsigned value (a MIDI data byte / septet). Valid range
// [0, 127].
type U7 struct{ v uint8 }

// NewU7 saturates v into the 7-bit range.
func NewU7(v uint8) U7 { return U7{saturate(v, 7)} }

// Into returns the underlying value.
func (u U7) Into() uint8 { return u.v }

// U9 is a 9-bit unsigned value. Valid range [0, 511].
type U9 struct{ v uint16 }

// NewU9 saturates v into the 9-bit range.
func NewU9(v uint16) U9 { return U9{saturate(v, 9)} }

// Into returns the underlying value.
func (u U9) Into() uint16 { return u.v }

// U14 is a 14-bit unsigned value (two packed septets). Valid range
// [0, 16383].
type U14 struct{ v uint16 }

// NewU14 saturates v into the 14-bit range.
func NewU14(v uint16) U14 { return U14{saturate(v, 14)} }

// Into returns the underlying value.
func (u U14) Into() uint16 { return u.v }

// U20 is a 20-bit unsigned value.
type U20 struct{ v uint32 }

// NewU20 saturates v into the 20-bit range.
func NewU20(v uint32) U20 { return U20{saturate(v, 20)} }

// Into returns the underlying value.
func (u U20) Into() uint32 { return u.v }

// U21 is a 21-bit unsigned value (three packed septets).
type U21 struct{ v uint32 }

// NewU21 saturates v into the 21-bit range.
func NewU21(v uint32) U21 { return U21{saturate(v, 21)} }

// Into returns the underlying value.
func (u U21) Into() uint32 { return u.v }

// U25 is a 25-bit unsigned value.
type U25 struct{ v uint32 }

// NewU25 saturates v into the 25-bit range.
func NewU25(v uint32) U25 { return U25{saturate(v, 25)} }

// Into returns the underlying value.
func (u U25) Into() uint32 { return u.v }

// U28 is a 28-bit unsigned value (four packed septets).
type U28 struct{ v uint32 }

// NewU28 saturates v into the 28-bit range.
func NewU28(v uint32) U28 { return U28{saturate(v, 28)} }

// Into returns the underlying value.
func (u U28) Into() uint32 { return u.v }
