// Package channelvoice2 implements the MIDI 2.0 channel-voice message
// family carried as 2-word UMP packets (type 0x4), plus the Controller
// codec, which has its own wire layout distinct from the fixed-field
// channel-voice messages.
package channelvoice2

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
)

// ControllerKind discriminates the Controller tagged union. The seven
// enumerated single-purpose indices each get their own kind; the two open
// ranges (sound controllers 70-79, effect depths 91-95) share one kind
// apiece and carry their sub-index explicitly.
type ControllerKind uint8

const (
	Modulation ControllerKind = iota
	Breath
	Pitch7_25
	Volume
	Balance
	Pan
	Expression
	SoundController
	EffectDepth
	Undefined
)

// Controller is a tagged (index, data) pair from the MIDI 2.0 assignable
// and registered controller index table. Pitch7_25 is the one variant
// whose 32-bit data word is not opaque: it splits into a 7-bit note and a
// 25-bit pitch delta. SoundController and EffectDepth carry a sub-index
// (1-10 and 1-5 respectively) alongside their opaque data word.
type Controller struct {
	Kind  ControllerKind
	Index uint8 // sub-index for SoundController/EffectDepth only
	Data  uint32
	Note  bits.U7
	Delta bits.U25
}

// NewModulation builds a Modulation controller.
func NewModulation(data uint32) Controller { return Controller{Kind: Modulation, Data: data} }

// NewBreath builds a Breath controller.
func NewBreath(data uint32) Controller { return Controller{Kind: Breath, Data: data} }

// NewPitch7_25 builds the Pitch7_25 controller from its unpacked fields.
func NewPitch7_25(note bits.U7, delta bits.U25) Controller {
	return Controller{Kind: Pitch7_25, Note: note, Delta: delta}
}

// NewVolume builds a Volume controller.
func NewVolume(data uint32) Controller { return Controller{Kind: Volume, Data: data} }

// NewBalance builds a Balance controller.
func NewBalance(data uint32) Controller { return Controller{Kind: Balance, Data: data} }

// NewPan builds a Pan controller.
func NewPan(data uint32) Controller { return Controller{Kind: Pan, Data: data} }

// NewExpression builds an Expression controller.
func NewExpression(data uint32) Controller { return Controller{Kind: Expression, Data: data} }

// NewSoundController builds a sound-controller variant; index must be in
// [1, 10] (wire indices 70-79).
func NewSoundController(index uint8, data uint32) (Controller, error) {
	if index < 1 || index > 10 {
		return Controller{}, errs.NewInvalidData(errs.ReasonBadDiscriminant)
	}
	return Controller{Kind: SoundController, Index: index, Data: data}, nil
}

// NewEffectDepth builds an effect-depth variant; index must be in [1, 5]
// (wire indices 91-95).
func NewEffectDepth(index uint8, data uint32) (Controller, error) {
	if index < 1 || index > 5 {
		return Controller{}, errs.NewInvalidData(errs.ReasonBadDiscriminant)
	}
	return Controller{Kind: EffectDepth, Index: index, Data: data}, nil
}

// NewUndefined builds the Undefined controller, wire index 0 — the one
// low index the standard's table leaves unassigned.
func NewUndefined(data uint32) Controller { return Controller{Kind: Undefined, Data: data} }

// validateControllerIndex reports whether idx is one of the wire indices
// the standard enumerates: 0 (Undefined), 1,2,3,7,8,10,11,70-79,91-95.
func validateControllerIndex(idx uint8) error {
	switch {
	case idx == 0:
		return nil
	case idx == 1 || idx == 2 || idx == 3 || idx == 7 || idx == 8 || idx == 10 || idx == 11:
		return nil
	case idx >= 70 && idx <= 79:
		return nil
	case idx >= 91 && idx <= 95:
		return nil
	default:
		return errs.NewInvalidData(errs.ReasonBadDiscriminant)
	}
}

// ControllerFromIndexData decodes a wire (index, data) pair into a
// Controller, rejecting any index outside the enumerated table.
func ControllerFromIndexData(index uint8, data uint32) (Controller, error) {
	if err := validateControllerIndex(index); err != nil {
		return Controller{}, err
	}
	switch {
	case index == 0:
		return NewUndefined(data), nil
	case index == 1:
		return NewModulation(data), nil
	case index == 2:
		return NewBreath(data), nil
	case index == 3:
		return NewPitch7_25(bits.NewU7(uint8(data>>25)), bits.NewU25(data&0x01FF_FFFF)), nil
	case index == 7:
		return NewVolume(data), nil
	case index == 8:
		return NewBalance(data), nil
	case index == 10:
		return NewPan(data), nil
	case index == 11:
		return NewExpression(data), nil
	case index >= 70 && index <= 79:
		c, _ := NewSoundController(index-69, data)
		return c, nil
	default: // 91-95
		c, _ := NewEffectDepth(index-90, data)
		return c, nil
	}
}

// IndexData encodes c back into its wire (index, data) pair.
func (c Controller) IndexData() (uint8, uint32) {
	switch c.Kind {
	case Modulation:
		return 1, c.Data
	case Breath:
		return 2, c.Data
	case Pitch7_25:
		return 3, uint32(c.Note.Into())<<25 | c.Delta.Into()
	case Volume:
		return 7, c.Data
	case Balance:
		return 8, c.Data
	case Pan:
		return 10, c.Data
	case Expression:
		return 11, c.Data
	case SoundController:
		return 69 + c.Index, c.Data
	case EffectDepth:
		return 90 + c.Index, c.Data
	default: // Undefined
		return 0, c.Data
	}
}
