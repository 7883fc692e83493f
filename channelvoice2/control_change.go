package channelvoice2

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/property"
)

const statusControlChange = 0xB

// ControlChange is a 2-word channel-voice-2 Control Change message: word0
// carries group/channel plus the Controller's wire index in octet2, word1
// carries the Controller's full data word.
type ControlChange struct {
	Group      uint8
	Channel    uint8
	Controller Controller
}

// NewControlChange builds a Control Change from a decoded Controller.
func NewControlChange(group, channel uint8, c Controller) ControlChange {
	return ControlChange{Group: group & 0xF, Channel: channel & 0xF, Controller: c}
}

// FromUMP decodes a 2-word Control Change packet.
func (ControlChange) FromUMP(words []uint32) (ControlChange, error) {
	if len(words) < 2 {
		return ControlChange{}, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	w0, w1 := words[0], words[1]
	if err := property.ValidateConstantNibble(w0, 0, noteType); err != nil {
		return ControlChange{}, err
	}
	if err := property.ValidateConstantNibble(w0, 2, statusControlChange); err != nil {
		return ControlChange{}, err
	}
	c, err := ControllerFromIndexData(bits.Octet(w0, 2), w1)
	if err != nil {
		return ControlChange{}, err
	}
	return ControlChange{Group: bits.Nibble(w0, 1), Channel: bits.Nibble(w0, 3), Controller: c}, nil
}

// ToUMP encodes m as its 2-word packet.
func (m ControlChange) ToUMP() [2]uint32 {
	index, data := m.Controller.IndexData()
	w0 := uint32(0)
	w0 = bits.SetNibble(w0, 0, noteType)
	w0 = bits.SetNibble(w0, 1, m.Group)
	w0 = bits.SetNibble(w0, 2, statusControlChange)
	w0 = bits.SetNibble(w0, 3, m.Channel)
	w0 = bits.SetOctet(w0, 2, index)
	return [2]uint32{w0, data}
}
