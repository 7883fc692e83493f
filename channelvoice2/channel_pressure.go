package channelvoice2

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/property"
)

const statusChannelPressure = 0xD

// ChannelPressure is a 2-word channel-voice-2 Channel Pressure message:
// word1 carries the full 32-bit pressure data word.
type ChannelPressure struct {
	Group   uint8
	Channel uint8
	Data    uint32
}

// NewChannelPressure builds a Channel Pressure message.
func NewChannelPressure(group, channel uint8, data uint32) ChannelPressure {
	return ChannelPressure{Group: group & 0xF, Channel: channel & 0xF, Data: data}
}

// FromUMP decodes a 2-word Channel Pressure packet.
func (ChannelPressure) FromUMP(words []uint32) (ChannelPressure, error) {
	if len(words) < 2 {
		return ChannelPressure{}, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	w0 := words[0]
	if err := property.ValidateConstantNibble(w0, 0, noteType); err != nil {
		return ChannelPressure{}, err
	}
	if err := property.ValidateConstantNibble(w0, 2, statusChannelPressure); err != nil {
		return ChannelPressure{}, err
	}
	return ChannelPressure{Group: bits.Nibble(w0, 1), Channel: bits.Nibble(w0, 3), Data: words[1]}, nil
}

// ToUMP encodes m as its 2-word packet.
func (m ChannelPressure) ToUMP() [2]uint32 {
	w0 := uint32(0)
	w0 = bits.SetNibble(w0, 0, noteType)
	w0 = bits.SetNibble(w0, 1, m.Group)
	w0 = bits.SetNibble(w0, 2, statusChannelPressure)
	w0 = bits.SetNibble(w0, 3, m.Channel)
	return [2]uint32{w0, m.Data}
}
