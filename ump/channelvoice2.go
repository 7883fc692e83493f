package ump

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/channelvoice2"
	"github.com/rob-gra/midi2/errs"
)

// ChannelVoice2Kind discriminates the decoded MIDI 2.0 channel-voice
// message kinds this module implements.
type ChannelVoice2Kind uint8

const (
	CV2NoteOn ChannelVoice2Kind = iota
	CV2NoteOff
	CV2ControlChange
	CV2ProgramChange
	CV2ChannelPressure
)

const (
	statusCV2NoteOff         = 0x8
	statusCV2NoteOn          = 0x9
	statusCV2ControlChange   = 0xB
	statusCV2ProgramChange   = 0xC
	statusCV2ChannelPressure = 0xD
)

// ChannelVoice2 is a decoded MIDI 2.0 channel-voice message; Kind selects
// exactly one of the following fields.
type ChannelVoice2 struct {
	Kind ChannelVoice2Kind

	NoteOn          channelvoice2.NoteOn
	NoteOff         channelvoice2.NoteOff
	ControlChange   channelvoice2.ControlChange
	ProgramChange   channelvoice2.ProgramChange
	ChannelPressure channelvoice2.ChannelPressure
}

func dispatchChannelVoice2(words []uint32) (ChannelVoice2, error) {
	switch bits.Nibble(words[0], 2) {
	case statusCV2NoteOff:
		m, err := (channelvoice2.NoteOff{}).FromUMP(words)
		if err != nil {
			return ChannelVoice2{}, err
		}
		return ChannelVoice2{Kind: CV2NoteOff, NoteOff: m}, nil
	case statusCV2NoteOn:
		m, err := (channelvoice2.NoteOn{}).FromUMP(words)
		if err != nil {
			return ChannelVoice2{}, err
		}
		return ChannelVoice2{Kind: CV2NoteOn, NoteOn: m}, nil
	case statusCV2ControlChange:
		m, err := (channelvoice2.ControlChange{}).FromUMP(words)
		if err != nil {
			return ChannelVoice2{}, err
		}
		return ChannelVoice2{Kind: CV2ControlChange, ControlChange: m}, nil
	case statusCV2ProgramChange:
		m, err := (channelvoice2.ProgramChange{}).FromUMP(words)
		if err != nil {
			return ChannelVoice2{}, err
		}
		return ChannelVoice2{Kind: CV2ProgramChange, ProgramChange: m}, nil
	case statusCV2ChannelPressure:
		m, err := (channelvoice2.ChannelPressure{}).FromUMP(words)
		if err != nil {
			return ChannelVoice2{}, err
		}
		return ChannelVoice2{Kind: CV2ChannelPressure, ChannelPressure: m}, nil
	default:
		return ChannelVoice2{}, errs.NewInvalidData(errs.ReasonBadDiscriminant)
	}
}

// ToUMP re-encodes a decoded ChannelVoice2 back into its 2-word packet.
func (m ChannelVoice2) ToUMP() ([2]uint32, error) {
	switch m.Kind {
	case CV2NoteOn:
		return m.NoteOn.ToUMP(), nil
	case CV2NoteOff:
		return m.NoteOff.ToUMP(), nil
	case CV2ControlChange:
		return m.ControlChange.ToUMP(), nil
	case CV2ProgramChange:
		return m.ProgramChange.ToUMP(), nil
	case CV2ChannelPressure:
		return m.ChannelPressure.ToUMP(), nil
	default:
		return [2]uint32{}, errs.NewInvalidData(errs.ReasonBadDiscriminant)
	}
}
