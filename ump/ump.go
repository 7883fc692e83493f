// Package ump implements the top-level Universal MIDI Packet dispatcher:
// given a slice of 32-bit words holding exactly one message (one packet
// for the single-word and two-word families, a full Start..End packet run
// for the variable-length ones), Dispatch reads the message-type nibble
// in word0's top four bits and routes to the right family decoder.
package ump

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/channelvoice1"
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/systemcommon"
	"github.com/rob-gra/midi2/sysex"
	"github.com/rob-gra/midi2/utility"
)

// Type is the UMP message-type nibble.
type Type uint8

const (
	TypeUtility       Type = 0x0
	TypeSystemCommon  Type = 0x1
	TypeChannelVoice1 Type = 0x2
	TypeSysex7        Type = 0x3
	TypeChannelVoice2 Type = 0x4
	TypeSysex8        Type = 0x5
	TypeFlexData      Type = 0xD
	TypeUMPStream     Type = 0xF
)

// Message is a decoded top-level UMP message. Type selects exactly one
// non-zero-value field; the rest are left at their zero value.
type Message struct {
	Type Type

	Utility       utility.Message
	SystemCommon  systemcommon.Message
	ChannelVoice1 channelvoice1.Message
	Sysex7        *sysex.Sysex7UMP
	ChannelVoice2 ChannelVoice2
	Sysex8        *sysex.Sysex8UMP
	FlexData      *FlexData
	UMPStream     *UMPStream
}

// Consumed reports how many leading words of an arbitrary stream the
// message at its head occupies, without decoding it. Dispatch calls this
// internally; it is exported so a caller reading a continuous word stream
// can split it into per-message slices before calling Dispatch on each.
func Consumed(words []uint32) (int, error) {
	if len(words) == 0 {
		return 0, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	switch Type(bits.Nibble(words[0], 0)) {
	case TypeUtility, TypeSystemCommon, TypeChannelVoice1:
		return 1, nil
	case TypeChannelVoice2:
		if len(words) < 2 {
			return 0, errs.NewInvalidData(errs.ReasonSliceTooShort)
		}
		return 2, nil
	case TypeSysex7:
		return countRun(words, 2, func(w0 uint32) uint8 { return bits.Nibble(w0, 2) })
	case TypeSysex8:
		return countRun(words, 4, func(w0 uint32) uint8 { return bits.Nibble(w0, 2) })
	case TypeFlexData:
		return countRun(words, 4, func(w0 uint32) uint8 { return bits.Crumb(w0, 4) })
	case TypeUMPStream:
		return countRun(words, 4, func(w0 uint32) uint8 { return bits.Crumb(w0, 2) })
	default:
		return 0, errs.NewInvalidData(errs.ReasonWrongMessageType)
	}
}

// countRun walks words stride at a time, reading each packet's 2-bit
// Complete/Start/Continue/End form with formOf, and returns the word
// count of the run starting at a Complete packet or a Start..End
// sequence.
func countRun(words []uint32, stride int, formOf func(uint32) uint8) (int, error) {
	if len(words) < stride {
		return 0, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	switch sysex.Status(formOf(words[0])) {
	case sysex.StatusComplete:
		return stride, nil
	case sysex.StatusStart:
		for i := stride; i+stride <= len(words); i += stride {
			switch sysex.Status(formOf(words[i])) {
			case sysex.StatusEnd:
				return i + stride, nil
			case sysex.StatusContinue:
				continue
			default:
				return 0, errs.NewInvalidData(errs.ReasonExpectedContinue)
			}
		}
		return 0, errs.NewInvalidData(errs.ReasonExpectedEnd)
	default:
		return 0, errs.NewInvalidData(errs.ReasonExpectedBegin)
	}
}

// Dispatch decodes the single message occupying the whole of words.
func Dispatch(words []uint32) (Message, error) {
	n, err := Consumed(words)
	if err != nil {
		return Message{}, err
	}
	if n != len(words) {
		return Message{}, errs.NewInvalidData(errs.ReasonInvalidPayloadCount)
	}

	switch Type(bits.Nibble(words[0], 0)) {
	case TypeUtility:
		m, err := utility.FromUMP(words[0])
		if err != nil {
			return Message{}, err
		}
		return Message{Type: TypeUtility, Utility: m}, nil

	case TypeSystemCommon:
		m, err := systemcommon.FromUMP(words[0])
		if err != nil {
			return Message{}, err
		}
		return Message{Type: TypeSystemCommon, SystemCommon: m}, nil

	case TypeChannelVoice1:
		m, err := channelvoice1.FromUMP(words[0])
		if err != nil {
			return Message{}, err
		}
		return Message{Type: TypeChannelVoice1, ChannelVoice1: m}, nil

	case TypeChannelVoice2:
		cv2, err := dispatchChannelVoice2(words)
		if err != nil {
			return Message{}, err
		}
		return Message{Type: TypeChannelVoice2, ChannelVoice2: cv2}, nil

	case TypeSysex7:
		m, err := sysex.FromSysex7UMPOwned(words)
		if err != nil {
			return Message{}, err
		}
		return Message{Type: TypeSysex7, Sysex7: m}, nil

	case TypeSysex8:
		m, err := sysex.FromSysex8UMPOwned(words)
		if err != nil {
			return Message{}, err
		}
		return Message{Type: TypeSysex8, Sysex8: m}, nil

	case TypeFlexData:
		fd, err := dispatchFlexData(words)
		if err != nil {
			return Message{}, err
		}
		return Message{Type: TypeFlexData, FlexData: fd}, nil

	case TypeUMPStream:
		us, err := dispatchUMPStream(words)
		if err != nil {
			return Message{}, err
		}
		return Message{Type: TypeUMPStream, UMPStream: us}, nil

	default:
		return Message{}, errs.NewInvalidData(errs.ReasonWrongMessageType)
	}
}
