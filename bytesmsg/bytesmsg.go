// Package bytesmsg implements the top-level legacy byte-stream dispatcher:
// given a slice of bytes holding exactly one message (one status byte plus
// its data bytes for channel-voice and system-common/real-time, or a full
// 0xF0..0xF7 run for a system-exclusive message), Dispatch reads the
// leading status byte and routes to the right family decoder. There is no
// running status: every message carries its own status byte.
package bytesmsg

import (
	"github.com/rob-gra/midi2/channelvoice1"
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/systemcommon"
	"github.com/rob-gra/midi2/sysex"
)

// Kind discriminates a decoded byte-stream message.
type Kind uint8

const (
	KindChannelVoice1 Kind = iota
	KindSysex7
	KindSystemCommon
)

// BytesMessage is a decoded legacy byte-stream message. Kind selects
// exactly one of the following fields.
type BytesMessage struct {
	Kind Kind

	ChannelVoice1 channelvoice1.Message
	Sysex7        *sysex.Sysex7Bytes
	SystemCommon  systemcommon.Message
}

// Consumed reports how many leading bytes of an arbitrary stream the
// message at its head occupies, without decoding it. Dispatch calls this
// internally; it is exported so a caller reading a continuous byte
// stream can split it into per-message slices before calling Dispatch on
// each.
func Consumed(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	status := data[0]

	switch {
	case status == 0xF0:
		for i := 1; i < len(data); i++ {
			if data[i] == 0xF7 {
				return i + 1, nil
			}
		}
		return 0, errs.NewInvalidData(errs.ReasonNoEndByte)

	case status >= 0x80 && status <= 0xEF:
		n, err := channelvoice1.BytesLen(status)
		if err != nil {
			return 0, err
		}
		if len(data) < n {
			return 0, errs.NewInvalidData(errs.ReasonSliceTooShort)
		}
		return n, nil

	default:
		n, err := systemcommon.BytesLen(status)
		if err != nil {
			return 0, err
		}
		if len(data) < n {
			return 0, errs.NewInvalidData(errs.ReasonSliceTooShort)
		}
		return n, nil
	}
}

// Dispatch decodes the single message occupying the whole of data.
func Dispatch(data []byte) (BytesMessage, error) {
	n, err := Consumed(data)
	if err != nil {
		return BytesMessage{}, err
	}
	if n != len(data) {
		return BytesMessage{}, errs.NewInvalidData(errs.ReasonInvalidPayloadCount)
	}

	status := data[0]
	switch {
	case status == 0xF0:
		m, err := sysex.FromSysex7BytesOwned(data)
		if err != nil {
			return BytesMessage{}, err
		}
		return BytesMessage{Kind: KindSysex7, Sysex7: m}, nil

	case status >= 0x80 && status <= 0xEF:
		m, err := channelvoice1.FromBytes(data)
		if err != nil {
			return BytesMessage{}, err
		}
		return BytesMessage{Kind: KindChannelVoice1, ChannelVoice1: m}, nil

	default:
		m, err := systemcommon.FromBytes(data)
		if err != nil {
			return BytesMessage{}, err
		}
		return BytesMessage{Kind: KindSystemCommon, SystemCommon: m}, nil
	}
}

// ToBytes re-encodes a decoded BytesMessage back into its wire form.
func (m BytesMessage) ToBytes() []byte {
	switch m.Kind {
	case KindChannelVoice1:
		return m.ChannelVoice1.ToBytes()
	case KindSysex7:
		return m.Sysex7.Raw()
	case KindSystemCommon:
		return m.SystemCommon.ToBytes()
	default:
		return nil
	}
}
