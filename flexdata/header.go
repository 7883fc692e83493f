// Package flexdata implements the MIDI 2.0 Flex Data message family (UMP
// type 0xD): multi-packet metadata/performance text and a handful of
// single-packet structured setup messages (tempo, time signature,
// metronome, key signature, chord name).
package flexdata

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/property"
	"github.com/rob-gra/midi2/sysex"
)

// UMPType is the UMP message-type nibble for every flex-data packet.
const UMPType = 0xD

// Bank discriminates the three flex-data status banks.
type Bank uint8

const (
	BankSetupAndPerformance Bank = 0x0
	BankMetadataText        Bank = 0x1
	BankPerformanceText     Bank = 0x2
)

// header is the 1-word packet prefix every flex-data packet shares:
// Form (reusing sysex.Status's Complete/Start/Continue/End four values),
// an Addrs flag (per-channel vs whole-group addressing), an optional
// channel nibble, a bank byte, and a status byte.
type header struct {
	Form    sysex.Status
	Group   uint8
	Channel *uint8 // nil when Addrs addresses the whole group, not a channel
	Bank    Bank
	Status  uint8
}

func (h header) word0() uint32 {
	w := uint32(0)
	w = bits.SetNibble(w, 0, UMPType)
	w = bits.SetNibble(w, 1, h.Group)
	w = bits.SetCrumb(w, 4, uint8(h.Form))
	if h.Channel != nil {
		w = bits.SetCrumb(w, 5, 0)
		w = bits.SetNibble(w, 3, *h.Channel)
	} else {
		w = bits.SetCrumb(w, 5, 1)
	}
	w = bits.SetOctet(w, 2, uint8(h.Bank))
	w = bits.SetOctet(w, 3, h.Status)
	return w
}

func headerFromWord0(w0 uint32, wantBank Bank, wantStatus uint8) (header, error) {
	if err := property.ValidateConstantNibble(w0, 0, UMPType); err != nil {
		return header{}, err
	}
	if err := property.ValidateConstantOctet(w0, 2, uint8(wantBank), errs.ReasonWrongBank); err != nil {
		return header{}, err
	}
	if err := property.ValidateConstantOctet(w0, 3, wantStatus, errs.ReasonWrongStatus); err != nil {
		return header{}, err
	}
	h := header{
		Form:   sysex.Status(bits.Crumb(w0, 4)),
		Group:  bits.Nibble(w0, 1),
		Bank:   wantBank,
		Status: wantStatus,
	}
	if bits.Crumb(w0, 5) == 0 {
		ch := bits.Nibble(w0, 3)
		h.Channel = &ch
	}
	return h, nil
}
