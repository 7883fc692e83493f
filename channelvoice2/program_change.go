package channelvoice2

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/property"
)

const statusProgramChange = 0xC

// ProgramChange is a 2-word channel-voice-2 Program Change message. The
// bank-select fields are optional: when absent, word1's bank octets are
// zeroed and word0's bit 31-of-octet3 (bank-valid flag) is clear.
type ProgramChange struct {
	Group      uint8
	Channel    uint8
	Program    bits.U7
	BankMSB    uint8
	BankLSB    uint8
	bankPacked bool
}

// NewProgramChange builds a Program Change with no accompanying bank
// select.
func NewProgramChange(group, channel uint8, program bits.U7) ProgramChange {
	return ProgramChange{Group: group & 0xF, Channel: channel & 0xF, Program: program}
}

// WithBank returns a copy of m carrying an explicit bank select; msb/lsb
// are each truncated to 7 bits per the wire layout.
func (m ProgramChange) WithBank(msb, lsb bits.U7) ProgramChange {
	m.bankPacked = true
	m.BankMSB, m.BankLSB = msb.Into(), lsb.Into()
	return m
}

// HasBank reports whether m carries an explicit bank select.
func (m ProgramChange) HasBank() bool { return m.bankPacked }

// FromUMP decodes a 2-word Program Change packet.
func (ProgramChange) FromUMP(words []uint32) (ProgramChange, error) {
	if len(words) < 2 {
		return ProgramChange{}, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	w0, w1 := words[0], words[1]
	if err := property.ValidateConstantNibble(w0, 0, noteType); err != nil {
		return ProgramChange{}, err
	}
	if err := property.ValidateConstantNibble(w0, 2, statusProgramChange); err != nil {
		return ProgramChange{}, err
	}
	m := ProgramChange{
		Group:   bits.Nibble(w0, 1),
		Channel: bits.Nibble(w0, 3),
		Program: bits.NewU7(bits.Octet(w1, 0)),
	}
	if bits.Bit(w0, 31) {
		m.bankPacked = true
		m.BankMSB = bits.Octet(w1, 2)
		m.BankLSB = bits.Octet(w1, 3)
	}
	return m, nil
}

// ToUMP encodes m as its 2-word packet.
func (m ProgramChange) ToUMP() [2]uint32 {
	w0 := uint32(0)
	w0 = bits.SetNibble(w0, 0, noteType)
	w0 = bits.SetNibble(w0, 1, m.Group)
	w0 = bits.SetNibble(w0, 2, statusProgramChange)
	w0 = bits.SetNibble(w0, 3, m.Channel)
	w0 = bits.SetBit(w0, 31, m.bankPacked)

	w1 := bits.SetOctet(uint32(0), 0, m.Program.Into())
	if m.bankPacked {
		w1 = bits.SetOctet(w1, 2, m.BankMSB)
		w1 = bits.SetOctet(w1, 3, m.BankLSB)
	}
	return [2]uint32{w0, w1}
}
