// Package umpstream implements the UMP Stream family (UMP message type
// 0xF): endpoint/function-block discovery and configuration. Unlike every
// other UMP family, these messages carry no group nibble; word0's low 16
// bits (beyond the 2-bit format and 10-bit status fields) are
// message-specific.
package umpstream

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/sysex"
)

// UMPType is the message-type nibble identifying the UMP Stream family.
const UMPType = 0xF

// header is the common word0 shape shared by every UMP Stream member: type
// nibble, a 2-bit format (reusing sysex.Status's Complete/Start/Continue/End
// for the text members; fixed-size members are always Complete), and a
// 10-bit status identifying the concrete message.
type header struct {
	Form   sysex.Status
	Status uint16
}

func (h header) word0(tail uint16) uint32 {
	w := uint32(UMPType) << 28
	w |= uint32(h.Form&0x3) << 26
	w |= uint32(h.Status&0x3FF) << 16
	w |= uint32(tail)
	return w
}

func headerFromWord0(w0 uint32, wantStatus uint16) (header, uint16, error) {
	if bits.Nibble(w0, 0) != UMPType {
		return header{}, 0, errs.NewInvalidData(errs.ReasonWrongMessageType)
	}
	status := uint16(w0>>16) & 0x3FF
	if status != wantStatus {
		return header{}, 0, errs.NewInvalidData(errs.ReasonWrongStatus)
	}
	h := header{Form: sysex.Status(bits.Crumb(w0, 2)), Status: status}
	return h, uint16(w0 & 0xFFFF), nil
}

func fixedHeader(status uint16) header {
	return header{Form: sysex.StatusComplete, Status: status}
}

func require4Words(words []uint32) error {
	if len(words) != 4 {
		return errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	return nil
}
