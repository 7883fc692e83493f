package flexdata

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/sysex"
)

const (
	statusSetTempo          = 0x0
	statusSetTimeSignature  = 0x1
	statusSetMetronome      = 0x2
	statusSetKeySignature   = 0x5
	statusSetChordName      = 0x6
)

func singlePacketHeader(group uint8, status uint8) header {
	return header{Form: sysex.StatusComplete, Group: group & 0xF, Bank: BankSetupAndPerformance, Status: status}
}

func requireOnePacket(words []uint32, wantStatus uint8) (header, error) {
	if len(words) != 4 {
		return header{}, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	h, err := headerFromWord0(words[0], BankSetupAndPerformance, wantStatus)
	if err != nil {
		return header{}, err
	}
	if h.Form != sysex.StatusComplete {
		return header{}, errs.NewInvalidData(errs.ReasonExpectedComplete)
	}
	return h, nil
}

// SetTempo carries the new tempo as ten-nanosecond units per quarter
// note, a 24-bit field held in the upper 24 bits of word1; word1's low
// byte, word2 and word3 are reserved (zero).
type SetTempo struct {
	Group           uint8
	TenNsPerQuarter uint32 // 24-bit field
}

// ToUMP encodes m as its 4-word packet.
func (m SetTempo) ToUMP() [4]uint32 {
	h := singlePacketHeader(m.Group, statusSetTempo)
	return [4]uint32{h.word0(), m.TenNsPerQuarter << 8, 0, 0}
}

// FromUMP decodes a Set Tempo packet.
func (SetTempo) FromUMP(words []uint32) (SetTempo, error) {
	h, err := requireOnePacket(words, statusSetTempo)
	if err != nil {
		return SetTempo{}, err
	}
	return SetTempo{Group: h.Group, TenNsPerQuarter: words[1] >> 8}, nil
}

// SetTimeSignature carries numerator, denominator (as a power-of-two
// exponent, per the standard), and the number of 32nd notes per
// MIDI-clock quarter note.
type SetTimeSignature struct {
	Group              uint8
	Numerator          uint8
	Denominator        uint8
	NumberOf32ndNotes  uint8
}

// ToUMP encodes m as its 4-word packet.
func (m SetTimeSignature) ToUMP() [4]uint32 {
	h := singlePacketHeader(m.Group, statusSetTimeSignature)
	w1 := uint32(0)
	w1 = bits.SetOctet(w1, 0, m.Numerator)
	w1 = bits.SetOctet(w1, 1, m.Denominator)
	w1 = bits.SetOctet(w1, 2, m.NumberOf32ndNotes)
	return [4]uint32{h.word0(), w1, 0, 0}
}

// FromUMP decodes a Set Time Signature packet.
func (SetTimeSignature) FromUMP(words []uint32) (SetTimeSignature, error) {
	h, err := requireOnePacket(words, statusSetTimeSignature)
	if err != nil {
		return SetTimeSignature{}, err
	}
	w1 := words[1]
	return SetTimeSignature{
		Group:             h.Group,
		Numerator:         bits.Octet(w1, 0),
		Denominator:       bits.Octet(w1, 1),
		NumberOf32ndNotes: bits.Octet(w1, 2),
	}, nil
}

// SetMetronome carries the click-and-accent pattern for a metronome.
type SetMetronome struct {
	Group                       uint8
	ClocksPerPrimaryClick       uint8
	BarAccent1, BarAccent2      uint8
	BarAccent3                  uint8
	SubdivisionClicks1          uint8
	SubdivisionClicks2          uint8
}

// ToUMP encodes m as its 4-word packet.
func (m SetMetronome) ToUMP() [4]uint32 {
	h := singlePacketHeader(m.Group, statusSetMetronome)
	w1 := uint32(0)
	w1 = bits.SetOctet(w1, 0, m.ClocksPerPrimaryClick)
	w1 = bits.SetOctet(w1, 1, m.BarAccent1)
	w1 = bits.SetOctet(w1, 2, m.BarAccent2)
	w1 = bits.SetOctet(w1, 3, m.BarAccent3)
	w2 := uint32(0)
	w2 = bits.SetOctet(w2, 0, m.SubdivisionClicks1)
	w2 = bits.SetOctet(w2, 1, m.SubdivisionClicks2)
	return [4]uint32{h.word0(), w1, w2, 0}
}

// FromUMP decodes a Set Metronome packet.
func (SetMetronome) FromUMP(words []uint32) (SetMetronome, error) {
	h, err := requireOnePacket(words, statusSetMetronome)
	if err != nil {
		return SetMetronome{}, err
	}
	w1, w2 := words[1], words[2]
	return SetMetronome{
		Group:                 h.Group,
		ClocksPerPrimaryClick: bits.Octet(w1, 0),
		BarAccent1:            bits.Octet(w1, 1),
		BarAccent2:            bits.Octet(w1, 2),
		BarAccent3:            bits.Octet(w1, 3),
		SubdivisionClicks1:    bits.Octet(w2, 0),
		SubdivisionClicks2:    bits.Octet(w2, 1),
	}, nil
}

// SharpsFlats is a signed count of sharps (positive) or flats (negative)
// applied to a chord's tonic or bass note, packed into 4 bits two's
// complement per the standard.
type SharpsFlats int8

// Tonic is a scale-degree letter name (1=A .. 7=G, 0=no tonic / not
// applicable), the 4-bit encoding the standard's chord-name messages use.
type Tonic uint8

// ChordType enumerates the chord-quality byte the standard defines for
// Set Chord Name (major, minor, diminished, ... ); only the handful of
// common qualities are named here, the rest remain valid raw bytes.
type ChordType uint8

const (
	ChordTypeNone ChordType = iota
	ChordTypeMajor
	ChordTypeMajor6
	ChordTypeMajor7
	ChordTypeMinor
	ChordTypeMinor6
	ChordTypeMinor7
	ChordTypeDiminished
	ChordTypeAugmented
	ChordTypeDominant
)

func packSharpsFlatsTonic(sf SharpsFlats, t Tonic) byte {
	return byte(sf&0xF)<<4 | byte(t&0xF)
}

func unpackSharpsFlatsTonic(b byte) (SharpsFlats, Tonic) {
	sf := SharpsFlats(b >> 4)
	if sf > 7 {
		sf -= 16 // sign-extend the 4-bit two's-complement field
	}
	return sf, Tonic(b & 0xF)
}

// SetChordName carries a chord's tonic, quality, up to four alterations,
// and an optional bass note sharing the same shape.
type SetChordName struct {
	Group                          uint8
	Channel                        *uint8
	TonicSharpsFlats                SharpsFlats
	Tonic                           Tonic
	ChordType                       ChordType
	Alteration1, Alteration2        uint8 // 0 means absent
	Alteration3, Alteration4        uint8
	BassSharpsFlats                 SharpsFlats
	BassTonic                       Tonic
	BassChordType                   ChordType
	BassAlteration1, BassAlteration2 uint8
}

// ToUMP encodes m as its 4-word packet.
func (m SetChordName) ToUMP() [4]uint32 {
	h := header{Form: sysex.StatusComplete, Group: m.Group & 0xF, Channel: m.Channel, Bank: BankSetupAndPerformance, Status: statusSetChordName}
	w1 := uint32(0)
	w1 = bits.SetOctet(w1, 0, packSharpsFlatsTonic(m.TonicSharpsFlats, m.Tonic))
	w1 = bits.SetOctet(w1, 1, uint8(m.ChordType))
	w1 = bits.SetOctet(w1, 2, m.Alteration1)
	w1 = bits.SetOctet(w1, 3, m.Alteration2)
	w2 := uint32(0)
	w2 = bits.SetOctet(w2, 0, m.Alteration3)
	w2 = bits.SetOctet(w2, 1, m.Alteration4)
	w3 := uint32(0)
	w3 = bits.SetOctet(w3, 0, packSharpsFlatsTonic(m.BassSharpsFlats, m.BassTonic))
	w3 = bits.SetOctet(w3, 1, uint8(m.BassChordType))
	w3 = bits.SetOctet(w3, 2, m.BassAlteration1)
	w3 = bits.SetOctet(w3, 3, m.BassAlteration2)
	return [4]uint32{h.word0(), w1, w2, w3}
}

// FromUMP decodes a Set Chord Name packet.
func (SetChordName) FromUMP(words []uint32) (SetChordName, error) {
	h, err := requireOnePacket(words, statusSetChordName)
	if err != nil {
		return SetChordName{}, err
	}
	w1, w2, w3 := words[1], words[2], words[3]
	sf, tonic := unpackSharpsFlatsTonic(bits.Octet(w1, 0))
	bsf, btonic := unpackSharpsFlatsTonic(bits.Octet(w3, 0))
	return SetChordName{
		Group:            h.Group,
		Channel:          h.Channel,
		TonicSharpsFlats: sf,
		Tonic:            tonic,
		ChordType:        ChordType(bits.Octet(w1, 1)),
		Alteration1:      bits.Octet(w1, 2),
		Alteration2:      bits.Octet(w1, 3),
		Alteration3:      bits.Octet(w2, 0),
		Alteration4:      bits.Octet(w2, 1),
		BassSharpsFlats:  bsf,
		BassTonic:        btonic,
		BassChordType:    ChordType(bits.Octet(w3, 1)),
		BassAlteration1:  bits.Octet(w3, 2),
		BassAlteration2:  bits.Octet(w3, 3),
	}, nil
}

// SetKeySignature carries a key's sharps/flats count and tonic, the same
// packed nibble pair Set Chord Name uses for its tonic field.
type SetKeySignature struct {
	Group      uint8
	Channel    *uint8
	SharpsFlats SharpsFlats
	Tonic       Tonic
}

// ToUMP encodes m as its 4-word packet.
func (m SetKeySignature) ToUMP() [4]uint32 {
	h := header{Form: sysex.StatusComplete, Group: m.Group & 0xF, Channel: m.Channel, Bank: BankSetupAndPerformance, Status: statusSetKeySignature}
	w1 := bits.SetOctet(uint32(0), 0, packSharpsFlatsTonic(m.SharpsFlats, m.Tonic))
	return [4]uint32{h.word0(), w1, 0, 0}
}

// FromUMP decodes a Set Key Signature packet.
func (SetKeySignature) FromUMP(words []uint32) (SetKeySignature, error) {
	h, err := requireOnePacket(words, statusSetKeySignature)
	if err != nil {
		return SetKeySignature{}, err
	}
	sf, tonic := unpackSharpsFlatsTonic(bits.Octet(words[1], 0))
	return SetKeySignature{Group: h.Group, Channel: h.Channel, SharpsFlats: sf, Tonic: tonic}, nil
}
