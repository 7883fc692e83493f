package flexdata

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/sysex"
)

// TextKind enumerates every metadata/performance text message the
// standard defines, each a (bank, status) pair sharing one wire shape:
// an arbitrary-length UTF-8 byte payload packetised 12 bytes per 4-word
// packet, Start/Continue/End/Complete tagged like sysex.
type TextKind uint8

const (
	ProjectName TextKind = iota
	CompositionName
	MidiClipName
	CopyrightNotice
	ComposerName
	LyricistName
	ArrangerName
	PublisherName
	PrimaryPerformerName
	AccompanyingPerformerName
	RecordingDate
	RecordingLocation
	UnknownPerformanceText
	Lyrics
	LyricsLanguage
	Ruby
	RubyLanguage
)

var textKindTable = [...]struct {
	bank   Bank
	status uint8
}{
	ProjectName:               {BankMetadataText, 0x1},
	CompositionName:           {BankMetadataText, 0x2},
	MidiClipName:              {BankMetadataText, 0x3},
	CopyrightNotice:           {BankMetadataText, 0x4},
	ComposerName:              {BankMetadataText, 0x5},
	LyricistName:              {BankMetadataText, 0x6},
	ArrangerName:              {BankMetadataText, 0x7},
	PublisherName:             {BankMetadataText, 0x8},
	PrimaryPerformerName:      {BankMetadataText, 0x9},
	AccompanyingPerformerName: {BankMetadataText, 0xA},
	RecordingDate:             {BankMetadataText, 0xB},
	RecordingLocation:         {BankMetadataText, 0xC},
	UnknownPerformanceText:    {BankPerformanceText, 0x0},
	Lyrics:                    {BankPerformanceText, 0x1},
	LyricsLanguage:            {BankPerformanceText, 0x2},
	Ruby:                      {BankPerformanceText, 0x3},
	RubyLanguage:              {BankPerformanceText, 0x4},
}

const textStride = 4  // words per packet
const textCap = 12    // payload bytes per packet (3 trailing words)

// Text is a decoded metadata/performance text message: its Kind, the
// group (and optional channel) it addresses, and its UTF-8 text.
type Text struct {
	Kind    TextKind
	Group   uint8
	Channel *uint8
	Value   string
}

// NewText builds a Text message with no channel addressing (the common
// case: these messages usually address the whole group).
func NewText(kind TextKind, group uint8, value string) Text {
	return Text{Kind: kind, Group: group & 0xF, Value: value}
}

// WithChannel returns a copy of t addressed to a specific channel.
func (t Text) WithChannel(channel uint8) Text {
	ch := channel & 0xF
	t.Channel = &ch
	return t
}

// ToUMP packetises t's payload into a sequence of 4-word packets.
func (t Text) ToUMP() []uint32 {
	payload := []byte(t.Value)
	sizes := planTextSizes(len(payload))
	words := make([]uint32, 0, len(sizes)*textStride)
	offset := 0
	entry := textKindTable[t.Kind]
	for i, sz := range sizes {
		chunk := payload[offset : offset+sz]
		offset += sz
		h := header{Form: statusFor(i, len(sizes)), Group: t.Group, Channel: t.Channel, Bank: entry.bank, Status: entry.status}
		var b [12]byte
		copy(b[:], chunk)
		words = append(words, h.word0())
		words = append(words, packWord(b[0:4]), packWord(b[4:8]), packWord(b[8:12]))
	}
	return words
}

// planTextSizes mirrors sysex's packetisation planning, but with no size
// nibble to stamp: every non-final packet carries a full textCap bytes,
// and an empty payload still produces one Complete packet with zero
// logical bytes (the trailing 12 bytes of that packet are zero padding,
// not payload - see FromUMP's NUL-trim convention).
func planTextSizes(n int) []int {
	if n == 0 {
		return []int{0}
	}
	var sizes []int
	for n > 0 {
		sz := n
		if sz > textCap {
			sz = textCap
		}
		sizes = append(sizes, sz)
		n -= sz
	}
	return sizes
}

func statusFor(i, count int) sysex.Status {
	switch {
	case count == 1:
		return sysex.StatusComplete
	case i == 0:
		return sysex.StatusStart
	case i == count-1:
		return sysex.StatusEnd
	default:
		return sysex.StatusContinue
	}
}

func packWord(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// FromUMP decodes a sequence of 4-word flex-data text packets. Per-packet
// payload is always 12 bytes except the final packet, whose trailing
// zero bytes (if any) are trimmed: this module pads the last packet's
// unused tail with zeros on encode and treats a trailing run of zero
// bytes on decode as padding, not payload, since flex data (unlike
// sysex7/8) carries no explicit per-packet byte count.
func FromUMP(words []uint32, kind TextKind) (Text, error) {
	if len(words) == 0 || len(words)%textStride != 0 {
		return Text{}, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	entry := textKindTable[kind]
	n := len(words) / textStride
	packet := func(i int) []uint32 { return words[i*textStride : i*textStride+textStride] }

	if err := sysex.ValidateGroupStatuses(n, func(i int) sysex.Status {
		return sysex.Status(bits.Crumb(packet(i)[0], 4))
	}); err != nil {
		return Text{}, err
	}

	var h header
	var payload []byte
	for i := 0; i < n; i++ {
		p := packet(i)
		hdr, err := headerFromWord0(p[0], entry.bank, entry.status)
		if err != nil {
			return Text{}, err
		}
		if i == 0 {
			h = hdr
		} else if hdr.Group != h.Group {
			return Text{}, errs.NewInvalidData(errs.ReasonInconsistentGroups)
		}
		payload = append(payload, unpackWord(p[1])...)
		payload = append(payload, unpackWord(p[2])...)
		payload = append(payload, unpackWord(p[3])...)
	}
	payload = trimTrailingZeros(payload)
	return Text{Kind: kind, Group: h.Group, Channel: h.Channel, Value: string(payload)}, nil
}

func unpackWord(w uint32) []byte {
	return []byte{byte(w >> 24), byte(w >> 16), byte(w >> 8), byte(w)}
}

func trimTrailingZeros(b []byte) []byte {
	i := len(b)
	for i > 0 && b[i-1] == 0 {
		i--
	}
	return b[:i]
}
