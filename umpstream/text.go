package umpstream

import (
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/sysex"
)

// TextKind enumerates the UMP Stream family's three free-text members. Each
// shares one wire shape: an arbitrary-length UTF-8 byte payload packetised
// across 4-word packets, Start/Continue/End/Complete tagged via the 2-bit
// format field, with no explicit per-packet byte count (the same
// zero-pad-and-trim convention flexdata's text messages use). Endpoint Name
// and Product Instance ID pack 14 payload bytes per packet (2 from word0's
// low 16 bits, 12 from words 1-3); Function Block Name spends word0's high
// tail byte on its target function block number, leaving 13 payload bytes
// per packet.
type TextKind uint8

const (
	EndpointName TextKind = iota
	ProductInstanceID
	FunctionBlockName
)

var textStatus = [...]uint16{
	EndpointName:      0x03,
	ProductInstanceID: 0x04,
	FunctionBlockName: 0x12,
}

const textStride = 4 // words per packet

func textCap(kind TextKind) int {
	if kind == FunctionBlockName {
		return 13
	}
	return 14
}

// Text is a decoded UMP Stream text message. FunctionBlockNumber is only
// meaningful for FunctionBlockName; the other two kinds leave it zero.
type Text struct {
	Kind                TextKind
	FunctionBlockNumber uint8
	Value               string
}

// NewText builds an EndpointName or ProductInstanceID text message.
func NewText(kind TextKind, value string) Text {
	return Text{Kind: kind, Value: value}
}

// NewFunctionBlockName builds a FunctionBlockName text message addressed to
// the given function block.
func NewFunctionBlockName(functionBlock uint8, value string) Text {
	return Text{Kind: FunctionBlockName, FunctionBlockNumber: functionBlock, Value: value}
}

// ToUMP packetises t's payload into a sequence of 4-word packets.
func (t Text) ToUMP() []uint32 {
	payload := []byte(t.Value)
	capacity := textCap(t.Kind)
	sizes := planTextSizes(len(payload), capacity)
	words := make([]uint32, 0, len(sizes)*textStride)
	offset := 0
	status := textStatus[t.Kind]
	for i, sz := range sizes {
		chunk := payload[offset : offset+sz]
		offset += sz
		var b [14]byte
		copy(b[:], chunk)

		h := header{Form: statusFor(i, len(sizes)), Status: status}
		var tail uint16
		var tailData []byte
		if t.Kind == FunctionBlockName {
			tail = uint16(t.FunctionBlockNumber) << 8
			tail |= uint16(b[0])
			tailData = b[1:13]
		} else {
			tail = uint16(b[0])<<8 | uint16(b[1])
			tailData = b[2:14]
		}
		words = append(words, h.word0(tail))
		words = append(words, packWord(tailData[0:4]), packWord(tailData[4:8]), packWord(tailData[8:12]))
	}
	return words
}

func planTextSizes(n, capacity int) []int {
	if n == 0 {
		return []int{0}
	}
	var sizes []int
	for n > 0 {
		sz := n
		if sz > capacity {
			sz = capacity
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

func unpackWord(w uint32) []byte {
	return []byte{byte(w >> 24), byte(w >> 16), byte(w >> 8), byte(w)}
}

// FromUMP decodes a sequence of 4-word UMP Stream text packets of the given
// kind.
func FromUMP(words []uint32, kind TextKind) (Text, error) {
	if len(words) == 0 || len(words)%textStride != 0 {
		return Text{}, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	status := textStatus[kind]
	n := len(words) / textStride
	packet := func(i int) []uint32 { return words[i*textStride : i*textStride+textStride] }

	if err := sysex.ValidateGroupStatuses(n, func(i int) sysex.Status {
		w0 := packet(i)[0]
		return sysex.Status((w0 >> 26) & 0x3)
	}); err != nil {
		return Text{}, err
	}

	var functionBlock uint8
	var payload []byte
	for i := 0; i < n; i++ {
		p := packet(i)
		_, tail, err := headerFromWord0(p[0], status)
		if err != nil {
			return Text{}, err
		}
		var chunk []byte
		if kind == FunctionBlockName {
			if i == 0 {
				functionBlock = uint8(tail >> 8)
			}
			chunk = append(chunk, byte(tail))
		} else {
			chunk = append(chunk, byte(tail>>8), byte(tail))
		}
		chunk = append(chunk, unpackWord(p[1])...)
		chunk = append(chunk, unpackWord(p[2])...)
		chunk = append(chunk, unpackWord(p[3])...)
		payload = append(payload, chunk...)
	}
	payload = trimTrailingZeros(payload)
	return Text{Kind: kind, FunctionBlockNumber: functionBlock, Value: string(payload)}, nil
}

func trimTrailingZeros(b []byte) []byte {
	i := len(b)
	for i > 0 && b[i-1] == 0 {
		i--
	}
	return b[:i]
}
