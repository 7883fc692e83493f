// Package sysex implements the variable-length System Exclusive payload
// engine: packing an arbitrary-length byte payload into a sequence of
// fixed-capacity packets with correct Start/Continue/End status tagging,
// and the reverse — flattening a packet sequence back into a payload
// iterator. This is the hardest part of the module.
//
// Three concrete encodings share the same packetisation shape:
// sysex7-over-Bytes (a single 0xF0..0xF7-framed byte stream, no packets),
// sysex7-over-UMP (2-word packets, up to 6 payload bytes each) and
// sysex8-over-UMP (4-word packets, up to 13 payload bytes each plus a
// constant per-packet stream-id byte). flexdata and umpstream reuse the
// same Status progression (their 2-bit "format" field uses the identical
// Complete/Start/Continue/End encoding) via ValidateGroupStatuses.
package sysex

// Status tags a packet's role in a multi-packet sequence. The same four
// values are used by sysex7, sysex8, flex-data ("format") and ump-stream
// text messages.
type Status uint8

const (
	StatusComplete Status = 0
	StatusStart    Status = 1
	StatusContinue Status = 2
	StatusEnd      Status = 3
)
