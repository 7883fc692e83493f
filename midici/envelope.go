// Package midici implements the MIDI-CI (Capability Inquiry) sysex
// envelope: Discovery query/reply, which lets an endpoint announce and
// learn peer capabilities before profile configuration or property
// exchange begins, and the Test Protocol echo message used to validate a
// negotiated transport. Every MIDI-CI message shares the same universal
// sysex header and a version byte immediately following its status;
// individual message bodies are carried as a sysex7 payload, over either
// Bytes or UMP, via the sysex package's packetisation engine.
package midici

import "github.com/rob-gra/midi2/sysex"

const (
	universalNonRealTime = 0x7E
	wholeFunctionBlock   = 0x7F
	subID1CI             = 0x0D
)

// Version is the MIDI-CI message-format version byte every message carries
// immediately after its status/sub-ID2 byte.
const Version = 0x02

func drainPayload(it sysex.PayloadIterator) []byte {
	out := make([]byte, 0, it.Len())
	for {
		b, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, b)
	}
}
