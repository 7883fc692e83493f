package sysex

import (
	"testing"

	"pgregory.net/rapid"
)

// TestSysex7UMPPayloadRoundTripProperty checks the round-trip law: for any
// 7-bit payload, packetising then parsing then flattening returns the
// original bytes, regardless of length or group.
func TestSysex7UMPPayloadRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		group := uint8(rapid.IntRange(0, 15).Draw(rt, "group"))
		n := rapid.IntRange(0, 64).Draw(rt, "n")
		payload := make([]byte, n)
		for i := range payload {
			payload[i] = byte(rapid.IntRange(0, 127).Draw(rt, "byte"))
		}

		m := NewSysex7UMP(group)
		if err := m.SetPayload(FromSlice(payload)); err != nil {
			rt.Fatalf("SetPayload: %v", err)
		}

		parsed, err := FromSysex7UMPOwned(m.Raw())
		if err != nil {
			rt.Fatalf("FromSysex7UMPOwned: %v", err)
		}
		if parsed.Group() != group {
			rt.Fatalf("group mismatch: got %d want %d", parsed.Group(), group)
		}
		got := flattenPayload(parsed.Payload())
		if len(got) != len(payload) {
			rt.Fatalf("length mismatch: got %d want %d", len(got), len(payload))
		}
		for i := range payload {
			if got[i] != payload[i] {
				rt.Fatalf("byte %d mismatch: got %d want %d", i, got[i], payload[i])
			}
		}
	})
}

// TestSysex8UMPPayloadRoundTripProperty is the sysex8 analogue, also
// carrying a stream id through the round trip.
func TestSysex8UMPPayloadRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		group := uint8(rapid.IntRange(0, 15).Draw(rt, "group"))
		streamID := uint8(rapid.IntRange(0, 255).Draw(rt, "stream"))
		n := rapid.IntRange(0, 64).Draw(rt, "n")
		payload := make([]byte, n)
		for i := range payload {
			payload[i] = byte(rapid.IntRange(0, 255).Draw(rt, "byte"))
		}

		m := NewSysex8UMP(group, streamID)
		if err := m.SetPayload(FromSlice(payload)); err != nil {
			rt.Fatalf("SetPayload: %v", err)
		}

		parsed, err := FromSysex8UMPOwned(m.Raw())
		if err != nil {
			rt.Fatalf("FromSysex8UMPOwned: %v", err)
		}
		if parsed.StreamID() != streamID {
			rt.Fatalf("stream id mismatch: got %d want %d", parsed.StreamID(), streamID)
		}
		got := flattenPayload(parsed.Payload())
		for i := range payload {
			if got[i] != payload[i] {
				rt.Fatalf("byte %d mismatch: got %d want %d", i, got[i], payload[i])
			}
		}
	})
}

// TestSysex7UMPInsertThenRemoveIsIdentityProperty checks that inserting n
// bytes at an offset and then removing that same range restores the
// original payload (the insert/remove inverse law).
func TestSysex7UMPInsertThenRemoveIsIdentityProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := sequentialPayload(rapid.IntRange(1, 40).Draw(rt, "baseLen"))
		at := rapid.IntRange(0, len(base)).Draw(rt, "at")
		insLen := rapid.IntRange(0, 10).Draw(rt, "insLen")
		ins := make([]byte, insLen)
		for i := range ins {
			ins[i] = byte(rapid.IntRange(0, 127).Draw(rt, "insByte"))
		}

		m := NewSysex7UMP(0)
		if err := m.SetPayload(FromSlice(base)); err != nil {
			rt.Fatalf("SetPayload: %v", err)
		}
		if err := m.InsertPayload(at, FromSlice(ins)); err != nil {
			rt.Fatalf("InsertPayload: %v", err)
		}

		afterInsert := flattenPayload(m.Payload())
		removed := append([]byte(nil), afterInsert[:at]...)
		removed = append(removed, afterInsert[at+insLen:]...)
		if len(removed) != len(base) {
			rt.Fatalf("length mismatch after remove: got %d want %d", len(removed), len(base))
		}
		for i := range base {
			if removed[i] != base[i] {
				rt.Fatalf("byte %d mismatch: got %d want %d", i, removed[i], base[i])
			}
		}
	})
}
