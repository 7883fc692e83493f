package channelvoice2

import (
	"testing"

	"github.com/rob-gra/midi2/bits"
	"pgregory.net/rapid"
)

// TestControllerIndexDataRoundTripProperty checks that every Controller
// built through a public constructor survives an IndexData/FromIndexData
// round trip, across all five kinds the fuzz picks from.
func TestControllerIndexDataRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		data := rapid.Uint32().Draw(rt, "data")
		kind := rapid.IntRange(0, 4).Draw(rt, "kind")

		var c Controller
		switch kind {
		case 0:
			c = NewModulation(data)
		case 1:
			note := bits.NewU7(uint8(rapid.IntRange(0, 127).Draw(rt, "note")))
			delta := bits.NewU25(rapid.Uint32Range(0, 0x01FF_FFFF).Draw(rt, "delta"))
			c = NewPitch7_25(note, delta)
		case 2:
			idx := uint8(rapid.IntRange(1, 10).Draw(rt, "soundIdx"))
			c, _ = NewSoundController(idx, data)
		case 3:
			idx := uint8(rapid.IntRange(1, 5).Draw(rt, "effectIdx"))
			c, _ = NewEffectDepth(idx, data)
		default:
			c = NewExpression(data)
		}

		index, wireData := c.IndexData()
		back, err := ControllerFromIndexData(index, wireData)
		if err != nil {
			rt.Fatalf("unexpected error decoding enumerated index %d: %v", index, err)
		}
		if back != c {
			rt.Fatalf("round trip mismatch: %+v != %+v", back, c)
		}
	})
}

// TestNoteOnPacketRoundTripProperty checks every NoteOn built from random
// fields survives an encode/decode round trip.
func TestNoteOnPacketRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		group := uint8(rapid.IntRange(0, 15).Draw(rt, "group"))
		channel := uint8(rapid.IntRange(0, 15).Draw(rt, "channel"))
		note := bits.NewU7(uint8(rapid.IntRange(0, 127).Draw(rt, "note")))
		velocity := uint16(rapid.IntRange(0, 0xFFFF).Draw(rt, "velocity"))

		m := NewNoteOn(group, channel, note, velocity)
		words := m.ToUMP()
		back, err := NoteOn{}.FromUMP(words[:])
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		if back != m {
			rt.Fatalf("round trip mismatch: %+v != %+v", back, m)
		}
	})
}
