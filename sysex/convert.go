package sysex

// ToUMP re-encodes a Bytes-wire sysex7 message as a UMP sysex7 message on
// the given group.
func (m *Sysex7Bytes) ToUMP(group uint8) *Sysex7UMP {
	payload := flattenPayload(m.Payload())
	out := NewSysex7UMP(group)
	wordCount := len(planSizes(len(payload), sysex7Cap)) * sysex7Stride
	out.buf.TryResize(wordCount)
	out.rebuild(payload)
	return out
}

// ToBytes re-encodes a UMP sysex7 message as a Bytes-wire message; the
// group nibble, which Bytes sysex7 has no room for, is discarded.
func (m *Sysex7UMP) ToBytes() *Sysex7Bytes {
	payload := flattenPayload(m.Payload())
	out := NewSysex7Bytes()
	out.buf.TryResize(len(payload) + 2)
	raw := out.buf.UnitsMut()
	raw[0] = 0xF0
	copy(raw[1:], payload)
	raw[len(raw)-1] = 0xF7
	return out
}
