package midici

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/sysex"
)

// TestProtocolKind distinguishes a test-protocol query from its echoed
// reply; both carry an identical body.
type TestProtocolKind uint8

const (
	TestProtocolQuery TestProtocolKind = iota
	TestProtocolReply
)

var testProtocolStatus = [...]byte{TestProtocolQuery: 0x13, TestProtocolReply: 0x14}

const testPatternSize = 48

// testPattern is the fixed 0..47 byte sequence every test-protocol message
// carries, letting a receiver verify the transport delivered every byte
// unmodified.
func testPattern() [testPatternSize]byte {
	var b [testPatternSize]byte
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// TestProtocol is a decoded MIDI-CI test-protocol message, used to
// exercise a negotiated transport end to end before relying on it for
// profile or property data.
type TestProtocol struct {
	Group          uint8
	Source         bits.U28
	Destination    bits.U28
	AuthorityLevel bits.U7
}

// NewTestProtocolQuery builds a query carrying the fixed test pattern.
func NewTestProtocolQuery(group uint8, source, destination bits.U28, authorityLevel bits.U7) TestProtocol {
	return TestProtocol{Group: group, Source: source, Destination: destination, AuthorityLevel: authorityLevel}
}

// NewTestProtocolReply echoes back a query's authority level.
func NewTestProtocolReply(group uint8, source, destination bits.U28, authorityLevel bits.U7) TestProtocol {
	return TestProtocol{Group: group, Source: source, Destination: destination, AuthorityLevel: authorityLevel}
}

func (t TestProtocol) payload(status byte) []byte {
	out := make([]byte, 0, 5+4+4+1+testPatternSize)
	out = append(out, universalNonRealTime, wholeFunctionBlock, subID1CI, status, Version)
	src := bits.PackU28(t.Source)
	out = append(out, src[:]...)
	dst := bits.PackU28(t.Destination)
	out = append(out, dst[:]...)
	out = append(out, t.AuthorityLevel.Into())
	pattern := testPattern()
	out = append(out, pattern[:]...)
	return out
}

func parseTestProtocol(data []byte) (TestProtocol, TestProtocolKind, error) {
	const wantLen = 5 + 4 + 4 + 1 + testPatternSize
	if len(data) != wantLen {
		return TestProtocol{}, 0, errs.NewInvalidData(errs.ReasonInvalidPayloadCount)
	}
	if data[0] != universalNonRealTime || data[2] != subID1CI {
		return TestProtocol{}, 0, errs.NewInvalidData(errs.ReasonWrongMessageType)
	}
	var kind TestProtocolKind
	switch data[3] {
	case testProtocolStatus[TestProtocolQuery]:
		kind = TestProtocolQuery
	case testProtocolStatus[TestProtocolReply]:
		kind = TestProtocolReply
	default:
		return TestProtocol{}, 0, errs.NewInvalidData(errs.ReasonWrongStatus)
	}

	off := 5
	src4 := data[off : off+4]
	off += 4
	dst4 := data[off : off+4]
	off += 4
	authorityLevel := bits.NewU7(data[off])
	off++
	pattern := data[off : off+testPatternSize]
	want := testPattern()
	for i, b := range pattern {
		if b != want[i] {
			return TestProtocol{}, 0, errs.NewInvalidData(errs.ReasonInvalidPayloadCount)
		}
	}

	t := TestProtocol{
		Source:         bits.UnpackU28(src4[0], src4[1], src4[2], src4[3]),
		Destination:    bits.UnpackU28(dst4[0], dst4[1], dst4[2], dst4[3]),
		AuthorityLevel: authorityLevel,
	}
	return t, kind, nil
}

// ToSysex7Bytes encodes t as a Bytes-wire 0xF0..0xF7 sysex7 stream.
func (t TestProtocol) ToSysex7Bytes(kind TestProtocolKind) (*sysex.Sysex7Bytes, error) {
	body := t.payload(testProtocolStatus[kind])
	full := make([]byte, 0, len(body)+2)
	full = append(full, 0xF0)
	full = append(full, body...)
	full = append(full, 0xF7)
	return sysex.FromSysex7BytesOwned(full)
}

// TestProtocolFromSysex7Bytes decodes a Bytes-wire test-protocol message.
func TestProtocolFromSysex7Bytes(m *sysex.Sysex7Bytes) (TestProtocol, TestProtocolKind, error) {
	raw := m.Raw()
	if len(raw) < 2 {
		return TestProtocol{}, 0, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	return parseTestProtocol(raw[1 : len(raw)-1])
}

// ToSysex8UMP encodes t as a UMP sysex8 packet sequence, the representation
// the reference implementation's conformance vectors use for this message.
func (t TestProtocol) ToSysex8UMP(streamID uint8, kind TestProtocolKind) (*sysex.Sysex8UMP, error) {
	body := t.payload(testProtocolStatus[kind])
	m := sysex.NewSysex8UMP(t.Group, streamID)
	if err := m.SetPayload(sysex.FromSlice(body)); err != nil {
		return nil, err
	}
	return m, nil
}

// TestProtocolFromSysex8UMP decodes a UMP sysex8 test-protocol message, stamping Group
// from the packet sequence.
func TestProtocolFromSysex8UMP(m *sysex.Sysex8UMP) (TestProtocol, TestProtocolKind, error) {
	t, kind, err := parseTestProtocol(drainPayload(m.Payload()))
	if err != nil {
		return TestProtocol{}, 0, err
	}
	t.Group = m.Group()
	return t, kind, nil
}

// ToSysex7UMP encodes t as a UMP sysex7 packet sequence.
func (t TestProtocol) ToSysex7UMP(kind TestProtocolKind) (*sysex.Sysex7UMP, error) {
	body := t.payload(testProtocolStatus[kind])
	m := sysex.NewSysex7UMP(t.Group)
	if err := m.SetPayload(sysex.FromSlice(body)); err != nil {
		return nil, err
	}
	return m, nil
}

// TestProtocolFromSysex7UMP decodes a UMP sysex7 test-protocol message.
func TestProtocolFromSysex7UMP(m *sysex.Sysex7UMP) (TestProtocol, TestProtocolKind, error) {
	t, kind, err := parseTestProtocol(drainPayload(m.Payload()))
	if err != nil {
		return TestProtocol{}, 0, err
	}
	t.Group = m.Group()
	return t, kind, nil
}
