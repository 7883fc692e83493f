package umpstream

import (
	"github.com/rob-gra/midi2/bits"
)

// Status codes for the eight fixed-size (non-text) UMP Stream members,
// canonicalised against the MIDI 2.0 UMP/FlexData specification.
const (
	statusEndpointDiscovery             = 0x00
	statusEndpointInfo                  = 0x01
	statusDeviceIdentity                = 0x02
	statusStreamConfigurationNotify     = 0x06
	statusFunctionBlockDiscovery        = 0x10
	statusFunctionBlockInfo             = 0x11
	statusStartOfClip                   = 0x20
	statusEndOfClip                     = 0x21
)

// EndpointDiscovery requests the endpoint's capabilities and identity; the
// five request_* flags select which of EndpointInfo/DeviceIdentity/the
// EndpointName text/the ProductInstanceId text/StreamConfigurationNotification
// the receiver should reply with.
type EndpointDiscovery struct {
	UMPVersionMajor, UMPVersionMinor uint8
	RequestEndpointInfo             bool
	RequestDeviceIdentity           bool
	RequestEndpointName             bool
	RequestProductInstanceID        bool
	RequestStreamConfiguration      bool
}

func (m EndpointDiscovery) ToUMP() [4]uint32 {
	tail := uint16(m.UMPVersionMajor)<<8 | uint16(m.UMPVersionMinor)
	w0 := fixedHeader(statusEndpointDiscovery).word0(tail)
	var w1 uint32
	w1 = bits.SetBit(w1, 31, m.RequestEndpointInfo)
	w1 = bits.SetBit(w1, 30, m.RequestDeviceIdentity)
	w1 = bits.SetBit(w1, 29, m.RequestEndpointName)
	w1 = bits.SetBit(w1, 28, m.RequestProductInstanceID)
	w1 = bits.SetBit(w1, 27, m.RequestStreamConfiguration)
	return [4]uint32{w0, w1, 0, 0}
}

func EndpointDiscoveryFromUMP(words []uint32) (EndpointDiscovery, error) {
	if err := require4Words(words); err != nil {
		return EndpointDiscovery{}, err
	}
	_, tail, err := headerFromWord0(words[0], statusEndpointDiscovery)
	if err != nil {
		return EndpointDiscovery{}, err
	}
	w1 := words[1]
	return EndpointDiscovery{
		UMPVersionMajor:            uint8(tail >> 8),
		UMPVersionMinor:            uint8(tail),
		RequestEndpointInfo:        bits.Bit(w1, 31),
		RequestDeviceIdentity:      bits.Bit(w1, 30),
		RequestEndpointName:        bits.Bit(w1, 29),
		RequestProductInstanceID:   bits.Bit(w1, 28),
		RequestStreamConfiguration: bits.Bit(w1, 27),
	}, nil
}

// EndpointInfo answers EndpointDiscovery's request_endpoint_info flag.
type EndpointInfo struct {
	UMPVersionMajor, UMPVersionMinor uint8
	StaticFunctionBlocks            bool
	NumberOfFunctionBlocks          bits.U7
	SupportsMIDI2Protocol           bool
	SupportsMIDI1Protocol           bool
	SupportsReceivingJRTimestamps   bool
	SupportsSendingJRTimestamps     bool
}

func (m EndpointInfo) ToUMP() [4]uint32 {
	tail := uint16(m.UMPVersionMajor)<<8 | uint16(m.UMPVersionMinor)
	w0 := fixedHeader(statusEndpointInfo).word0(tail)
	var w1 uint32
	w1 = bits.SetBit(w1, 0, m.StaticFunctionBlocks)
	w1 = bits.SetOctet(w1, 0, bits.Octet(w1, 0)|m.NumberOfFunctionBlocks.Into()&0x7F)
	w1 = bits.SetBit(w1, 22, m.SupportsMIDI2Protocol)
	w1 = bits.SetBit(w1, 23, m.SupportsMIDI1Protocol)
	w1 = bits.SetBit(w1, 30, m.SupportsReceivingJRTimestamps)
	w1 = bits.SetBit(w1, 31, m.SupportsSendingJRTimestamps)
	return [4]uint32{w0, w1, 0, 0}
}

func EndpointInfoFromUMP(words []uint32) (EndpointInfo, error) {
	if err := require4Words(words); err != nil {
		return EndpointInfo{}, err
	}
	_, tail, err := headerFromWord0(words[0], statusEndpointInfo)
	if err != nil {
		return EndpointInfo{}, err
	}
	w1 := words[1]
	return EndpointInfo{
		UMPVersionMajor:               uint8(tail >> 8),
		UMPVersionMinor:               uint8(tail),
		StaticFunctionBlocks:          bits.Bit(w1, 0),
		NumberOfFunctionBlocks:        bits.NewU7(bits.Octet(w1, 0) & 0x7F),
		SupportsMIDI2Protocol:         bits.Bit(w1, 22),
		SupportsMIDI1Protocol:         bits.Bit(w1, 23),
		SupportsReceivingJRTimestamps: bits.Bit(w1, 30),
		SupportsSendingJRTimestamps:   bits.Bit(w1, 31),
	}, nil
}

// DeviceIdentity answers EndpointDiscovery's request_device_identity flag
// with a SysEx-style manufacturer/family/model/software-version identity.
type DeviceIdentity struct {
	Manufacturer    [3]bits.U7
	Family          bits.U14
	FamilyModel     bits.U14
	SoftwareVersion [4]bits.U7
}

func (m DeviceIdentity) ToUMP() [4]uint32 {
	w0 := fixedHeader(statusDeviceIdentity).word0(0)
	var w1 uint32
	w1 = bits.SetOctet(w1, 1, m.Manufacturer[0].Into())
	w1 = bits.SetOctet(w1, 2, m.Manufacturer[1].Into())
	w1 = bits.SetOctet(w1, 3, m.Manufacturer[2].Into())
	famBytes := bits.PackU14(m.Family)
	modelBytes := bits.PackU14(m.FamilyModel)
	w2 := uint32(0)
	w2 = bits.SetOctet(w2, 0, famBytes[0])
	w2 = bits.SetOctet(w2, 1, famBytes[1])
	w2 = bits.SetOctet(w2, 2, modelBytes[0])
	w2 = bits.SetOctet(w2, 3, modelBytes[1])
	var w3 uint32
	for i, v := range m.SoftwareVersion {
		w3 = bits.SetOctet(w3, i, v.Into())
	}
	return [4]uint32{w0, w1, w2, w3}
}

func DeviceIdentityFromUMP(words []uint32) (DeviceIdentity, error) {
	if err := require4Words(words); err != nil {
		return DeviceIdentity{}, err
	}
	if _, _, err := headerFromWord0(words[0], statusDeviceIdentity); err != nil {
		return DeviceIdentity{}, err
	}
	w1, w2, w3 := words[1], words[2], words[3]
	return DeviceIdentity{
		Manufacturer: [3]bits.U7{
			bits.NewU7(bits.Octet(w1, 1) & 0x7F),
			bits.NewU7(bits.Octet(w1, 2) & 0x7F),
			bits.NewU7(bits.Octet(w1, 3) & 0x7F),
		},
		Family:      bits.UnpackU14(bits.Octet(w2, 0), bits.Octet(w2, 1)),
		FamilyModel: bits.UnpackU14(bits.Octet(w2, 2), bits.Octet(w2, 3)),
		SoftwareVersion: [4]bits.U7{
			bits.NewU7(bits.Octet(w3, 0) & 0x7F),
			bits.NewU7(bits.Octet(w3, 1) & 0x7F),
			bits.NewU7(bits.Octet(w3, 2) & 0x7F),
			bits.NewU7(bits.Octet(w3, 3) & 0x7F),
		},
	}, nil
}

// StreamConfigurationNotification announces the negotiated protocol and
// jitter-reduction-timestamp configuration.
type StreamConfigurationNotification struct {
	Protocol            uint8
	ReceiveJRTimestamps bool
	SendJRTimestamps    bool
}

func (m StreamConfigurationNotification) ToUMP() [4]uint32 {
	tail := uint16(m.Protocol) << 8
	if m.ReceiveJRTimestamps {
		tail |= 0x02
	}
	if m.SendJRTimestamps {
		tail |= 0x01
	}
	w0 := fixedHeader(statusStreamConfigurationNotify).word0(tail)
	return [4]uint32{w0, 0, 0, 0}
}

func StreamConfigurationNotificationFromUMP(words []uint32) (StreamConfigurationNotification, error) {
	if err := require4Words(words); err != nil {
		return StreamConfigurationNotification{}, err
	}
	_, tail, err := headerFromWord0(words[0], statusStreamConfigurationNotify)
	if err != nil {
		return StreamConfigurationNotification{}, err
	}
	return StreamConfigurationNotification{
		Protocol:            uint8(tail >> 8),
		ReceiveJRTimestamps: tail&0x02 != 0,
		SendJRTimestamps:    tail&0x01 != 0,
	}, nil
}

// FunctionBlockDiscovery requests a function block's info and/or name.
type FunctionBlockDiscovery struct {
	FunctionBlockNumber         bits.U7
	RequestingFunctionBlockInfo bool
	RequestingFunctionBlockName bool
}

func (m FunctionBlockDiscovery) ToUMP() [4]uint32 {
	tail := uint16(m.FunctionBlockNumber.Into()&0x7F) << 8
	if m.RequestingFunctionBlockInfo {
		tail |= 0x02
	}
	if m.RequestingFunctionBlockName {
		tail |= 0x01
	}
	w0 := fixedHeader(statusFunctionBlockDiscovery).word0(tail)
	return [4]uint32{w0, 0, 0, 0}
}

func FunctionBlockDiscoveryFromUMP(words []uint32) (FunctionBlockDiscovery, error) {
	if err := require4Words(words); err != nil {
		return FunctionBlockDiscovery{}, err
	}
	_, tail, err := headerFromWord0(words[0], statusFunctionBlockDiscovery)
	if err != nil {
		return FunctionBlockDiscovery{}, err
	}
	return FunctionBlockDiscovery{
		FunctionBlockNumber:         bits.NewU7(uint8(tail>>8) & 0x7F),
		RequestingFunctionBlockInfo: tail&0x02 != 0,
		RequestingFunctionBlockName: tail&0x01 != 0,
	}, nil
}

// UIHint describes a function block's intended control-surface role.
type UIHint uint8

const (
	UIHintUndeclared UIHint = iota
	UIHintReceiver
	UIHintSender
	UIHintSenderReceiver
)

// MIDI1Port describes whether a function block restricts MIDI 1.0
// bandwidth; absent (MIDI1PortNone) when the block is not a MIDI 1.0 port.
type MIDI1Port uint8

const (
	MIDI1PortNone MIDI1Port = iota
	MIDI1PortDontRestrictBandwidth
	MIDI1PortRestrictBandwidth
)

// Direction describes a function block's data-flow direction.
type Direction uint8

const (
	DirectionReserved Direction = iota
	DirectionInput
	DirectionOutput
	DirectionBidirectional
)

// FunctionBlockInfo answers FunctionBlockDiscovery's request_function_block_info flag.
type FunctionBlockInfo struct {
	Active                  bool
	FunctionBlockNumber     bits.U7
	UIHint                  UIHint
	MIDI1Port               MIDI1Port
	Direction               Direction
	FirstGroup              bits.U4
	NumberOfGroupsSpanned   uint8
	MIDICIVersion           uint8
	MaxNumberOfMIDICIStreams uint8
}

func (m FunctionBlockInfo) ToUMP() [4]uint32 {
	tail := uint16(0)
	if m.Active {
		tail |= 0x8000
	}
	tail |= uint16(m.FunctionBlockNumber.Into()&0x7F) << 8
	tail |= uint16(m.UIHint&0x3) << 4
	tail |= uint16(m.MIDI1Port&0x3) << 2
	tail |= uint16(m.Direction & 0x3)
	w0 := fixedHeader(statusFunctionBlockInfo).word0(tail)

	var w1 uint32
	w1 = bits.SetNibble(w1, 1, m.FirstGroup.Into())
	w1 = bits.SetOctet(w1, 1, m.NumberOfGroupsSpanned)
	w1 = bits.SetOctet(w1, 2, m.MIDICIVersion)
	w1 = bits.SetOctet(w1, 3, m.MaxNumberOfMIDICIStreams)
	return [4]uint32{w0, w1, 0, 0}
}

func FunctionBlockInfoFromUMP(words []uint32) (FunctionBlockInfo, error) {
	if err := require4Words(words); err != nil {
		return FunctionBlockInfo{}, err
	}
	_, tail, err := headerFromWord0(words[0], statusFunctionBlockInfo)
	if err != nil {
		return FunctionBlockInfo{}, err
	}
	w1 := words[1]
	return FunctionBlockInfo{
		Active:                   tail&0x8000 != 0,
		FunctionBlockNumber:      bits.NewU7(uint8(tail>>8) & 0x7F),
		UIHint:                   UIHint((tail >> 4) & 0x3),
		MIDI1Port:                MIDI1Port((tail >> 2) & 0x3),
		Direction:                Direction(tail & 0x3),
		FirstGroup:               bits.NewU4(bits.Nibble(w1, 1)),
		NumberOfGroupsSpanned:    bits.Octet(w1, 1),
		MIDICIVersion:            bits.Octet(w1, 2),
		MaxNumberOfMIDICIStreams: bits.Octet(w1, 3),
	}, nil
}

// StartOfClip and EndOfClip bracket a MIDI file's worth of UMP data; they
// carry no payload.
type StartOfClip struct{}

func (StartOfClip) ToUMP() [4]uint32 {
	return [4]uint32{fixedHeader(statusStartOfClip).word0(0), 0, 0, 0}
}

func StartOfClipFromUMP(words []uint32) (StartOfClip, error) {
	if err := require4Words(words); err != nil {
		return StartOfClip{}, err
	}
	if _, _, err := headerFromWord0(words[0], statusStartOfClip); err != nil {
		return StartOfClip{}, err
	}
	return StartOfClip{}, nil
}

type EndOfClip struct{}

func (EndOfClip) ToUMP() [4]uint32 {
	return [4]uint32{fixedHeader(statusEndOfClip).word0(0), 0, 0, 0}
}

func EndOfClipFromUMP(words []uint32) (EndOfClip, error) {
	if err := require4Words(words); err != nil {
		return EndOfClip{}, err
	}
	if _, _, err := headerFromWord0(words[0], statusEndOfClip); err != nil {
		return EndOfClip{}, err
	}
	return EndOfClip{}, nil
}
