package umpstream

import (
	"testing"

	"github.com/rob-gra/midi2/bits"
	"github.com/stretchr/testify/require"
)

func TestEndpointDiscoveryMatchesKnownVector(t *testing.T) {
	m := EndpointDiscovery{
		UMPVersionMajor:            0x1,
		UMPVersionMinor:            0x1,
		RequestEndpointInfo:        true,
		RequestDeviceIdentity:      true,
		RequestEndpointName:        true,
		RequestProductInstanceID:   true,
		RequestStreamConfiguration: true,
	}
	words := m.ToUMP()
	require.Equal(t, [4]uint32{0xF000_0101, 0x0000_001F, 0x0, 0x0}, words)

	back, err := EndpointDiscoveryFromUMP(words[:])
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestEndpointInfoMatchesKnownVector(t *testing.T) {
	m := EndpointInfo{
		UMPVersionMajor:               0x1,
		UMPVersionMinor:               0x1,
		StaticFunctionBlocks:          true,
		NumberOfFunctionBlocks:        bits.NewU7(0x20),
		SupportsMIDI2Protocol:         true,
		SupportsMIDI1Protocol:         true,
		SupportsSendingJRTimestamps:   true,
		SupportsReceivingJRTimestamps: true,
	}
	words := m.ToUMP()
	require.Equal(t, uint32(0xF001_0101), words[0])
	require.Equal(t, uint32(0b1010_0000_0000_0000_0000_0011_0000_0011), words[1])

	back, err := EndpointInfoFromUMP(words[:])
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestDeviceIdentityMatchesKnownVector(t *testing.T) {
	m := DeviceIdentity{
		Manufacturer:    [3]bits.U7{bits.NewU7(0x0F), bits.NewU7(0x33), bits.NewU7(0x28)},
		Family:          bits.NewU14(0xF4A),
		FamilyModel:     bits.NewU14(0x3818),
		SoftwareVersion: [4]bits.U7{bits.NewU7(0x43), bits.NewU7(0x54), bits.NewU7(0x32), bits.NewU7(0x1)},
	}
	words := m.ToUMP()
	require.Equal(t, [4]uint32{0xF002_0000, 0x000F_3328, 0x4A1E_1870, 0x4354_3201}, words)

	back, err := DeviceIdentityFromUMP(words[:])
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestStreamConfigurationNotificationMatchesKnownVector(t *testing.T) {
	m := StreamConfigurationNotification{Protocol: 0x2, ReceiveJRTimestamps: true, SendJRTimestamps: true}
	words := m.ToUMP()
	require.Equal(t, [4]uint32{0xF006_0203, 0x0, 0x0, 0x0}, words)

	back, err := StreamConfigurationNotificationFromUMP(words[:])
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestFunctionBlockDiscoveryMatchesKnownVector(t *testing.T) {
	m := FunctionBlockDiscovery{
		FunctionBlockNumber:         bits.NewU7(0x09),
		RequestingFunctionBlockInfo: true,
		RequestingFunctionBlockName: true,
	}
	words := m.ToUMP()
	require.Equal(t, [4]uint32{0xF010_0903, 0x0, 0x0, 0x0}, words)

	back, err := FunctionBlockDiscoveryFromUMP(words[:])
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestFunctionBlockInfoRoundTrips(t *testing.T) {
	m := FunctionBlockInfo{
		Active:                   true,
		FunctionBlockNumber:      bits.NewU7(0x03),
		UIHint:                   UIHintSenderReceiver,
		MIDI1Port:                MIDI1PortRestrictBandwidth,
		Direction:                DirectionBidirectional,
		FirstGroup:               bits.NewU4(0x2),
		NumberOfGroupsSpanned:    0x4,
		MIDICIVersion:            0x1,
		MaxNumberOfMIDICIStreams: 0x8,
	}
	words := m.ToUMP()
	back, err := FunctionBlockInfoFromUMP(words[:])
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestStartAndEndOfClipRoundTrip(t *testing.T) {
	sWords := StartOfClip{}.ToUMP()
	require.Equal(t, [4]uint32{0xF020_0000, 0x0, 0x0, 0x0}, sWords)
	_, err := StartOfClipFromUMP(sWords[:])
	require.NoError(t, err)

	eWords := EndOfClip{}.ToUMP()
	require.Equal(t, [4]uint32{0xF021_0000, 0x0, 0x0, 0x0}, eWords)
	_, err = EndOfClipFromUMP(eWords[:])
	require.NoError(t, err)

	_, err = StartOfClipFromUMP(eWords[:])
	require.Error(t, err)
}
