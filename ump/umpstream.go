package ump

import (
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/umpstream"
)

// UMPStreamKind discriminates a decoded UMP Stream message: one of the
// eight fixed-size members, or a multi-packet Text.
type UMPStreamKind uint8

const (
	UMPStreamEndpointDiscovery UMPStreamKind = iota
	UMPStreamEndpointInfo
	UMPStreamDeviceIdentity
	UMPStreamConfigurationNotification
	UMPStreamFunctionBlockDiscovery
	UMPStreamFunctionBlockInfo
	UMPStreamStartOfClip
	UMPStreamEndOfClip
	UMPStreamText
)

// UMPStream is a decoded UMP Stream message; Kind selects exactly one
// field.
type UMPStream struct {
	Kind UMPStreamKind

	EndpointDiscovery                umpstream.EndpointDiscovery
	EndpointInfo                     umpstream.EndpointInfo
	DeviceIdentity                   umpstream.DeviceIdentity
	StreamConfigurationNotification umpstream.StreamConfigurationNotification
	FunctionBlockDiscovery           umpstream.FunctionBlockDiscovery
	FunctionBlockInfo                umpstream.FunctionBlockInfo
	StartOfClip                      umpstream.StartOfClip
	EndOfClip                        umpstream.EndOfClip
	Text                             umpstream.Text
}

func dispatchUMPStream(words []uint32) (*UMPStream, error) {
	status := umpstream.PacketStatus(words[0])

	switch status {
	case umpstream.StatusEndpointDiscovery:
		m, err := umpstream.EndpointDiscoveryFromUMP(words)
		if err != nil {
			return nil, err
		}
		return &UMPStream{Kind: UMPStreamEndpointDiscovery, EndpointDiscovery: m}, nil
	case umpstream.StatusEndpointInfo:
		m, err := umpstream.EndpointInfoFromUMP(words)
		if err != nil {
			return nil, err
		}
		return &UMPStream{Kind: UMPStreamEndpointInfo, EndpointInfo: m}, nil
	case umpstream.StatusDeviceIdentity:
		m, err := umpstream.DeviceIdentityFromUMP(words)
		if err != nil {
			return nil, err
		}
		return &UMPStream{Kind: UMPStreamDeviceIdentity, DeviceIdentity: m}, nil
	case umpstream.StatusStreamConfigurationNotify:
		m, err := umpstream.StreamConfigurationNotificationFromUMP(words)
		if err != nil {
			return nil, err
		}
		return &UMPStream{Kind: UMPStreamConfigurationNotification, StreamConfigurationNotification: m}, nil
	case umpstream.StatusFunctionBlockDiscovery:
		m, err := umpstream.FunctionBlockDiscoveryFromUMP(words)
		if err != nil {
			return nil, err
		}
		return &UMPStream{Kind: UMPStreamFunctionBlockDiscovery, FunctionBlockDiscovery: m}, nil
	case umpstream.StatusFunctionBlockInfo:
		m, err := umpstream.FunctionBlockInfoFromUMP(words)
		if err != nil {
			return nil, err
		}
		return &UMPStream{Kind: UMPStreamFunctionBlockInfo, FunctionBlockInfo: m}, nil
	case umpstream.StatusStartOfClip:
		m, err := umpstream.StartOfClipFromUMP(words)
		if err != nil {
			return nil, err
		}
		return &UMPStream{Kind: UMPStreamStartOfClip, StartOfClip: m}, nil
	case umpstream.StatusEndOfClip:
		m, err := umpstream.EndOfClipFromUMP(words)
		if err != nil {
			return nil, err
		}
		return &UMPStream{Kind: UMPStreamEndOfClip, EndOfClip: m}, nil
	}

	kind, ok := umpstream.TextKindFromStatus(status)
	if !ok {
		return nil, errs.NewInvalidData(errs.ReasonBadDiscriminant)
	}
	t, err := umpstream.FromUMP(words, kind)
	if err != nil {
		return nil, err
	}
	return &UMPStream{Kind: UMPStreamText, Text: t}, nil
}
