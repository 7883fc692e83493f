package midici

import (
	"github.com/rob-gra/midi2/bits"
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/sysex"
)

// Kind distinguishes a Discovery query from its reply; the two share every
// field except Destination, which a query always broadcasts.
type Kind uint8

const (
	Query Kind = iota
	Reply
)

var discoveryStatus = [...]byte{Query: 0x70, Reply: 0x71}

// broadcastMUID is the reserved "to everyone" MUID, four 0x7F septets.
const broadcastMUID = 0x0FFFFFFF

const (
	discoveryBodySizeV1 = 29
	discoveryBodySizeV2 = 30
)

// Discovery is a decoded MIDI-CI Discovery message. Group is meaningful
// only when the message was read from or destined for UMP; Bytes carries
// no group nibble and FromSysex7Bytes leaves it zero.
type Discovery struct {
	Group       uint8
	Source      bits.U28
	Destination bits.U28

	Manufacturer bits.U21
	Family       bits.U14
	Model        bits.U14

	SoftwareVersion [4]bits.U7

	ProtocolNegotiationSupported bool
	ProfileConfigurationSupported bool
	ProcessInquirySupported       bool
	PropertyExchangeSupported     bool

	MaxSysexSize bits.U28

	// OutputPathID is non-nil for the v2 envelope (one extra trailing
	// byte) and nil for v1.
	OutputPathID *uint8
}

// NewDiscoveryQuery builds a query, whose destination is always the
// broadcast MUID.
func NewDiscoveryQuery(group uint8, source bits.U28, manufacturer bits.U21, family, model bits.U14, swVersion [4]bits.U7, protocolNegotiation, profileConfiguration, processInquiry, propertyExchange bool, maxSysexSize bits.U28) Discovery {
	return Discovery{
		Group:                          group,
		Source:                         source,
		Destination:                    bits.NewU28(broadcastMUID),
		Manufacturer:                   manufacturer,
		Family:                         family,
		Model:                          model,
		SoftwareVersion:                swVersion,
		ProtocolNegotiationSupported:   protocolNegotiation,
		ProfileConfigurationSupported: profileConfiguration,
		ProcessInquirySupported:       processInquiry,
		PropertyExchangeSupported:     propertyExchange,
		MaxSysexSize:                   maxSysexSize,
	}
}

// NewDiscoveryReply builds a reply, whose destination names the querying
// endpoint rather than broadcasting.
func NewDiscoveryReply(group uint8, source, destination bits.U28, manufacturer bits.U21, family, model bits.U14, swVersion [4]bits.U7, protocolNegotiation, profileConfiguration, processInquiry, propertyExchange bool, maxSysexSize bits.U28) Discovery {
	d := NewDiscoveryQuery(group, source, manufacturer, family, model, swVersion, protocolNegotiation, profileConfiguration, processInquiry, propertyExchange, maxSysexSize)
	d.Destination = destination
	return d
}

// WithOutputPathID returns a copy of d carrying the v2 output-path-id byte.
func (d Discovery) WithOutputPathID(id uint8) Discovery {
	d.OutputPathID = &id
	return d
}

func (d Discovery) capabilityByte() byte {
	var b byte
	if d.ProtocolNegotiationSupported {
		b |= 0x02
	}
	if d.ProfileConfigurationSupported {
		b |= 0x04
	}
	if d.ProcessInquirySupported {
		b |= 0x08
	}
	if d.PropertyExchangeSupported {
		b |= 0x10
	}
	return b
}

func capabilitiesFromByte(b byte) (protocolNegotiation, profileConfiguration, processInquiry, propertyExchange bool) {
	return b&0x02 != 0, b&0x04 != 0, b&0x08 != 0, b&0x10 != 0
}

// payload builds the sysex7 body for status, everything between the
// leading 0xF0 and a trailing 0xF7, exclusive of both (it starts with the
// 0x7E universal header byte).
func (d Discovery) payload(status byte) []byte {
	capacity := discoveryBodySizeV1
	if d.OutputPathID != nil {
		capacity = discoveryBodySizeV2
	}
	out := make([]byte, 0, capacity)
	out = append(out, universalNonRealTime, wholeFunctionBlock, subID1CI, status, Version)

	src := bits.PackU28(d.Source)
	out = append(out, src[:]...)
	dst := bits.PackU28(d.Destination)
	out = append(out, dst[:]...)
	man := bits.PackU21(d.Manufacturer)
	out = append(out, man[:]...)
	fam := bits.PackU14(d.Family)
	out = append(out, fam[:]...)
	mdl := bits.PackU14(d.Model)
	out = append(out, mdl[:]...)
	for _, sw := range d.SoftwareVersion {
		out = append(out, sw.Into())
	}
	out = append(out, d.capabilityByte())
	mx := bits.PackU28(d.MaxSysexSize)
	out = append(out, mx[:]...)
	if d.OutputPathID != nil {
		out = append(out, *d.OutputPathID)
	}
	return out
}

func parseEnvelope(data []byte) (Discovery, Kind, error) {
	if len(data) != discoveryBodySizeV1 && len(data) != discoveryBodySizeV2 {
		return Discovery{}, 0, errs.NewInvalidData(errs.ReasonInvalidPayloadCount)
	}
	if data[0] != universalNonRealTime || data[2] != subID1CI {
		return Discovery{}, 0, errs.NewInvalidData(errs.ReasonWrongMessageType)
	}
	var kind Kind
	switch data[3] {
	case discoveryStatus[Query]:
		kind = Query
	case discoveryStatus[Reply]:
		kind = Reply
	default:
		return Discovery{}, 0, errs.NewInvalidData(errs.ReasonWrongStatus)
	}
	// data[4] is the Version byte; every known version shares this layout.

	off := 5
	take := func(n int) []byte {
		b := data[off : off+n]
		off += n
		return b
	}

	src4 := take(4)
	source := bits.UnpackU28(src4[0], src4[1], src4[2], src4[3])
	dst4 := take(4)
	destination := bits.UnpackU28(dst4[0], dst4[1], dst4[2], dst4[3])
	man3 := take(3)
	manufacturer := bits.UnpackU21(man3[0], man3[1], man3[2])
	fam2 := take(2)
	family := bits.UnpackU14(fam2[0], fam2[1])
	mdl2 := take(2)
	model := bits.UnpackU14(mdl2[0], mdl2[1])

	var sw [4]bits.U7
	swBytes := take(4)
	for i := range sw {
		sw[i] = bits.NewU7(swBytes[i])
	}

	protocolNegotiation, profileConfiguration, processInquiry, propertyExchange := capabilitiesFromByte(take(1)[0])

	mx4 := take(4)
	maxSysexSize := bits.UnpackU28(mx4[0], mx4[1], mx4[2], mx4[3])

	d := Discovery{
		Source:                         source,
		Destination:                    destination,
		Manufacturer:                   manufacturer,
		Family:                         family,
		Model:                          model,
		SoftwareVersion:                sw,
		ProtocolNegotiationSupported:   protocolNegotiation,
		ProfileConfigurationSupported: profileConfiguration,
		ProcessInquirySupported:       processInquiry,
		PropertyExchangeSupported:     propertyExchange,
		MaxSysexSize:                   maxSysexSize,
	}
	if len(data) == discoveryBodySizeV2 {
		id := data[off]
		d.OutputPathID = &id
	}
	return d, kind, nil
}

// ToSysex7Bytes encodes d as a Bytes-wire, 0xF0..0xF7-framed sysex7 stream.
func (d Discovery) ToSysex7Bytes(kind Kind) (*sysex.Sysex7Bytes, error) {
	body := d.payload(discoveryStatus[kind])
	full := make([]byte, 0, len(body)+2)
	full = append(full, 0xF0)
	full = append(full, body...)
	full = append(full, 0xF7)
	return sysex.FromSysex7BytesOwned(full)
}

// DiscoveryFromSysex7Bytes decodes a Bytes-wire Discovery message.
func DiscoveryFromSysex7Bytes(m *sysex.Sysex7Bytes) (Discovery, Kind, error) {
	raw := m.Raw()
	if len(raw) < 2 {
		return Discovery{}, 0, errs.NewInvalidData(errs.ReasonSliceTooShort)
	}
	return parseEnvelope(raw[1 : len(raw)-1])
}

// ToSysex7UMP encodes d as a UMP sysex7 packet sequence on d.Group.
func (d Discovery) ToSysex7UMP(kind Kind) (*sysex.Sysex7UMP, error) {
	body := d.payload(discoveryStatus[kind])
	m := sysex.NewSysex7UMP(d.Group)
	if err := m.SetPayload(sysex.FromSlice(body)); err != nil {
		return nil, err
	}
	return m, nil
}

// DiscoveryFromSysex7UMP decodes a UMP sysex7 Discovery message, stamping Group from
// the packet sequence.
func DiscoveryFromSysex7UMP(m *sysex.Sysex7UMP) (Discovery, Kind, error) {
	d, kind, err := parseEnvelope(drainPayload(m.Payload()))
	if err != nil {
		return Discovery{}, 0, err
	}
	d.Group = m.Group()
	return d, kind, nil
}
