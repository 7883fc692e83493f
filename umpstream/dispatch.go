package umpstream

import "github.com/rob-gra/midi2/bits"

// Exported aliases of the fixed-member status codes, for callers (the
// top-level ump dispatcher) that must identify a UMP Stream packet's
// concrete kind from its header alone, before they know which decoder to
// call.
const (
	StatusEndpointDiscovery         = statusEndpointDiscovery
	StatusEndpointInfo              = statusEndpointInfo
	StatusDeviceIdentity            = statusDeviceIdentity
	StatusStreamConfigurationNotify = statusStreamConfigurationNotify
	StatusFunctionBlockDiscovery    = statusFunctionBlockDiscovery
	StatusFunctionBlockInfo         = statusFunctionBlockInfo
	StatusStartOfClip               = statusStartOfClip
	StatusEndOfClip                 = statusEndOfClip
)

// TextKindFromStatus reverse-looks-up a status field read off a packet's
// header into its TextKind. Returns ok=false for a status that names no
// known text kind.
func TextKindFromStatus(status uint16) (TextKind, bool) {
	for k, s := range textStatus {
		if s == status {
			return TextKind(k), true
		}
	}
	return 0, false
}

// PacketStatus reads the 10-bit status field out of a UMP Stream packet's
// first word without validating the rest of the packet.
func PacketStatus(word0 uint32) uint16 { return uint16(word0>>16) & 0x3FF }

// PacketForm reads the Complete/Start/Continue/End form crumb out of a
// UMP Stream packet's first word.
func PacketForm(word0 uint32) uint8 { return bits.Crumb(word0, 2) }
