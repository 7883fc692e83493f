package flexdata

import "github.com/rob-gra/midi2/bits"

// Exported aliases of the single-packet structured status bytes, for
// callers (the top-level ump dispatcher) that must identify a flex-data
// packet's concrete kind from its header alone, before they know which
// FromUMP to call.
const (
	StatusSetTempo         = statusSetTempo
	StatusSetTimeSignature = statusSetTimeSignature
	StatusSetMetronome     = statusSetMetronome
	StatusSetKeySignature  = statusSetKeySignature
	StatusSetChordName     = statusSetChordName
)

// TextKindFromBankStatus reverse-looks-up a (bank, status) pair read off a
// packet's header into its TextKind. Returns ok=false for a pair that
// names no known text kind.
func TextKindFromBankStatus(bank Bank, status uint8) (TextKind, bool) {
	for k, e := range textKindTable {
		if e.bank == bank && e.status == status {
			return TextKind(k), true
		}
	}
	return 0, false
}

// PacketBank reads the bank byte out of a flex-data packet's first word
// without validating the rest of the packet.
func PacketBank(word0 uint32) Bank { return Bank(bits.Octet(word0, 2)) }

// PacketStatus reads the status byte out of a flex-data packet's first
// word without validating the rest of the packet.
func PacketStatus(word0 uint32) uint8 { return bits.Octet(word0, 3) }

// PacketForm reads the Complete/Start/Continue/End form crumb out of a
// flex-data packet's first word.
func PacketForm(word0 uint32) uint8 { return bits.Crumb(word0, 4) }
