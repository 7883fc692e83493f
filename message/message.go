// Package message holds small shared interfaces for message wrappers, plus
// the rebuffering helpers each wrapper would otherwise have to hand-roll
// for itself. The interfaces are implemented by the sysex wrappers (Data,
// and Grouped for the UMP encodings) and by channelvoice2's NoteOn and
// NoteOff (Grouped, Channeled); the message types of channelvoice1, the
// other channelvoice2 messages, flexdata, umpstream, systemcommon, utility
// and midici do not implement them.
package message

import "github.com/rob-gra/midi2/buffer"

// Sized exposes a message's dynamic size: for fixed-size messages this is
// the declared minimum; for variable-size UMP messages (sysex7/8,
// flex-data, ump-stream) it is the offset past the terminating
// Complete/End packet; for Bytes sysex7 it is the index of 0xF7 + 1.
type Sized interface {
	Size() int
}

// Data exposes the semantically meaningful prefix of a message's backing
// buffer — Raw()[Size():] is trailing, uninitialised capacity and must
// never be compared or hashed.
type Data[U buffer.Unit] interface {
	Sized
	Raw() []U
}

// Grouped is implemented by Sysex7UMP, Sysex8UMP and channelvoice2's NoteOn
// and NoteOff; no other message type in this module implements it.
// Utility and UMP Stream carry no group nibble.
type Grouped interface {
	Group() uint8
}

// Channeled is implemented by channelvoice2's NoteOn and NoteOff; no other
// message type in this module implements it.
type Channeled interface {
	Channel() uint8
}

// Packetize splits raw (a UMP message's Data().Raw(), already trimmed to
// Size()) into its constituent fixed-stride packets. stride is 2 words for
// sysex7 and channel-voice-2, 4 for sysex8/flex-data/ump-stream, 1 for
// channel-voice-1/utility/system-common.
func Packetize(raw []uint32, stride int) [][]uint32 {
	packets := make([][]uint32, 0, len(raw)/stride)
	for i := 0; i+stride <= len(raw); i += stride {
		packets = append(packets, raw[i:i+stride])
	}
	return packets
}

// Rebuffer copies src's logical contents (up to srcSize) into a freshly
// allocated Owned buffer of the same unit, converting a borrowed or
// fixed-capacity source into an owned, dynamically resizable one.
func Rebuffer[U buffer.Unit](src []U, srcSize int) *buffer.Owned[U] {
	dst := buffer.NewOwnedSize[U](srcSize)
	copy(dst.UnitsMut(), src[:srcSize])
	return dst
}

// TryRebuffer copies src's logical contents into a Bounded buffer of the
// given capacity, returning BufferOverflow if srcSize exceeds it.
func TryRebuffer[U buffer.Unit](src []U, srcSize int, capacity int) (*buffer.Bounded[U], error) {
	dst := buffer.NewBounded[U](capacity)
	if err := dst.TryResize(srcSize); err != nil {
		return nil, err
	}
	copy(dst.UnitsMut(), src[:srcSize])
	return dst, nil
}

// Resizer is the minimal capability every generated message wrapper needs
// from its backing buffer: read, write, and a uniform fallible resize.
// Owned buffers never actually fail to resize; OwnedResizer adapts Owned's
// infallible Resize to the same signature as Bounded's TryResize, so a
// message's constructors and mutators have one code path regardless of
// buffer kind.
type Resizer[U buffer.Unit] interface {
	buffer.Mutable[U]
	TryResize(n int) error
}

// OwnedResizer adapts *buffer.Owned[U] to the Resizer interface.
type OwnedResizer[U buffer.Unit] struct{ *buffer.Owned[U] }

func (o OwnedResizer[U]) TryResize(n int) error {
	o.Owned.Resize(n)
	return nil
}

// NewOwnedResizer returns a fresh, empty OwnedResizer.
func NewOwnedResizer[U buffer.Unit]() OwnedResizer[U] {
	return OwnedResizer[U]{buffer.New[U]()}
}
