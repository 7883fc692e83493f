package sysex

import "github.com/rob-gra/midi2/message"

// newOwnedResizer returns a fresh, empty buffer satisfying message.Resizer,
// the backing-buffer capability shared with every other message family.
func newOwnedResizer[U byte | uint32]() message.OwnedResizer[U] {
	return message.NewOwnedResizer[U]()
}
