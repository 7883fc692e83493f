package channelvoice1

import "github.com/rob-gra/midi2/errs"

// BytesLen reports the total byte length (status byte plus data bytes) a
// legacy channel-voice message with this status byte occupies, for a
// caller (the top-level bytesmsg dispatcher) walking a byte stream that
// must find each message's boundary before decoding it.
func BytesLen(status byte) (int, error) {
	if status&0x80 == 0 {
		return 0, errs.NewInvalidData(errs.ReasonWrongStatus)
	}
	kind, err := kindFromStatusNibble(status >> 4)
	if err != nil {
		return 0, err
	}
	if kind.twoDataBytes() {
		return 3, nil
	}
	return 2, nil
}
