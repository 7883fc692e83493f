package systemcommon

// BytesLen reports the total byte length (status byte plus data bytes) a
// System Common / System Real-Time message with this status byte
// occupies, for a caller (the top-level bytesmsg dispatcher) walking a
// byte stream that must find each message's boundary before decoding it.
func BytesLen(status byte) (int, error) {
	kind, err := kindFromStatusByte(status)
	if err != nil {
		return 0, err
	}
	return 1 + kind.dataByteCount(), nil
}
