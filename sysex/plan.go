package sysex

// planSizes divides n payload bytes into packets of at most cap bytes
// each: a payload that fits in one packet becomes a single Complete
// packet (size 0 included, so an empty payload still yields one packet);
// otherwise the payload is split into ceil(n/cap) packets, all but the
// last holding exactly cap bytes.
func planSizes(n, capacity int) []int {
	if n <= capacity {
		return []int{n}
	}
	count := (n + capacity - 1) / capacity
	sizes := make([]int, count)
	for i := 0; i < count-1; i++ {
		sizes[i] = capacity
	}
	sizes[count-1] = n - capacity*(count-1)
	return sizes
}

// statusFor returns the Status of the i'th packet out of count total.
func statusFor(i, count int) Status {
	switch {
	case count == 1:
		return StatusComplete
	case i == 0:
		return StatusStart
	case i == count-1:
		return StatusEnd
	default:
		return StatusContinue
	}
}
