package sysex

import "github.com/rob-gra/midi2/errs"

// ValidateGroupStatuses checks that a packet sequence's status/format field
// (as read by statusOf) follows the required Complete-alone, or
// Start-then-zero-or-more-Continue-then-End, progression. Shared by sysex7,
// sysex8, flex-data, and ump-stream, whose 2-bit format fields reuse this
// same Complete/Start/Continue/End encoding.
func ValidateGroupStatuses(n int, statusOf func(i int) Status) error {
	if n == 0 {
		return errs.NewInvalidData(errs.ReasonInvalidPayloadCount)
	}
	if n == 1 {
		if statusOf(0) != StatusComplete {
			return errs.NewInvalidData(errs.ReasonExpectedComplete)
		}
		return nil
	}
	if statusOf(0) != StatusStart {
		return errs.NewInvalidData(errs.ReasonExpectedBegin)
	}
	for i := 1; i < n-1; i++ {
		if statusOf(i) != StatusContinue {
			return errs.NewInvalidData(errs.ReasonExpectedContinue)
		}
	}
	if statusOf(n-1) != StatusEnd {
		return errs.NewInvalidData(errs.ReasonExpectedEnd)
	}
	return nil
}

// ValidateConsistentGroups checks that every packet in the sequence carries
// the same group nibble.
func ValidateConsistentGroups(n int, groupOf func(i int) uint8) error {
	if n == 0 {
		return nil
	}
	want := groupOf(0)
	for i := 1; i < n; i++ {
		if groupOf(i) != want {
			return errs.NewInvalidData(errs.ReasonInconsistentGroups)
		}
	}
	return nil
}

// ValidateConsistentStreamIDs checks that every packet in a sysex8 sequence
// carries the same stream-id byte.
func ValidateConsistentStreamIDs(n int, idOf func(i int) uint8) error {
	if n == 0 {
		return nil
	}
	want := idOf(0)
	for i := 1; i < n; i++ {
		if idOf(i) != want {
			return errs.NewInvalidData(errs.ReasonInconsistentStream)
		}
	}
	return nil
}
