package submit_booking

import "errors"

var (
	// ErrIncompleteSelection is returned when any of the four step
	// predicates does not hold for the submitted selection.
	ErrIncompleteSelection = errors.New("submit_booking: selection is incomplete")

	// ErrSlotTaken is returned when another session booked the slot
	// between the availability read and this write. Retryable after
	// picking another slot.
	ErrSlotTaken = errors.New("submit_booking: slot already taken")

	// ErrPersistence is returned when the reservation could not be
	// stored. Retryable with an unchanged selection.
	ErrPersistence = errors.New("submit_booking: failed to persist reservation")
)
