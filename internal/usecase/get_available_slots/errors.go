package get_available_slots

import "errors"

var (
	// ErrStaffNotFound is returned when the staff member does not exist.
	ErrStaffNotFound = errors.New("get_available_slots: staff member not found")

	// ErrInvalidDate is returned when the requested date is in the past.
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrDateTooFarInFuture is returned when the date is more than
	// MaxAdvanceBookingDays ahead of today.
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned for internal usecase failures.
	ErrInternal = errors.New("get_available_slots: internal error")
)
