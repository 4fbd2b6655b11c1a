package sessions

import "errors"

var (
	// ErrSessionNotFound is returned when the session id is unknown or the
	// session expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrUnknownService is returned when a service id does not exist in
	// the catalog.
	ErrUnknownService = errors.New("unknown service")

	// ErrUnknownStaff is returned when a staff id does not exist in the
	// catalog.
	ErrUnknownStaff = errors.New("unknown staff member")

	// ErrStaffCannotPerform is returned when the selected staff member is
	// not authorized to perform the selected service.
	ErrStaffCannotPerform = errors.New("staff member cannot perform this service")

	// ErrSlotUnavailable is returned when the requested start time is not
	// among the currently available slots.
	ErrSlotUnavailable = errors.New("slot is not available")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected downstream failures.
	ErrInternal = errors.New("sessions: internal error")
)
