package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation id is unknown.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrCannotCancel is returned when the reservation is already
	// completed or cancelled.
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrInternal is returned for unexpected storage failures.
	ErrInternal = errors.New("reservations: internal error")
)
