package get_available_slots

import (
	"fmt"
	"time"
)

// validateRequest checks the request shape.
func validateRequest(req *Request) error {
	if req.StaffID == "" {
		return fmt.Errorf("%w: staffID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDate rejects past dates and dates beyond the booking window.
func validateDate(date time.Time, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}
	if truncateToDay(date).After(maxBookingDate(now)) {
		return ErrDateTooFarInFuture
	}
	return nil
}
