package domain

// Booking window constants
const (
	// MaxAdvanceBookingDays is how far ahead a date may be selected,
	// inclusive: exactly 30 days from today is still selectable.
	MaxAdvanceBookingDays = 30
)

// Quebec sales tax rates applied on top of the untaxed base price.
const (
	GSTRate = 0.05    // TPS
	QSTRate = 0.09975 // TVQ
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists statuses whose reservations no longer occupy a
// slot. Used when reading booked slots for availability.
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}
