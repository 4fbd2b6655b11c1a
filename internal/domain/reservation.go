package domain

import (
	"time"

	"github.com/elegantcut/booking-service/pkg/types"
)

// ReservationStatus represents the status of a persisted reservation.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation is a persisted appointment. Selection fields are flattened
// and denormalized so the row stays readable after catalog changes.
type Reservation struct {
	ID          int64
	ClientName  string
	ClientEmail string
	ClientPhone string

	ServiceID       string
	ServiceName     string
	ServicePrice    float64 // untaxed base price at booking time
	ServiceDuration int

	StaffID   string
	StaffName string

	AppointmentDate time.Time // calendar date, time-of-day zeroed
	AppointmentTime types.TimeString

	Status ReservationStatus
	Notes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the reservation still occupies its slot.
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// CanBeCancelled reports whether the reservation may still be cancelled.
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// BookedSlot is a slot already consumed by a prior reservation for one
// (staff, date) pair, as read back from storage.
type BookedSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
}

// CustomerInfo is the contact information collected at the final step.
type CustomerInfo struct {
	Name  string
	Email string
	Phone string
	Notes string
}
