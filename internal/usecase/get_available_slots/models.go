package get_available_slots

import (
	"time"

	"github.com/elegantcut/booking-service/pkg/types"
)

// Request asks for the bookable slots of one staff member on one date.
type Request struct {
	StaffID string
	Date    time.Time // calendar date, time-of-day ignored
}

// Response carries the remaining bookable slot start times, in template
// order. Empty both when the staff member is off that weekday and when
// the day is fully booked.
type Response struct {
	StaffID string
	Date    time.Time
	Slots   []types.TimeString
}
