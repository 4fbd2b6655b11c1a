package domain

import (
	"time"

	"github.com/elegantcut/booking-service/pkg/types"
)

// WeeklyAvailability maps a weekday to the ordered list of bookable slot
// start times on that weekday, independent of specific dates. Days the
// staff member does not work have no entry.
type WeeklyAvailability map[time.Weekday][]types.TimeString

// StaffMember is a bookable staff member. Reference data, immutable.
type StaffMember struct {
	ID           string
	Name         string
	Role         string
	Rating       float64 // informational only
	Reviews      int
	Specialties  []string
	Availability WeeklyAvailability
}

// WorksOn reports whether the staff member has any template slots on the
// given weekday.
func (m *StaffMember) WorksOn(day time.Weekday) bool {
	return len(m.Availability[day]) > 0
}

// SlotsTemplate returns a copy of the template slot list for the weekday,
// in authored (ascending) order. Empty when the staff member is off.
func (m *StaffMember) SlotsTemplate(day time.Weekday) []types.TimeString {
	template := m.Availability[day]
	if len(template) == 0 {
		return nil
	}
	slots := make([]types.TimeString, len(template))
	copy(slots, template)
	return slots
}
