package get_available_slots

import (
	"time"

	"github.com/elegantcut/booking-service/internal/domain"
	"github.com/elegantcut/booking-service/pkg/types"
)

// resolveSlots computes the bookable slot start times for one staff member
// on one date:
//  1. start from the weekday template (empty when the staff member is off)
//  2. on the current day, keep only slots strictly later than now; a slot
//     equal to the current time is excluded
//  3. drop every slot already present in the booked set
//
// Order is preserved throughout.
func resolveSlots(
	staff *domain.StaffMember,
	date time.Time,
	booked []domain.BookedSlot,
	now time.Time,
) []types.TimeString {
	if staff == nil {
		return []types.TimeString{}
	}

	slots := staff.SlotsTemplate(date.Weekday())
	if len(slots) == 0 {
		return []types.TimeString{}
	}

	if isSameDay(date, now) {
		current := types.NewTimeString(now)
		remaining := make([]types.TimeString, 0, len(slots))
		for _, slot := range slots {
			if slot.IsAfter(current) {
				remaining = append(remaining, slot)
			}
		}
		slots = remaining
	}

	if len(booked) == 0 {
		return slots
	}

	taken := make(map[types.TimeString]struct{}, len(booked))
	for _, b := range booked {
		taken[b.StartTime] = struct{}{}
	}

	remaining := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if _, ok := taken[slot]; !ok {
			remaining = append(remaining, slot)
		}
	}
	return remaining
}

// IsDateSelectable reports whether a calendar date may be offered for the
// staff member: the weekday has template slots, the date is not before
// today, and it is at most MaxAdvanceBookingDays ahead (day 30 inclusive).
func IsDateSelectable(staff *domain.StaffMember, date time.Time, now time.Time) bool {
	if staff == nil || !staff.WorksOn(date.Weekday()) {
		return false
	}
	if isDateInPast(date, now) {
		return false
	}
	return !truncateToDay(date).After(maxBookingDate(now))
}

// maxBookingDate is the last selectable calendar date, inclusive.
func maxBookingDate(now time.Time) time.Time {
	return truncateToDay(now).AddDate(0, 0, domain.MaxAdvanceBookingDays)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func isDateInPast(date, now time.Time) bool {
	return truncateToDay(date).Before(truncateToDay(now))
}
