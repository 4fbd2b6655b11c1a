package list_staff

import (
	"github.com/elegantcut/booking-service/internal/domain"
)

// StaffResponse is one staff member in HTTP responses.
type StaffResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Role        string              `json:"role"`
	Rating      float64             `json:"rating"`
	Reviews     int                 `json:"reviews"`
	Specialties []string            `json:"specialties"`
	WorkDays    map[string][]string `json:"workDays"` // weekday name -> slot start times
}

// StaffListResponse is the list payload.
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// FromDomainStaff converts catalog staff members to the HTTP response.
func FromDomainStaff(staff []domain.StaffMember) *StaffListResponse {
	out := make([]StaffResponse, len(staff))
	for i, m := range staff {
		workDays := make(map[string][]string, len(m.Availability))
		for day, slots := range m.Availability {
			times := make([]string, len(slots))
			for j, s := range slots {
				times[j] = s.String()
			}
			workDays[day.String()] = times
		}
		out[i] = StaffResponse{
			ID:          m.ID,
			Name:        m.Name,
			Role:        m.Role,
			Rating:      m.Rating,
			Reviews:     m.Reviews,
			Specialties: m.Specialties,
			WorkDays:    workDays,
		}
	}
	return &StaffListResponse{Staff: out}
}
