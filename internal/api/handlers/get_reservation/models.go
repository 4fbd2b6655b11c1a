package get_reservation

import (
	"github.com/elegantcut/booking-service/internal/domain"
)

// ReservationResponse HTTP response model.
type ReservationResponse struct {
	ID              int64   `json:"id"`
	ClientName      string  `json:"clientName"`
	ClientEmail     string  `json:"clientEmail"`
	ClientPhone     string  `json:"clientPhone"`
	ServiceID       string  `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	ServiceDuration int     `json:"serviceDuration"`
	StaffID         string  `json:"staffId"`
	StaffName       string  `json:"staffName"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
}

// FromDomainReservation converts the domain model to the HTTP response.
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:              res.ID,
		ClientName:      res.ClientName,
		ClientEmail:     res.ClientEmail,
		ClientPhone:     res.ClientPhone,
		ServiceID:       res.ServiceID,
		ServiceName:     res.ServiceName,
		ServicePrice:    res.ServicePrice,
		ServiceDuration: res.ServiceDuration,
		StaffID:         res.StaffID,
		StaffName:       res.StaffName,
		Date:            res.AppointmentDate.Format(domain.DateFormat),
		Time:            res.AppointmentTime.String(),
		Status:          string(res.Status),
		Notes:           res.Notes,
	}
}
