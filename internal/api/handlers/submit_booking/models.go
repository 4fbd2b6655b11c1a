package submit_booking

import (
	"github.com/elegantcut/booking-service/internal/api/handlers"
	"github.com/elegantcut/booking-service/internal/service/sessions/models"
)

// SubmitBookingResponse HTTP response model of a confirmed reservation.
type SubmitBookingResponse struct {
	ReservationID int64                    `json:"reservationId"`
	Status        string                   `json:"status"`
	ServiceName   string                   `json:"serviceName"`
	StaffName     string                   `json:"staffName"`
	Date          string                   `json:"date"`
	Time          string                   `json:"time"`
	Quote         handlers.QuoteBreakdown  `json:"quote"`
}

// FromServiceResponse converts the service result to the HTTP response.
func FromServiceResponse(resp *models.SubmitResponse) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		ReservationID: resp.ReservationID,
		Status:        resp.Status,
		ServiceName:   resp.ServiceName,
		StaffName:     resp.StaffName,
		Date:          resp.Date,
		Time:          resp.Time,
		Quote: handlers.QuoteBreakdown{
			Subtotal: resp.Quote.Subtotal,
			GST:      resp.Quote.GST,
			QST:      resp.Quote.QST,
			Total:    resp.Quote.Total,
		},
	}
}
