package handlers

import (
	sessionModels "github.com/elegantcut/booking-service/internal/service/sessions/models"
)

// SessionResponse is the HTTP read model of a booking session, shared by
// every session-scoped handler.
type SessionResponse struct {
	ID              string           `json:"id"`
	Step            int              `json:"step"`
	Completed       bool             `json:"completed"`
	CanProceed      bool             `json:"canProceed"`
	Locale          string           `json:"locale"`
	Service         *ServiceSummary  `json:"service,omitempty"`
	Staff           *StaffSummary    `json:"staff,omitempty"`
	Date            *string          `json:"date,omitempty"`
	Time            *string          `json:"time,omitempty"`
	Customer        *CustomerInfo    `json:"customer,omitempty"`
	Slots           []string         `json:"slots,omitempty"`
	SelectableDates []string         `json:"selectableDates,omitempty"`
	Quote           *QuoteBreakdown  `json:"quote,omitempty"`
}

// ServiceSummary is the selected service in HTTP responses.
type ServiceSummary struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
}

// StaffSummary is the selected staff member in HTTP responses.
type StaffSummary struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Role    string  `json:"role"`
	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`
}

// CustomerInfo is the contact block in HTTP responses.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes,omitempty"`
}

// QuoteBreakdown is the display price breakdown in HTTP responses.
type QuoteBreakdown struct {
	Subtotal float64 `json:"subtotal"`
	GST      float64 `json:"gst"`
	QST      float64 `json:"qst"`
	Total    float64 `json:"total"`
}

// FromSessionView converts the service read model into the HTTP response.
func FromSessionView(view *sessionModels.SessionView) *SessionResponse {
	resp := &SessionResponse{
		ID:              view.ID,
		Step:            view.Step,
		Completed:       view.Completed,
		CanProceed:      view.CanProceed,
		Locale:          view.Locale,
		Date:            view.Date,
		Time:            view.Time,
		Slots:           view.Slots,
		SelectableDates: view.SelectableDates,
	}

	if view.Service != nil {
		resp.Service = &ServiceSummary{
			ID:              view.Service.ID,
			Name:            view.Service.Name,
			DurationMinutes: view.Service.DurationMinutes,
			Price:           view.Service.Price,
			Category:        view.Service.Category,
		}
	}
	if view.Staff != nil {
		resp.Staff = &StaffSummary{
			ID:      view.Staff.ID,
			Name:    view.Staff.Name,
			Role:    view.Staff.Role,
			Rating:  view.Staff.Rating,
			Reviews: view.Staff.Reviews,
		}
	}
	if view.Customer.Name != "" || view.Customer.Email != "" || view.Customer.Phone != "" {
		resp.Customer = &CustomerInfo{
			Name:  view.Customer.Name,
			Email: view.Customer.Email,
			Phone: view.Customer.Phone,
			Notes: view.Customer.Notes,
		}
	}
	if view.Quote != nil {
		resp.Quote = &QuoteBreakdown{
			Subtotal: view.Quote.Subtotal,
			GST:      view.Quote.GST,
			QST:      view.Quote.QST,
			Total:    view.Quote.Total,
		}
	}
	return resp
}
