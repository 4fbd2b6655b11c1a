package models

import (
	"github.com/elegantcut/booking-service/internal/bookingflow"
	"github.com/elegantcut/booking-service/internal/domain"
)

// CreateSessionRequest starts a booking session, optionally entering the
// flow with a pre-selected service and/or staff member.
type CreateSessionRequest struct {
	ServiceID *string
	StaffID   *string
	Locale    string
}

// UpdateSelectionRequest applies one or more selection changes to a
// session. Nil fields are left untouched.
type UpdateSelectionRequest struct {
	ServiceID *string
	StaffID   *string
	Date      *string // YYYY-MM-DD
	Time      *string // HH:MM
	Customer  *domain.CustomerInfo
}

// ServiceSummary is the selected service as presented to the client.
type ServiceSummary struct {
	ID              string
	Name            string
	DurationMinutes int
	Price           float64
	Category        string
}

// StaffSummary is the selected staff member as presented to the client.
type StaffSummary struct {
	ID      string
	Name    string
	Role    string
	Rating  float64
	Reviews int
}

// QuoteSummary is the display price breakdown of the selected service.
type QuoteSummary struct {
	Subtotal float64
	GST      float64
	QST      float64
	Total    float64
}

// SessionView is a read model of one booking session.
type SessionView struct {
	ID              string
	Step            int
	Completed       bool
	CanProceed      bool
	Locale          string
	Service         *ServiceSummary
	Staff           *StaffSummary
	Date            *string
	Time            *string
	Customer        domain.CustomerInfo
	Slots           []string // nil until availability was loaded
	SelectableDates []string
	Quote           *QuoteSummary
}

// SubmitResponse reports a confirmed reservation.
type SubmitResponse struct {
	ReservationID int64
	Status        string
	ServiceName   string
	StaffName     string
	Date          string
	Time          string
	Quote         QuoteSummary
}

// NewSessionView snapshots a flow into its read model.
func NewSessionView(id string, locale string, flow *bookingflow.Flow, selectableDates []string) *SessionView {
	sel := flow.Selection()

	view := &SessionView{
		ID:              id,
		Step:            int(flow.Step()),
		Completed:       flow.Completed(),
		CanProceed:      flow.CanProceed(flow.Step()),
		Locale:          locale,
		Customer:        sel.Customer,
		SelectableDates: selectableDates,
	}

	if sel.Service != nil {
		view.Service = &ServiceSummary{
			ID:              sel.Service.ID,
			Name:            sel.Service.Name,
			DurationMinutes: sel.Service.DurationMinutes,
			Price:           sel.Service.Price,
			Category:        string(sel.Service.Category),
		}
		quote := domain.QuoteService(sel.Service.Price)
		view.Quote = &QuoteSummary{
			Subtotal: quote.Subtotal,
			GST:      quote.GST,
			QST:      quote.QST,
			Total:    quote.Total,
		}
	}
	if sel.Staff != nil {
		view.Staff = &StaffSummary{
			ID:      sel.Staff.ID,
			Name:    sel.Staff.Name,
			Role:    sel.Staff.Role,
			Rating:  sel.Staff.Rating,
			Reviews: sel.Staff.Reviews,
		}
	}
	if sel.Date != nil {
		d := sel.Date.Format(domain.DateFormat)
		view.Date = &d
	}
	if sel.Time != nil {
		t := sel.Time.String()
		view.Time = &t
	}
	if slots := flow.Slots(); slots != nil {
		out := make([]string, len(slots))
		for i, s := range slots {
			out[i] = s.String()
		}
		view.Slots = out
	}
	return view
}
