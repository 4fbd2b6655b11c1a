package update_selection

import (
	"github.com/elegantcut/booking-service/internal/domain"
	"github.com/elegantcut/booking-service/internal/service/sessions/models"
)

// CustomerPayload is the contact block of the request.
type CustomerPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes,omitempty"`
}

// UpdateSelectionRequest HTTP request model. Nil fields are left
// untouched; supplying a date always clears the chosen time.
type UpdateSelectionRequest struct {
	ServiceID *string          `json:"serviceId,omitempty"`
	StaffID   *string          `json:"staffId,omitempty"`
	Date      *string          `json:"date,omitempty"` // YYYY-MM-DD
	Time      *string          `json:"time,omitempty"` // HH:MM
	Customer  *CustomerPayload `json:"customer,omitempty"`
}

// ToServiceRequest converts the HTTP request to the service model.
func (r *UpdateSelectionRequest) ToServiceRequest() *models.UpdateSelectionRequest {
	req := &models.UpdateSelectionRequest{
		ServiceID: r.ServiceID,
		StaffID:   r.StaffID,
		Date:      r.Date,
		Time:      r.Time,
	}
	if r.Customer != nil {
		req.Customer = &domain.CustomerInfo{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
			Notes: r.Customer.Notes,
		}
	}
	return req
}
