package start_session

import (
	"github.com/elegantcut/booking-service/internal/service/sessions/models"
)

// StartSessionRequest HTTP request model. All fields optional: ids
// pre-select catalog entries, locale defaults to French.
type StartSessionRequest struct {
	ServiceID *string `json:"serviceId,omitempty"`
	StaffID   *string `json:"staffId,omitempty"`
	Locale    string  `json:"locale,omitempty"`
}

// ToServiceRequest converts the HTTP request to the service model.
func (r *StartSessionRequest) ToServiceRequest() *models.CreateSessionRequest {
	return &models.CreateSessionRequest{
		ServiceID: r.ServiceID,
		StaffID:   r.StaffID,
		Locale:    r.Locale,
	}
}
