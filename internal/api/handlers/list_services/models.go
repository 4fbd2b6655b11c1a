package list_services

import (
	"github.com/elegantcut/booking-service/internal/domain"
)

// ServiceResponse is one catalog service in HTTP responses.
type ServiceResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           float64  `json:"price"`
	Category        string   `json:"category"`
	Popular         bool     `json:"popular"`
	StaffIDs        []string `json:"staffIds"`
}

// ServiceListResponse is the list payload.
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainServices converts catalog services to the HTTP response.
func FromDomainServices(services []domain.Service) *ServiceListResponse {
	out := make([]ServiceResponse, len(services))
	for i, s := range services {
		out[i] = ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			Category:        string(s.Category),
			Popular:         s.Popular,
			StaffIDs:        s.StaffIDs,
		}
	}
	return &ServiceListResponse{Services: out}
}
