// Package catalog holds the compiled-in reference data of the salon:
// offerable services, staff members and their weekly availability
// templates. Read-only at runtime; accessors return defensive copies in
// insertion order.
package catalog

import "github.com/elegantcut/booking-service/internal/domain"

var (
	serviceIndex = make(map[string]int, len(services))
	staffIndex   = make(map[string]int, len(staff))
)

func init() {
	for i, s := range services {
		serviceIndex[s.ID] = i
	}
	for i, m := range staff {
		staffIndex[m.ID] = i
	}
}

// Services returns all offerable services in authored order.
func Services() []domain.Service {
	out := make([]domain.Service, len(services))
	copy(out, services)
	return out
}

// Staff returns all staff members in authored order.
func Staff() []domain.StaffMember {
	out := make([]domain.StaffMember, len(staff))
	copy(out, staff)
	return out
}

// ServiceByID looks up a service by identifier.
func ServiceByID(id string) (*domain.Service, bool) {
	i, ok := serviceIndex[id]
	if !ok {
		return nil, false
	}
	s := services[i]
	return &s, true
}

// StaffByID looks up a staff member by identifier.
func StaffByID(id string) (*domain.StaffMember, bool) {
	i, ok := staffIndex[id]
	if !ok {
		return nil, false
	}
	m := staff[i]
	return &m, true
}

// StaffForService returns the staff members authorized to perform the
// service, in staff authored order.
func StaffForService(serviceID string) []domain.StaffMember {
	svc, ok := ServiceByID(serviceID)
	if !ok {
		return nil
	}
	out := make([]domain.StaffMember, 0, len(svc.StaffIDs))
	for _, m := range staff {
		if svc.CanBePerformedBy(m.ID) {
			out = append(out, m)
		}
	}
	return out
}

// ServicesForStaff returns the services a staff member may perform, in
// service authored order.
func ServicesForStaff(staffID string) []domain.Service {
	out := make([]domain.Service, 0)
	for _, s := range services {
		if s.CanBePerformedBy(staffID) {
			out = append(out, s)
		}
	}
	return out
}

// Provider exposes the catalog behind an injectable value for code that
// declares its dependencies as interfaces.
type Provider struct{}

// Services returns all offerable services in authored order.
func (Provider) Services() []domain.Service { return Services() }

// Staff returns all staff members in authored order.
func (Provider) Staff() []domain.StaffMember { return Staff() }

// ServiceByID looks up a service by identifier.
func (Provider) ServiceByID(id string) (*domain.Service, bool) { return ServiceByID(id) }

// StaffByID looks up a staff member by identifier.
func (Provider) StaffByID(id string) (*domain.StaffMember, bool) { return StaffByID(id) }

// StaffForService returns the staff members authorized to perform the
// service.
func (Provider) StaffForService(serviceID string) []domain.StaffMember {
	return StaffForService(serviceID)
}

// ServicesForStaff returns the services a staff member may perform.
func (Provider) ServicesForStaff(staffID string) []domain.Service {
	return ServicesForStaff(staffID)
}

// ServicesByCategory filters services by category.
func (Provider) ServicesByCategory(category domain.ServiceCategory) []domain.Service {
	return ServicesByCategory(category)
}

// ServicesByCategory filters services by category, preserving order.
func ServicesByCategory(category domain.ServiceCategory) []domain.Service {
	out := make([]domain.Service, 0)
	for _, s := range services {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}
