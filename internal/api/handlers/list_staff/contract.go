package list_staff

import (
	"github.com/elegantcut/booking-service/internal/domain"
)

// Catalog is the reference data source for staff members.
type Catalog interface {
	Staff() []domain.StaffMember
	StaffForService(serviceID string) []domain.StaffMember
	ServiceByID(id string) (*domain.Service, bool)
}

// Logger is the logging interface used by the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
