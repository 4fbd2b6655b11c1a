package list_services

import (
	"github.com/elegantcut/booking-service/internal/domain"
)

// Catalog is the reference data source for services.
type Catalog interface {
	Services() []domain.Service
	ServicesByCategory(category domain.ServiceCategory) []domain.Service
	ServicesForStaff(staffID string) []domain.Service
}

// Logger is the logging interface used by the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
