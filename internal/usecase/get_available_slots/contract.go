package get_available_slots

import (
	"context"
	"time"

	"github.com/elegantcut/booking-service/internal/domain"
)

// ReservationRepository reads the slots already consumed for one
// (staff, date) pair.
type ReservationRepository interface {
	GetBookedSlots(ctx context.Context, staffID string, date time.Time) ([]domain.BookedSlot, error)
}

// Catalog resolves staff reference data.
type Catalog interface {
	StaffByID(id string) (*domain.StaffMember, bool)
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current wall-clock time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
