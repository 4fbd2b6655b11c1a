package sessions

import (
	"context"
	"time"

	"github.com/elegantcut/booking-service/internal/domain"
	slotsUC "github.com/elegantcut/booking-service/internal/usecase/get_available_slots"
	submitUC "github.com/elegantcut/booking-service/internal/usecase/submit_booking"
)

// SlotsUseCase resolves the bookable slots for one (staff, date) pair.
type SlotsUseCase interface {
	Execute(ctx context.Context, req *slotsUC.Request) (*slotsUC.Response, error)
}

// SubmitUseCase persists a completed selection as a reservation.
type SubmitUseCase interface {
	Execute(ctx context.Context, req *submitUC.Request) (*submitUC.Response, error)
}

// Catalog resolves services and staff reference data.
type Catalog interface {
	ServiceByID(id string) (*domain.Service, bool)
	StaffByID(id string) (*domain.StaffMember, bool)
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
