package reservations

import (
	"context"

	"github.com/elegantcut/booking-service/internal/domain"
)

// ReservationRepository is the storage surface of persisted reservations.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Cancel(ctx context.Context, id int64) error
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
