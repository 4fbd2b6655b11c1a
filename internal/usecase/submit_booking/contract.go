package submit_booking

import (
	"context"

	"github.com/elegantcut/booking-service/internal/domain"
	"github.com/elegantcut/booking-service/internal/integrations/mailer"
)

// ReservationRepository persists reservations.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// Mailer sends the confirmation email. Best-effort: failures are logged
// by the usecase and never affect the submission outcome.
type Mailer interface {
	SendConfirmation(ctx context.Context, email mailer.ConfirmationEmail) error
}

// Logger is the logging interface used by the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
