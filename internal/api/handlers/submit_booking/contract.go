package submit_booking

import (
	"context"

	"github.com/elegantcut/booking-service/internal/service/sessions/models"
)

type SessionService interface {
	Submit(ctx context.Context, id string) (*models.SubmitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
