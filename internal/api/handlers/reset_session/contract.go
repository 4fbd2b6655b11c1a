package reset_session

import (
	"context"

	"github.com/elegantcut/booking-service/internal/service/sessions/models"
)

type SessionService interface {
	Reset(ctx context.Context, id string) (*models.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
