package navigate_session

import (
	"context"

	"github.com/elegantcut/booking-service/internal/service/sessions/models"
)

type SessionService interface {
	Navigate(ctx context.Context, id string, action string) (*models.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
