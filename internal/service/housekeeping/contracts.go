package housekeeping

import (
	"context"
	"time"
)

// ReservationRepository is the storage surface the jobs touch.
type ReservationRepository interface {
	CompletePast(ctx context.Context, now time.Time) (int64, error)
}

// SessionStore evicts idle booking sessions.
type SessionStore interface {
	EvictExpired(now time.Time) int
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
