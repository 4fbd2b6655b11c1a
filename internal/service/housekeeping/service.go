// Package housekeeping runs the periodic maintenance jobs: marking past
// confirmed reservations as completed and evicting idle booking sessions.
package housekeeping

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 30 * time.Second

// Service schedules the maintenance jobs on a cron spec.
type Service struct {
	reservationRepo ReservationRepository
	sessions        SessionStore
	timeProvider    TimeProvider
	logger          Logger
	schedule        string
	cron            *cron.Cron
}

// NewService creates the housekeeping service. schedule is a standard
// 5-field cron spec, e.g. "*/10 * * * *".
func NewService(
	reservationRepo ReservationRepository,
	sessions SessionStore,
	timeProvider TimeProvider,
	logger Logger,
	schedule string,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		sessions:        sessions,
		timeProvider:    timeProvider,
		logger:          logger,
		schedule:        schedule,
		cron:            cron.New(),
	}
}

// Start registers the jobs and launches the scheduler.
func (s *Service) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.run); err != nil {
		return fmt.Errorf("housekeeping: invalid schedule %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.logger.Info("housekeeping: scheduler started, schedule=%q", s.schedule)
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Service) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("housekeeping: scheduler stopped")
}

// run executes one maintenance pass.
func (s *Service) run() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	now := s.timeProvider.Now()

	completed, err := s.reservationRepo.CompletePast(ctx, now)
	if err != nil {
		s.logger.Error("housekeeping: failed to complete past reservations: %v", err)
	} else if completed > 0 {
		s.logger.Info("housekeeping: marked %d past reservations as completed", completed)
	}

	if evicted := s.sessions.EvictExpired(now); evicted > 0 {
		s.logger.Info("housekeeping: evicted %d idle sessions", evicted)
	}
}
