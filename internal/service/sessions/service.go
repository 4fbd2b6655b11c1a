// Package sessions owns the server-side booking sessions: each session
// wraps one bookingflow.Flow plus its locale, addressed by an opaque id.
// Sessions live in memory and expire after a period of inactivity.
package sessions

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/elegantcut/booking-service/internal/bookingflow"
	"github.com/elegantcut/booking-service/internal/domain"
	"github.com/elegantcut/booking-service/internal/i18n"
	"github.com/elegantcut/booking-service/internal/service/sessions/models"
	slotsUC "github.com/elegantcut/booking-service/internal/usecase/get_available_slots"
	submitUC "github.com/elegantcut/booking-service/internal/usecase/submit_booking"
	"github.com/elegantcut/booking-service/pkg/types"
)

// Navigation actions accepted by Navigate.
const (
	ActionNext = "next"
	ActionBack = "back"
)

type session struct {
	id       string
	locale   i18n.Locale
	flow     *bookingflow.Flow
	lastSeen time.Time
}

// Service manages booking sessions.
type Service struct {
	slotsUC      SlotsUseCase
	submitUC     SubmitUseCase
	catalog      Catalog
	timeProvider TimeProvider
	logger       Logger
	ttl          time.Duration

	mu       sync.Mutex
	sessions map[string]*session
}

// NewService creates the session service. ttl bounds how long an idle
// session is kept before eviction.
func NewService(
	slots SlotsUseCase,
	submit SubmitUseCase,
	catalog Catalog,
	timeProvider TimeProvider,
	logger Logger,
	ttl time.Duration,
) *Service {
	return &Service{
		slotsUC:      slots,
		submitUC:     submit,
		catalog:      catalog,
		timeProvider: timeProvider,
		logger:       logger,
		ttl:          ttl,
		sessions:     make(map[string]*session),
	}
}

// Create starts a new session, honoring the pre-selection entry policy:
// service and staff pre-supplied opens at step 3, service alone at
// step 2, staff alone at step 1.
func (s *Service) Create(ctx context.Context, req *models.CreateSessionRequest) (*models.SessionView, error) {
	locale, ok := i18n.ParseLocale(req.Locale)
	if !ok {
		s.logger.Warn("Create: unsupported locale=%q", req.Locale)
		return nil, fmt.Errorf("%w: unsupported locale %q", ErrInvalidInput, req.Locale)
	}

	var preService *domain.Service
	if req.ServiceID != nil {
		svc, found := s.catalog.ServiceByID(*req.ServiceID)
		if !found {
			s.logger.Warn("Create: unknown service id=%s", *req.ServiceID)
			return nil, fmt.Errorf("%w: %s", ErrUnknownService, *req.ServiceID)
		}
		preService = svc
	}

	var preStaff *domain.StaffMember
	if req.StaffID != nil {
		member, found := s.catalog.StaffByID(*req.StaffID)
		if !found {
			s.logger.Warn("Create: unknown staff id=%s", *req.StaffID)
			return nil, fmt.Errorf("%w: %s", ErrUnknownStaff, *req.StaffID)
		}
		preStaff = member
	}

	if preService != nil && preStaff != nil && !preService.CanBePerformedBy(preStaff.ID) {
		s.logger.Warn("Create: staff=%s cannot perform service=%s", preStaff.ID, preService.ID)
		return nil, ErrStaffCannotPerform
	}

	id, err := newSessionID()
	if err != nil {
		s.logger.Error("Create: failed to generate session id: %v", err)
		return nil, fmt.Errorf("%w: Create - id generation: %v", ErrInternal, err)
	}

	sess := &session{
		id:       id,
		locale:   locale,
		flow:     bookingflow.New(preService, preStaff),
		lastSeen: s.timeProvider.Now(),
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	s.logger.Info("Create: session=%s started at step=%d, locale=%s", id, sess.flow.Step(), locale)
	return s.view(sess), nil
}

// Get returns the current state of a session.
func (s *Service) Get(ctx context.Context, id string) (*models.SessionView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// UpdateSelection applies selection changes in flow order: service,
// staff, date, time, then customer info. A staff or date change reloads
// availability; changing the date always clears the chosen time.
func (s *Service) UpdateSelection(ctx context.Context, id string, req *models.UpdateSelectionRequest) (*models.SessionView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	if req.ServiceID != nil {
		svc, found := s.catalog.ServiceByID(*req.ServiceID)
		if !found {
			s.logger.Warn("UpdateSelection: session=%s unknown service id=%s", id, *req.ServiceID)
			return nil, fmt.Errorf("%w: %s", ErrUnknownService, *req.ServiceID)
		}
		if err := sess.flow.SetService(svc); err != nil {
			return nil, err
		}
		s.logger.Info("UpdateSelection: session=%s service=%s", id, svc.ID)
	}

	if req.StaffID != nil {
		member, found := s.catalog.StaffByID(*req.StaffID)
		if !found {
			s.logger.Warn("UpdateSelection: session=%s unknown staff id=%s", id, *req.StaffID)
			return nil, fmt.Errorf("%w: %s", ErrUnknownStaff, *req.StaffID)
		}
		if svc := sess.flow.Selection().Service; svc != nil && !svc.CanBePerformedBy(member.ID) {
			s.logger.Warn("UpdateSelection: session=%s staff=%s cannot perform service=%s", id, member.ID, svc.ID)
			return nil, ErrStaffCannotPerform
		}
		if err := sess.flow.SetStaff(member); err != nil {
			return nil, err
		}
		s.logger.Info("UpdateSelection: session=%s staff=%s", id, member.ID)
	}

	if req.Date != nil {
		date, parseErr := time.Parse(domain.DateFormat, *req.Date)
		if parseErr != nil {
			s.logger.Warn("UpdateSelection: session=%s invalid date=%q", id, *req.Date)
			return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, *req.Date)
		}
		if err := sess.flow.SetDate(date); err != nil {
			return nil, err
		}
		s.logger.Info("UpdateSelection: session=%s date=%s, time cleared", id, *req.Date)
	}

	if req.StaffID != nil || req.Date != nil {
		if err := s.refreshSlots(ctx, sess); err != nil {
			return nil, err
		}
	}

	if req.Time != nil {
		t, tErr := types.NewTimeStringFromString(*req.Time)
		if tErr != nil {
			s.logger.Warn("UpdateSelection: session=%s invalid time=%q", id, *req.Time)
			return nil, fmt.Errorf("%w: invalid time %q", ErrInvalidInput, *req.Time)
		}
		if !slotAvailable(sess.flow.Slots(), t) {
			s.logger.Warn("UpdateSelection: session=%s slot=%s not available", id, t)
			return nil, ErrSlotUnavailable
		}
		if err := sess.flow.SetTime(t); err != nil {
			return nil, err
		}
		s.logger.Info("UpdateSelection: session=%s time=%s", id, t)
	}

	if req.Customer != nil {
		if err := sess.flow.SetCustomerInfo(*req.Customer); err != nil {
			return nil, err
		}
	}

	return s.view(sess), nil
}

// Navigate moves the session one step forward or back.
func (s *Service) Navigate(ctx context.Context, id string, action string) (*models.SessionView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	switch action {
	case ActionNext:
		if err := sess.flow.Advance(); err != nil {
			s.logger.Warn("Navigate: session=%s advance refused: %v", id, err)
			return nil, err
		}
	case ActionBack:
		if err := sess.flow.Retreat(); err != nil {
			s.logger.Warn("Navigate: session=%s retreat refused: %v", id, err)
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, action)
	}

	s.logger.Info("Navigate: session=%s action=%s step=%d", id, action, sess.flow.Step())
	return s.view(sess), nil
}

// Reset returns the session to an empty flow at step 1.
func (s *Service) Reset(ctx context.Context, id string) (*models.SessionView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.flow.Reset()
	s.logger.Info("Reset: session=%s", id)
	return s.view(sess), nil
}

// Submit persists the session's completed selection. On failure the
// session stays at the contact step so the client can retry.
func (s *Service) Submit(ctx context.Context, id string) (*models.SubmitResponse, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if sess.flow.Completed() {
		return nil, bookingflow.ErrFlowCompleted
	}

	sel := sess.flow.Selection()
	req := &submitUC.Request{
		Service:  sel.Service,
		Staff:    sel.Staff,
		Customer: sel.Customer,
		Locale:   sess.locale,
	}
	if sel.Date != nil {
		req.Date = *sel.Date
	}
	if sel.Time != nil {
		req.StartTime = *sel.Time
	}

	resp, err := s.submitUC.Execute(ctx, req)
	if err != nil {
		if errors.Is(err, submitUC.ErrSlotTaken) {
			// The slot list the client saw is gone, refresh it for the retry.
			if refreshErr := s.refreshSlots(ctx, sess); refreshErr != nil {
				s.logger.Error("Submit: session=%s slot refresh after conflict failed: %v", id, refreshErr)
			}
		}
		return nil, err
	}

	sess.flow.MarkCompleted()
	s.logger.Info("Submit: session=%s reservation id=%d", id, resp.Reservation.ID)

	return &models.SubmitResponse{
		ReservationID: resp.Reservation.ID,
		Status:        string(resp.Reservation.Status),
		ServiceName:   resp.Reservation.ServiceName,
		StaffName:     resp.Reservation.StaffName,
		Date:          resp.Reservation.AppointmentDate.Format(domain.DateFormat),
		Time:          resp.Reservation.AppointmentTime.String(),
		Quote: models.QuoteSummary{
			Subtotal: resp.Quote.Subtotal,
			GST:      resp.Quote.GST,
			QST:      resp.Quote.QST,
			Total:    resp.Quote.Total,
		},
	}, nil
}

// EvictExpired drops sessions idle longer than the TTL and reports how
// many were removed.
func (s *Service) EvictExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		s.logger.Info("EvictExpired: removed %d idle sessions", evicted)
	}
	return evicted
}

// lookup finds a session and refreshes its idle timer.
func (s *Service) lookup(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.lastSeen = s.timeProvider.Now()
	return sess, nil
}

// refreshSlots reloads availability for the session's current
// (staff, date) pair. A result that arrives after the pair changed again
// is discarded, never shown.
func (s *Service) refreshSlots(ctx context.Context, sess *session) error {
	staffID, date, rev, ok := sess.flow.BeginSlotsLoad()
	if !ok {
		return nil
	}

	resp, err := s.slotsUC.Execute(ctx, &slotsUC.Request{StaffID: staffID, Date: date})
	if err != nil {
		s.logger.Error("refreshSlots: session=%s staff=%s date=%s: %v",
			sess.id, staffID, date.Format(domain.DateFormat), err)
		return err
	}

	if !sess.flow.ApplySlots(rev, resp.Slots) {
		s.logger.Info("refreshSlots: session=%s discarding stale availability for staff=%s date=%s",
			sess.id, staffID, date.Format(domain.DateFormat))
	}
	return nil
}

// view builds the read model, including the selectable dates of the
// booking window when a staff member is chosen.
func (s *Service) view(sess *session) *models.SessionView {
	var dates []string
	if staff := sess.flow.Selection().Staff; staff != nil {
		dates = selectableDates(staff, s.timeProvider.Now())
	}
	return models.NewSessionView(sess.id, string(sess.locale), sess.flow, dates)
}

// selectableDates enumerates the dates of the booking window (today
// through day 30 inclusive) on which the staff member works.
func selectableDates(staff *domain.StaffMember, now time.Time) []string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	out := make([]string, 0, domain.MaxAdvanceBookingDays+1)
	for i := 0; i <= domain.MaxAdvanceBookingDays; i++ {
		d := today.AddDate(0, 0, i)
		if slotsUC.IsDateSelectable(staff, d, now) {
			out = append(out, d.Format(domain.DateFormat))
		}
	}
	return out
}

func slotAvailable(slots []types.TimeString, t types.TimeString) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}

func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
