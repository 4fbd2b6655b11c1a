package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/elegantcut/booking-service/internal/domain"
	"github.com/elegantcut/booking-service/internal/i18n"
	"github.com/elegantcut/booking-service/internal/integrations/mailer"
	reservationRepo "github.com/elegantcut/booking-service/internal/infra/storage/reservation"
)

// UseCase persists a completed booking selection and requests the
// confirmation email.
type UseCase struct {
	reservationRepo ReservationRepository
	mailer          Mailer
	logger          Logger
}

// NewUseCase creates the submission usecase.
func NewUseCase(
	reservationRepo ReservationRepository,
	mail Mailer,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		mailer:          mail,
		logger:          logger,
	}
}

// Execute runs the submission. Only persistence failures are returned;
// a failed confirmation email is logged and swallowed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. The full selection must satisfy every step predicate
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("SubmitBooking: service=%s, staff=%s, date=%s, time=%s, client=%s",
		req.Service.ID, req.Staff.ID, req.Date.Format(domain.DateFormat), req.StartTime,
		strings.TrimSpace(req.Customer.Name))

	// 2. Flatten the selection into the persisted record
	var notes *string
	if trimmed := strings.TrimSpace(req.Customer.Notes); trimmed != "" {
		notes = &trimmed
	}

	res := &domain.Reservation{
		ClientName:      strings.TrimSpace(req.Customer.Name),
		ClientEmail:     strings.TrimSpace(req.Customer.Email),
		ClientPhone:     strings.TrimSpace(req.Customer.Phone),
		ServiceID:       req.Service.ID,
		ServiceName:     req.Service.Name,
		ServicePrice:    req.Service.Price, // untaxed base price
		ServiceDuration: req.Service.DurationMinutes,
		StaffID:         req.Staff.ID,
		StaffName:       req.Staff.Name,
		AppointmentDate: req.Date,
		AppointmentTime: req.StartTime,
		Status:          domain.StatusConfirmed,
		Notes:           notes,
	}

	// 3. Persist. This write is the sole authority that the slot is taken.
	created, err := uc.reservationRepo.Create(ctx, res)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			uc.logger.Warn("SubmitBooking: slot taken, staff=%s, date=%s, time=%s",
				req.Staff.ID, req.Date.Format(domain.DateFormat), req.StartTime)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("SubmitBooking: failed to persist reservation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	uc.logger.Info("SubmitBooking: reservation id=%d created", created.ID)

	// 4. Best-effort confirmation email
	locale := req.Locale
	if locale == "" {
		locale = i18n.DefaultLocale
	}
	email := mailer.ConfirmationEmail{
		ClientName:      created.ClientName,
		ClientEmail:     created.ClientEmail,
		ServiceName:     created.ServiceName,
		StaffName:       created.StaffName,
		AppointmentDate: i18n.FormatLongDate(locale, created.AppointmentDate),
		AppointmentTime: created.AppointmentTime.String(),
		Price:           created.ServicePrice,
		Locale:          locale,
	}
	if err := uc.mailer.SendConfirmation(ctx, email); err != nil {
		uc.logger.Warn("SubmitBooking: confirmation email failed for reservation id=%d: %v",
			created.ID, err)
	}

	return &Response{
		Reservation: created,
		Quote:       domain.QuoteService(created.ServicePrice),
	}, nil
}
