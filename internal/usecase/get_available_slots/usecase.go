package get_available_slots

import (
	"context"
	"fmt"

	"github.com/elegantcut/booking-service/internal/domain"
	"github.com/elegantcut/booking-service/pkg/types"
)

// UseCase resolves the bookable slots for a (staff member, date) pair.
type UseCase struct {
	reservationRepo ReservationRepository
	catalog         Catalog
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the usecase with the production time provider.
func NewUseCase(
	reservationRepo ReservationRepository,
	catalog Catalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalog:         catalog,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the resolver.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: staff=%s, date=%s",
		req.StaffID, req.Date.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Resolve the staff member
	staff, ok := uc.catalog.StaffByID(req.StaffID)
	if !ok {
		uc.logger.Warn("GetAvailableSlots: staff id=%s not found", req.StaffID)
		return nil, ErrStaffNotFound
	}

	// 3. Date must be inside the booking window
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Off day: empty result, no storage round trip needed
	if !staff.WorksOn(req.Date.Weekday()) {
		uc.logger.Info("GetAvailableSlots: staff=%s does not work on %s",
			req.StaffID, req.Date.Weekday())
		return &Response{StaffID: req.StaffID, Date: req.Date, Slots: []types.TimeString{}}, nil
	}

	// 5. Read the booked slots for that staff member and date
	booked, err := uc.reservationRepo.GetBookedSlots(ctx, req.StaffID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}

	// 6. Resolve
	slots := resolveSlots(staff, req.Date, booked, now)

	uc.logger.Info("GetAvailableSlots: staff=%s, date=%s, %d slots remaining (%d booked)",
		req.StaffID, req.Date.Format(domain.DateFormat), len(slots), len(booked))

	return &Response{
		StaffID: req.StaffID,
		Date:    req.Date,
		Slots:   slots,
	}, nil
}
