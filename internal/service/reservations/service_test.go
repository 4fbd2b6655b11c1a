package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elegantcut/booking-service/internal/domain"
	reservationRepo "github.com/elegantcut/booking-service/internal/infra/storage/reservation"
)

type mockRepo struct {
	res       *domain.Reservation
	getErr    error
	cancelErr error

	cancelCalls int
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.res, nil
}

func (m *mockRepo) Cancel(ctx context.Context, id int64) error {
	m.cancelCalls++
	return m.cancelErr
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func confirmedReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:              42,
		ClientName:      "Luc Tremblay",
		ServiceName:     "Coupe / Haircut",
		StaffID:         "hamed",
		AppointmentDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "10:00",
		Status:          domain.StatusConfirmed,
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(&mockRepo{res: confirmedReservation()}, nopLogger{})

	res, err := svc.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.ID)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&mockRepo{getErr: reservationRepo.ErrReservationNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel(t *testing.T) {
	repo := &mockRepo{res: confirmedReservation()}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), 42))
	assert.Equal(t, 1, repo.cancelCalls)
}

func TestCancel_AlreadyCompleted(t *testing.T) {
	res := confirmedReservation()
	res.Status = domain.StatusCompleted
	repo := &mockRepo{res: res}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 42)
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Zero(t, repo.cancelCalls)
}

func TestCancel_RepositoryError(t *testing.T) {
	repo := &mockRepo{res: confirmedReservation(), cancelErr: errors.New("db down")}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInternal)
}
